package fasta

import (
	"archive/zip"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// A File is an open FASTA source: the record reader plus whatever handles
// (file, decompressor, archive entry) back it. Close releases them all,
// so early termination by the consumer still cleans up.
type File struct {
	*Reader

	// Kind is the sniffed container classification.
	Kind Compression

	closers []io.Closer
}

// Close releases the underlying handles, innermost first. It is safe to
// call after a partial read.
func (f *File) Close() error {
	var first error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	f.closers = nil
	return first
}

// Open opens the named file for record reading, transparently decoding
// gzip, bzip2 and zip containers. The container is sniffed first (a
// bounded prefix read, then a seek back to the start); the sniff result
// alone selects the decoder.
//
// A missing file or other OS failure surfaces as the *os.PathError from
// the open, so os.IsNotExist applies. An unrecognized binary container
// fails with ErrUnsupportedFormat, an entry-less zip with ErrEmptyArchive,
// both wrapped with the file name.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	kind, err := sniff(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	closers := []io.Closer{f}
	var src io.Reader

	switch kind {
	case Plain:
		src = f
	case Gzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		closers = append(closers, zr)
		src = zr
	case Bzip2:
		src = bzip2.NewReader(f)
	case Zip:
		fi, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, err
		}
		zr, err := zip.NewReader(f, fi.Size())
		if err != nil {
			f.Close()
			return nil, err
		}
		if len(zr.File) == 0 {
			f.Close()
			return nil, fmt.Errorf("%s: %w", name, ErrEmptyArchive)
		}
		// Only the first entry is read; anything else in the
		// archive is ignored.
		entry, err := zr.File[0].Open()
		if err != nil {
			f.Close()
			return nil, err
		}
		closers = append(closers, entry)
		src = entry
	default:
		f.Close()
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}

	return &File{Reader: NewReader(src), Kind: kind, closers: closers}, nil
}

// sniff classifies f from its leading bytes and rewinds it, leaving the
// stream intact for the decoder.
func sniff(f *os.File) (Compression, error) {
	buf := make([]byte, MagicLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Unknown, err
	}
	return Detect(buf[:n]), nil
}

// Read returns the first record of the named file. It fails with
// ErrNoRecords when the file parses cleanly but contains none.
func Read(name string) (*Record, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := f.ReadRecord()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: %w", name, ErrNoRecords)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
