package fasta

import (
	"bytes"
	"io"
	"os"
)

// Compression classifies the container wrapping a byte source. The
// classification is decided purely by magic number, never by file name.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Bzip2
	Zip
	Unknown
)

func (c Compression) String() string {
	switch c {
	case Plain:
		return "plain"
	case Gzip:
		return "gz"
	case Bzip2:
		return "bz2"
	case Zip:
		return "zip"
	}
	return "unknown"
}

// MagicLen is the longest signature prefix; Detect never needs more bytes.
const MagicLen = 4

// Checked in order, first match wins.
var magics = []struct {
	prefix []byte
	kind   Compression
}{
	{[]byte{0x1f, 0x8b, 0x08}, Gzip},
	{[]byte{0x42, 0x5a, 0x68}, Bzip2},
	{[]byte{0x50, 0x4b, 0x03, 0x04}, Zip},
}

// Detect classifies a source from its leading bytes. It is a pure function
// of the first MagicLen bytes and performs no decompression. When no
// signature matches, a prefix of plausible text classifies as Plain;
// anything else is Unknown, so an unrecognized binary container is never
// mistaken for plain text.
func Detect(prefix []byte) Compression {
	if len(prefix) > MagicLen {
		prefix = prefix[:MagicLen]
	}
	for _, m := range magics {
		if bytes.HasPrefix(prefix, m.prefix) {
			return m.kind
		}
	}
	for _, b := range prefix {
		if b >= 0x20 {
			continue
		}
		switch b {
		case '\t', '\n', '\r':
		default:
			return Unknown
		}
	}
	return Plain
}

// DetectFile reads the leading bytes of the named file and classifies
// them. The file is opened read-only and closed before returning.
func DetectFile(name string) (Compression, error) {
	f, err := os.Open(name)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	buf := make([]byte, MagicLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return Detect(buf[:n]), nil
}
