package fasta

import (
	"bufio"
	"io"
	"strings"
)

// Sequence data is sometimes stored unwrapped, so single lines can run to
// megabytes. The scanner buffer is allowed to grow well past bufio's
// default token limit.
const maxLineSize = 64 * 1024 * 1024

// A Reader parses FASTA records from a decoded text stream. It is a
// forward-only, single-pass reader: ReadRecord returns the next record or
// io.EOF once the stream is exhausted. A Reader depends only on the
// io.Reader it was built from, never on concrete file I/O.
type Reader struct {
	s *bufio.Scanner

	id      string
	desc    string
	seq     []string
	started bool
	done    bool
}

// NewReader returns a reader parsing FASTA text from ir.
func NewReader(ir io.Reader) *Reader {
	s := bufio.NewScanner(ir)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{s: s}
}

// ReadRecord returns the next record, or io.EOF at end of stream.
// Malformed defline content is never an error: an empty id or description
// is just a value. Lines before the first defline are ignored.
func (r *Reader) ReadRecord() (*Record, error) {
	if r.done {
		return nil, io.EOF
	}
	for r.s.Scan() {
		line := r.s.Text()
		if strings.HasPrefix(line, ">") {
			if r.started {
				rec := r.emit()
				r.startRecord(line)
				return rec, nil
			}
			r.started = true
			r.startRecord(line)
			continue
		}
		if r.started {
			r.seq = append(r.seq, strings.TrimRight(line, " \t\r"))
		}
	}
	r.done = true
	if err := r.s.Err(); err != nil {
		return nil, err
	}
	if r.started {
		return r.emit(), nil
	}
	return nil, io.EOF
}

// startRecord begins accumulating a new record from a defline. The id is
// the first whitespace-delimited token with the marker stripped; the
// description is the trimmed remainder. A bare ">" yields an empty id.
func (r *Reader) startRecord(line string) {
	fields := strings.Fields(line)
	id := ""
	if len(fields) > 0 {
		id = strings.TrimPrefix(fields[0], ">")
	}
	r.id = id
	r.desc = strings.TrimSpace(line[1+len(id):])
	r.seq = nil
}

func (r *Reader) emit() *Record {
	rec := &Record{ID: r.id, Desc: r.desc, Seq: strings.Join(r.seq, "")}
	r.seq = nil
	return rec
}

// ReadAll drains rr into a slice.
func ReadAll(rr RecordReader) ([]*Record, error) {
	var recs []*Record
	for {
		rec, err := rr.ReadRecord()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}
