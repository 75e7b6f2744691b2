package fasta

import (
	"strings"
)

// DefaultWrap is the sequence line width used by String.
const DefaultWrap = 70

// A Record is a single FASTA (aka Pearson) record: an identifier, an
// optional free-text description and the sequence itself. Records are
// treated as immutable once constructed; the parser never reuses one.
type Record struct {
	ID   string
	Desc string
	Seq  string
}

// NewRecord constructs a record. No validation is performed on the
// character content of any field.
func NewRecord(id, seq, desc string) *Record {
	return &Record{ID: id, Desc: desc, Seq: seq}
}

// Defline returns the description line: the '>' marker, the id, and the
// description separated by a single space when one is present.
func (r *Record) Defline() string {
	if r.Desc != "" {
		return ">" + r.ID + " " + r.Desc
	}
	return ">" + r.ID
}

// Len returns the number of characters in the sequence.
func (r *Record) Len() int {
	return len(r.Seq)
}

// Contains reports whether sub occurs as a contiguous run within the
// sequence.
func (r *Record) Contains(sub string) bool {
	return strings.Contains(r.Seq, sub)
}

// Format renders the record as FASTA text: the defline, then the sequence
// in lines of exactly wrap characters (the last possibly shorter), each
// newline-terminated. wrap <= 0 emits the whole sequence as a single line.
// The defline is never wrapped.
func (r *Record) Format(wrap int) string {
	var b strings.Builder
	b.WriteString(r.Defline())
	b.WriteByte('\n')
	if wrap > 0 {
		for i := 0; i < len(r.Seq); i += wrap {
			end := i + wrap
			if end > len(r.Seq) {
				end = len(r.Seq)
			}
			b.WriteString(r.Seq[i:end])
			b.WriteByte('\n')
		}
	} else {
		b.WriteString(r.Seq)
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the record at the default wrap width without the
// trailing newline.
func (r *Record) String() string {
	return strings.TrimRight(r.Format(DefaultWrap), "\n")
}
