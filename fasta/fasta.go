// Package fasta provides streaming readers for FASTA sequence records
package fasta

import (
	"errors"
	"fmt"
)

// A RecordReader produces records until the source is exhausted, at which
// point ReadRecord returns io.EOF.
type RecordReader interface {
	ReadRecord() (*Record, error)
}

var (
	// ErrUnsupportedFormat indicates the source is neither plain text nor
	// a recognized compression container.
	ErrUnsupportedFormat = errors.New("unsupported compression format")

	// ErrEmptyArchive indicates a zip container with no entries.
	ErrEmptyArchive = errors.New("zip archive has no entries")

	// ErrNoRecords indicates a source that parsed cleanly but contained
	// no records.
	ErrNoRecords = errors.New("no records found")
)

// DuplicateKeyError reports the first record id inserted twice while
// building a dict.
type DuplicateKeyError struct {
	ID string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate record id: %q", e.ID)
}
