package fasta

import "io"

// ToDict folds a record stream into a mapping keyed by record id. It
// operates in one pass with no lookahead and fails with a
// DuplicateKeyError on the second insertion attempt for the same id,
// discarding the partial mapping. An empty stream yields an empty map.
func ToDict(rr RecordReader) (map[string]*Record, error) {
	d := make(map[string]*Record)
	for {
		rec, err := rr.ReadRecord()
		if err == io.EOF {
			return d, nil
		}
		if err != nil {
			return nil, err
		}
		if _, ok := d[rec.ID]; ok {
			return nil, &DuplicateKeyError{ID: rec.ID}
		}
		d[rec.ID] = rec
	}
}
