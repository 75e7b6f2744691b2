package fasta

import (
	"io"
	"log"
)

// A SerialReader lets us read records from multiple sources, in sequence
type SerialReader struct {
	readers []RecordReader
	rIdx    int
}

func (sr *SerialReader) ReadRecord() (rec *Record, err error) {
	for sr.rIdx < len(sr.readers) {
		rec, err = sr.readers[sr.rIdx].ReadRecord()
		if err != nil {
			if err == io.EOF {
				log.Println("Source complete. Next...")
				err = nil
				sr.rIdx += 1
			} else {
				return
			}
		} else {
			return
		}
	}
	err = io.EOF
	return
}

func NewSerialReader(readers []RecordReader) RecordReader {
	return &SerialReader{readers: readers, rIdx: 0}
}
