package fasta

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/golang/snappy"
	"github.com/tinylib/msgp/msgp"
)

// Record archives are a read-only binary sidecar format for parsed
// records: a snappy-framed stream of msgp-encoded maps with "id",
// "description" and "sequence" keys. They are how record sets are stored
// in S3.

// MarshalRecord encodes a record as a msgp map.
func MarshalRecord(r *Record) ([]byte, error) {
	m := map[string]interface{}{
		"id":          r.ID,
		"description": r.Desc,
		"sequence":    r.Seq,
	}
	return msgp.AppendMapStrIntf([]byte{}, m)
}

// UnmarshalRecord decodes a single msgp-encoded record.
func UnmarshalRecord(data []byte) (*Record, error) {
	m, _, err := msgp.ReadMapStrIntfBytes(data, nil)
	if err != nil {
		return nil, err
	}
	return recordFromMap(m)
}

func recordFromMap(m map[string]interface{}) (*Record, error) {
	id, ok := m["id"].(string)
	if !ok {
		return nil, fmt.Errorf("archive record missing id: %v", m)
	}
	rec := &Record{ID: id}
	if v, ok := m["description"].(string); ok {
		rec.Desc = v
	}
	if v, ok := m["sequence"].(string); ok {
		rec.Seq = v
	}
	return rec, nil
}

// An ArchiveReader understands how to translate our archive data store
// format into individual records.
type ArchiveReader struct {
	mr *msgp.Reader
	c  io.Closer
}

func (r *ArchiveReader) ReadRecord() (*Record, error) {
	m := make(map[string]interface{})
	if err := r.mr.ReadMapStrIntf(m); err != nil {
		// EOF or corrupt data; either way the source is done with.
		r.Close()
		return nil, err
	}
	return recordFromMap(m)
}

// Close releases the underlying source, if it has one to release.
func (r *ArchiveReader) Close() error {
	if r.c == nil {
		return nil
	}
	c := r.c
	r.c = nil
	return c.Close()
}

// NewArchiveReader reads records from a snappy-framed msgp stream.
func NewArchiveReader(ir io.Reader) *ArchiveReader {
	sr := snappy.NewReader(ir)
	ar := &ArchiveReader{mr: msgp.NewReader(sr)}
	if c, ok := ir.(io.Closer); ok {
		ar.c = c
	}
	return ar
}

// A StoreArchive is one archive object in an S3 bucket. It implements
// RecordReader, opening the object lazily on first read.
type StoreArchive struct {
	Bucket string
	Key    string

	s3Svc S3Service
	rdr   *ArchiveReader
}

func NewStoreArchive(bucketName, keyName string, svc S3Service) StoreArchive {
	return StoreArchive{Bucket: bucketName, Key: keyName, s3Svc: svc}
}

// Open fetches the object and returns a reader over its records.
func (sa *StoreArchive) Open() (*ArchiveReader, error) {
	out, err := sa.s3Svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(sa.Bucket),
		Key:    aws.String(sa.Key),
	})
	if err != nil {
		return nil, err
	}
	return NewArchiveReader(out.Body), nil
}

func (sa *StoreArchive) ReadRecord() (*Record, error) {
	if sa.rdr == nil {
		rdr, err := sa.Open()
		if err != nil {
			return nil, err
		}
		sa.rdr = rdr
	}
	return sa.rdr.ReadRecord()
}

// Sortable list of store archives.
//
// Objects come out of S3 lexicographically ordered already, but we want to
// be sure the read order is deterministic regardless of listing quirks.
type StoreArchiveList []StoreArchive

func (l StoreArchiveList) Len() int {
	return len(l)
}

func (l StoreArchiveList) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}

func (l StoreArchiveList) Less(i, j int) bool {
	return l[i].Key < l[j].Key
}

// ListArchives returns the archives under prefix in bucket, sorted by key.
func ListArchives(svc S3Service, bucketName, prefix string) (StoreArchiveList, error) {
	resp, err := svc.ListObjects(&s3.ListObjectsInput{
		Bucket: aws.String(bucketName),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return nil, err
	}

	archives := make(StoreArchiveList, 0, len(resp.Contents))
	for _, o := range resp.Contents {
		archives = append(archives, NewStoreArchive(bucketName, *o.Key, svc))
	}

	// TODO: Would be nice to handle this, limit is 1000
	if resp.IsTruncated != nil && *resp.IsTruncated {
		log.Println("WARNING: truncated s3 response")
	}

	sort.Sort(archives)
	return archives, nil
}

// NewStoreReader reads every archive under prefix in bucket, in key order,
// as one serial record stream.
func NewStoreReader(svc S3Service, bucketName, prefix string) (RecordReader, error) {
	archives, err := ListArchives(svc, bucketName, prefix)
	if err != nil {
		return nil, err
	}

	readers := make([]RecordReader, 0, len(archives))
	for i := range archives {
		readers = append(readers, &archives[i])
	}
	return NewSerialReader(readers), nil
}
