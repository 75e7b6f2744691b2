package fasta

import (
	"database/sql"
	"fmt"
	"io"
)

// A RecordStore persists a uniqueness-checked record collection into a
// reasonably compliant SQL database. On first use it will attempt to
// create the table to store records in. Records are unique by id.
type RecordStore struct {
	db *sql.DB
}

const createTable = `
CREATE TABLE IF NOT EXISTS fasta_record (
	id VARCHAR(255),
	description TEXT,
	sequence TEXT,
	PRIMARY KEY (id))
`

func initDB(db *sql.DB) (err error) {
	_, err = db.Exec(createTable)
	return
}

func NewRecordStore(db *sql.DB) (*RecordStore, error) {
	err := initDB(db)
	if err != nil {
		return nil, fmt.Errorf("Failed to initialize db: %v", err)
	}

	return &RecordStore{db: db}, nil
}

// StoreAll drains rr into the table inside a single transaction. A
// repeated id, whether within the stream or against previously stored
// rows, rolls everything back and fails with a DuplicateKeyError.
func (s *RecordStore) StoreAll(rr RecordReader) (n int, err error) {
	txn, err := s.db.Begin()
	if err != nil {
		return 0, err
	}

	for {
		rec, rerr := rr.ReadRecord()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			txn.Rollback()
			return 0, rerr
		}

		var one int
		qerr := txn.QueryRow(
			"SELECT 1 FROM fasta_record WHERE id=$1", rec.ID).Scan(&one)
		if qerr == nil {
			txn.Rollback()
			return 0, &DuplicateKeyError{ID: rec.ID}
		}
		if qerr != sql.ErrNoRows {
			txn.Rollback()
			return 0, qerr
		}

		_, xerr := txn.Exec(
			"INSERT INTO fasta_record VALUES ($1, $2, $3)",
			rec.ID, rec.Desc, rec.Seq)
		if xerr != nil {
			txn.Rollback()
			return 0, xerr
		}
		n += 1
	}

	err = txn.Commit()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Get loads one record by id. A missing id fails with ErrNoRecords.
func (s *RecordStore) Get(id string) (*Record, error) {
	rec := &Record{}
	err := s.db.QueryRow(
		"SELECT id, description, sequence FROM fasta_record WHERE id=$1",
		id).Scan(&rec.ID, &rec.Desc, &rec.Seq)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s: %w", id, ErrNoRecords)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Count returns the number of stored records.
func (s *RecordStore) Count() (n int, err error) {
	err = s.db.QueryRow("SELECT COUNT(*) FROM fasta_record").Scan(&n)
	return
}
