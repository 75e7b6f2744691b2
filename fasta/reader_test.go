package fasta

import (
	"io"
	"strings"
	"testing"
)

func TestReadRecordSimple(t *testing.T) {
	r := NewReader(strings.NewReader(">ID DESC\nSEQLINE1\nSEQLINE2"))

	rec, err := r.ReadRecord()
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "ID" || rec.Desc != "DESC" || rec.Seq != "SEQLINE1SEQLINE2" {
		t.Fatalf("unexpected record: %+v", rec)
	}

	if _, err := r.ReadRecord(); err != io.EOF {
		t.Error("Should EOF")
	}
}

func TestReadRecordMulti(t *testing.T) {
	input := ">seq1\nATGC\n>seq2 desc\nGGTT\n"
	recs, err := ReadAll(NewReader(strings.NewReader(input)))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "seq1" || recs[0].Seq != "ATGC" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].ID != "seq2" || recs[1].Desc != "desc" || recs[1].Seq != "GGTT" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestReadRecordEmptyInput(t *testing.T) {
	recs, err := ReadAll(NewReader(strings.NewReader("")))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Errorf("expected 0 records, got %d", len(recs))
	}
}

func TestReadRecordMarkerOnly(t *testing.T) {
	rec, err := NewReader(strings.NewReader(">\nACGT\n")).ReadRecord()
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "" || rec.Desc != "" || rec.Seq != "ACGT" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestReadRecordSpaceAfterMarker(t *testing.T) {
	rec, err := NewReader(strings.NewReader("> id desc\nAC\n")).ReadRecord()
	if err != nil {
		t.Fatal(err)
	}
	// the id token must directly follow the marker
	if rec.ID != "" || rec.Desc != "id desc" || rec.Seq != "AC" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestReadRecordEmptySequence(t *testing.T) {
	recs, err := ReadAll(NewReader(strings.NewReader(">a\n>b\nAC\n>c\n")))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].ID != "a" || recs[0].Len() != 0 {
		t.Errorf("zero-length leading record dropped: %+v", recs[0])
	}
	if recs[1].ID != "b" || recs[1].Seq != "AC" {
		t.Errorf("unexpected record: %+v", recs[1])
	}
	if recs[2].ID != "c" || recs[2].Len() != 0 {
		t.Errorf("zero-length trailing record dropped: %+v", recs[2])
	}
}

func TestReadRecordCRLF(t *testing.T) {
	rec, err := NewReader(strings.NewReader(">id desc\r\nACGT\r\nTTaa*\r\n")).ReadRecord()
	if err != nil {
		t.Fatal(err)
	}
	if rec.Seq != "ACGTTTaa*" {
		t.Errorf("case and terminator chars must survive, CR must not: %q", rec.Seq)
	}
	if rec.Desc != "desc" {
		t.Errorf("unexpected description: %q", rec.Desc)
	}
}

func TestReadRecordIgnoresLeadingJunk(t *testing.T) {
	recs, err := ReadAll(NewReader(strings.NewReader("no defline yet\n>a\nAC\n")))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ID != "a" || recs[0].Seq != "AC" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := NewRecord("NP_055309.2", "MRELEAKATGGGTTTACGT", "TNRC6A isoform 1")

	rec, err := NewReader(strings.NewReader(orig.Format(0))).ReadRecord()
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != orig.ID || rec.Desc != orig.Desc || rec.Seq != orig.Seq {
		t.Fatalf("round trip mismatch: %+v vs %+v", rec, orig)
	}
}

func TestRoundTripWrapped(t *testing.T) {
	orig := NewRecord("id", strings.Repeat("MRELEAKAT", 30), "")

	rec, err := NewReader(strings.NewReader(orig.Format(70))).ReadRecord()
	if err != nil {
		t.Fatal(err)
	}
	if rec.Seq != orig.Seq {
		t.Fatal("wrapped round trip mismatch")
	}
}
