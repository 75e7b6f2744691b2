package fasta

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name   string
		prefix []byte
		want   Compression
	}{
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00}, Gzip},
		{"bzip2", []byte{0x42, 0x5a, 0x68, 0x30}, Bzip2},
		{"zip", []byte{0x50, 0x4b, 0x03, 0x04}, Zip},
		{"text", []byte(">id "), Plain},
		{"nul bytes", []byte{0x00, 0x00, 0x00, 0x00}, Unknown},
		{"short text", []byte("AC"), Plain},
		{"short gzip prefix is not text", []byte{0x1f, 0x8b}, Unknown},
		{"empty", []byte{}, Plain},
		{"long input uses prefix only", append([]byte{0x1f, 0x8b, 0x08}, []byte("junk")...), Gzip},
		{"zip local header only", []byte{0x50, 0x4b, 0x03, 0x00}, Unknown},
	}
	for _, c := range cases {
		if got := Detect(c.prefix); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCompressionString(t *testing.T) {
	names := map[Compression]string{
		Plain:   "plain",
		Gzip:    "gz",
		Bzip2:   "bz2",
		Zip:     "zip",
		Unknown: "unknown",
	}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("got %q, want %q", c.String(), want)
		}
	}
}

func TestDetectFile(t *testing.T) {
	cases := map[string]Compression{
		"test.fasta":     Plain,
		"test.fasta.gz":  Gzip,
		"test.fasta.bz2": Bzip2,
		"test.fasta.zip": Zip,
	}
	for name, want := range cases {
		got, err := DetectFile(filepath.Join("testdata", name))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}
}

func TestDetectFileIgnoresExtension(t *testing.T) {
	// A gzip body behind a misleading name still classifies as gzip.
	dir, err := ioutil.TempDir("", "sniff")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "misleading.fasta")
	data, err := ioutil.ReadFile(filepath.Join("testdata", "test.fasta.gz"))
	if err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(name, data, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := DetectFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if got != Gzip {
		t.Errorf("got %v, want Gzip", got)
	}
}

func TestDetectFileMissing(t *testing.T) {
	_, err := DetectFile(filepath.Join("testdata", "no-such-file"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestDetectFileEmpty(t *testing.T) {
	dir, err := ioutil.TempDir("", "sniff")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "empty.fasta")
	if err := ioutil.WriteFile(name, nil, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := DetectFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if got != Plain {
		t.Errorf("empty file should classify plain, got %v", got)
	}
}
