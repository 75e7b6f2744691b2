package fasta

import (
	"bytes"
	"testing"
)

var testConfig = `
proteins:
  path: /data/proteins.fasta.gz
  wrap: 0
archived:
  bucket: my-archive-bucket
  prefix: proteins/
  region: us-west-1
`

func TestNewConfigFromFile(t *testing.T) {
	r := bytes.NewBufferString(testConfig)

	c, err := NewConfigFromFile(r)
	if err != nil {
		t.Fatal(err)
	}

	sc, err := c.ConfigForName("proteins")
	if err != nil {
		t.Errorf("Failed to find source")
		return
	}

	if sc.Path != "/data/proteins.fasta.gz" {
		t.Errorf("Path mismatch")
	}
	if sc.WrapWidth() != 0 {
		t.Errorf("explicit wrap 0 should mean unwrapped")
	}

	sc, err = c.ConfigForName("archived")
	if err != nil {
		t.Errorf("Failed to find source")
		return
	}

	if sc.Bucket != "my-archive-bucket" {
		t.Errorf("Bucket mismatch")
	}
	if sc.Prefix != "proteins/" {
		t.Errorf("Prefix mismatch")
	}
	if sc.RegionName != "us-west-1" {
		t.Errorf("RegionName mismatch")
	}
	if sc.WrapWidth() != DefaultWrap {
		t.Errorf("unset wrap should default to %d", DefaultWrap)
	}
}

func TestMissingSource(t *testing.T) {
	c := Config{}

	_, err := c.ConfigForName("foo")
	if err == nil {
		t.Errorf("Missing error")
	}
}
