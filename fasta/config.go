package fasta

import (
	"fmt"
	"io"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// SourceConfig names one FASTA source: either a local path, or a bucket
// and key prefix for record archives in S3. Wrap overrides the output
// width; nil means DefaultWrap and an explicit 0 means unwrapped.
type SourceConfig struct {
	Path       string `yaml:"path"`
	Bucket     string `yaml:"bucket"`
	Prefix     string `yaml:"prefix"`
	RegionName string `yaml:"region"`
	Wrap       *int   `yaml:"wrap"`
}

// WrapWidth resolves the configured wrap width.
func (sc *SourceConfig) WrapWidth() int {
	if sc.Wrap == nil {
		return DefaultWrap
	}
	return *sc.Wrap
}

type Config struct {
	Sources map[string]SourceConfig
}

func (c *Config) ConfigForName(n string) (sc *SourceConfig, err error) {
	if scv, ok := c.Sources[n]; ok {
		return &scv, nil
	}
	return nil, fmt.Errorf("Failed to find source %q", n)
}

func NewConfigFromFile(r io.Reader) (c *Config, err error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	c = &Config{}

	err = yaml.Unmarshal(data, &c.Sources)
	if err != nil {
		return nil, err
	}

	return
}
