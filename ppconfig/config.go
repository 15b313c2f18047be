package ppconfig

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hyfi06/ppt4/ptgraph"
	"github.com/hyfi06/ppt4/ptio"
	"gopkg.in/yaml.v3"
)

// Config is the decoded shape of the CLI's --config YAML file. Zero
// values decode to sensible defaults via Default, not via magic
// zero-means-default handling inside the decoded struct itself.
type Config struct {
	DegreeBounds struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	} `yaml:"degreeBounds"`

	ByteSize int `yaml:"byteSize"`

	// CancelTimeout bounds how long search.Enumerate may run before its
	// ShouldStop predicate starts returning true. Zero means no
	// timeout.
	CancelTimeout time.Duration `yaml:"cancelTimeout"`

	// DisableShapePruning mirrors search.Options.DisableShapePruning.
	DisableShapePruning bool `yaml:"disableShapePruning"`
}

// Default returns the configuration search/ptgraph use when no
// --config is given: DegreeBounds [2,5], 8-bit coordinates, no
// timeout, shape pruning enabled.
func Default() Config {
	var c Config
	c.DegreeBounds.Min = 2
	c.DegreeBounds.Max = 5
	c.ByteSize = 8
	return c
}

// Load decodes YAML from r into a Config, filling unset fields from
// Default, then validates the result.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("ppconfig.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("ppconfig.LoadFile: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the decoded fields for internal consistency.
func (c Config) Validate() error {
	if c.DegreeBounds.Min < 0 || c.DegreeBounds.Min > c.DegreeBounds.Max {
		return fmt.Errorf("ppconfig.Validate: min=%d max=%d: %w",
			c.DegreeBounds.Min, c.DegreeBounds.Max, ErrInvalidDegreeBounds)
	}
	if c.ByteSize != 8 && c.ByteSize != 16 {
		return fmt.Errorf("ppconfig.Validate: byteSize=%d: %w", c.ByteSize, ErrInvalidByteSize)
	}
	if c.CancelTimeout < 0 {
		return fmt.Errorf("ppconfig.Validate: cancelTimeout=%s: %w", c.CancelTimeout, ErrInvalidTimeout)
	}
	return nil
}

// DegreeBoundsValue converts the decoded section to ptgraph.DegreeBounds.
func (c Config) DegreeBoundsValue() ptgraph.DegreeBounds {
	return ptgraph.DegreeBounds{Min: c.DegreeBounds.Min, Max: c.DegreeBounds.Max}
}

// ByteMode converts ByteSize to a ptio.ByteMode.
func (c Config) ByteMode() ptio.ByteMode {
	if c.ByteSize == 16 {
		return ptio.Byte16
	}
	return ptio.Byte8
}
