// Package config holds the run parameters of a benchmark invocation.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Duration is a time.Duration that TOML files spell as a string like "1s"
// or "250ms".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = Duration(v)

	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config is the full set of run parameters. A Config is assembled once
// (defaults, optionally a TOML file, then command-line overrides) and is
// read-only for the duration of the run.
type Config struct {
	// NumFiles is the number of fixture files to benchmark against.
	NumFiles int `toml:"num_files" json:"numFiles"`

	// FileSize is the size of each fixture file in bytes.
	FileSize int `toml:"file_size" json:"fileSize"`

	// WaitTime is the settle time between file creation and measurement.
	WaitTime Duration `toml:"wait_time" json:"waitTime"`

	// NumThreads is the requested worker count; the orchestrator clamps it
	// against the operation count.
	NumThreads int `toml:"num_threads" json:"numThreads"`

	// Seed is the base seed; worker i draws from a stream seeded Seed+i.
	Seed uint64 `toml:"seed" json:"seed"`

	// BlockSize is the size of each read in bytes.
	BlockSize int `toml:"block_size" json:"blockSize"`

	// NumOperations is the total read budget split across all workers.
	NumOperations int `toml:"num_operations" json:"numOperations"`

	// UseMmap selects the memory-mapped executor instead of descriptor I/O.
	UseMmap bool `toml:"use_mmap" json:"useMmap"`

	// FilePrefix names the fixture files: <prefix>_<index>.dat.
	FilePrefix string `toml:"file_prefix" json:"filePrefix"`

	// Dir is the directory the fixture files live in.
	Dir string `toml:"dir" json:"dir"`

	// DropCache asks the kernel to drop cached pages of the fixture files
	// before measuring. Best effort, linux only.
	DropCache bool `toml:"drop_cache" json:"dropCache"`

	// KeepFiles skips fixture removal after the run.
	KeepFiles bool `toml:"keep_files" json:"keepFiles"`
}

// Default returns the defaults the original tool shipped with.
func Default() *Config {
	return &Config{
		NumFiles:      10,
		FileSize:      1024 * 1024,
		WaitTime:      Duration(time.Second),
		NumThreads:    4,
		Seed:          42,
		BlockSize:     4096,
		NumOperations: 1000,
		UseMmap:       false,
		FilePrefix:    "testfile",
		Dir:           ".",
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %v", path)
	}

	return cfg, nil
}

// Validate rejects configurations no run can be built from. A block size
// larger than the file size is valid; it simply yields zero reads.
func (c *Config) Validate() error {
	if c.NumFiles <= 0 {
		return errors.Errorf("num_files must be positive, got %v", c.NumFiles)
	}

	if c.FileSize <= 0 {
		return errors.Errorf("file_size must be positive, got %v", c.FileSize)
	}

	if c.BlockSize <= 0 {
		return errors.Errorf("block_size must be positive, got %v", c.BlockSize)
	}

	if c.NumOperations < 0 {
		return errors.Errorf("num_operations must not be negative, got %v", c.NumOperations)
	}

	if c.NumThreads < 0 {
		return errors.Errorf("num_threads must not be negative, got %v", c.NumThreads)
	}

	if c.WaitTime < 0 {
		return errors.Errorf("wait_time must not be negative, got %v", c.WaitTime)
	}

	if c.FilePrefix == "" {
		return errors.New("file_prefix must not be empty")
	}

	return nil
}
