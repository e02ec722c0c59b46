// Package config loads run settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jcorbin/gobf/internal/tape"
)

// Config holds settings for compiling and running one program.
type Config struct {
	TapeSize  int      `toml:"tape-size"`
	StepLimit uint64   `toml:"step-limit"`
	Timeout   Duration `toml:"timeout"`
	Trace     bool     `toml:"trace"`
	TraceFile string   `toml:"trace-file"`
	Tee       string   `toml:"tee"`
}

// Default returns the settings used absent any file.
func Default() Config {
	return Config{TapeSize: tape.DefaultSize}
}

// Duration is a time.Duration written as a string like "1.5s" in TOML.
type Duration struct{ time.Duration }

// UnmarshalText parses a time.ParseDuration string.
func (d *Duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats d like time.Duration.String.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads the file at path over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults, rejecting unknown keys.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("unknown setting %q", undec[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks for settings that cannot be run.
func (cfg Config) Validate() error {
	if err := tape.CheckSize(cfg.TapeSize); err != nil {
		return err
	}
	if cfg.Timeout.Duration < 0 {
		return fmt.Errorf("invalid negative timeout %v", cfg.Timeout.Duration)
	}
	return nil
}
