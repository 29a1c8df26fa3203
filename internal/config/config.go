// Package config handles application configuration and setup
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"
	"gopkg.in/yaml.v3"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Settings are option defaults read from a YAML settings file. Unset values
// keep the built in defaults and explicit command line flags always win.
type Settings struct {
	Topics   string  `yaml:"topics"`
	Output   string  `yaml:"output"`
	Snapshot string  `yaml:"snapshot"`
	Source   string  `yaml:"source"`
	Force    *bool   `yaml:"force"`
	Quiet    *bool   `yaml:"quiet"`
	Debug    *bool   `yaml:"debug"`
	Columns  int     `yaml:"columns"`
	Bridge   *Bridge `yaml:"bridge"`
}

// Bridge contains the settings of the Modbus TCP bridge.
type Bridge struct {
	Address string        `yaml:"address"`
	UnitID  *uint8        `yaml:"unit"`
	Timeout time.Duration `yaml:"timeout"`
}

// Load reads a YAML settings file.
func Load(path string) (*Settings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening settings file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	settings, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("loading settings file %s: %w", path, err)
	}
	return settings, nil
}

// Decode reads YAML settings, unknown keys are rejected.
func Decode(r io.Reader) (*Settings, error) {
	var settings Settings

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &settings, nil
}
