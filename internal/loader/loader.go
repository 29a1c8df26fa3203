// Package loader handles machine snapshot file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/nextsysinfo/internal/snapshot"
)

// Loader handles loading machine snapshot files from disk.
type Loader struct{}

// New creates a new snapshot loader.
func New() *Loader {
	return &Loader{}
}

// Load loads and parses a machine snapshot file.
func (l *Loader) Load(path string) (*snapshot.Machine, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	m, err := snapshot.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", path, err)
	}
	return m, nil
}

// Save writes the machine snapshot to a file, an existing file is replaced.
func (l *Loader) Save(path string, m *snapshot.Machine) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}

	if err := snapshot.Encode(file, m); err != nil {
		_ = file.Close()
		return fmt.Errorf("saving snapshot %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	return nil
}
