// Package detector handles machine source detection.
package detector

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/nextsysinfo/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// ErrNoSource is returned when no machine source is configured.
var ErrNoSource = errors.New("no machine source given, use -i snapshot or -bridge address")

// Detector handles machine source detection from options and file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new source detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the machine source from options or auto-detection.
// An explicitly given source has to be complete. Otherwise a bridge address
// selects the bridge and a snapshot file the snapshot source.
func (d *Detector) Detect(opts options.Program) (string, error) {
	source := strings.ToLower(opts.Source)

	switch source {
	case options.SourceSnapshot:
		if opts.Snapshot == "" {
			return "", fmt.Errorf("snapshot source selected: %w", ErrNoSource)
		}
		return source, nil

	case options.SourceBridge:
		if opts.Address == "" {
			return "", fmt.Errorf("bridge source selected: %w", ErrNoSource)
		}
		return source, nil

	case "":

	default:
		return "", fmt.Errorf("unsupported machine source '%s'", opts.Source)
	}

	switch {
	case opts.Address != "":
		source = options.SourceBridge
	case d.isSnapshotFile(opts.Snapshot):
		source = options.SourceSnapshot
	case opts.Snapshot != "":
		d.logger.Warn("Unknown snapshot file extension, reading as YAML",
			log.String("file", opts.Snapshot))
		source = options.SourceSnapshot
	default:
		return "", ErrNoSource
	}

	d.logger.Debug("Auto-detected machine source",
		log.String("source", source),
		log.String("file", opts.Snapshot))
	return source, nil
}

// isSnapshotFile determines whether the file is a snapshot based on its extension.
func (d *Detector) isSnapshotFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
