// Package fileprocessor handles the log file lifecycle and runs the report
// for the program options.
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/nextsysinfo/internal/console"
	"github.com/retroenv/nextsysinfo/internal/options"
	"github.com/retroenv/nextsysinfo/internal/pipeline"
	"github.com/retroenv/nextsysinfo/internal/report"
	"github.com/retroenv/retrogolib/log"
)

// File name prefix of log files that are created in a directory.
const logFilePrefix = "sysinfo"

// maxFileIndex limits the search for a free log file name in a directory.
const maxFileIndex = 0xFFFF

var (
	// ErrFileExists is returned when the log file exists and overwriting is not forced.
	ErrFileExists = errors.New("log file exists, use -f to overwrite")
	// ErrNoFreeName is returned when a directory contains no free log file name.
	ErrNoFreeName = errors.New("no free log file name in directory")
)

// ProcessFile handles the complete report workflow: the machine state is
// loaded, the log file is created and the report is written.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, version string) error {
	p := pipeline.New(logger)

	var file *os.File
	defer func() {
		if file != nil {
			_ = file.Close()
		}
	}()

	openFile := func() (io.Writer, error) {
		f, err := createWriter(opts)
		if err != nil || f == nil {
			return nil, err
		}
		file = f
		logger.Debug("Writing log file", log.String("file", f.Name()))
		return f, nil
	}

	columns := opts.Columns
	if columns <= 0 {
		columns = console.Columns(os.Stdout, report.DefaultColumns)
	}

	if err := p.Execute(ctx, opts, os.Stdout, openFile, columns, version); err != nil {
		return err
	}

	if file != nil {
		f := file
		file = nil
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing log file: %w", err)
		}
	}
	return nil
}

// ResolveOutput returns the name of the log file to write. A directory results
// in the first free file name sysinfo-N.txt in it. An existing file is only
// accepted if force is set.
func ResolveOutput(path string, force bool) (string, error) {
	return resolveOutput(path, force, maxFileIndex)
}

func resolveOutput(path string, force bool, limit int) (string, error) {
	path = NormalizePath(path)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return path, nil
	case err != nil:
		return "", fmt.Errorf("checking log file %s: %w", path, err)
	}

	if !info.IsDir() {
		if !force {
			return "", fmt.Errorf("%s: %w", path, ErrFileExists)
		}
		return path, nil
	}

	for i := range limit {
		name := filepath.Join(path, fmt.Sprintf("%s-%d.txt", logFilePrefix, i))
		_, err := os.Stat(name)
		if errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking log file %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("%s: %w", path, ErrNoFreeName)
}

// NormalizePath converts the separators of a path to the separator of the
// host and cleans it.
func NormalizePath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	return filepath.Clean(filepath.FromSlash(path))
}

// createWriter creates the log file, it returns nil if no log file is requested.
func createWriter(opts options.Program) (*os.File, error) {
	if opts.Output == "" {
		return nil, nil
	}

	name, err := ResolveOutput(opts.Output, opts.Force)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", name, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("nextsysinfo", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
