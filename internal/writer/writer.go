// Package writer implements the report line sink that duplicates every line
// to the screen and an optional log file.
package writer

import (
	"errors"
	"fmt"
	"io"
)

// ShortWriteError is returned when the log file accepted fewer bytes than
// the line contains.
type ShortWriteError struct {
	Written  int
	Expected int
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("short write to log file: %d of %d bytes written", e.Written, e.Expected)
}

// Sink writes report lines to the screen and the log file. Errors returned by
// WriteLine are soft, the sink stays usable for the following lines.
type Sink struct {
	screen io.Writer
	file   io.Writer
	quiet  bool

	lines    int
	failures int
}

// Options of the sink.
type Options struct {
	Quiet bool // suppress the screen output
}

// New creates a new sink. The file writer is optional and can be nil.
func New(screen, file io.Writer, options Options) *Sink {
	return &Sink{
		screen: screen,
		file:   file,
		quiet:  options.Quiet,
	}
}

// WriteLine writes a single line. Screen output errors are ignored, a failed
// or short write to the log file is returned.
func (s *Sink) WriteLine(line string) error {
	s.lines++

	if !s.quiet && s.screen != nil {
		_, _ = io.WriteString(s.screen, line)
	}

	if s.file == nil {
		return nil
	}

	n, err := io.WriteString(s.file, line)
	switch {
	case n != len(line) && (err == nil || errors.Is(err, io.ErrShortWrite)):
		s.failures++
		return &ShortWriteError{Written: n, Expected: len(line)}
	case err != nil:
		s.failures++
		return fmt.Errorf("writing line to log file: %w", err)
	default:
		return nil
	}
}

// Lines returns the number of lines written.
func (s *Sink) Lines() int {
	return s.lines
}

// Failures returns the number of lines that could not be written to the log file.
func (s *Sink) Failures() int {
	return s.failures
}
