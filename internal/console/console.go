// Package console determines the properties of the terminal that the report
// is shown on.
package console

import (
	"os"
)

// Columns returns the column count of the terminal connected to the file.
// The fallback is returned if the file is not a terminal or its size is unknown.
func Columns(f *os.File, fallback int) int {
	if f == nil {
		return fallback
	}

	cols, ok := terminalColumns(f.Fd())
	if !ok || cols <= 0 {
		return fallback
	}
	return cols
}
