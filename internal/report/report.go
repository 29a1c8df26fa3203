// Package report implements the traversal of the register and system variable
// catalogs and writes the decoded report through a line sink.
package report

import (
	"github.com/retroenv/nextsysinfo/internal/catalog"
	"github.com/retroenv/nextsysinfo/internal/decoder"
	"github.com/retroenv/nextsysinfo/internal/osinfo"
)

// Section titles of the report.
const (
	TitleRegisters = "NEXT REGISTERS"
	TitleVariables = "SYSTEM VARIABLES"
	TitleOS        = "ESXDOS/NEXTOS"
	ToolName       = "SYSINFO"
)

// DefaultColumns is the screen width that is used when the real screen
// width is not known.
const DefaultColumns = 32

// Machine gives access to the state of the machine that the report describes.
type Machine interface {
	decoder.Bus

	// ReadMemory returns size bytes of memory starting at the address.
	ReadMemory(address uint16, size int) []byte
	// CPUSpeed returns the CPU speed register value as it was before the
	// machine was switched to a different speed for reading its state.
	CPUSpeed() uint8
	// OSInfo returns the operating system state, if known.
	OSInfo() (*osinfo.Info, bool)
}

// LineWriter receives the lines of the report.
type LineWriter interface {
	WriteLine(line string) error
}

// Context contains everything a report is created from.
type Context struct {
	Sink      LineWriter
	Machine   Machine
	Columns   int // screen columns, used for the width of section headers
	Version   string
	Registers []catalog.RegisterDescriptor
	Variables []catalog.VariableDescriptor
}

// NewContext returns a report context that uses the full catalogs.
func NewContext(sink LineWriter, machine Machine, columns int, version string) *Context {
	if columns <= 0 {
		columns = DefaultColumns
	}

	return &Context{
		Sink:      sink,
		Machine:   machine,
		Columns:   columns,
		Version:   version,
		Registers: catalog.Registers(),
		Variables: catalog.Variables(),
	}
}
