// Package options contains the program options.
package options

import (
	"time"
)

// Machine source names.
const (
	SourceSnapshot = "snapshot"
	SourceBridge   = "bridge"
)

// Default option values.
const (
	DefaultUnitID  = 1
	DefaultTimeout = 5 * time.Second
)

// Parameters contains file path options.
type Parameters struct {
	Output   string `flag:"" usage:"log file or directory (directory: sysinfo-N.txt)"`
	Snapshot string `flag:"i" usage:"machine snapshot file (.yaml/.yml)"`
	Save     string `flag:"save" usage:"save the captured machine snapshot as YAML"`
	Config   string `flag:"c" usage:"YAML settings file"`
}

// Flags contains behavior options.
type Flags struct {
	Topics  string `flag:"t" usage:"topics to show: r[eg] v[ar] o[s] (default: all)"`
	Source  string `flag:"s" usage:"machine source: snapshot, bridge (default: auto-detect)"`
	Force   bool   `flag:"f" usage:"force overwrite of an existing log file"`
	Quiet   bool   `flag:"q" usage:"no screen output"`
	Version bool   `flag:"v" usage:"print version info"`
	Debug   bool   `flag:"debug" usage:"enable debug logging"`
	Columns int    `flag:"cols" usage:"screen columns for section headers"`
}

// Bridge contains the options of the Modbus TCP bridge.
type Bridge struct {
	Address string        `flag:"bridge" usage:"Modbus TCP bridge endpoint host:port"`
	UnitID  uint8         `flag:"unit" usage:"Modbus unit id" default:"1"`
	Timeout time.Duration `flag:"timeout" usage:"bridge timeout" default:"5s"`
}

// Program options of the tool.
type Program struct {
	Parameters
	Flags
	Bridge
}
