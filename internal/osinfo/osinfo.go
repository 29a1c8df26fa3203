// Package osinfo renders the operating system state of a machine as report lines.
package osinfo

import (
	"fmt"
	"time"

	"github.com/retroenv/nextsysinfo/internal/render"
)

// Special DOS version values.
const (
	DOSVersionESXDOS    = 0xFFFF // running on esxDOS instead of NextZXOS
	DOSVersionNextOS48K = 0x0000 // NextZXOS in 48K mode
)

// Info is the operating system state of a machine. Optional values that the
// machine could not provide are nil and their lines are skipped.
type Info struct {
	DOSVersion   uint16     `yaml:"dos_version"`
	DateTime     *time.Time `yaml:"date_time,omitempty"`
	DST          bool       `yaml:"dst,omitempty"`
	MemFree      uint32     `yaml:"mem_free"`
	Screen       *Screen    `yaml:"screen,omitempty"`
	WorkDir      *string    `yaml:"cwd,omitempty"`
	DefaultDrive uint8      `yaml:"default_drive"`
	Drives       string     `yaml:"drives"`
	Env          Env        `yaml:"env"`
}

// Screen is the screen mode of the operating system.
type Screen struct {
	Layer   uint8  `yaml:"layer"`
	Submode uint8  `yaml:"submode"`
	Ink     uint8  `yaml:"ink"`
	Paper   uint8  `yaml:"paper"`
	Flags   uint8  `yaml:"flags"`
	Width   uint16 `yaml:"width"`
	Cols    uint8  `yaml:"cols"`
	Rows    uint8  `yaml:"rows"`
}

// Env contains the operating system environment variables of the report.
type Env struct {
	Path string `yaml:"path"`
	Tmp  string `yaml:"tmp"`
}

// Mode returns the name of the operating system mode that the DOS version
// indicates.
func (i *Info) Mode() string {
	switch i.DOSVersion {
	case DOSVersionESXDOS:
		return "esxDOS"
	case DOSVersionNextOS48K:
		return "48K"
	default:
		return "128K/NEXT"
	}
}

// DriveLetter returns the letter of the default drive.
func (i *Info) DriveLetter() byte {
	return 'A' + (i.DefaultDrive >> 3)
}

// Lines returns the report lines of the operating system state.
func Lines(info *Info) []string {
	if info == nil {
		return nil
	}

	lines := []string{
		render.OSLine("DOSVERSION", fmt.Sprintf("%d.%02d", info.DOSVersion>>8, info.DOSVersion&0xFF)),
		render.OSSub("MODE", info.Mode()),
	}

	if t := info.DateTime; t != nil {
		dst := ""
		if info.DST {
			dst = " DST"
		}
		lines = append(lines, render.OSLine("DATETIME", fmt.Sprintf("%02d/%02d/%04d %02d:%02d:%02d%s",
			int(t.Month()), t.Day(), t.Year(), t.Hour(), t.Minute(), t.Second(), dst)))
	}

	lines = append(lines, render.OSLine("MEMFREE", fmt.Sprintf("%d", info.MemFree)))

	if s := info.Screen; s != nil {
		lines = append(lines,
			render.OSLine("SCREENMODE", fmt.Sprintf("%d:%d", s.Layer, s.Submode)),
			render.OSSub("INK|ATTR", fmt.Sprintf("%d", s.Ink)),
			render.OSSub("PAPER", fmt.Sprintf("%d", s.Paper)),
			render.OSSub("FLAGS", fmt.Sprintf("0x%02X", s.Flags)),
			render.OSSub("WIDTH", fmt.Sprintf("%d", s.Width)),
			render.OSSub("COLS", fmt.Sprintf("%d", s.Cols)),
			render.OSSub("ROWS", fmt.Sprintf("%d", s.Rows)),
		)
	}

	if info.WorkDir != nil {
		lines = append(lines, render.OSLine("CURRENTWORKDIR", *info.WorkDir))
	}

	return append(lines,
		render.OSLine("DEFAULTDRIVE", fmt.Sprintf("0x%02X", info.DefaultDrive)),
		render.OSSub("LETTER", string(info.DriveLetter())),
		render.OSSub("INDEX", fmt.Sprintf("%d", info.DefaultDrive&0x07)),
		render.OSLine("AVAIL.DRIVES", info.Drives),
		render.OSLine("ENV.PATH", `"`+info.Env.Path+`"`),
		render.OSLine("ENV.TMP", `"`+info.Env.Tmp+`"`),
	)
}
