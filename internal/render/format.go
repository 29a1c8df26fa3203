package render

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxLineLen is the size of the line buffer, including the line break.
const MaxLineLen = 80

// Column widths of the report. They are part of the report file format.
const (
	RegisterNameWidth = 11
	VariableNameWidth = 9
	OSNameWidth       = 14
	OSSubNameWidth    = 12
)

// Line formats a single report line. The text is cut to fit into MaxLineLen
// and the returned line always ends with exactly one line break.
func Line(format string, args ...any) string {
	text := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	return truncate(text, MaxLineLen-1) + "\n"
}

// truncate cuts the text to at most size bytes without splitting a
// multi-byte character.
func truncate(text string, size int) string {
	if len(text) <= size {
		return text
	}
	for size > 0 && !utf8.RuneStart(text[size]) {
		size--
	}
	return text[:size]
}

// RegisterLine returns the primary line of a register.
func RegisterLine(number uint8, name string, value uint8) string {
	return Line("%02X-%-*s = 0x%02X", number, RegisterNameWidth, name, value)
}

// RegisterSub returns a secondary line of a register.
func RegisterSub(name, text string) string {
	return Line(" + %-*s = %s", RegisterNameWidth, name, text)
}

// VariableLine returns the primary line of a system variable.
func VariableLine(address uint16, name, value string) string {
	return Line("%04X-%-*s = %s", address, VariableNameWidth, name, value)
}

// VariableSub returns a secondary line of a system variable.
func VariableSub(name, text string) string {
	return Line("   + %-*s = %s", VariableNameWidth, name, text)
}

// OSLine returns a primary line of the operating system section.
func OSLine(name, text string) string {
	return Line("%-*s = %s", OSNameWidth, name, text)
}

// OSSub returns a secondary line of the operating system section.
func OSSub(name, text string) string {
	return Line("+ %-*s = %s", OSSubNameWidth, name, text)
}

// Header returns the lines of a section header: a rule of underscores spanning
// the screen columns, the title cut to the screen columns and an empty line.
func Header(title string, columns int) []string {
	if columns < 1 {
		columns = 1
	}
	title = truncate(title, columns)
	return []string{
		Line("%s", strings.Repeat("_", columns)),
		Line("%s", title),
		"\n",
	}
}

// OnOff returns on or off depending on the flag.
func OnOff(flag bool) string {
	return Choose(flag, "on", "off")
}

// EnabledDisabled returns enabled or disabled depending on the flag.
func EnabledDisabled(flag bool) string {
	return Choose(flag, "enabled", "disabled")
}

// Choose returns ifSet if the flag is set, otherwise ifClear.
func Choose(flag bool, ifSet, ifClear string) string {
	if flag {
		return ifSet
	}
	return ifClear
}

// Bit returns whether bit n of the value is set.
func Bit(value uint8, n uint) bool {
	return value&(1<<n) != 0
}
