package decoder

import (
	"fmt"

	"github.com/retroenv/nextsysinfo/internal/catalog"
	"github.com/retroenv/nextsysinfo/internal/render"
)

// System variable addresses with a known bit field layout.
const (
	varMode   = 0x5C41
	varBordCR = 0x5C48
	varFlags2 = 0x5C6A
	varEchoE  = 0x5C82
	varSPosn  = 0x5C88
	varSPosnL = 0x5C8A
	varAttrP  = 0x5C8D
	varAttrT  = 0x5C8F
)

var cursorModes = labels{
	0x00: "C|K|L",
	0x01: "E",
	0x02: "G",
	0x03: "",
}

// Variables decodes the values of system variables.
type Variables struct{}

// NewVariables returns a system variable decoder.
func NewVariables() *Variables {
	return &Variables{}
}

// Render returns the primary value text of a system variable. Multi byte
// values are stored little endian.
func (v *Variables) Render(desc catalog.VariableDescriptor, raw []byte) string {
	switch desc.Size {
	case 0:
		return "NIL"

	case 1:
		return fmt.Sprintf("0x%02X", byteAt(raw, 0))

	case 2:
		value := uint16(byteAt(raw, 0)) | uint16(byteAt(raw, 1))<<8
		if !desc.IsPointer() {
			return fmt.Sprintf("0x%04X", value)
		}
		if value == 0 {
			return "(nil)"
		}
		return fmt.Sprintf("(%04X)", value)

	case 3:
		value := uint32(byteAt(raw, 0)) | uint32(byteAt(raw, 1))<<8 | uint32(byteAt(raw, 2))<<16
		return fmt.Sprintf("0x%06X", value)

	default:
		s, _ := render.MemToHex(raw, render.MaxLineLen, 1)
		return s
	}
}

// Decode returns the secondary lines of the system variable at the given
// address. Variables without a known layout return no lines.
func (v *Variables) Decode(address uint16, raw []byte) []string {
	value := byteAt(raw, 0)

	switch address {
	case varMode:
		return []string{render.VariableSub("CURSOR", cursorModes.lookup(value&0x03))}

	case varBordCR:
		return []string{render.VariableSub("BORDER", fmt.Sprintf("%d", (value>>3)&0x07))}

	case varFlags2:
		return []string{render.VariableSub("CAPS", render.OnOff(render.Bit(value, 3)))}

	case varAttrP, varAttrT:
		return []string{
			render.VariableSub("FLASH", render.Choose(render.Bit(value, 7), "1", "0")),
			render.VariableSub("BRIGHT", render.Choose(render.Bit(value, 6), "1", "0")),
			render.VariableSub("PAPER", fmt.Sprintf("%d", (value>>3)&0x07)),
			render.VariableSub("INK", fmt.Sprintf("%d", value&0x07)),
		}

	case varEchoE, varSPosn, varSPosnL:
		return []string{
			render.VariableSub("COL", fmt.Sprintf("%d", value)),
			render.VariableSub("ROW", fmt.Sprintf("%d", byteAt(raw, 1))),
		}

	default:
		return nil
	}
}
