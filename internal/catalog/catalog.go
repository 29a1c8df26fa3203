// Package catalog contains the static tables of Next registers and system
// variables that are included in a report.
package catalog

// FlagPointer marks a system variable whose value is an address.
const FlagPointer = 1 << 7

// Register numbers that decoders refer to by number.
const (
	RegMachineID   = 0x00
	RegCoreVersion = 0x01
	RegCPUSpeed    = 0x07
	RegCoreVerSub  = 0x0E
	RegMMUSlot0    = 0x50
	RegMMUSlot7    = 0x57
)

// RegisterDescriptor describes a single Next register of the report.
type RegisterDescriptor struct {
	Number  uint8
	Visible bool   // hidden registers are neither read nor decoded
	Name    string // display name, padded to the register name column
}

// VariableDescriptor describes a single system variable of the report.
type VariableDescriptor struct {
	Address uint16
	Size    uint8 // size of the value in bytes, 0 for a placeholder without value
	Flags   uint8
	Name    string
}

// IsPointer returns whether the variable holds an address.
func (v VariableDescriptor) IsPointer() bool {
	return v.Flags&FlagPointer != 0
}

// Registers returns the ordered list of all registers of the report.
// The returned slice is a copy and can be modified by the caller.
func Registers() []RegisterDescriptor {
	regs := make([]RegisterDescriptor, len(registers))
	copy(regs, registers)
	return regs
}

// Variables returns the ordered list of all system variables of the report.
// The returned slice is a copy and can be modified by the caller.
func Variables() []VariableDescriptor {
	vars := make([]VariableDescriptor, len(variables))
	copy(vars, variables)
	return vars
}
