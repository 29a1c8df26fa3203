// Package snapshot implements a machine state snapshot that can be loaded
// from and saved to YAML files and serves as machine for the report.
package snapshot

import (
	"github.com/retroenv/nextsysinfo/internal/osinfo"
)

const memorySize = 0x10000

// Block is a range of memory that is part of the snapshot.
type Block struct {
	Address uint16
	Size    int
}

// Machine is the captured state of a machine. Registers and memory that are
// not part of the snapshot read as 0.
type Machine struct {
	cpuSpeed  uint8
	registers map[uint8]uint8
	memory    []byte
	blocks    []Block
	os        *osinfo.Info
}

// New returns an empty machine snapshot.
func New() *Machine {
	return &Machine{
		registers: make(map[uint8]uint8),
		memory:    make([]byte, memorySize),
	}
}

// ReadRegister returns the value of a Next register.
func (m *Machine) ReadRegister(number uint8) uint8 {
	return m.registers[number]
}

// SetRegister sets the value of a Next register.
func (m *Machine) SetRegister(number, value uint8) {
	m.registers[number] = value
}

// Registers returns a copy of all register values that are part of the snapshot.
func (m *Machine) Registers() map[uint8]uint8 {
	regs := make(map[uint8]uint8, len(m.registers))
	for number, value := range m.registers {
		regs[number] = value
	}
	return regs
}

// ReadMemory returns a copy of size bytes of memory starting at the address.
// Reads beyond the end of the address space wrap around.
func (m *Machine) ReadMemory(address uint16, size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = m.memory[address+uint16(i)]
	}
	return data
}

// SetMemory writes data into memory and records the written block as part of
// the snapshot.
func (m *Machine) SetMemory(address uint16, data []byte) {
	for i, b := range data {
		m.memory[address+uint16(i)] = b
	}
	m.blocks = append(m.blocks, Block{Address: address, Size: len(data)})
}

// Blocks returns the memory blocks that are part of the snapshot.
func (m *Machine) Blocks() []Block {
	blocks := make([]Block, len(m.blocks))
	copy(blocks, m.blocks)
	return blocks
}

// CPUSpeed returns the latched CPU speed register value.
func (m *Machine) CPUSpeed() uint8 {
	return m.cpuSpeed
}

// SetCPUSpeed sets the latched CPU speed register value.
func (m *Machine) SetCPUSpeed(speed uint8) {
	m.cpuSpeed = speed
}

// OSInfo returns the operating system state, if the snapshot contains it.
func (m *Machine) OSInfo() (*osinfo.Info, bool) {
	return m.os, m.os != nil
}

// SetOSInfo sets the operating system state.
func (m *Machine) SetOSInfo(info *osinfo.Info) {
	m.os = info
}
