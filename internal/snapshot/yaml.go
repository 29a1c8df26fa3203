package snapshot

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/nextsysinfo/internal/osinfo"
	"github.com/retroenv/nextsysinfo/internal/render"
	"gopkg.in/yaml.v3"
)

// hexByte is a byte that is written as hex number.
type hexByte uint8

func (b hexByte) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("0x%02X", uint8(b))}, nil
}

// hexWord is a word that is written as hex number.
type hexWord uint16

func (w hexWord) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("0x%04X", uint16(w))}, nil
}

// file is the YAML representation of a snapshot.
type file struct {
	CPUSpeed  hexByte             `yaml:"cpu_speed"`
	Registers map[hexByte]hexByte `yaml:"registers"`
	Memory    []memoryBlock       `yaml:"memory,omitempty"`
	OS        *osinfo.Info        `yaml:"os,omitempty"`
}

type memoryBlock struct {
	Address hexWord `yaml:"address"`
	Data    string  `yaml:"data"`
}

var errBlockTooLarge = errors.New("memory block exceeds address space")

// Decode reads a YAML snapshot.
func Decode(r io.Reader) (*Machine, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	m := New()
	m.SetCPUSpeed(uint8(f.CPUSpeed))
	for number, value := range f.Registers {
		m.SetRegister(uint8(number), uint8(value))
	}

	for _, block := range f.Memory {
		data, err := decodeHex(block.Data)
		if err != nil {
			return nil, fmt.Errorf("decoding memory block at 0x%04X: %w", uint16(block.Address), err)
		}
		if int(block.Address)+len(data) > memorySize {
			return nil, fmt.Errorf("memory block at 0x%04X with %d bytes: %w",
				uint16(block.Address), len(data), errBlockTooLarge)
		}
		m.SetMemory(uint16(block.Address), data)
	}

	m.SetOSInfo(f.OS)
	return m, nil
}

// Encode writes the snapshot as YAML.
func Encode(w io.Writer, m *Machine) error {
	regs := m.Registers()
	f := file{
		CPUSpeed:  hexByte(m.CPUSpeed()),
		Registers: make(map[hexByte]hexByte, len(regs)),
	}
	for number, value := range regs {
		f.Registers[hexByte(number)] = hexByte(value)
	}

	for _, block := range m.Blocks() {
		data := m.ReadMemory(block.Address, block.Size)
		f.Memory = append(f.Memory, memoryBlock{
			Address: hexWord(block.Address),
			Data:    render.HexString(data, 1),
		})
	}
	f.OS, _ = m.OSInfo()

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&f); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("closing snapshot encoder: %w", err)
	}
	return nil
}

// decodeHex decodes hex digits, all whitespace is ignored.
func decodeHex(s string) ([]byte, error) {
	digits := strings.Join(strings.Fields(s), "")
	data, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("decoding hex data: %w", err)
	}
	return data, nil
}
