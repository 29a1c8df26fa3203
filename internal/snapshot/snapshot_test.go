package snapshot

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/nextsysinfo/internal/osinfo"
	"github.com/retroenv/retrogolib/assert"
)

const testSnapshot = `
cpu_speed: 0x03
registers:
  0x00: 0x0A
  0x01: 0x30
  0x0E: 42
memory:
  - address: 0x5C3D
    data: "54 FF"
  - address: 0x5C48
    data: |
      38
os:
  dos_version: 0x0207
  date_time: 2025-09-14T09:05:03Z
  mem_free: 123456
  screen: {layer: 1, submode: 0, ink: 7, paper: 0, flags: 0, width: 256, cols: 32, rows: 24}
  cwd: /home
  default_drive: 0x10
  drives: CM
  env: {path: /dot, tmp: /tmp}
`

func TestDecode(t *testing.T) {
	m, err := Decode(strings.NewReader(testSnapshot))
	assert.NoError(t, err)

	assert.Equal(t, uint8(0x03), m.CPUSpeed())
	assert.Equal(t, uint8(0x0A), m.ReadRegister(0x00))
	assert.Equal(t, uint8(0x30), m.ReadRegister(0x01))
	assert.Equal(t, uint8(42), m.ReadRegister(0x0E))
	assert.Equal(t, uint8(0x00), m.ReadRegister(0x02))

	assert.Equal(t, []byte{0x54, 0xFF}, m.ReadMemory(0x5C3D, 2))
	assert.Equal(t, []byte{0x38, 0x00}, m.ReadMemory(0x5C48, 2))
	assert.Len(t, m.Blocks(), 2)

	info, ok := m.OSInfo()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x0207), info.DOSVersion)
	assert.Equal(t, uint32(123456), info.MemFree)
	assert.Equal(t, "CM", info.Drives)
	assert.Equal(t, "/dot", info.Env.Path)
	assert.NotNil(t, info.Screen)
	assert.Equal(t, uint16(256), info.Screen.Width)
	assert.NotNil(t, info.WorkDir)
	assert.Equal(t, "/home", *info.WorkDir)
	assert.NotNil(t, info.DateTime)
	assert.True(t, info.DateTime.Equal(time.Date(2025, time.September, 14, 9, 5, 3, 0, time.UTC)))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			input:   "registers: [",
			wantErr: "decoding snapshot",
		},
		{
			name:    "register value out of range",
			input:   "registers: {0x00: 0x100}",
			wantErr: "decoding snapshot",
		},
		{
			name:    "invalid hex data",
			input:   "memory: [{address: 0x4000, data: \"XY\"}]",
			wantErr: "memory block at 0x4000",
		},
		{
			name:    "odd number of hex digits",
			input:   "memory: [{address: 0x4000, data: \"ABC\"}]",
			wantErr: "decoding hex data",
		},
		{
			name:    "block beyond address space",
			input:   "memory: [{address: 0xFFFF, data: \"01 02\"}]",
			wantErr: "exceeds address space",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	m, err := Decode(strings.NewReader(""))
	assert.NoError(t, err)
	_, ok := m.OSInfo()
	assert.False(t, ok)
	assert.Equal(t, uint8(0), m.ReadRegister(0x00))
}

func TestEncodeRoundTrip(t *testing.T) {
	m, err := Decode(strings.NewReader(testSnapshot))
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, Encode(&buf, m))
	assert.Contains(t, buf.String(), "0x0E: 0x2A")
	assert.Contains(t, buf.String(), "address: 0x5C3D")
	assert.Contains(t, buf.String(), "data: 54 FF")

	decoded, err := Decode(&buf)
	assert.NoError(t, err)

	if diff := cmp.Diff(m.Registers(), decoded.Registers()); diff != "" {
		t.Errorf("registers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(m.Blocks(), decoded.Blocks()); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, m.ReadMemory(0x5C3D, 2), decoded.ReadMemory(0x5C3D, 2))
	assert.Equal(t, m.CPUSpeed(), decoded.CPUSpeed())

	want, _ := m.OSInfo()
	got, ok := decoded.OSInfo()
	assert.True(t, ok)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("os info mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMemoryWrapsAround(t *testing.T) {
	m := New()
	m.SetMemory(0xFFFF, []byte{0x01})
	m.SetMemory(0x0000, []byte{0x02})
	assert.Equal(t, []byte{0x01, 0x02}, m.ReadMemory(0xFFFF, 2))
}

func TestSetOSInfo(t *testing.T) {
	m := New()
	info := &osinfo.Info{Drives: "C"}
	m.SetOSInfo(info)

	got, ok := m.OSInfo()
	assert.True(t, ok)
	assert.Equal(t, "C", got.Drives)
}
