package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/nextsysinfo/internal/bridge"
	"github.com/retroenv/nextsysinfo/internal/options"
	"github.com/retroenv/nextsysinfo/internal/report"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const testSnapshot = `
cpu_speed: 0x03
registers: {0x00: 0x0A, 0x01: 0x30, 0x0E: 0x2A, 0x50: 0xFF}
memory:
  - address: 0x5C3D
    data: "54 FF"
os:
  dos_version: 0x0207
  mem_free: 1024
  default_drive: 0x10
  drives: C
`

// fakeConn serves every register with the low byte of its address.
type fakeConn struct {
	closed bool
}

func (f *fakeConn) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	regs := make([]uint16, qty)
	for i := range regs {
		regs[i] = (addr + uint16(i)) & 0xFF
	}
	return regs, nil
}

func (f *fakeConn) ReadInputRegisters(addr, qty uint16) ([]uint16, error) {
	return f.ReadHoldingRegisters(addr, qty)
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
	assert.NotNil(t, p.emitter)
}

func TestExecuteSnapshot(t *testing.T) {
	tmpFile := createTempFile(t, testSnapshot)
	p := New(log.NewTestLogger(t))

	opts := options.Program{
		Parameters: options.Parameters{Snapshot: tmpFile},
	}

	var screen, file bytes.Buffer
	err := p.Execute(context.Background(), opts, &screen, bufferFile(&file), 32, "1.0.0")
	assert.NoError(t, err)

	assert.Equal(t, screen.String(), file.String())
	output := file.String()
	assert.Contains(t, output, "00-MACHINEID   = 0x0A\n + MACHINEID   = ZX Spectrum Next\n")
	assert.Contains(t, output, " + VERSION     = 3.00.42\n")
	assert.Contains(t, output, "07-CPUSPEED    = 0x03\n")
	assert.Contains(t, output, " + MAPPING     = (0000-1FFF) => ROM\n")
	assert.Contains(t, output, "5C3D-ERRSP     = (FF54)\n")
	assert.Contains(t, output, "DOSVERSION     = 2.07\n")
	assert.True(t, strings.HasSuffix(output, "SYSINFO (version 1.0.0)\n\n"))
}

func TestExecuteTopicsAndQuiet(t *testing.T) {
	tmpFile := createTempFile(t, testSnapshot)
	p := New(log.NewTestLogger(t))

	opts := options.Program{
		Parameters: options.Parameters{Snapshot: tmpFile},
		Flags:      options.Flags{Topics: "o", Quiet: true},
	}

	var screen, file bytes.Buffer
	err := p.Execute(context.Background(), opts, &screen, bufferFile(&file), 16, "1.0.0")
	assert.NoError(t, err)
	assert.Equal(t, "", screen.String())

	rule := strings.Repeat("_", 16) + "\n"
	want := strings.Join([]string{
		rule,
		"ESXDOS/NEXTOS\n",
		"\n",
		"DOSVERSION     = 2.07\n",
		"+ MODE         = 128K/NEXT\n",
		"MEMFREE        = 1024\n",
		"DEFAULTDRIVE   = 0x10\n",
		"+ LETTER       = C\n",
		"+ INDEX        = 0\n",
		"AVAIL.DRIVES   = C\n",
		"ENV.PATH       = \"\"\n",
		"ENV.TMP        = \"\"\n",
		rule,
		"SYSINFO (version\n",
		"\n",
	}, "")

	if diff := cmp.Diff(want, file.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteOpensFileAfterLoad(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opened := false
	openFile := func() (io.Writer, error) {
		opened = true
		return io.Discard, nil
	}

	opts := options.Program{
		Parameters: options.Parameters{Snapshot: "/nonexistent/machine.yaml"},
	}
	err := p.Execute(context.Background(), opts, nil, openFile, 32, "1.0.0")
	assert.ErrorContains(t, err, "opening file")
	assert.False(t, opened)

	errCreate := errors.New("permission denied")
	opts.Snapshot = createTempFile(t, testSnapshot)
	err = p.Execute(context.Background(), opts, nil, func() (io.Writer, error) {
		return nil, errCreate
	}, 32, "1.0.0")
	assert.True(t, errors.Is(err, errCreate))
	assert.ErrorContains(t, err, "creating writer")
}

func TestExecuteWithoutFile(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts := options.Program{
		Parameters: options.Parameters{Snapshot: createTempFile(t, testSnapshot)},
		Flags:      options.Flags{Topics: "r"},
	}

	var screen bytes.Buffer
	assert.NoError(t, p.Execute(context.Background(), opts, &screen, nil, 32, "1.0.0"))
	assert.Contains(t, screen.String(), "NEXT REGISTERS\n")
}

func TestLoadMachineBridge(t *testing.T) {
	conn := &fakeConn{}
	var dialed bridge.Config

	p := New(log.NewTestLogger(t)).WithDialer(func(cfg bridge.Config) (BridgeConn, error) {
		dialed = cfg
		return conn, nil
	})

	savePath := filepath.Join(t.TempDir(), "captured.yaml")
	opts := options.Program{
		Parameters: options.Parameters{Save: savePath},
		Bridge:     options.Bridge{Address: "localhost:5020", UnitID: 3, Timeout: time.Second},
	}

	m, err := p.LoadMachine(context.Background(), opts)
	assert.NoError(t, err)
	assert.True(t, conn.closed)
	assert.Equal(t, "localhost:5020", dialed.Address)
	assert.Equal(t, uint8(3), dialed.UnitID)
	assert.Equal(t, time.Second, dialed.Timeout)

	assert.Equal(t, uint8(0x50), m.ReadRegister(0x50))
	assert.Equal(t, uint8(0x00), m.CPUSpeed())
	assert.Equal(t, []byte{0x3D, 0x3E}, m.ReadMemory(0x5C3D, 2))

	// the saved snapshot can be used as source
	saved, err := p.LoadMachine(context.Background(), options.Program{
		Parameters: options.Parameters{Snapshot: savePath},
	})
	assert.NoError(t, err)
	assert.Equal(t, m.Registers(), saved.Registers())
}

func TestLoadMachineErrors(t *testing.T) {
	errDial := errors.New("connection refused")
	p := New(log.NewTestLogger(t)).WithDialer(func(bridge.Config) (BridgeConn, error) {
		return nil, errDial
	})

	_, err := p.LoadMachine(context.Background(), options.Program{})
	assert.ErrorContains(t, err, "detecting machine source")

	_, err = p.LoadMachine(context.Background(), options.Program{
		Bridge: options.Bridge{Address: "localhost:5020"},
	})
	assert.True(t, errors.Is(err, errDial))

	_, err = p.LoadMachine(context.Background(), options.Program{
		Parameters: options.Parameters{Snapshot: "/nonexistent/machine.yaml"},
	})
	assert.ErrorContains(t, err, "opening file")
}

func TestReportSoftError(t *testing.T) {
	tmpFile := createTempFile(t, testSnapshot)
	p := New(log.NewTestLogger(t))

	opts := options.Program{
		Parameters: options.Parameters{Snapshot: tmpFile},
		Flags:      options.Flags{Topics: "r"},
	}
	m, err := p.LoadMachine(context.Background(), opts)
	assert.NoError(t, err)

	err = p.Report(m, opts, nil, failingWriter{}, 32, "1.0.0")
	var softErr *report.SoftError
	assert.True(t, errors.As(err, &softErr))
	assert.True(t, softErr.Failures > 0)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func bufferFile(buf *bytes.Buffer) FileFunc {
	return func() (io.Writer, error) {
		return buf, nil
	}
}

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "machine.yaml")
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
