package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	input := `
topics: rv
output: /tmp/logs
force: true
columns: 64
bridge:
  address: localhost:5020
  unit: 2
  timeout: 3s
`
	settings, err := Decode(strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, "rv", settings.Topics)
	assert.Equal(t, "/tmp/logs", settings.Output)
	assert.Equal(t, 64, settings.Columns)
	assert.NotNil(t, settings.Force)
	assert.True(t, *settings.Force)
	assert.True(t, settings.Quiet == nil)
	assert.NotNil(t, settings.Bridge)
	assert.Equal(t, "localhost:5020", settings.Bridge.Address)
	assert.NotNil(t, settings.Bridge.UnitID)
	assert.Equal(t, uint8(2), *settings.Bridge.UnitID)
	assert.Equal(t, 3*time.Second, settings.Bridge.Timeout)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("unknown: 1\n"))
	assert.ErrorContains(t, err, "decoding settings")

	settings, err := Decode(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Equal(t, "", settings.Topics)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysinfo.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("quiet: true\n"), 0600))

	settings, err := Load(path)
	assert.NoError(t, err)
	assert.NotNil(t, settings.Quiet)
	assert.True(t, *settings.Quiet)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "opening settings file")
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
	assert.NotNil(t, CreateLogger(false, false))
}
