package fileprocessor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/nextsysinfo/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestResolveOutput(t *testing.T) {
	t.Run("new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.txt")
		got, err := ResolveOutput(path, false)
		assert.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("existing file without force", func(t *testing.T) {
		path := createTempFile(t, "report.txt")
		_, err := ResolveOutput(path, false)
		assert.True(t, errors.Is(err, ErrFileExists))
	})

	t.Run("existing file with force", func(t *testing.T) {
		path := createTempFile(t, "report.txt")
		got, err := ResolveOutput(path, true)
		assert.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("directory picks first free name", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"sysinfo-0.txt", "sysinfo-1.txt", "sysinfo-3.txt"} {
			assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
		}

		got, err := ResolveOutput(dir, false)
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "sysinfo-2.txt"), got)
	})

	t.Run("directory without free name", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"sysinfo-0.txt", "sysinfo-1.txt"} {
			assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
		}

		_, err := resolveOutput(dir, false, 2)
		assert.True(t, errors.Is(err, ErrNoFreeName))
	})
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, filepath.FromSlash("/tmp/logs"), NormalizePath("/tmp//logs/"))
	assert.Equal(t, filepath.FromSlash("c:/logs/x.txt"), NormalizePath("c:\\logs\\x.txt"))
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	snapshotFile := filepath.Join(dir, "machine.yaml")
	content := "cpu_speed: 0x00\nregisters: {0x00: 0x08}\n"
	assert.NoError(t, os.WriteFile(snapshotFile, []byte(content), 0600))

	opts := options.Program{
		Parameters: options.Parameters{Snapshot: snapshotFile, Output: dir},
		Flags:      options.Flags{Topics: "r", Quiet: true, Columns: 20},
	}

	logger := log.NewTestLogger(t)
	assert.NoError(t, ProcessFile(context.Background(), logger, opts, "1.0.0"))

	data, err := os.ReadFile(filepath.Join(dir, "sysinfo-0.txt"))
	assert.NoError(t, err)
	output := string(data)
	assert.True(t, strings.HasPrefix(output, strings.Repeat("_", 20)+"\nNEXT REGISTERS\n\n"))
	assert.Contains(t, output, " + MACHINEID   = Emulator\n")

	// a second run picks the next free name
	assert.NoError(t, ProcessFile(context.Background(), logger, opts, "1.0.0"))
	_, err = os.Stat(filepath.Join(dir, "sysinfo-1.txt"))
	assert.NoError(t, err)
}

func TestProcessFileExistingLog(t *testing.T) {
	dir := t.TempDir()
	snapshotFile := filepath.Join(dir, "machine.yaml")
	assert.NoError(t, os.WriteFile(snapshotFile, []byte("registers: {}\n"), 0600))
	logFile := createTempFile(t, "report.txt")

	opts := options.Program{
		Parameters: options.Parameters{Snapshot: snapshotFile, Output: logFile},
		Flags:      options.Flags{Quiet: true},
	}

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, "1.0.0")
	assert.True(t, errors.Is(err, ErrFileExists))
}

func TestProcessFileFailingSource(t *testing.T) {
	dir := t.TempDir()
	opts := options.Program{
		Parameters: options.Parameters{Snapshot: filepath.Join(dir, "missing.yaml"), Output: dir},
		Flags:      options.Flags{Quiet: true},
	}

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, "1.0.0")
	assert.ErrorContains(t, err, "opening file")

	// no empty log file is left behind
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 0)
}

func createTempFile(t *testing.T, name string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte("existing"), 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
