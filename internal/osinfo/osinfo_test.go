package osinfo

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
)

func TestLines(t *testing.T) {
	dateTime := time.Date(2025, time.September, 14, 9, 5, 3, 0, time.UTC)
	workDir := "/home/"

	info := &Info{
		DOSVersion: 0x0207,
		DateTime:   &dateTime,
		DST:        true,
		MemFree:    123456,
		Screen: &Screen{
			Layer:   1,
			Submode: 2,
			Ink:     7,
			Paper:   0,
			Flags:   0x80,
			Width:   256,
			Cols:    32,
			Rows:    24,
		},
		WorkDir:      &workDir,
		DefaultDrive: 0x10,
		Drives:       "CM",
		Env:          Env{Path: "/dot", Tmp: "/tmp"},
	}

	want := []string{
		"DOSVERSION     = 2.07\n",
		"+ MODE         = 128K/NEXT\n",
		"DATETIME       = 09/14/2025 09:05:03 DST\n",
		"MEMFREE        = 123456\n",
		"SCREENMODE     = 1:2\n",
		"+ INK|ATTR     = 7\n",
		"+ PAPER        = 0\n",
		"+ FLAGS        = 0x80\n",
		"+ WIDTH        = 256\n",
		"+ COLS         = 32\n",
		"+ ROWS         = 24\n",
		"CURRENTWORKDIR = /home/\n",
		"DEFAULTDRIVE   = 0x10\n",
		"+ LETTER       = C\n",
		"+ INDEX        = 0\n",
		"AVAIL.DRIVES   = CM\n",
		"ENV.PATH       = \"/dot\"\n",
		"ENV.TMP        = \"/tmp\"\n",
	}

	got := Lines(info)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesOptionalValues(t *testing.T) {
	info := &Info{
		DOSVersion:   DOSVersionESXDOS,
		DefaultDrive: 0x61,
	}

	want := []string{
		"DOSVERSION     = 255.255\n",
		"+ MODE         = esxDOS\n",
		"MEMFREE        = 0\n",
		"DEFAULTDRIVE   = 0x61\n",
		"+ LETTER       = M\n",
		"+ INDEX        = 1\n",
		"AVAIL.DRIVES   = \n",
		"ENV.PATH       = \"\"\n",
		"ENV.TMP        = \"\"\n",
	}

	got := Lines(info)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesNil(t *testing.T) {
	assert.True(t, Lines(nil) == nil)
}

func TestMode(t *testing.T) {
	tests := []struct {
		version uint16
		want    string
	}{
		{version: DOSVersionESXDOS, want: "esxDOS"},
		{version: DOSVersionNextOS48K, want: "48K"},
		{version: 0x0207, want: "128K/NEXT"},
	}

	for _, tt := range tests {
		info := &Info{DOSVersion: tt.version}
		assert.Equal(t, tt.want, info.Mode())
	}
}
