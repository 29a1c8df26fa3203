//go:build unix

package console

import (
	"golang.org/x/sys/unix"
)

func terminalColumns(fd uintptr) (int, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, false
	}
	return int(ws.Col), true
}
