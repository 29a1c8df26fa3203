//go:build !unix

package console

func terminalColumns(uintptr) (int, bool) {
	return 0, false
}
