//go:build unix

package gridtui

import "golang.org/x/sys/unix"

// terminalSize queries the window size of fd with TIOCGWINSZ.
func terminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
