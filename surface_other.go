//go:build !unix

package gridtui

import "golang.org/x/term"

func terminalSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}
