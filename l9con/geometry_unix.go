//go:build unix

package l9con

import (
	"golang.org/x/sys/unix"
)

// pixelSize returns the pixel size of the terminal on fd, or zeroes if the
// terminal does not report it.
func pixelSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Xpixel), int(ws.Ypixel)
}
