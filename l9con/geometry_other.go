//go:build !unix

package l9con

// pixelSize is not available on this platform
func pixelSize(fd int) (int, int) {
	return 0, 0
}
