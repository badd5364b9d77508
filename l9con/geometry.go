package l9con

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	// FixedWrapWidth is the line width used on hosts that cannot report their
	// geometry.
	FixedWrapWidth = 76

	// cellPixels is the assumed size of a character cell when the host
	// reports the character grid but not the pixel size.
	cellPixels = 8

	// GoodGraphicsWidth and GoodGraphicsColors are the minimum display
	// capabilities for high resolution graphics.
	GoodGraphicsWidth  = 512
	GoodGraphicsColors = 16
)

// Geometry describes the terminal, captured once at startup.
type Geometry struct {
	Width   int // pixels
	Height  int // pixels
	Columns int
	Rows    int
	Colors  int

	// Fixed is set when the values are defaults rather than queried from
	// the host.
	Fixed bool
}

// FixedGeometry returns the geometry used when the host cannot be queried.
func FixedGeometry() Geometry {
	return Geometry{
		Columns: 80,
		Rows:    24,
		Fixed:   true,
	}
}

// QueryGeometry asks the terminal connected to f for its size and colour
// depth. If f is not a terminal the fixed geometry is returned.
func QueryGeometry(f *os.File) Geometry {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return FixedGeometry()
	}

	cols, rows, err := term.GetSize(fd)
	if err != nil || cols < 2 || rows < 1 {
		return FixedGeometry()
	}

	g := Geometry{
		Columns: cols,
		Rows:    rows,
		Colors:  detectColors(),
	}

	g.Width, g.Height = pixelSize(fd)
	if g.Width == 0 || g.Height == 0 {
		g.Width = cols * cellPixels
		g.Height = rows * cellPixels
	}
	return g
}

// detectColors estimates the number of colours from the environment
func detectColors() int {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return 1 << 24
	}

	t := os.Getenv("TERM")
	switch {
	case t == "" || t == "dumb":
		return 2
	case strings.Contains(t, "truecolor") || strings.Contains(t, "direct"):
		return 1 << 24
	case strings.Contains(t, "256color"):
		return 256
	}
	return 16
}

// WrapWidth is the number of cells the formatter may use on one line. The
// last column is left free so the terminal never wraps on its own.
func (g Geometry) WrapWidth() int {
	if g.Fixed {
		return FixedWrapWidth
	}
	return g.Columns - 1
}

// GoodGraphics reports whether the display is good enough for high
// resolution pictures.
func (g Geometry) GoodGraphics() bool {
	return g.Width >= GoodGraphicsWidth && g.Colors >= GoodGraphicsColors
}

func (g Geometry) String() string {
	return fmt.Sprintf("mode %dx%d (%dx%d chars), %d colors", g.Width, g.Height, g.Columns, g.Rows, g.Colors)
}
