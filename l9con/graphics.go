package l9con

import (
	log "github.com/sirupsen/logrus"
)

// Graphics receives the picture drawing primitives of the engine.
type Graphics interface {
	// SetMode selects the graphics mode. Zero turns graphics off.
	SetMode(mode int)
	Clear()
	SetColour(colour, index int)
	DrawLine(x1, y1, x2, y2, colour1, colour2 int)
	Fill(x, y, colour1, colour2 int)
	ShowBitmap(pic, x, y int)
}

// NopGraphics ignores all drawing. Pictures are not rendered on a character
// terminal.
type NopGraphics struct{}

func (NopGraphics) SetMode(mode int) {}
func (NopGraphics) Clear() {}
func (NopGraphics) SetColour(colour, index int) {}
func (NopGraphics) DrawLine(x1, y1, x2, y2, colour1, colour2 int) {}
func (NopGraphics) Fill(x, y, colour1, colour2 int) {}
func (NopGraphics) ShowBitmap(pic, x, y int) {}

// DebugGraphics traces every drawing call to a logger at debug level.
type DebugGraphics struct {
	Log *log.Logger
}

func (d DebugGraphics) trace(call string, fields log.Fields) {
	if d.Log == nil {
		return
	}
	d.Log.WithFields(fields).Debug(call)
}

func (d DebugGraphics) SetMode(mode int) {
	d.trace("graphics", log.Fields{"mode": mode})
}

func (d DebugGraphics) Clear() {
	d.trace("cleargraphics", nil)
}

func (d DebugGraphics) SetColour(colour, index int) {
	d.trace("setcolour", log.Fields{"colour": colour, "index": index})
}

func (d DebugGraphics) DrawLine(x1, y1, x2, y2, colour1, colour2 int) {
	d.trace("drawline", log.Fields{
		"x1": x1, "y1": y1, "x2": x2, "y2": y2,
		"colour1": colour1, "colour2": colour2,
	})
}

func (d DebugGraphics) Fill(x, y, colour1, colour2 int) {
	d.trace("fill", log.Fields{"x": x, "y": y, "colour1": colour1, "colour2": colour2})
}

func (d DebugGraphics) ShowBitmap(pic, x, y int) {
	d.trace("showbitmap", log.Fields{"pic": pic, "x": x, "y": y})
}
