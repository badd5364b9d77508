package l9con

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Console connects a game engine to a line-oriented character terminal. It
// word-wraps the engine's output and paces its key probes.
//
// A Console is not safe for concurrent use. The engine calls it from a single
// goroutine.
type Console struct {
	Graphics

	out       io.Writer
	formatter *Formatter
	keyboard  *Keyboard
	throttle  *Throttle
	geometry  Geometry
	log       *log.Logger
}

var _ Host = (*Console)(nil)

// New creates a console
func New(opts Options) *Console {
	opts.applyDefaults()

	c := &Console{
		Graphics:  opts.Graphics,
		out:       opts.Output,
		formatter: NewFormatter(opts.Output, opts.Geometry.WrapWidth(), opts.BufferSize),
		keyboard:  NewKeyboard(opts.Input),
		throttle:  NewThrottle(opts.ThrottleLimit),
		geometry:  opts.Geometry,
		log:       opts.Logger,
	}

	c.log.WithFields(log.Fields{
		"columns": opts.Geometry.Columns,
		"wrap":    c.formatter.WrapWidth(),
		"fixed":   opts.Geometry.Fixed,
	}).Debug("console created")

	return c
}

// PrintChar sends one character of game output to the word wrapper.
func (c *Console) PrintChar(ch rune) error {
	return c.formatter.Put(ch)
}

// Flush writes out any buffered game text.
func (c *Console) Flush() error {
	return c.formatter.Flush()
}

// Input reads a line typed by the player, at most size-1 characters long.
func (c *Console) Input(size int) (string, error) {
	if err := c.Flush(); err != nil {
		return "", err
	}
	return c.readLine(size)
}

// readLine reads a line of input. The player's enter key leaves the cursor
// at the start of a new line.
func (c *Console) readLine(size int) (string, error) {
	line, err := c.keyboard.ReadLine(size)
	if err != nil {
		return "", err
	}
	c.formatter.LineEchoed()
	return line, nil
}

// ReadChar probes for a key, waiting up to millis milliseconds. A zero
// return means no key. A zero timeout always returns no key and is not
// counted by the throttle.
func (c *Console) ReadChar(millis int) (byte, error) {
	if err := c.Flush(); err != nil {
		return 0, err
	}
	if millis == 0 {
		return 0, nil
	}
	if !c.throttle.Tick() {
		return 0, nil
	}

	key, err := c.keyboard.ReadKey()
	if err != nil {
		c.log.WithError(err).Debug("key read failed")
		return 0, err
	}
	c.formatter.LineEchoed()
	c.log.WithField("key", key).Debug("key read")
	return key, nil
}

// StopList reports whether the player asked to stop a long listing. A
// line-buffered terminal offers no way to ask.
func (c *Console) StopList() bool {
	return false
}

// Geometry returns the terminal geometry the console was created with.
func (c *Console) Geometry() Geometry {
	return c.geometry
}

// Column returns the cursor column on the current output line.
func (c *Console) Column() int {
	return c.formatter.Column()
}

// Throttle exposes the key probe throttle.
func (c *Console) Throttle() *Throttle {
	return c.throttle
}

// Logger returns the console's diagnostic logger.
func (c *Console) Logger() *log.Logger {
	return c.log
}
