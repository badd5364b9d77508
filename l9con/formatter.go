package l9con

import (
	"bufio"
	"fmt"
	"io"
)

// LineBreak is the character the engine sends to end a line of output.
const LineBreak = '\r'

// DefaultBufferSize is the number of characters held before a flush is forced.
const DefaultBufferSize = 10240

// Formatter is the word-wrapping output buffer. Characters are pushed one at a
// time with Put and held until Flush, at which point they are written to the
// terminal with line breaks inserted at word boundaries.
//
// The cursor column survives across flushes, so text flushed in several pieces
// wraps exactly as if it had been flushed at once.
type Formatter struct {
	out *bufio.Writer

	// buffer holds one extra slot for the space sentinel used by Flush
	buffer   []rune
	pending  int
	capacity int

	column int
	wrap   int
}

// NewFormatter creates a formatter writing to w, wrapping lines at wrapWidth
// cells and holding up to capacity characters between flushes.
func NewFormatter(w io.Writer, wrapWidth, capacity int) *Formatter {
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	if capacity < 1 {
		capacity = DefaultBufferSize
	}
	return &Formatter{
		out:      bufio.NewWriter(w),
		buffer:   make([]rune, capacity+1),
		capacity: capacity,
		wrap:     wrapWidth,
	}
}

// Put adds one character of game output. The line break character flushes the
// buffer and ends the line. Other non-printable characters are dropped.
func (f *Formatter) Put(ch rune) error {
	if ch == LineBreak {
		return f.NewLine()
	}
	if !isPrintable(ch) {
		return nil
	}
	if f.pending >= f.capacity {
		if err := f.Flush(); err != nil {
			return err
		}
	}
	f.buffer[f.pending] = ch
	f.pending++
	return nil
}

// NewLine flushes pending text and moves the cursor to the start of the next
// line without going through word wrap.
func (f *Formatter) NewLine() error {
	if err := f.Flush(); err != nil {
		return err
	}
	f.column = 0
	f.out.WriteByte('\n')
	if err := f.out.Flush(); err != nil {
		return fmt.Errorf("writing line break: %w", err)
	}
	return nil
}

// Flush writes all pending text to the terminal. Flushing an empty buffer does
// nothing.
func (f *Formatter) Flush() error {
	if f.pending < 1 {
		return nil
	}

	end := f.pending
	text := f.buffer[:end+1]
	text[end] = ' '
	f.pending = 0

	ptr := 0
	for spanWidth(text, ptr, end)+f.column > f.wrap {
		cut, next := f.breakAt(text, ptr, end)

		// a boundary at the very start of an empty line produces no output,
		// the spaces there are simply consumed
		if cut > ptr || f.column > 0 {
			f.out.WriteString(string(text[ptr:cut]))
			f.out.WriteByte('\n')
			f.column = 0
		}
		ptr = next
	}

	if ptr < end {
		f.out.WriteString(string(text[ptr:end]))
		f.column += spanWidth(text, ptr, end)
	}

	if err := f.out.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// breakAt finds where the line starting at ptr must be cut. It returns the end
// of the text to emit on this line and the position the next line starts at.
//
// text[end] must be a space. The caller guarantees that text[ptr:end] does not
// fit on the current line.
func (f *Formatter) breakAt(text []rune, ptr, end int) (cut int, next int) {
	space := ptr
	last := ptr
	for {
		for text[space] != ' ' {
			space++
		}
		if spanWidth(text, ptr, space)+f.column > f.wrap {
			break
		}
		last = space
		space++
	}

	if last > ptr || text[ptr] == ' ' {
		return last, skipBoundary(text, last, end)
	}

	// the first word does not fit. after existing text it moves to the next
	// line; on an empty line it is too wide for any line and goes out whole.
	if f.column > 0 {
		return ptr, ptr
	}
	return space, skipBoundary(text, space, end)
}

// skipBoundary steps over the space at a cut point and at most one more space
// after it.
func skipBoundary(text []rune, cut, end int) int {
	next := cut + 1
	if next > end {
		return end
	}
	if next < end && text[next] == ' ' {
		next++
	}
	return next
}

// LineEchoed tells the formatter the terminal has moved to a new line by
// itself, as it does when the player ends a line of input with enter. Call it
// only after a Flush.
func (f *Formatter) LineEchoed() {
	f.column = 0
}

// Column returns the number of cells already used on the current line.
func (f *Formatter) Column() int {
	return f.column
}

// Pending returns the number of characters waiting to be flushed.
func (f *Formatter) Pending() int {
	return f.pending
}

// WrapWidth returns the maximum number of cells on a line.
func (f *Formatter) WrapWidth() int {
	return f.wrap
}
