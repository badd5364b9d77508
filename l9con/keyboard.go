package l9con

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Keyboard reads user input from a line-buffered terminal.
type Keyboard struct {
	in *bufio.Reader
}

// NewKeyboard wraps r. A *bufio.Reader is used as is.
func NewKeyboard(r io.Reader) *Keyboard {
	if br, ok := r.(*bufio.Reader); ok {
		return &Keyboard{in: br}
	}
	return &Keyboard{in: bufio.NewReader(r)}
}

// ReadKey blocks for one keystroke. The terminal delivers input a line at a
// time, so the rest of the line after the key, including the enter key, is
// discarded.
func (k *Keyboard) ReadKey() (byte, error) {
	c, err := k.in.ReadByte()
	if err != nil {
		return 0, err
	}
	if c == '\n' {
		return c, nil
	}

	// remove input from buffer until enter key
	if _, err := k.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return c, err
	}
	return c, nil
}

// ReadLine blocks for a line of input and returns it without the line
// terminator. When size is positive the line is cut to size-1 characters.
// A final line without a terminator is returned without error; io.EOF is
// only returned when there is nothing left to read.
func (k *Keyboard) ReadLine(size int) (string, error) {
	line, err := k.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if size > 0 {
		if r := []rune(line); len(r) > size-1 {
			line = string(r[:size-1])
		}
	}
	return line, nil
}
