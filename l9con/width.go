package l9con

import (
	"unicode"

	runewidth "github.com/mattn/go-runewidth"
)

// cellWidth returns the number of terminal cells a character occupies.
// ASCII characters are always one cell wide, so column arithmetic matches
// byte counts for plain game text.
func cellWidth(ch rune) int {
	if ch < 0x80 {
		return 1
	}
	return runewidth.RuneWidth(ch)
}

// isPrintable reports whether a character may enter the output buffer.
// Zero-width characters (combining marks etc.) are rejected along with
// control characters: they would throw the column count off.
func isPrintable(ch rune) bool {
	if ch == ' ' {
		return true
	}
	return unicode.IsPrint(ch) && cellWidth(ch) > 0
}

// spanWidth returns the cell width of text[from:to].
func spanWidth(text []rune, from, to int) int {
	w := 0
	for _, ch := range text[from:to] {
		w += cellWidth(ch)
	}
	return w
}
