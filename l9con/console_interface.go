package l9con

import "os"

// Host is everything a game engine asks of the machine it runs on
type Host interface {
	// Text output
	PrintChar(c rune) error
	Flush() error

	// Input
	Input(size int) (string, error)
	ReadChar(millis int) (byte, error)
	StopList() bool

	// Files
	SaveFile(data []byte) error
	LoadFile(max int) ([]byte, error)
	GetGameFile(size int) (string, error)
	SetFileNumber(name string, n int) string
	OpenScriptFile() (*os.File, error)
	FindFile(name string) bool

	// Pictures
	Graphics
}

// Engine is a game interpreter driven by a Host
type Engine interface {
	// LoadGame opens the game file and, if not empty, the graphics file.
	LoadGame(gameFile, gfxFile string) bool

	// RunGame executes a slice of the game. It returns false when the game
	// has ended.
	RunGame() bool

	StopGame()
	FreeMemory()
}
