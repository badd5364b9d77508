package l9con

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// maxFileName is the longest filename accepted at a prompt.
const maxFileName = 256

// promptLine flushes game text, shows prompt and reads a line of reply.
func (c *Console) promptLine(prompt string, size int) (string, error) {
	if err := c.Flush(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	return c.readLine(size)
}

// SaveFile asks for a filename and writes data to it.
func (c *Console) SaveFile(data []byte) error {
	name, err := c.promptLine("Save file: ", maxFileName)
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	c.log.WithFields(log.Fields{"file": name, "bytes": len(data)}).Debug("game saved")
	return nil
}

// LoadFile asks for a filename and reads up to max bytes from it.
func (c *Console) LoadFile(max int) ([]byte, error) {
	name, err := c.promptLine("Load file: ", maxFileName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("loading game: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(max)))
	if err != nil {
		return nil, fmt.Errorf("loading game: %w", err)
	}
	c.log.WithFields(log.Fields{"file": name, "bytes": len(data)}).Debug("game loaded")
	return data, nil
}

// GetGameFile asks for the file of the next game in a multi-part adventure.
func (c *Console) GetGameFile(size int) (string, error) {
	return c.promptLine("Load next game: ", size)
}

// OpenScriptFile asks for a file of commands to replay as player input.
func (c *Console) OpenScriptFile() (*os.File, error) {
	name, err := c.promptLine("Script file: ", maxFileName)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	return f, nil
}

// FindFile reports whether name can be opened for reading.
func (c *Console) FindFile(name string) bool {
	return FileExists(name)
}

// SetFileNumber returns name with the last digit of its final path element
// replaced by n. Games split over several files are numbered this way. The
// name is returned unchanged if it has no digit or n is not a single digit.
func (c *Console) SetFileNumber(name string, n int) string {
	return setFileNumber(name, n)
}

func setFileNumber(name string, n int) string {
	if n < 0 || n > 9 {
		return name
	}

	start := strings.LastIndexAny(name, "/"+string(filepath.Separator)) + 1
	b := []byte(name)
	for i := len(b) - 1; i >= start; i-- {
		if b[i] >= '0' && b[i] <= '9' {
			b[i] = byte('0' + n)
			return string(b)
		}
	}
	return name
}
