package l9con

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottleCycle(t *testing.T) {
	th := NewThrottle(DefaultThrottleLimit)

	for cycle := 0; cycle < 3; cycle++ {
		for i := 1; i < DefaultThrottleLimit; i++ {
			require.False(t, th.Tick(), "probe %d of cycle %d", i, cycle)
			require.Equal(t, i, th.Count())
		}
		assert.True(t, th.Tick())
		assert.Equal(t, 0, th.Count())
	}
}

func TestThrottleDefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultThrottleLimit, NewThrottle(0).Limit())
	assert.Equal(t, 3, NewThrottle(3).Limit())
}

func newTestConsole(input string, limit int) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	c := New(Options{
		Output:        &out,
		Input:         strings.NewReader(input),
		Geometry:      Geometry{Columns: 21, Rows: 24, Width: 640, Height: 200, Colors: 16},
		ThrottleLimit: limit,
	})
	return c, &out
}

func TestReadCharThrottled(t *testing.T) {
	c, _ := newTestConsole("y\nnope\nz\n", 0)

	for i := 1; i < DefaultThrottleLimit; i++ {
		key, err := c.ReadChar(100)
		require.NoError(t, err)
		require.Equal(t, byte(0), key, "probe %d", i)
	}

	key, err := c.ReadChar(100)
	require.NoError(t, err)
	assert.Equal(t, byte('y'), key)
	assert.Equal(t, 0, c.Throttle().Count())

	for i := 1; i < DefaultThrottleLimit; i++ {
		key, err := c.ReadChar(100)
		require.NoError(t, err)
		require.Equal(t, byte(0), key)
	}

	// the rest of each line is thrown away with the key
	key, err = c.ReadChar(100)
	require.NoError(t, err)
	assert.Equal(t, byte('n'), key)
}

func TestReadCharZeroTimeout(t *testing.T) {
	c, _ := newTestConsole("k\n", 4)

	for i := 0; i < 10; i++ {
		key, err := c.ReadChar(0)
		require.NoError(t, err)
		require.Equal(t, byte(0), key)
	}
	assert.Equal(t, 0, c.Throttle().Count())

	// interleaved zero timeouts do not advance the cycle
	for i := 1; i < 4; i++ {
		key, err := c.ReadChar(10)
		require.NoError(t, err)
		require.Equal(t, byte(0), key)

		key, err = c.ReadChar(0)
		require.NoError(t, err)
		require.Equal(t, byte(0), key)
		require.Equal(t, i, c.Throttle().Count())
	}

	key, err := c.ReadChar(10)
	require.NoError(t, err)
	assert.Equal(t, byte('k'), key)
}

func TestReadCharEnterKey(t *testing.T) {
	c, _ := newTestConsole("\nq\n", 1)

	key, err := c.ReadChar(10)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), key)

	// a bare enter key does not swallow the following line
	key, err = c.ReadChar(10)
	require.NoError(t, err)
	assert.Equal(t, byte('q'), key)
}

func TestReadCharEndOfInput(t *testing.T) {
	c, _ := newTestConsole("", 1)

	key, err := c.ReadChar(10)
	assert.Error(t, err)
	assert.Equal(t, byte(0), key)
}

func TestReadCharFlushesOutput(t *testing.T) {
	c, out := newTestConsole("", 2)

	for _, ch := range "You wait." {
		require.NoError(t, c.PrintChar(ch))
	}
	key, err := c.ReadChar(10)
	require.NoError(t, err)
	assert.Equal(t, byte(0), key)
	assert.Equal(t, "You wait.", out.String())
	assert.Equal(t, 9, c.Column(), "no key was read so the line goes on")
}
