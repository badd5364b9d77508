package l9con

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Options configures a Console
type Options struct {
	Output io.Writer // Terminal output (default: os.Stdout)
	Input  io.Reader // Terminal input (default: os.Stdin)

	// Geometry of the terminal (default: queried from Output if it is a
	// file, otherwise FixedGeometry())
	Geometry Geometry

	BufferSize    int // Characters held between flushes (default: DefaultBufferSize)
	ThrottleLimit int // Timed key probes per real key read (default: DefaultThrottleLimit)

	Graphics Graphics    // Picture drawing (default: NopGraphics)
	Logger   *log.Logger // Diagnostics (default: discarded)
}

func (o *Options) applyDefaults() {
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.Input == nil {
		o.Input = os.Stdin
	}
	if o.Geometry.Columns == 0 {
		if f, ok := o.Output.(*os.File); ok {
			o.Geometry = QueryGeometry(f)
		} else {
			o.Geometry = FixedGeometry()
		}
	}
	if o.BufferSize <= 0 {
		o.BufferSize = DefaultBufferSize
	}
	if o.ThrottleLimit <= 0 {
		o.ThrottleLimit = DefaultThrottleLimit
	}
	if o.Graphics == nil {
		o.Graphics = NopGraphics{}
	}
	if o.Logger == nil {
		o.Logger = log.New()
		o.Logger.SetOutput(io.Discard)
		o.Logger.SetLevel(log.WarnLevel)
	}
}
