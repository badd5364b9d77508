package l9con

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	GfxExtHiRes   = ".hrc"
	GfxExtCGA     = ".cga"
	GfxDefaultPic = "picture.dat"
)

// FileExists reports whether a readable file can be opened at name.
func FileExists(name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// GfxResolver picks the graphics file to go with a game file.
//
// DOS releases ship pictures as a high resolution .hrc file, a 4-colour .cga
// file, or a shared picture.dat. The high resolution file wins unless the
// display is too small or has too few colours and a CGA file is available.
type GfxResolver struct {
	// Exists tests for a candidate file. FileExists is used when nil.
	Exists func(name string) bool

	// Dir is where the shared default file is looked for. Empty means the
	// working directory.
	Dir string

	// Report receives progress messages for the user. Nil is silent.
	Report io.Writer

	Log *log.Logger
}

// Resolve returns the graphics file to use for datFile, or an empty string if
// there is none. A forced file is returned as is without checking anything.
func (r *GfxResolver) Resolve(datFile, forced string, g Geometry) string {
	if forced != "" {
		r.debug("forced", forced)
		return forced
	}
	r.report("No gfx file specified, detecting..\n")

	exists := r.Exists
	if exists == nil {
		exists = FileExists
	}

	base := strings.TrimSuffix(datFile, filepath.Ext(datFile))
	hires := base + GfxExtHiRes
	cga := base + GfxExtCGA
	def := GfxDefaultPic
	if r.Dir != "" {
		def = filepath.Join(r.Dir, GfxDefaultPic)
	}

	hiresExists := exists(hires)
	cgaExists := exists(cga)
	defExists := exists(def)

	if !hiresExists && !cgaExists && !defExists {
		r.report("No gfx file exists.\n")
		r.debug("none", "")
		return ""
	}

	if !hiresExists && !cgaExists {
		r.report("Using default gfx file %s (no other variants available).\n", def)
		r.debug("default", def)
		return def
	}

	if hiresExists && (g.GoodGraphics() || !cgaExists) {
		r.report("Using dos-hi-res gfx file %s.\n", hires)
		r.debug("hires", hires)
		return hires
	}

	// 320 width screens, 4 colours and so on
	r.report("Using dos-cga gfx file %s.\n", cga)
	r.debug("cga", cga)
	return cga
}

func (r *GfxResolver) report(format string, a ...interface{}) {
	if r.Report == nil {
		return
	}
	fmt.Fprintf(r.Report, format, a...)
}

func (r *GfxResolver) debug(variant, file string) {
	if r.Log == nil {
		return
	}
	r.Log.WithFields(log.Fields{"variant": variant, "file": file}).Debug("gfx file resolved")
}
