package fonts

import (
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	loaded *truetype.Font
	faces  = map[int]font.Face{}
)

// Load parses the TTF at path. When the file is missing or broken the
// built-in bitmap face is used for every size instead.
func Load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: no font at %s, using built-in bitmap font", path)
		return
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		log.Printf("Warning: could not parse font %s: %v", path, err)
		return
	}
	loaded = parsed
}

// ForSize returns a face of the given pixel size. Faces are cached since
// the UI re-derives sizes from the window dimensions every frame.
func ForSize(px int) font.Face {
	if px < 8 {
		px = 8
	}
	if loaded == nil {
		return basicfont.Face7x13
	}
	if face, ok := faces[px]; ok {
		return face
	}
	face := truetype.NewFace(loaded, &truetype.Options{Size: float64(px)})
	faces[px] = face
	return face
}
