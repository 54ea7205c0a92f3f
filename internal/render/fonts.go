package render

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontResolver turns point sizes into usable faces. It walks an ordered
// candidate list of font files, keeps the first one that parses, and caches
// one face per requested size. When no candidate loads it falls back to the
// built-in bitmap face, so Face never returns nil.
type FontResolver struct {
	mu         sync.Mutex
	candidates []string
	scanned    bool
	ttf        *truetype.Font
	otf        *opentype.Font
	path       string
	faces      map[float64]font.Face
}

// NewFontResolver builds a resolver over the given candidate font files,
// tried in order.
func NewFontResolver(candidates []string) *FontResolver {
	return &FontResolver{
		candidates: candidates,
		faces:      make(map[float64]font.Face),
	}
}

// DefaultFontCandidates lists well-known UI font locations across the
// platforms the generator runs on, optionally preceded by any .ttf/.otf
// files found in extraDirs.
func DefaultFontCandidates(extraDirs ...string) []string {
	var out []string
	for _, dir := range extraDirs {
		for _, pattern := range []string{"*.ttf", "*.otf"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				continue
			}
			out = append(out, matches...)
		}
	}
	out = append(out,
		`C:\Windows\Fonts\segoeui.ttf`,
		`C:\Windows\Fonts\arial.ttf`,
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
	)
	return out
}

// Face returns a face at the given point size (72 DPI, so points map 1:1 to
// pixels). Resolution never fails; the built-in face is the terminal
// fallback.
func (r *FontResolver) Face(size float64) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()

	if face, ok := r.faces[size]; ok {
		return face
	}
	if !r.scanned {
		r.scan()
		r.scanned = true
	}

	face := r.newFace(size)
	r.faces[size] = face
	return face
}

// ResolvedPath reports which candidate was loaded, or "" for the built-in
// fallback.
func (r *FontResolver) ResolvedPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

func (r *FontResolver) scan() {
	for _, path := range r.candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if strings.EqualFold(filepath.Ext(path), ".otf") {
			f, perr := opentype.Parse(data)
			if perr != nil {
				continue
			}
			r.otf = f
		} else {
			f, perr := truetype.Parse(data)
			if perr != nil {
				continue
			}
			r.ttf = f
		}
		r.path = path
		return
	}
}

func (r *FontResolver) newFace(size float64) font.Face {
	switch {
	case r.ttf != nil:
		return truetype.NewFace(r.ttf, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	case r.otf != nil:
		face, err := opentype.NewFace(r.otf, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}
