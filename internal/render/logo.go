package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// LoadLogo decodes the logo bitmap at path. Callers treat failure as a
// degraded mode, not a fatal one.
func LoadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}
	return img, nil
}

// CompositeImage scales src to a size x size square with Catmull-Rom
// resampling, flattens any alpha against the canvas background, and pastes
// the result with its top-left corner at (x, y). The canvas itself carries
// no per-pixel alpha, so the blend happens on a background-filled tile
// before the opaque paste.
func (c *Canvas) CompositeImage(src image.Image, x, y, size int) {
	tile := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(tile, tile.Bounds(), &image.Uniform{C: c.bg}, image.Point{}, draw.Src)
	xdraw.CatmullRom.Scale(tile, tile.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	draw.Draw(c.img, image.Rect(x, y, x+size, y+size), tile, image.Point{}, draw.Src)
}

// BrandMark procedurally draws the TabBrain mark: a rounded brand-blue tile
// with three tab dots. It stands in when the logo bitmap is unavailable so a
// header never renders empty.
func BrandMark(size int) image.Image {
	mark := NewCanvas(size, size, color.RGBA{})

	inset := size / 12
	tile := image.Rect(inset, inset, size-inset, size-inset)
	mark.FillRoundedRect(tile, BrandBlue, size/5)

	dot := size / 8
	gap := (tile.Dx() - 3*dot) / 4
	y := size/2 - dot/2
	x := tile.Min.X + gap
	for i := 0; i < 3; i++ {
		mark.FillEllipse(image.Rect(x, y, x+dot, y+dot), TextWhite)
		x += dot + gap
	}
	return mark.Image()
}
