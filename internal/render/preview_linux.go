//go:build linux && cgo

package render

import (
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// PreviewFramebuffer blits the canvas to /dev/fb0 with nearest-neighbor
// scaling so a finished screenshot can be eyeballed on a headless box with a
// panel attached.
func PreviewFramebuffer(c *Canvas) error {
	dev, err := fb.Open("/dev/fb0")
	if err != nil {
		return err
	}
	defer dev.Close()

	bounds := dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	srcWidth, srcHeight := c.Size()
	for y := 0; y < fbHeight; y++ {
		sy := (y * srcHeight) / fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := (x * srcWidth) / fbWidth
			pixel := c.Image().RGBAAt(sx, sy)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}
