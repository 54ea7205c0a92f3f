package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is an offscreen RGBA surface that one scene draws into before
// serialization. It remembers its background color so alpha sources can be
// flattened against it.
type Canvas struct {
	img *image.RGBA
	bg  color.RGBA
}

// NewCanvas returns a width x height canvas fully filled with bg.
func NewCanvas(width, height int, bg color.RGBA) *Canvas {
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		bg:  bg,
	}
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return c
}

// Image exposes the backing raster for encoding and tests.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect paints rect with a solid color.
func (c *Canvas) FillRect(rect image.Rectangle, fill color.RGBA) {
	draw.Draw(c.img, rect.Canon(), &image.Uniform{C: fill}, image.Point{}, draw.Src)
}

// FillEllipse paints the ellipse inscribed in rect. A pixel belongs to the
// ellipse when its center lies inside the normalized unit circle.
func (c *Canvas) FillEllipse(rect image.Rectangle, fill color.RGBA) {
	rect = rect.Canon()
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(rect.Min.X) + rx
	cy := float64(rect.Min.Y) + ry

	bounds := c.img.Bounds()
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		if py < bounds.Min.Y || py >= bounds.Max.Y {
			continue
		}
		for px := rect.Min.X; px < rect.Max.X; px++ {
			if px < bounds.Min.X || px >= bounds.Max.X {
				continue
			}
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1.0 {
				c.img.SetRGBA(px, py, fill)
			}
		}
	}
}

// FillRoundedRect paints rect with circular corners of the given radius.
// The shape is composed from two straight-edge rectangles plus four corner
// circles. The radius is clamped to half the shorter side so the
// decomposition never degenerates.
func (c *Canvas) FillRoundedRect(rect image.Rectangle, fill color.RGBA, radius int) {
	rect = rect.Canon()
	if radius < 0 {
		radius = 0
	}
	if max := minInt(rect.Dx(), rect.Dy()) / 2; radius > max {
		radius = max
	}
	if radius == 0 {
		c.FillRect(rect, fill)
		return
	}

	// Straight segments.
	c.FillRect(image.Rect(rect.Min.X+radius, rect.Min.Y, rect.Max.X-radius, rect.Max.Y), fill)
	c.FillRect(image.Rect(rect.Min.X, rect.Min.Y+radius, rect.Max.X, rect.Max.Y-radius), fill)

	// Corner circles, each inscribed in a 2r x 2r box at a corner.
	d := radius * 2
	c.FillEllipse(image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+d, rect.Min.Y+d), fill)
	c.FillEllipse(image.Rect(rect.Max.X-d, rect.Min.Y, rect.Max.X, rect.Min.Y+d), fill)
	c.FillEllipse(image.Rect(rect.Min.X, rect.Max.Y-d, rect.Min.X+d, rect.Max.Y), fill)
	c.FillEllipse(image.Rect(rect.Max.X-d, rect.Max.Y-d, rect.Max.X, rect.Max.Y), fill)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
