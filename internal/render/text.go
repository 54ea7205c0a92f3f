package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextMetrics describes measured text extents in pixels.
type TextMetrics struct {
	Width   int
	Ascent  int
	Descent int
}

// MeasureText reports the extents of text under face.
func MeasureText(text string, face font.Face) TextMetrics {
	drawer := &font.Drawer{Face: face}
	m := face.Metrics()
	return TextMetrics{
		Width:   drawer.MeasureString(text).Ceil(),
		Ascent:  m.Ascent.Ceil(),
		Descent: m.Descent.Ceil(),
	}
}

// DrawText renders text with a top anchor at y. For X, align controls how x
// is interpreted: the left edge, the center, or the right edge of the run.
func (c *Canvas) DrawText(text string, x, y int, fill color.RGBA, face font.Face, align TextAlign) TextMetrics {
	metrics := MeasureText(text, face)
	switch align {
	case TextAlignCenter:
		x -= metrics.Width / 2
	case TextAlignRight:
		x -= metrics.Width
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: fill},
		Face: face,
		Dot:  fixed.P(x, y+metrics.Ascent),
	}
	drawer.DrawString(text)
	return metrics
}
