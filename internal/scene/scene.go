// Package scene models each screenshot as a display list of typed records
// built by a per-mockup function, rendered by a single generic routine. The
// mockup-specific content stays pure data.
package scene

import (
	"image"
	"image/color"

	"github.com/tabbrain/shotgen/internal/render"
)

// Element is one drawable record in a scene's display list. Elements draw in
// slice order; later elements paint over earlier ones.
type Element interface {
	element()
}

// RoundedRect is a filled rectangle with circular corners.
type RoundedRect struct {
	Rect   image.Rectangle
	Fill   color.RGBA
	Radius int
}

// Dot is a filled ellipse marker inscribed in Rect.
type Dot struct {
	Rect image.Rectangle
	Fill color.RGBA
}

// Label is a single text run anchored at its top edge.
type Label struct {
	Text  string
	X, Y  int
	Color color.RGBA
	Size  float64
	Align render.TextAlign
}

// Logo places the product logo as a square of Size pixels.
type Logo struct {
	X, Y, Size int
}

// QRBadge encodes Payload as a QR code square of Size pixels.
type QRBadge struct {
	Payload    string
	X, Y, Size int
}

func (RoundedRect) element() {}
func (Dot) element()         {}
func (Label) element()       {}
func (Logo) element()        {}
func (QRBadge) element()     {}

// Scene is one complete mockup: the output file name plus its display list.
type Scene struct {
	Name     string
	Elements []Element
}

// All returns the five mockups in generation order.
func All() []Scene {
	return []Scene{
		Dashboard(),
		Duplicates(),
		Windows(),
		Grouping(),
		Settings(),
	}
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Renderer walks display lists onto fresh canvases. Logo may be nil, in
// which case Logo elements are skipped and the scene renders without a
// header mark.
type Renderer struct {
	Fonts  *render.FontResolver
	Logo   image.Image
	Logger Logger
}

// Render draws the scene onto a new canvas. Degraded elements (missing logo,
// QR encode failure) are logged and skipped; rendering itself cannot fail.
func (r *Renderer) Render(s Scene) *render.Canvas {
	canvas := render.NewCanvas(render.CanvasWidth, render.CanvasHeight, render.BGDark)
	for _, el := range s.Elements {
		switch e := el.(type) {
		case RoundedRect:
			canvas.FillRoundedRect(e.Rect, e.Fill, e.Radius)
		case Dot:
			canvas.FillEllipse(e.Rect, e.Fill)
		case Label:
			canvas.DrawText(e.Text, e.X, e.Y, e.Color, r.Fonts.Face(e.Size), e.Align)
		case Logo:
			if r.Logo == nil {
				continue
			}
			canvas.CompositeImage(r.Logo, e.X, e.Y, e.Size)
		case QRBadge:
			if err := canvas.DrawQRCode(e.Payload, e.X, e.Y, e.Size); err != nil {
				if r.Logger != nil {
					r.Logger.Errorf("scene", "qr badge skipped in %q: %v", s.Name, err)
				}
			}
		}
	}
	return canvas
}
