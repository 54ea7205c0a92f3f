package render

import (
	"image"
	"image/color"
	"testing"
)

var (
	testBG   = color.RGBA{R: 15, G: 15, B: 20, A: 0xFF}
	testFill = color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}
)

func TestNewCanvas_FilledWithBackground(t *testing.T) {
	c := NewCanvas(64, 48, testBG)

	w, h := c.Size()
	if w != 64 || h != 48 {
		t.Fatalf("Size() = %dx%d, want 64x48", w, h)
	}
	for _, p := range []image.Point{{0, 0}, {63, 0}, {0, 47}, {63, 47}, {32, 24}} {
		if got := c.Image().RGBAAt(p.X, p.Y); got != testBG {
			t.Errorf("pixel %v = %v, want background %v", p, got, testBG)
		}
	}
}

// roundedRectContains is the analytic oracle for the rounded-rect
// decomposition: two straight bands plus four corner discs, membership
// decided at pixel centers exactly like FillEllipse does.
func roundedRectContains(rect image.Rectangle, radius, px, py int) bool {
	if px >= rect.Min.X+radius && px < rect.Max.X-radius &&
		py >= rect.Min.Y && py < rect.Max.Y {
		return true
	}
	if px >= rect.Min.X && px < rect.Max.X &&
		py >= rect.Min.Y+radius && py < rect.Max.Y-radius {
		return true
	}
	r := float64(radius)
	centers := []struct{ x, y float64 }{
		{float64(rect.Min.X) + r, float64(rect.Min.Y) + r},
		{float64(rect.Max.X) - r, float64(rect.Min.Y) + r},
		{float64(rect.Min.X) + r, float64(rect.Max.Y) - r},
		{float64(rect.Max.X) - r, float64(rect.Max.Y) - r},
	}
	for _, cc := range centers {
		dx := (float64(px) + 0.5 - cc.x) / r
		dy := (float64(py) + 0.5 - cc.y) / r
		if dx*dx+dy*dy <= 1.0 {
			return true
		}
	}
	return false
}

func TestFillRoundedRect_MatchesOutline(t *testing.T) {
	tests := []struct {
		name   string
		rect   image.Rectangle
		radius int
	}{
		{"typical card", image.Rect(10, 10, 110, 70), 15},
		{"small radius", image.Rect(5, 5, 95, 35), 6},
		{"radius at half height", image.Rect(20, 20, 120, 60), 20},
		{"zero radius", image.Rect(10, 10, 50, 50), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(140, 90, testBG)
			c.FillRoundedRect(tt.rect, testFill, tt.radius)

			for py := 0; py < 90; py++ {
				for px := 0; px < 140; px++ {
					filled := c.Image().RGBAAt(px, py) == testFill
					want := roundedRectContains(tt.rect, tt.radius, px, py)
					if filled != want {
						t.Fatalf("pixel (%d,%d): filled=%v, want %v", px, py, filled, want)
					}
				}
			}
		})
	}
}

func TestFillRoundedRect_NoSeamGaps(t *testing.T) {
	rect := image.Rect(10, 10, 110, 70)
	c := NewCanvas(140, 90, testBG)
	c.FillRoundedRect(rect, testFill, 15)

	// Every pixel strictly inside the straight-edge inset must be filled:
	// a gap there would mean the band/disc pieces do not meet.
	for py := rect.Min.Y + 15; py < rect.Max.Y-15; py++ {
		for px := rect.Min.X + 1; px < rect.Max.X-1; px++ {
			if c.Image().RGBAAt(px, py) != testFill {
				t.Fatalf("gap at (%d,%d)", px, py)
			}
		}
	}

	// Edge midpoints sit on the straight segments.
	midX := (rect.Min.X + rect.Max.X) / 2
	midY := (rect.Min.Y + rect.Max.Y) / 2
	for _, p := range []image.Point{
		{midX, rect.Min.Y}, {midX, rect.Max.Y - 1},
		{rect.Min.X, midY}, {rect.Max.X - 1, midY},
	} {
		if c.Image().RGBAAt(p.X, p.Y) != testFill {
			t.Errorf("edge midpoint %v not filled", p)
		}
	}
}

func TestFillRoundedRect_OversizeRadiusClamped(t *testing.T) {
	rect := image.Rect(10, 10, 70, 50) // 60x40, so the radius clamps to 20
	c := NewCanvas(90, 70, testBG)
	c.FillRoundedRect(rect, testFill, 100)

	for py := 0; py < 70; py++ {
		for px := 0; px < 90; px++ {
			filled := c.Image().RGBAAt(px, py) == testFill
			want := roundedRectContains(rect, 20, px, py)
			if filled != want {
				t.Fatalf("pixel (%d,%d): filled=%v, want %v (clamped radius 20)", px, py, filled, want)
			}
		}
	}
}

func TestFillEllipse_StaysInBounds(t *testing.T) {
	c := NewCanvas(40, 40, testBG)
	rect := image.Rect(10, 14, 30, 26)
	c.FillEllipse(rect, testFill)

	if c.Image().RGBAAt(20, 20) != testFill {
		t.Error("ellipse center not filled")
	}
	// Bounding-box corners lie outside the inscribed ellipse.
	for _, p := range []image.Point{
		{rect.Min.X, rect.Min.Y}, {rect.Max.X - 1, rect.Min.Y},
		{rect.Min.X, rect.Max.Y - 1}, {rect.Max.X - 1, rect.Max.Y - 1},
	} {
		if c.Image().RGBAAt(p.X, p.Y) != testBG {
			t.Errorf("bbox corner %v filled, want background", p)
		}
	}
}

func TestFillEllipse_ClipsToCanvas(t *testing.T) {
	c := NewCanvas(20, 20, testBG)
	// Must not panic when the bbox extends past the canvas.
	c.FillEllipse(image.Rect(-10, -10, 30, 30), testFill)
	if c.Image().RGBAAt(10, 10) != testFill {
		t.Error("center not filled")
	}
}
