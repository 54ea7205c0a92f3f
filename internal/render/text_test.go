package render

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestDrawText_Alignment(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}

	tests := []struct {
		name  string
		align TextAlign
		// Expected horizontal extent of the run given anchor x=100.
		wantMinX, wantMaxX int
	}{
		{"left", TextAlignLeft, 100, 100 + 4*7},
		{"center", TextAlignCenter, 100 - 2*7, 100 + 2*7},
		{"right", TextAlignRight, 100 - 4*7, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(200, 40, testBG)
			c.DrawText("test", 100, 10, white, basicfont.Face7x13, tt.align)

			minX, maxX := -1, -1
			for x := 0; x < 200; x++ {
				for y := 0; y < 40; y++ {
					if c.Image().RGBAAt(x, y) == white {
						if minX == -1 {
							minX = x
						}
						maxX = x
					}
				}
			}
			if minX == -1 {
				t.Fatal("no text pixels drawn")
			}
			if minX < tt.wantMinX || maxX >= tt.wantMaxX {
				t.Errorf("text spans [%d,%d], want within [%d,%d)", minX, maxX, tt.wantMinX, tt.wantMaxX)
			}
		})
	}
}

func TestDrawText_TopAnchor(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}
	c := NewCanvas(100, 60, testBG)
	m := c.DrawText("Tg", 10, 20, white, basicfont.Face7x13, TextAlignLeft)

	// Nothing above the anchor line.
	for y := 0; y < 20; y++ {
		for x := 0; x < 100; x++ {
			if c.Image().RGBAAt(x, y) == white {
				t.Fatalf("pixel above top anchor at (%d,%d)", x, y)
			}
		}
	}
	if m.Width != 2*7 {
		t.Errorf("metrics width = %d, want 14", m.Width)
	}
}
