package scene

import (
	"fmt"
	"image"
	"image/color"

	"github.com/tabbrain/shotgen/internal/render"
	"github.com/tabbrain/shotgen/internal/render/layout"
)

// Windows depicts the window organizer: one card per browser window with the
// AI-suggested label and an accept button.
func Windows() Scene {
	els := []Element{
		Logo{X: 540, Y: 40, Size: 60},
		Label{Text: "Smart Window Labels", X: 620, Y: 50, Color: render.TextWhite, Size: 36},
		Label{Text: "AI automatically detects what you're working on in each window", X: 480, Y: 110, Color: render.TextGray, Size: 18},
	}

	windows := []struct {
		Name  string
		Topic string
		Tabs  []string
		Color color.RGBA
	}{
		{"Window 1", "React Development", []string{"React Docs", "GitHub PR", "Stack Overflow"}, render.BrandBlue},
		{"Window 2", "Online Shopping", []string{"Amazon", "eBay", "Best Buy"}, render.Green},
		{"Window 3", "Research Papers", []string{"Google Scholar", "arXiv", "ResearchGate"}, render.Purple},
		{"Window 4", "Entertainment", []string{"YouTube", "Netflix", "Spotify"}, render.Orange},
	}

	cells := layout.Grid(image.Rect(80, 180, 1220, 700), 2, 2, 40)
	for i, w := range windows {
		card := cells[i]
		x, y := card.Min.X, card.Min.Y
		els = append(els,
			RoundedRect{Rect: card, Fill: render.BGCard, Radius: 15},
			Label{Text: w.Name, X: x + 20, Y: y + 15, Color: render.TextGray, Size: 14},
			RoundedRect{Rect: image.Rect(x+20, y+45, card.Max.X-20, y+95), Fill: color.RGBA{R: 40, G: 40, B: 55, A: 0xFF}, Radius: 10},
			Label{Text: fmt.Sprintf("AI Suggests: %q", w.Topic), X: x + 40, Y: y + 58, Color: w.Color, Size: 20},
		)
		ty := y + 110
		for _, tab := range w.Tabs {
			els = append(els,
				Dot{Rect: image.Rect(x+30, ty+2, x+46, ty+18), Fill: color.RGBA{R: 50, G: 50, B: 60, A: 0xFF}},
				Label{Text: tab, X: x + 55, Y: ty, Color: render.TextWhite, Size: 14},
			)
			ty += 28
		}
		button := image.Rect(card.Max.X-190, card.Max.Y-45, card.Max.X-20, card.Max.Y-10)
		els = append(els,
			RoundedRect{Rect: button, Fill: w.Color, Radius: 8},
			Label{Text: "Accept", X: button.Min.X + button.Dx()/2, Y: button.Min.Y + 8, Color: render.TextWhite, Size: 16, Align: render.TextAlignCenter},
		)
	}

	return Scene{Name: "3-windows.png", Elements: els}
}
