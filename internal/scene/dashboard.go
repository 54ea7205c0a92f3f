package scene

import (
	"image"
	"image/color"

	"github.com/tabbrain/shotgen/internal/render"
	"github.com/tabbrain/shotgen/internal/render/layout"
)

const installURL = "https://tabbrain.app/install"

// Dashboard depicts the extension side panel next to a mockup of the
// user's open tabs.
func Dashboard() Scene {
	frame := image.Rect(0, 0, render.CanvasWidth, render.CanvasHeight)
	sidebar, main := layout.SplitVertical(layout.Inset(frame, 40), 400)
	main.Min.X += 40 // gutter between the panels

	var els []Element
	els = append(els,
		RoundedRect{Rect: sidebar, Fill: render.BGCard, Radius: 20},
		Logo{X: sidebar.Min.X + 20, Y: sidebar.Min.Y + 20, Size: 50},
		Label{Text: "TabBrain", X: sidebar.Min.X + 80, Y: sidebar.Min.Y + 30, Color: render.TextWhite, Size: 28},
	)

	features := []struct {
		Title, Desc string
		Color       color.RGBA
	}{
		{"Find Duplicates", "12 duplicates found", render.Red},
		{"Organize Windows", "8 windows to label", render.BrandBlue},
		{"Smart Grouping", "Auto-categorize tabs", render.Purple},
		{"Clean Bookmarks", "Organize 234 bookmarks", render.Green},
	}
	y := sidebar.Min.Y + 120
	for _, f := range features {
		card := image.Rect(sidebar.Min.X+20, y, sidebar.Max.X-20, y+100)
		els = append(els,
			RoundedRect{Rect: card, Fill: color.RGBA{R: 40, G: 40, B: 50, A: 0xFF}, Radius: 15},
			Dot{Rect: image.Rect(card.Min.X+20, y+30, card.Min.X+50, y+60), Fill: f.Color},
			Label{Text: f.Title, X: card.Min.X + 70, Y: y + 25, Color: render.TextWhite, Size: 20},
			Label{Text: f.Desc, X: card.Min.X + 70, Y: y + 55, Color: render.TextGray, Size: 14},
		)
		y += 120
	}

	// Install badge fills the space under the feature cards.
	els = append(els,
		QRBadge{Payload: installURL, X: sidebar.Min.X + 20, Y: y, Size: 100},
		Label{Text: "Scan to install", X: sidebar.Min.X + 140, Y: y + 40, Color: render.TextGray, Size: 14},
	)

	els = append(els,
		RoundedRect{Rect: main, Fill: color.RGBA{R: 25, G: 25, B: 35, A: 0xFF}, Radius: 20},
		Label{Text: "Your Browser Tabs", X: main.Min.X + 20, Y: main.Min.Y + 20, Color: render.TextGray, Size: 16},
	)

	tabs := []string{"GitHub - Project", "Stack Overflow", "React Docs", "YouTube", "Gmail", "Amazon Cart"}
	y = main.Min.Y + 60
	for _, tab := range tabs {
		row := image.Rect(main.Min.X+20, y, main.Max.X-20, y+60)
		els = append(els,
			RoundedRect{Rect: row, Fill: color.RGBA{R: 35, G: 35, B: 45, A: 0xFF}, Radius: 10},
			Dot{Rect: image.Rect(row.Min.X+20, y+18, row.Min.X+44, y+42), Fill: render.BrandBlue},
			Label{Text: tab, X: row.Min.X + 60, Y: y + 18, Color: render.TextWhite, Size: 18},
		)
		y += 80
	}

	els = append(els,
		Label{Text: "AI-Powered Tab Management", X: 600, Y: 620, Color: render.TextWhite, Size: 32},
		Label{Text: "Organize hundreds of tabs intelligently", X: 600, Y: 670, Color: render.TextGray, Size: 18},
	)

	return Scene{Name: "1-dashboard.png", Elements: els}
}
