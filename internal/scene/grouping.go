package scene

import (
	"fmt"
	"image"
	"image/color"

	"github.com/tabbrain/shotgen/internal/render"
)

// Grouping depicts tabs auto-sorted into colored category groups.
func Grouping() Scene {
	els := []Element{
		Logo{X: 540, Y: 40, Size: 60},
		Label{Text: "Auto Tab Grouping", X: 620, Y: 50, Color: render.TextWhite, Size: 36},
		Label{Text: "Automatically organize tabs into Chrome tab groups by category", X: 460, Y: 110, Color: render.TextGray, Size: 18},
	}

	categories := []struct {
		Name  string
		Color color.RGBA
		Tabs  []string
	}{
		{"Technology", render.BrandBlue, []string{"GitHub", "Stack Overflow", "Dev.to", "MDN Docs"}},
		{"Shopping", render.Green, []string{"Amazon", "eBay", "Etsy"}},
		{"Social", render.Purple, []string{"Twitter", "LinkedIn", "Reddit"}},
		{"News", render.Red, []string{"CNN", "BBC", "TechCrunch"}},
		{"Entertainment", render.Orange, []string{"YouTube", "Netflix", "Twitch"}},
	}

	y := 180
	for _, cat := range categories {
		els = append(els,
			RoundedRect{Rect: image.Rect(100, y, 1180, y+45), Fill: cat.Color, Radius: 8},
			Label{Text: cat.Name, X: 130, Y: y + 10, Color: render.TextWhite, Size: 20},
			Label{Text: fmt.Sprintf("%d tabs", len(cat.Tabs)), X: 1050, Y: y + 12, Color: render.TextWhite, Size: 14},
		)
		x := 120
		for _, tab := range cat.Tabs {
			els = append(els,
				RoundedRect{Rect: image.Rect(x, y+55, x+150, y+90), Fill: render.BGCard, Radius: 6},
				Label{Text: tab, X: x + 15, Y: y + 63, Color: render.TextWhite, Size: 14},
			)
			x += 165
		}
		y += 115
	}

	els = append(els,
		RoundedRect{Rect: image.Rect(490, 720, 790, 770), Fill: render.BrandBlue, Radius: 10},
		Label{Text: "Create All Groups", X: 640, Y: 733, Color: render.TextWhite, Size: 22, Align: render.TextAlignCenter},
	)

	return Scene{Name: "4-grouping.png", Elements: els}
}
