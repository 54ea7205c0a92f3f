package scene

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/tabbrain/shotgen/internal/render"
)

// Duplicates depicts the duplicate-tab finder with per-group keep/close
// actions and a running total.
func Duplicates() Scene {
	els := []Element{
		Logo{X: 540, Y: 40, Size: 60},
		Label{Text: "Find & Remove Duplicates", X: 620, Y: 50, Color: render.TextWhite, Size: 36},
		Label{Text: "Instantly detect duplicate tabs and bookmarks across all windows", X: 540, Y: 110, Color: render.TextGray, Size: 18},
	}

	groups := []struct {
		URL     string
		Count   int
		Windows []string
	}{
		{"github.com/repo/issues", 3, []string{"Window 1", "Window 3", "Window 5"}},
		{"stackoverflow.com/questions/123", 2, []string{"Window 2", "Window 4"}},
		{"docs.react.dev/hooks", 4, []string{"Window 1", "Window 2", "Window 3", "Window 6"}},
	}

	total := 0
	y := 180
	for _, g := range groups {
		total += g.Count
		els = append(els,
			RoundedRect{Rect: image.Rect(100, y, 1180, y+150), Fill: render.BGCard, Radius: 15},
			Dot{Rect: image.Rect(130, y+20, 170, y+60), Fill: render.Red},
			Label{Text: strconv.Itoa(g.Count), X: 150, Y: y + 28, Color: render.TextWhite, Size: 20, Align: render.TextAlignCenter},
			Label{Text: g.URL, X: 200, Y: y + 25, Color: render.TextWhite, Size: 20},
			Label{Text: "Found in: " + strings.Join(g.Windows, ", "), X: 200, Y: y + 60, Color: render.TextGray, Size: 14},
			RoundedRect{Rect: image.Rect(900, y+90, 1050, y+130), Fill: render.Green, Radius: 8},
			Label{Text: "Keep First", X: 975, Y: y + 98, Color: render.TextWhite, Size: 14, Align: render.TextAlignCenter},
			RoundedRect{Rect: image.Rect(1060, y+90, 1160, y+130), Fill: render.Red, Radius: 8},
			Label{Text: "Close All", X: 1110, Y: y + 98, Color: render.TextWhite, Size: 14, Align: render.TextAlignCenter},
		)
		y += 170
	}

	els = append(els,
		RoundedRect{Rect: image.Rect(100, 700, 400, 760), Fill: render.BrandBlue, Radius: 10},
		Label{Text: fmt.Sprintf("%d Duplicates Found", total), X: 250, Y: 715, Color: render.TextWhite, Size: 22, Align: render.TextAlignCenter},
	)

	return Scene{Name: "2-duplicates.png", Elements: els}
}
