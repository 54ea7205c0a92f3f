package scene

import (
	"image"
	"image/color"

	"github.com/tabbrain/shotgen/internal/render"
	"github.com/tabbrain/shotgen/internal/render/layout"
)

// Settings depicts the AI-provider picker and the privacy note.
func Settings() Scene {
	els := []Element{
		Logo{X: 540, Y: 40, Size: 60},
		Label{Text: "Flexible AI Integration", X: 620, Y: 50, Color: render.TextWhite, Size: 36},
		Label{Text: "Use any AI provider - cloud APIs or local models with Ollama", X: 440, Y: 110, Color: render.TextGray, Size: 18},
	}

	providers := []struct {
		Name, Models, Kind string
		Color              color.RGBA
	}{
		{"OpenAI", "GPT-4, GPT-3.5", "Cloud API", render.BrandBlue},
		{"Anthropic", "Claude 3.5, Claude 3", "Cloud API", render.Purple},
		{"Ollama", "Llama, Mistral, Qwen", "Local - Free", render.Green},
		{"OpenRouter", "100+ Models", "Cloud API", render.Orange},
	}

	cells := layout.Grid(image.Rect(100, 200, 1180, 460), 2, 2, 20)
	for i, p := range providers {
		card := cells[i]
		x, y := card.Min.X, card.Min.Y
		pill := image.Rect(card.Max.X-140, y+40, card.Max.X-20, y+80)
		els = append(els,
			RoundedRect{Rect: card, Fill: render.BGCard, Radius: 15},
			Dot{Rect: image.Rect(x+20, y+35, x+70, y+85), Fill: p.Color},
			Label{Text: p.Name, X: x + 90, Y: y + 30, Color: render.TextWhite, Size: 24},
			Label{Text: p.Models, X: x + 90, Y: y + 65, Color: render.TextGray, Size: 14},
			RoundedRect{Rect: pill, Fill: color.RGBA{R: 50, G: 50, B: 60, A: 0xFF}, Radius: 8},
			Label{Text: p.Kind, X: pill.Min.X + pill.Dx()/2, Y: y + 50, Color: render.TextWhite, Size: 14, Align: render.TextAlignCenter},
		)
	}

	els = append(els,
		RoundedRect{Rect: image.Rect(200, 620, 1080, 720), Fill: color.RGBA{R: 30, G: 40, B: 35, A: 0xFF}, Radius: 15},
		Label{Text: "Your data never leaves your browser", X: 250, Y: 645, Color: render.TextWhite, Size: 20},
		Label{Text: "AI processes locally or via your own API keys - Full privacy control", X: 250, Y: 680, Color: render.Green, Size: 16},
		QRBadge{Payload: installURL, X: 1100, Y: 620, Size: 100},
	)

	return Scene{Name: "5-settings.png", Elements: els}
}
