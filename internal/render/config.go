package render

import "image/color"

// Logical canvas size shared by every screenshot.
const (
	CanvasWidth  = 1280
	CanvasHeight = 800
)

// TabBrain marketing palette.
var (
	BGDark     = color.RGBA{R: 15, G: 15, B: 20, A: 0xFF}
	BGCard     = color.RGBA{R: 30, G: 30, B: 40, A: 0xFF}
	BrandBlue = color.RGBA{R: 59, G: 130, B: 246, A: 0xFF}
	// BrandLight completes the brand palette for future mockups; no current
	// scene draws it.
	BrandLight = color.RGBA{R: 96, G: 165, B: 250, A: 0xFF}
	TextWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}
	TextGray   = color.RGBA{R: 156, G: 163, B: 175, A: 0xFF}
	Green      = color.RGBA{R: 34, G: 197, B: 94, A: 0xFF}
	Red        = color.RGBA{R: 239, G: 68, B: 68, A: 0xFF}
	Purple     = color.RGBA{R: 168, G: 85, B: 247, A: 0xFF}
	Orange     = color.RGBA{R: 249, G: 115, B: 22, A: 0xFF}
)
