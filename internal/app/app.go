// Package app runs the screenshot batch: resolve fonts, load the logo,
// render each scene in order, write the PNGs.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tabbrain/shotgen/internal/render"
	"github.com/tabbrain/shotgen/internal/scene"
)

type App struct {
	OutDir   string
	LogoPath string
	FontDirs []string
	NoLogo   bool
	Preview  bool
	Logger   Logger
}

func New() *App {
	return &App{
		OutDir:   "screenshots",
		LogoPath: "public/icons/icon128.png",
		Logger:   NoopLogger{},
	}
}

// Run renders all scenes in their fixed order. Logo and font failures only
// degrade the output; a PNG write failure aborts the batch.
func (a *App) Run() error {
	if err := os.MkdirAll(a.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fonts := render.NewFontResolver(render.DefaultFontCandidates(a.FontDirs...))

	renderer := &scene.Renderer{Fonts: fonts, Logger: a.Logger}
	if !a.NoLogo {
		logo, err := render.LoadLogo(a.LogoPath)
		if err != nil {
			a.Logger.Errorf("app", "logo unavailable, using generated mark: %v", err)
			logo = render.BrandMark(128)
		}
		renderer.Logo = logo
	}

	var last *render.Canvas
	for _, s := range scene.All() {
		canvas := renderer.Render(s)
		path := filepath.Join(a.OutDir, s.Name)
		if err := render.WritePNG(canvas, path); err != nil {
			return fmt.Errorf("write %s: %w", s.Name, err)
		}
		a.Logger.Infof("app", "rendered %s (font %q)", s.Name, fonts.ResolvedPath())
		fmt.Printf("Created %s\n", s.Name)
		last = canvas
	}
	fmt.Printf("\nAll screenshots created in %s/\n", filepath.Clean(a.OutDir))

	if a.Preview && last != nil {
		if err := render.PreviewFramebuffer(last); err != nil {
			a.Logger.Errorf("app", "framebuffer preview failed: %v", err)
		}
	}
	return nil
}
