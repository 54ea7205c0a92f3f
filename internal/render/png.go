package render

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG serializes the canvas to path, creating parent directories as
// needed. The canvas is fully opaque, so the encoder emits 24-bit RGB.
func WritePNG(c *Canvas, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
