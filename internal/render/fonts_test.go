package render

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFontResolver_FallsBackToBuiltin(t *testing.T) {
	r := NewFontResolver([]string{
		filepath.Join(t.TempDir(), "missing.ttf"),
		"/definitely/not/a/font.otf",
	})

	face := r.Face(28)
	if face == nil {
		t.Fatal("Face returned nil")
	}
	if face != basicfont.Face7x13 {
		t.Errorf("expected the built-in face when no candidate resolves")
	}
	if got := r.ResolvedPath(); got != "" {
		t.Errorf("ResolvedPath() = %q, want empty", got)
	}
}

func TestFontResolver_NoCandidates(t *testing.T) {
	r := NewFontResolver(nil)
	if r.Face(12) == nil {
		t.Fatal("Face returned nil with empty candidate list")
	}
}

func TestFontResolver_SkipsUnparseableFile(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "garbage.ttf")
	if err := os.WriteFile(bogus, []byte("this is not a font"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := NewFontResolver([]string{bogus})
	if face := r.Face(20); face != basicfont.Face7x13 {
		t.Errorf("expected built-in fallback past the unparseable candidate")
	}
	if got := r.ResolvedPath(); got != "" {
		t.Errorf("ResolvedPath() = %q, want empty", got)
	}
}

func TestFontResolver_CachesPerSize(t *testing.T) {
	r := NewFontResolver(nil)
	if r.Face(16) != r.Face(16) {
		t.Error("same size returned different faces")
	}
}

func TestDefaultFontCandidates_ExtraDirsFirst(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.ttf")
	if err := os.WriteFile(custom, []byte{0}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	candidates := DefaultFontCandidates(dir)
	if len(candidates) < 2 {
		t.Fatalf("got %d candidates, want injected path plus built-ins", len(candidates))
	}
	if candidates[0] != custom {
		t.Errorf("candidates[0] = %q, want injected %q", candidates[0], custom)
	}
}

func TestMeasureText_BuiltinFace(t *testing.T) {
	m := MeasureText("tabs", basicfont.Face7x13)
	if m.Width != 4*7 {
		t.Errorf("Width = %d, want %d", m.Width, 4*7)
	}
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %d, want > 0", m.Ascent)
	}
}
