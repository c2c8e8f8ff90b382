package processor

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveFontExplicitPath(t *testing.T) {
	path := writeTestFont(t)

	got, err := ResolveFont(path)
	if err != nil {
		t.Fatalf("ResolveFont: %v", err)
	}
	if got != path {
		t.Errorf("expected %q, got %q", path, got)
	}
}

func TestResolveFontMissingExplicitPath(t *testing.T) {
	if _, err := ResolveFont(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Fatal("expected error for a missing explicit font path")
	}
}

func TestResolveFontProbesSystemPaths(t *testing.T) {
	orig := systemFontPaths
	defer func() { systemFontPaths = orig }()

	path := writeTestFont(t)
	systemFontPaths = map[string][]string{
		runtime.GOOS: {
			filepath.Join(t.TempDir(), "absent.ttc"),
			path,
		},
	}

	got, err := ResolveFont("")
	if err != nil {
		t.Fatalf("ResolveFont: %v", err)
	}
	if got != path {
		t.Errorf("expected probe to find %q, got %q", path, got)
	}
}

func TestResolveFontNoFontAvailable(t *testing.T) {
	orig := systemFontPaths
	defer func() { systemFontPaths = orig }()

	systemFontPaths = map[string][]string{
		runtime.GOOS: {filepath.Join(t.TempDir(), "absent.ttc")},
	}

	_, err := ResolveFont("")
	if !errors.Is(err, ErrNoFont) {
		t.Fatalf("expected ErrNoFont, got %v", err)
	}
}

func TestLoadFont(t *testing.T) {
	f, err := LoadFont(writeTestFont(t))
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f == nil {
		t.Fatal("expected a parsed font")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.ttf")
	if err := os.WriteFile(path, []byte("definitely not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFont(path); err == nil {
		t.Fatal("expected parse error")
	}
}
