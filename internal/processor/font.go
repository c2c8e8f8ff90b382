package processor

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/golang/freetype/truetype"
)

// ErrNoFont is returned when no explicit font is given and none of the
// well-known system font locations exist.
var ErrNoFont = errors.New("no usable font found; pass --font with a TrueType font path")

// Probe order favors CJK-capable fonts since the default watermark text is
// CJK.
var systemFontPaths = map[string][]string{
	"darwin": {
		"/System/Library/Fonts/STHeiti Medium.ttc",
		"/System/Library/Fonts/PingFang.ttc",
	},
	"linux": {
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/wqy-microhei/wqy-microhei.ttc",
	},
	"windows": {
		`C:\Windows\Fonts\msyh.ttc`,
	},
}

// ResolveFont returns the font file to use: the explicit path when given,
// otherwise the first existing entry from the platform probe list.
func ResolveFont(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("font %s: %w", path, err)
		}
		return path, nil
	}

	for _, candidate := range systemFontPaths[runtime.GOOS] {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", ErrNoFont
}

// LoadFont reads and parses a TrueType font file. Collections (.ttc) yield
// their first font.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}
