package domain

import (
	"path/filepath"
	"strings"
)

// ImageFormat is the format tag reported by image.Decode.
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
	FormatBMP  ImageFormat = "bmp"
	FormatTIFF ImageFormat = "tiff"
)

var supportedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".bmp":  {},
	".tiff": {},
}

// SupportedExtension reports whether the file's extension is on the
// processing allow-list. The match is case-insensitive.
func SupportedExtension(path string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// HasAlpha reports whether the format can carry an alpha channel. Images
// headed for alpha-less formats are flattened before encoding.
func (f ImageFormat) HasAlpha() bool {
	switch f {
	case FormatPNG, FormatTIFF:
		return true
	default:
		return false
	}
}
