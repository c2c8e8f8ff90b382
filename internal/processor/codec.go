package processor

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"iris/internal/domain"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// decodeFile decodes the image and reports its format tag. Importing the
// jpeg, png, bmp and tiff packages registers their decoders.
func decodeFile(path string) (image.Image, domain.ImageFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, domain.ImageFormat(format), nil
}

// encodeFile writes img to path in the given format, creating parent
// directories as needed. An unknown format tag falls back to PNG. A failed
// encode removes the partial file instead of leaving it behind.
func encodeFile(path string, img image.Image, format domain.ImageFormat) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	switch format {
	case domain.FormatJPEG:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: domain.DefaultJPEGQuality})
	case domain.FormatBMP:
		err = bmp.Encode(f, img)
	case domain.FormatTIFF:
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
