package processor

import (
	"image"
	"image/color"

	"iris/internal/domain"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype/truetype"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Compositor applies one run's watermark to individual images. The font is
// parsed once at construction and shared across files.
type Compositor struct {
	opts   domain.WatermarkOptions
	font   *truetype.Font
	logger *zlog.Zerolog
}

func New(opts domain.WatermarkOptions, logger *zlog.Zerolog) (*Compositor, error) {
	fontPath, err := ResolveFont(opts.FontPath)
	if err != nil {
		return nil, err
	}

	f, err := LoadFont(fontPath)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("font", fontPath).Msg("Font loaded")

	return &Compositor{
		opts:   opts,
		font:   f,
		logger: logger,
	}, nil
}

// Apply watermarks the image at inputPath and writes the result to
// outputPath in the source file's format, creating parent directories as
// needed. Any decode, render or encode error is returned to the caller.
func (c *Compositor) Apply(inputPath, outputPath string) error {
	img, format, err := decodeFile(inputPath)
	if err != nil {
		return err
	}

	canvas := imaging.Clone(img)
	if c.opts.DownsizeTo > 0 {
		canvas = downsize(canvas, c.opts.DownsizeTo)
	}

	face := truetype.NewFace(c.font, &truetype.Options{
		Size:    float64(c.opts.FontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	textWidth, textHeight, ascent := measure(face, c.opts.Text)
	bounds := canvas.Bounds()
	pos := anchor(bounds.Dx(), bounds.Dy(), textWidth, textHeight, c.opts.Padding)

	c.logger.Debug().
		Str("path", inputPath).
		Str("format", string(format)).
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Int("anchor_x", pos.X).
		Int("anchor_y", pos.Y).
		Msg("Rendering watermark")

	shadowPos := pos.Add(image.Pt(c.opts.Shadow.OffsetX, c.opts.Shadow.OffsetY))
	shadow := renderTextLayer(bounds, face, c.opts.Text, shadowPos, ascent,
		color.NRGBA{A: alpha8(c.opts.Shadow.Opacity)})
	if c.opts.Shadow.Blur > 0 {
		shadow = imaging.Blur(shadow, c.opts.Shadow.Blur)
	}

	text := renderTextLayer(bounds, face, c.opts.Text, pos, ascent,
		color.NRGBA{R: 255, G: 255, B: 255, A: alpha8(c.opts.Opacity)})

	out := imaging.Overlay(canvas, shadow, image.Pt(0, 0), 1.0)
	out = imaging.Overlay(out, text, image.Pt(0, 0), 1.0)

	final := image.Image(out)
	if !format.HasAlpha() {
		final = flatten(out)
	}

	return encodeFile(outputPath, final, format)
}

// anchor places the text box in the bottom-right corner. The result may be
// negative when the text is wider or taller than the image; it is not
// clamped.
func anchor(width, height, textWidth, textHeight, padding int) image.Point {
	return image.Pt(width-textWidth-padding, height-textHeight-padding)
}

// downsize scales the image so its larger dimension equals max, preserving
// aspect ratio. Images already within bounds are returned untouched; it
// never upscales.
func downsize(img *image.NRGBA, max int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= max && b.Dy() <= max {
		return img
	}
	return imaging.Fit(img, max, max, imaging.Lanczos)
}

func measure(face font.Face, text string) (width, height, ascent int) {
	m := face.Metrics()
	width = font.MeasureString(face, text).Ceil()
	height = (m.Ascent + m.Descent).Ceil()
	return width, height, m.Ascent.Ceil()
}

// renderTextLayer draws the text onto a fresh transparent layer the size of
// the target image. The drawer's dot sits on the baseline, so the anchor is
// shifted down by the face ascent.
func renderTextLayer(bounds image.Rectangle, face font.Face, text string, at image.Point, ascent int, col color.Color) *image.NRGBA {
	layer := image.NewNRGBA(bounds)
	d := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(at.X, at.Y+ascent),
	}
	d.DrawString(text)
	return layer
}

// flatten forces every pixel opaque for formats without an alpha channel.
func flatten(img *image.NRGBA) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

func alpha8(opacity float64) uint8 {
	return uint8(opacity * 255)
}
