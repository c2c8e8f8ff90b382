package domain

import "github.com/go-playground/validator/v10"

const (
	DefaultWatermarkText = "版权所有"
	DefaultFontSize      = 40
	DefaultOpacity       = 0.5
	DefaultPadding       = 20
	DefaultShadowOffsetX = 3
	DefaultShadowOffsetY = 3
	DefaultShadowBlur    = 3.0
	DefaultShadowOpacity = 0.7
	DefaultJPEGQuality   = 85
)

// ShadowOptions controls the blurred drop shadow rendered under the
// watermark text.
type ShadowOptions struct {
	OffsetX int
	OffsetY int
	Blur    float64 `validate:"gte=0"`
	Opacity float64 `validate:"gte=0,lte=1"`
}

// WatermarkOptions describes one run's watermark. Built once from config and
// flags, never mutated afterwards.
type WatermarkOptions struct {
	Text     string
	FontPath string
	FontSize int
	Opacity  float64 `validate:"gte=0,lte=1"`
	Padding  int     `validate:"gte=0"`
	// DownsizeTo bounds the larger output dimension; 0 disables downsizing.
	DownsizeTo int `validate:"gte=0"`
	Shadow     ShadowOptions
}

func DefaultOptions() WatermarkOptions {
	return WatermarkOptions{
		Text:     DefaultWatermarkText,
		FontSize: DefaultFontSize,
		Opacity:  DefaultOpacity,
		Padding:  DefaultPadding,
		Shadow: ShadowOptions{
			OffsetX: DefaultShadowOffsetX,
			OffsetY: DefaultShadowOffsetY,
			Blur:    DefaultShadowBlur,
			Opacity: DefaultShadowOpacity,
		},
	}
}

var validate = validator.New()

// Validate checks the numeric invariants (opacities in [0,1], non-negative
// padding, blur and downsize bound). Degenerate but harmless values such as
// an empty text or a zero font size pass.
func (o WatermarkOptions) Validate() error {
	return validate.Struct(o)
}
