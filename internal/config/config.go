package config

import (
	"fmt"
	"os"

	"iris/internal/domain"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries the default watermark settings. Values come from an
// optional YAML file and IRIS_* environment variables; CLI flags override
// them per run.
type Config struct {
	Watermark struct {
		Text       string  `yaml:"text" env:"IRIS_TEXT" env-default:"版权所有"`
		Font       string  `yaml:"font" env:"IRIS_FONT"`
		FontSize   int     `yaml:"font_size" env:"IRIS_FONT_SIZE" env-default:"40"`
		Opacity    float64 `yaml:"opacity" env:"IRIS_OPACITY" env-default:"0.5"`
		Padding    int     `yaml:"padding" env:"IRIS_PADDING" env-default:"20"`
		DownsizeTo int     `yaml:"downsize_to" env:"IRIS_DOWNSIZE_TO" env-default:"0"`
	} `yaml:"watermark"`
	Shadow struct {
		OffsetX int     `yaml:"offset_x" env:"IRIS_SHADOW_OFFSET_X" env-default:"3"`
		OffsetY int     `yaml:"offset_y" env:"IRIS_SHADOW_OFFSET_Y" env-default:"3"`
		Blur    float64 `yaml:"blur" env:"IRIS_SHADOW_BLUR" env-default:"3"`
		Opacity float64 `yaml:"opacity" env:"IRIS_SHADOW_OPACITY" env-default:"0.7"`
	} `yaml:"shadow"`
}

// Load reads the config file when path is non-empty (or IRIS_CONFIG points
// at one) and falls back to environment variables and built-in defaults
// otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("IRIS_CONFIG")
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	return &cfg, nil
}

// Options converts the loaded defaults into per-run watermark options.
func (c *Config) Options() domain.WatermarkOptions {
	return domain.WatermarkOptions{
		Text:       c.Watermark.Text,
		FontPath:   c.Watermark.Font,
		FontSize:   c.Watermark.FontSize,
		Opacity:    c.Watermark.Opacity,
		Padding:    c.Watermark.Padding,
		DownsizeTo: c.Watermark.DownsizeTo,
		Shadow: domain.ShadowOptions{
			OffsetX: c.Shadow.OffsetX,
			OffsetY: c.Shadow.OffsetY,
			Blur:    c.Shadow.Blur,
			Opacity: c.Shadow.Opacity,
		},
	}
}
