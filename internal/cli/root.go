package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"iris/internal/batch"
	"iris/internal/config"
	"iris/internal/domain"
	"iris/internal/processor"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"
)

type rootFlags struct {
	input      string
	output     string
	configPath string
	verbose    bool

	text          string
	fontPath      string
	fontSize      int
	opacity       float64
	padding       int
	downsizeTo    int
	shadowOffsetX int
	shadowOffsetY int
	shadowBlur    float64
	shadowOpacity float64
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "iris",
		Short:         "Batch-apply a text watermark to every image in a folder tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "folder containing the original images")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "folder for the watermarked images")
	cmd.Flags().StringVarP(&flags.text, "watermark", "w", domain.DefaultWatermarkText, "watermark text")
	cmd.Flags().StringVarP(&flags.fontPath, "font", "f", "", "path to a TrueType font (default: probe system fonts)")
	cmd.Flags().IntVar(&flags.fontSize, "font-size", domain.DefaultFontSize, "watermark font size")
	cmd.Flags().Float64Var(&flags.opacity, "opacity", domain.DefaultOpacity, "watermark opacity, 0 to 1")
	cmd.Flags().IntVar(&flags.padding, "padding", domain.DefaultPadding, "padding from the bottom-right corner in pixels")
	cmd.Flags().IntVar(&flags.downsizeTo, "downsize-to", 0, "bound the larger output dimension, 0 keeps the original size")
	cmd.Flags().IntVar(&flags.shadowOffsetX, "shadow-offset-x", domain.DefaultShadowOffsetX, "shadow horizontal offset in pixels")
	cmd.Flags().IntVar(&flags.shadowOffsetY, "shadow-offset-y", domain.DefaultShadowOffsetY, "shadow vertical offset in pixels")
	cmd.Flags().Float64Var(&flags.shadowBlur, "shadow-blur", domain.DefaultShadowBlur, "shadow blur radius")
	cmd.Flags().Float64Var(&flags.shadowOpacity, "shadow-opacity", domain.DefaultShadowOpacity, "shadow opacity, 0 to 1")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "optional YAML config file with defaults")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, flags *rootFlags) error {
	if flags.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	overlayFlags(cmd, flags, &opts)

	inputRoot := expandUser(flags.input)
	outputRoot := expandUser(flags.output)

	info, err := os.Stat(inputRoot)
	if err != nil {
		return fmt.Errorf("input folder %s: %w", inputRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input %s is not a directory", inputRoot)
	}
	if opts.FontPath != "" {
		if _, err := os.Stat(opts.FontPath); err != nil {
			return fmt.Errorf("font %s: %w", opts.FontPath, err)
		}
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	compositor, err := processor.New(opts, &zlog.Logger)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(compositor, &zlog.Logger)
	report, err := runner.Run(cmd.Context(), inputRoot, outputRoot)
	if err != nil {
		return err
	}

	if report.Failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "done: %d processed, %d failed\n", report.Processed, report.Failed)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "done: %d processed\n", report.Processed)
	}
	return nil
}

// overlayFlags applies only the flags the user actually set on top of the
// config-derived defaults.
func overlayFlags(cmd *cobra.Command, flags *rootFlags, opts *domain.WatermarkOptions) {
	set := cmd.Flags().Changed

	if set("watermark") {
		opts.Text = flags.text
	}
	if set("font") {
		opts.FontPath = flags.fontPath
	}
	if set("font-size") {
		opts.FontSize = flags.fontSize
	}
	if set("opacity") {
		opts.Opacity = flags.opacity
	}
	if set("padding") {
		opts.Padding = flags.padding
	}
	if set("downsize-to") {
		opts.DownsizeTo = flags.downsizeTo
	}
	if set("shadow-offset-x") {
		opts.Shadow.OffsetX = flags.shadowOffsetX
	}
	if set("shadow-offset-y") {
		opts.Shadow.OffsetY = flags.shadowOffsetY
	}
	if set("shadow-blur") {
		opts.Shadow.Blur = flags.shadowBlur
	}
	if set("shadow-opacity") {
		opts.Shadow.Opacity = flags.shadowOpacity
	}
}

// expandUser replaces a leading ~ with the current user's home directory.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
