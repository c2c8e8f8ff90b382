package batch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"iris/internal/domain"
	"iris/internal/processor"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

// Runner drives one batch: it walks the input tree and feeds every
// supported image to the compositor, strictly sequentially in traversal
// order.
type Runner struct {
	compositor *processor.Compositor
	logger     *zlog.Zerolog
}

func NewRunner(compositor *processor.Compositor, logger *zlog.Zerolog) *Runner {
	return &Runner{
		compositor: compositor,
		logger:     logger,
	}
}

// Run mirrors the relative layout of inputRoot under outputRoot,
// watermarking every allow-listed image. Per-file failures are recorded in
// the report and logged; they do not abort the batch. Only a failed walk or
// a cancelled context returns an error.
func (r *Runner) Run(ctx context.Context, inputRoot, outputRoot string) (*domain.Report, error) {
	report := &domain.Report{RunID: uuid.NewString()}

	r.logger.Info().
		Str("run_id", report.RunID).
		Str("input", inputRoot).
		Str("output", outputRoot).
		Msg("Starting batch run")

	err := filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !domain.SupportedExtension(path) {
			return nil
		}

		rel, err := filepath.Rel(inputRoot, path)
		if err != nil {
			return err
		}
		outPath := filepath.Join(outputRoot, rel)

		result := domain.FileResult{
			InputPath:  path,
			OutputPath: outPath,
			Status:     domain.StatusOK,
		}

		if applyErr := r.compositor.Apply(path, outPath); applyErr != nil {
			result.Status = domain.StatusFailed
			result.Err = applyErr
			report.Failed++
			r.logger.Warn().
				Err(applyErr).
				Str("run_id", report.RunID).
				Str("path", path).
				Msg("Failed to process image")
		} else {
			report.Processed++
			r.logger.Info().
				Str("run_id", report.RunID).
				Str("path", path).
				Str("output", outPath).
				Int("processed", report.Processed).
				Msg("Processed image")
		}

		report.Results = append(report.Results, result)
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("walk %s: %w", inputRoot, err)
	}

	r.logger.Info().
		Str("run_id", report.RunID).
		Int("processed", report.Processed).
		Int("failed", report.Failed).
		Msg("Batch run completed")

	return report, nil
}
