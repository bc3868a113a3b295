package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"wav2srt/internal/pipeline"
)

// runConcurrent processes inputs with bounded parallelism, rate-limiting job
// starts so a large batch does not burst recognition requests.
func runConcurrent(ctx context.Context, client *pipeline.Client, inputs []string, opts Options) error {
	maxConcurrent := opts.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	slog.Info("starting concurrent batch",
		"files", len(inputs),
		"max_concurrent", maxConcurrent,
		"rate_limit_rpm", opts.RateLimitPerMin)

	// Rate limiter: tokens per second = RPM / 60.
	limiter := rate.NewLimiter(rate.Limit(float64(opts.RateLimitPerMin)/60.0), 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, input := range inputs {
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return fmt.Errorf("rate limiter: %w", err)
			}

			slog.Info("transcribing",
				"file", fmt.Sprintf("%d/%d", i+1, len(inputs)),
				"input", filepath.Base(input))

			target := targetFor(input, opts, true)
			if err := client.Transcribe(gctx, input, target, logProgress(input)); err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(input), err)
			}

			slog.Info("subtitle file saved", "path", target)
			return nil
		})
	}

	return g.Wait()
}
