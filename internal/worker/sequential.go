package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"wav2srt/internal/pipeline"
)

// runSequential processes inputs one at a time.
func runSequential(ctx context.Context, client *pipeline.Client, inputs []string, opts Options) error {
	batch := len(inputs) > 1

	for i, input := range inputs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		slog.Info("transcribing",
			"file", fmt.Sprintf("%d/%d", i+1, len(inputs)),
			"input", filepath.Base(input))

		target := targetFor(input, opts, batch)
		if err := client.Transcribe(ctx, input, target, logProgress(input)); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(input), err)
		}

		slog.Info("subtitle file saved", "path", target)
	}
	return nil
}
