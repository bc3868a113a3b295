// Package worker runs transcription jobs over one or more input files,
// sequentially or with bounded concurrency.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"wav2srt/internal/pipeline"
	"wav2srt/internal/progress"
)

// Options configures a batch run.
type Options struct {
	// OutputPath is the target SRT path. Only honored for a single input;
	// with several inputs each target is derived from its source.
	OutputPath string

	NoAsync         bool
	MaxConcurrent   int
	RateLimitPerMin int
}

// Run transcribes every input file. With more than one input and NoAsync
// unset, files are processed concurrently; otherwise one at a time. Each
// input gets its own target document, so concurrent jobs never collide.
func Run(ctx context.Context, client *pipeline.Client, inputs []string, opts Options) error {
	if len(inputs) > 1 && !opts.NoAsync {
		return runConcurrent(ctx, client, inputs, opts)
	}
	return runSequential(ctx, client, inputs, opts)
}

// targetFor derives the SRT path for an input file.
func targetFor(input string, opts Options, batch bool) string {
	if opts.OutputPath != "" && !batch {
		return opts.OutputPath
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".srt"
}

// logProgress reports phase progress through slog, tagged with the file.
func logProgress(input string) progress.Func {
	name := filepath.Base(input)
	return func(phase progress.Phase, fraction float64) {
		slog.Debug("progress",
			"file", name,
			"phase", string(phase),
			"percent", fmt.Sprintf("%.1f%%", fraction*100))
	}
}
