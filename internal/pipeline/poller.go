package pipeline

import (
	"context"
	"fmt"
	"iter"
	"time"

	"wav2srt/internal/progress"
	"wav2srt/internal/subtitle"
)

// RecognizeOperation is a handle to a remote long-running recognition job.
type RecognizeOperation interface {
	// Poll refreshes the operation's status. Returns an error if the remote
	// operation itself failed.
	Poll(ctx context.Context) error
	// Done reports whether the operation has completed, as of the last Poll.
	Done() bool
	// Progress returns the engine-reported completion percentage [0,100],
	// as of the last Poll. Not guaranteed monotonic.
	Progress() float64
	// Result returns the recognized word stream. Valid only once Done.
	Result() iter.Seq[subtitle.WordSpan]
}

// pollOperation drives op to completion, emitting the engine's reported
// progress verbatim (scaled to [0,1]) on each tick and sleeping interval
// between status checks. This sleep is the pipeline's only suspension point.
// On success it returns the final word stream; on remote failure it returns
// ErrRecognition with the remote detail and emits no further events.
func pollOperation(ctx context.Context, op RecognizeOperation, interval time.Duration, onProgress progress.Func) (iter.Seq[subtitle.WordSpan], error) {
	for {
		if err := op.Poll(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRecognition, err)
		}
		if op.Done() {
			break
		}
		onProgress(progress.PhaseTranscribe, op.Progress()/100)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrRecognition, ctx.Err())
		case <-time.After(interval):
		}
	}
	onProgress(progress.PhaseTranscribe, 1)
	return op.Result(), nil
}
