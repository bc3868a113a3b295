package pipeline

import (
	"context"
	"fmt"

	"wav2srt/internal/progress"
)

// ChunkedUpload is one in-flight upload of a fixed-size source, transmitted
// chunk by chunk. TotalBytes is fixed at initiation and never changes.
type ChunkedUpload interface {
	// TransmitNextChunk sends the next chunk. Calling it after Finished
	// reports true is undefined.
	TransmitNextChunk(ctx context.Context) error
	BytesTransferred() int64
	TotalBytes() int64
	Finished() bool
}

// trackUpload drives an upload to completion, reporting normalized progress:
// 0 before the first chunk, transferred/total after each chunk, and exactly 1
// once finished, with nothing emitted after that. A chunk fault aborts the
// upload immediately; no retries, no partial-blob cleanup here.
func trackUpload(ctx context.Context, up ChunkedUpload, onProgress progress.Func) error {
	total := up.TotalBytes()
	if total <= 0 {
		return fmt.Errorf("%w: source is empty", ErrInvalidInput)
	}

	onProgress(progress.PhaseUpload, 0)
	for !up.Finished() {
		if err := up.TransmitNextChunk(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrTransfer, err)
		}
		if up.Finished() {
			break
		}
		onProgress(progress.PhaseUpload, float64(up.BytesTransferred())/float64(total))
	}
	onProgress(progress.PhaseUpload, 1)
	return nil
}
