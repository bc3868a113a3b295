// Package pipeline orchestrates one audio-to-subtitle transcription run:
// chunked upload to remote storage, long-running recognition with polling,
// then streaming segmentation into an SRT document.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"wav2srt/internal/config"
	"wav2srt/internal/progress"
	"wav2srt/internal/subtitle"
	"wav2srt/internal/wavinfo"
)

// Storage stages audio blobs in remote object storage.
type Storage interface {
	// NewUpload initiates a chunked upload of the file at sourcePath to the
	// named blob.
	NewUpload(ctx context.Context, blobName, sourcePath string, chunkSize int) (ChunkedUpload, error)
	// DeleteBlob removes a previously uploaded blob.
	DeleteBlob(ctx context.Context, blobName string) error
}

// RecognitionParams configures one recognition request.
type RecognitionParams struct {
	SampleRateHertz int
	Language        string
}

// Recognizer submits remote speech-recognition jobs against staged blobs.
type Recognizer interface {
	Start(ctx context.Context, blobName string, params RecognitionParams) (RecognizeOperation, error)
}

// Client runs transcriptions against a fixed storage/recognizer pair. It
// holds no per-run state, so one Client may serve concurrent Transcribe calls
// as long as they do not share source or target paths.
type Client struct {
	storage Storage
	rec     Recognizer
	cfg     *config.Config
}

// NewClient builds a transcription client. cfg may be nil for defaults.
func NewClient(storage Storage, rec Recognizer, cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Client{storage: storage, rec: rec, cfg: cfg}
}

// Transcribe converts the WAV file at sourcePath into an SRT document at
// targetPath, blocking until the document is fully written or the run fails.
// Progress for both phases is delivered synchronously to onProgress in
// arrival order; nil means no reporting.
//
// The staging blob (named after the source file's base name) is deleted as
// soon as the recognition result is retrieved, before segmentation; if
// recognition fails after a completed upload, the blob is deleted on the way
// out as well. A transfer fault leaves any partial blob behind for the
// operator to reconcile.
func (c *Client) Transcribe(ctx context.Context, sourcePath, targetPath string, onProgress progress.Func) error {
	if onProgress == nil {
		onProgress = progress.Discard
	}

	st := stateIdle
	fail := func(err error) error {
		st = stateFailed
		slog.Debug("transcription failed", "state", st, "err", err)
		return err
	}

	// Validate the source before touching the network; no progress events
	// are emitted on this path.
	info, err := probeSource(sourcePath)
	if err != nil {
		return fail(err)
	}

	blobName := filepath.Base(sourcePath)
	log := slog.With("source", blobName)

	st = stateUploading
	log.Debug("state change", "state", st)
	up, err := c.storage.NewUpload(ctx, blobName, sourcePath, c.cfg.ChunkSize)
	if err != nil {
		return fail(fmt.Errorf("%w: initiate upload: %w", ErrTransfer, err))
	}
	if err := trackUpload(ctx, up, onProgress); err != nil {
		return fail(err)
	}

	// The blob exists from here on. The happy path deletes it eagerly right
	// after the result is retrieved; this deferred delete covers recognition
	// failures so a failed run does not leak storage.
	blobDeleted := false
	defer func() {
		if blobDeleted {
			return
		}
		if err := c.storage.DeleteBlob(context.WithoutCancel(ctx), blobName); err != nil {
			log.Warn("failed to delete staging blob", "err", err)
		}
	}()

	st = stateAwaitingTranscription
	log.Debug("state change", "state", st)
	op, err := c.rec.Start(ctx, blobName, RecognitionParams{
		SampleRateHertz: info.SampleRate,
		Language:        c.cfg.Language,
	})
	if err != nil {
		return fail(fmt.Errorf("%w: submit recognition: %w", ErrRecognition, err))
	}
	words, err := pollOperation(ctx, op, c.cfg.PollInterval, onProgress)
	if err != nil {
		return fail(err)
	}

	// Delete the staging audio before segmentation; the write outcome does
	// not change this.
	if err := c.storage.DeleteBlob(ctx, blobName); err != nil {
		log.Warn("failed to delete staging blob", "err", err)
	}
	blobDeleted = true

	st = stateSegmenting
	log.Debug("state change", "state", st)
	target, err := os.Create(targetPath)
	if err != nil {
		return fail(fmt.Errorf("%w: create target: %w", ErrWrite, err))
	}
	lines := subtitle.Segment(words, c.cfg.MaxWordsPerLine, c.cfg.MaxGapMs)
	if err := subtitle.Write(target, lines); err != nil {
		target.Close()
		return fail(fmt.Errorf("%w: %w", ErrWrite, err))
	}
	if err := target.Close(); err != nil {
		return fail(fmt.Errorf("%w: close target: %w", ErrWrite, err))
	}

	st = stateDone
	log.Debug("state change", "state", st)
	return nil
}

// probeSource checks that the source exists, is non-empty, and is a readable
// WAV, returning its header parameters.
func probeSource(path string) (*wavinfo.Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidInput, path)
	}
	info, err := wavinfo.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return info, nil
}
