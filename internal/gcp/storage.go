package gcp

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"wav2srt/internal/pipeline"
)

// Storage stages audio blobs in a GCS bucket.
type Storage struct {
	client *storage.Client
	bucket string
}

// NewStorage creates a GCS-backed pipeline.Storage against the given bucket.
func NewStorage(ctx context.Context, bucket string, opts ...option.ClientOption) (*Storage, error) {
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Storage{client: client, bucket: bucket}, nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

// NewUpload opens the source file and a resumable object writer sized to
// flush one chunk per transmit call.
func (s *Storage) NewUpload(ctx context.Context, blobName, sourcePath string, chunkSize int) (pipeline.ChunkedUpload, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat source: %w", err)
	}

	w := s.client.Bucket(s.bucket).Object(blobName).NewWriter(ctx)
	w.ChunkSize = chunkSize
	w.ContentType = "audio/wav"

	return &blobUpload{
		file:  f,
		w:     w,
		total: fi.Size(),
		chunk: int64(chunkSize),
	}, nil
}

// DeleteBlob removes a staged blob.
func (s *Storage) DeleteBlob(ctx context.Context, blobName string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s.client.Bucket(s.bucket).Object(blobName).Delete(ctx); err != nil {
		return fmt.Errorf("delete object %q in bucket %q: %w", blobName, s.bucket, err)
	}
	return nil
}

// blobUpload feeds one chunk at a time from the source file into a GCS
// object writer. The writer's ChunkSize matches the copy size, so each
// transmit pushes one chunk of the resumable session.
type blobUpload struct {
	file  *os.File
	w     *storage.Writer
	total int64
	sent  int64
	chunk int64
}

func (u *blobUpload) TransmitNextChunk(ctx context.Context) error {
	n := u.chunk
	if rest := u.total - u.sent; rest < n {
		n = rest
	}
	if _, err := io.CopyN(u.w, u.file, n); err != nil {
		u.file.Close()
		return fmt.Errorf("transmit chunk: %w", err)
	}
	u.sent += n

	if u.sent >= u.total {
		// Final chunk: flush the session and commit the object.
		u.file.Close()
		if err := u.w.Close(); err != nil {
			return fmt.Errorf("finalize upload: %w", err)
		}
	}
	return nil
}

func (u *blobUpload) BytesTransferred() int64 { return u.sent }
func (u *blobUpload) TotalBytes() int64       { return u.total }
func (u *blobUpload) Finished() bool          { return u.sent >= u.total }
