// Package gcp provides the Google Cloud implementations of the pipeline's
// storage and recognizer interfaces.
package gcp

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"

	"wav2srt/internal/pipeline"
)

// Clients bundles the storage and speech clients built from one credential.
// Established once and read-only afterward, so concurrent pipeline runs may
// share it.
type Clients struct {
	Storage    *Storage
	Recognizer *Recognizer
}

// NewClients authenticates with the JSON credential at credentialPath and
// builds clients against the given staging bucket. A missing credential file
// fails with pipeline.ErrCredentialNotFound before any network activity.
func NewClients(ctx context.Context, credentialPath, bucket string) (*Clients, error) {
	if _, err := os.Stat(credentialPath); err != nil {
		return nil, fmt.Errorf("%w: %s", pipeline.ErrCredentialNotFound, credentialPath)
	}

	opts := []option.ClientOption{option.WithCredentialsFile(credentialPath)}

	storage, err := NewStorage(ctx, bucket, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	recognizer, err := NewRecognizer(ctx, bucket, opts...)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("speech client: %w", err)
	}

	return &Clients{Storage: storage, Recognizer: recognizer}, nil
}

// Close releases both underlying clients.
func (c *Clients) Close() error {
	err := c.Storage.Close()
	if rerr := c.Recognizer.Close(); err == nil {
		err = rerr
	}
	return err
}
