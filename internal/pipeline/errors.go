package pipeline

import "errors"

// Failure classes surfaced by a transcription run. Callers distinguish them
// with errors.Is; the wrapped chain keeps the underlying detail.
var (
	// ErrCredentialNotFound: the credential file given to NewClient does not
	// exist. No client state is established.
	ErrCredentialNotFound = errors.New("credential file not found")

	// ErrInvalidInput: the source audio is missing, empty, or not a readable
	// WAV. Raised before any remote call.
	ErrInvalidInput = errors.New("invalid source audio")

	// ErrTransfer: a chunk transmission failed. Remaining chunks are not
	// attempted and any partial blob is left for the operator to reconcile.
	ErrTransfer = errors.New("audio upload failed")

	// ErrRecognition: the remote recognition operation reported failure.
	ErrRecognition = errors.New("speech recognition failed")

	// ErrWrite: the target subtitle document could not be written.
	ErrWrite = errors.New("subtitle write failed")
)
