package config

import "time"

// Config holds the full application configuration.
type Config struct {
	// Bucket is the GCS bucket used as transient staging for audio; objects
	// are deleted once recognition completes.
	Bucket string

	// Language is the recognition locale passed to the speech engine.
	Language string

	// MaxWordsPerLine caps how many words one subtitle line may hold.
	MaxWordsPerLine int

	// MaxGapMs is the inter-word silence, in milliseconds, that forces a new
	// subtitle line.
	MaxGapMs int64

	// ChunkSize is the upload chunk size in bytes.
	ChunkSize int

	// PollInterval is how long to wait between recognition status checks.
	PollInterval time.Duration

	// Batch-mode settings.
	MaxConcurrent      int
	APIRateLimitPerMin int
}

// Default returns a Config with the standard defaults.
func Default() *Config {
	return &Config{
		Bucket:             "wav2srt-recorded-audio",
		Language:           "en-US",
		MaxWordsPerLine:    12,
		MaxGapMs:           500,
		ChunkSize:          256 * 1024,
		PollInterval:       time.Second,
		MaxConcurrent:      3,
		APIRateLimitPerMin: 30,
	}
}
