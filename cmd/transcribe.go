package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wav2srt/internal/config"
	"wav2srt/internal/gcp"
	"wav2srt/internal/pipeline"
	"wav2srt/internal/worker"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <input.wav>...",
	Short: "Transcribe WAV recordings to SRT subtitles",
	Long: `Transcribe one or more single-channel PCM WAV files into SRT subtitle
files. Each recording is uploaded to the staging bucket, transcribed by the
Cloud Speech-to-Text API, and the staged audio is deleted once the result
is retrieved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranscribe,
}

var (
	credential   string
	output       string
	bucket       string
	language     string
	wordsPerLine int
	gapMs        int64
	chunkSize    int
	pollInterval time.Duration

	noAsync       bool
	maxConcurrent int
	rateLimit     int
)

func init() {
	defaults := config.Default()

	transcribeCmd.Flags().StringVarP(&credential, "credential", "c", "", "path to GCP service account JSON credential (required)")
	transcribeCmd.MarkFlagRequired("credential")

	transcribeCmd.Flags().StringVarP(&output, "output", "o", "", "output SRT path (default: <input>.srt; single input only)")
	transcribeCmd.Flags().StringVar(&bucket, "bucket", defaults.Bucket, "GCS bucket for staging audio")
	transcribeCmd.Flags().StringVarP(&language, "language", "l", defaults.Language, "recognition locale")
	transcribeCmd.Flags().IntVar(&wordsPerLine, "words-per-line", defaults.MaxWordsPerLine, "max words per subtitle line")
	transcribeCmd.Flags().Int64Var(&gapMs, "gap-ms", defaults.MaxGapMs, "silence in ms that forces a new subtitle line")
	transcribeCmd.Flags().IntVar(&chunkSize, "chunk-size", defaults.ChunkSize, "upload chunk size in bytes")
	transcribeCmd.Flags().DurationVar(&pollInterval, "poll-interval", defaults.PollInterval, "delay between transcription status checks")

	transcribeCmd.Flags().BoolVar(&noAsync, "no-async", false, "disable concurrent processing of multiple inputs")
	transcribeCmd.Flags().IntVarP(&maxConcurrent, "max-concurrent", "j", defaults.MaxConcurrent, "max concurrent transcriptions")
	transcribeCmd.Flags().IntVar(&rateLimit, "rate-limit", defaults.APIRateLimitPerMin, "recognition job submissions per minute")

	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if _, err := os.Stat(abs); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", arg)
		}
		if ext := strings.ToLower(filepath.Ext(abs)); ext != ".wav" {
			return fmt.Errorf("unsupported file type: %s (only .wav)", ext)
		}
		inputs = append(inputs, abs)
	}

	if output != "" && len(inputs) > 1 {
		return fmt.Errorf("--output is only valid with a single input")
	}

	cfg := config.Default()
	cfg.Bucket = bucket
	cfg.Language = language
	cfg.MaxWordsPerLine = wordsPerLine
	cfg.MaxGapMs = gapMs
	cfg.ChunkSize = chunkSize
	cfg.PollInterval = pollInterval
	cfg.MaxConcurrent = maxConcurrent
	cfg.APIRateLimitPerMin = rateLimit

	// Setup signal handling for graceful cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clients, err := gcp.NewClients(ctx, credential, cfg.Bucket)
	if err != nil {
		return err
	}
	defer clients.Close()

	client := pipeline.NewClient(clients.Storage, clients.Recognizer, cfg)
	opts := worker.Options{
		OutputPath:      output,
		NoAsync:         noAsync,
		MaxConcurrent:   cfg.MaxConcurrent,
		RateLimitPerMin: cfg.APIRateLimitPerMin,
	}

	if err := worker.Run(ctx, client, inputs, opts); err != nil {
		return err
	}

	if !quiet {
		slog.Info("done")
	}
	return nil
}
