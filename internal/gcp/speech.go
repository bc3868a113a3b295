package gcp

import (
	"context"
	"fmt"
	"iter"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"wav2srt/internal/pipeline"
	"wav2srt/internal/subtitle"
)

// Recognizer submits long-running recognition jobs against blobs staged in
// the configured bucket.
type Recognizer struct {
	client *speech.Client
	bucket string
}

// NewRecognizer creates a Speech-to-Text-backed pipeline.Recognizer.
func NewRecognizer(ctx context.Context, bucket string, opts ...option.ClientOption) (*Recognizer, error) {
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}
	return &Recognizer{client: client, bucket: bucket}, nil
}

func (r *Recognizer) Close() error {
	return r.client.Close()
}

// Start submits a LongRunningRecognize request for the staged blob. The
// source is single-channel 16-bit linear PCM; sample rate and locale come
// from params.
func (r *Recognizer) Start(ctx context.Context, blobName string, params pipeline.RecognitionParams) (pipeline.RecognizeOperation, error) {
	req := &speechpb.LongRunningRecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:              speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:       int32(params.SampleRateHertz),
			LanguageCode:          params.Language,
			EnableWordTimeOffsets: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Uri{
				Uri: fmt.Sprintf("gs://%s/%s", r.bucket, blobName),
			},
		},
	}

	op, err := r.client.LongRunningRecognize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("long running recognize: %w", err)
	}
	return &recognizeOperation{op: op}, nil
}

// recognizeOperation adapts the SDK's operation handle to the pipeline's
// polling interface.
type recognizeOperation struct {
	op       *speech.LongRunningRecognizeOperation
	resp     *speechpb.LongRunningRecognizeResponse
	progress float64
}

func (o *recognizeOperation) Poll(ctx context.Context) error {
	resp, err := o.op.Poll(ctx)
	if err != nil {
		if s, ok := status.FromError(err); ok {
			return fmt.Errorf("remote operation: %s: %s", s.Code(), s.Message())
		}
		return fmt.Errorf("remote operation: %w", err)
	}
	if resp != nil {
		o.resp = resp
	}
	if md, err := o.op.Metadata(); err == nil && md != nil {
		o.progress = float64(md.ProgressPercent)
	}
	return nil
}

func (o *recognizeOperation) Done() bool {
	return o.op.Done()
}

func (o *recognizeOperation) Progress() float64 {
	return o.progress
}

// Result streams the recognized words lazily: results in order, first
// alternative per result, words in order, timestamps converted to
// millisecond offsets.
func (o *recognizeOperation) Result() iter.Seq[subtitle.WordSpan] {
	return wordSpans(o.resp)
}

func wordSpans(resp *speechpb.LongRunningRecognizeResponse) iter.Seq[subtitle.WordSpan] {
	return func(yield func(subtitle.WordSpan) bool) {
		if resp == nil {
			return
		}
		for _, res := range resp.Results {
			if res == nil || len(res.Alternatives) == 0 || res.Alternatives[0] == nil {
				continue
			}
			for _, w := range res.Alternatives[0].Words {
				if w == nil {
					continue
				}
				span := subtitle.WordSpan{
					Text:    w.Word,
					StartMs: durToMs(w.StartTime),
					EndMs:   durToMs(w.EndTime),
				}
				if !yield(span) {
					return
				}
			}
		}
	}
}

func durToMs(d *durationpb.Duration) int64 {
	if d == nil {
		return 0
	}
	return d.AsDuration().Milliseconds()
}
