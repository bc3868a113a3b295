package gcp

import (
	"testing"

	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/protobuf/types/known/durationpb"

	"wav2srt/internal/subtitle"
)

func dur(ms int64) *durationpb.Duration {
	return &durationpb.Duration{
		Seconds: ms / 1000,
		Nanos:   int32(ms%1000) * 1_000_000,
	}
}

func TestWordSpans(t *testing.T) {
	resp := &speechpb.LongRunningRecognizeResponse{
		Results: []*speechpb.SpeechRecognitionResult{
			{
				Alternatives: []*speechpb.SpeechRecognitionAlternative{
					{
						Transcript: "Hello world",
						Words: []*speechpb.WordInfo{
							{Word: "Hello", StartTime: dur(0), EndTime: dur(300)},
							{Word: "world", StartTime: dur(350), EndTime: dur(700)},
						},
					},
					// Second alternative must be ignored.
					{
						Transcript: "hollow word",
						Words: []*speechpb.WordInfo{
							{Word: "hollow", StartTime: dur(0), EndTime: dur(300)},
						},
					},
				},
			},
			{
				Alternatives: []*speechpb.SpeechRecognitionAlternative{
					{
						Transcript: "foo",
						Words: []*speechpb.WordInfo{
							{Word: "foo", StartTime: dur(2000), EndTime: dur(2300)},
						},
					},
				},
			},
		},
	}

	var got []subtitle.WordSpan
	for w := range wordSpans(resp) {
		got = append(got, w)
	}

	want := []subtitle.WordSpan{
		{Text: "Hello", StartMs: 0, EndMs: 300},
		{Text: "world", StartMs: 350, EndMs: 700},
		{Text: "foo", StartMs: 2000, EndMs: 2300},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d words, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestWordSpans_EmptyAndNil(t *testing.T) {
	for w := range wordSpans(nil) {
		t.Errorf("unexpected word from nil response: %+v", w)
	}

	resp := &speechpb.LongRunningRecognizeResponse{
		Results: []*speechpb.SpeechRecognitionResult{
			{}, // no alternatives
			{Alternatives: []*speechpb.SpeechRecognitionAlternative{nil}},
		},
	}
	for w := range wordSpans(resp) {
		t.Errorf("unexpected word from degenerate response: %+v", w)
	}
}

func TestDurToMs(t *testing.T) {
	tests := []struct {
		d    *durationpb.Duration
		want int64
	}{
		{nil, 0},
		{&durationpb.Duration{Seconds: 1, Nanos: 500_000_000}, 1500},
		{&durationpb.Duration{Seconds: 0, Nanos: 999_999}, 0}, // truncates
		{&durationpb.Duration{Seconds: 3661, Nanos: 1_000_000}, 3_661_001},
	}
	for _, tt := range tests {
		if got := durToMs(tt.d); got != tt.want {
			t.Errorf("durToMs(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}
