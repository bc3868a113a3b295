// Package progress defines the progress-reporting contract shared by the
// upload and transcription phases.
package progress

// Phase identifies which stage of a transcription run an event belongs to.
type Phase string

const (
	PhaseUpload     Phase = "upload"
	PhaseTranscribe Phase = "transcribe"
)

// Func receives progress events. fraction is in [0,1]. Calls are synchronous
// on the pipeline's goroutine and in arrival order; a Func that blocks stalls
// the whole run.
type Func func(phase Phase, fraction float64)

// Discard is a no-op sink for callers that do not care about progress.
func Discard(Phase, float64) {}
