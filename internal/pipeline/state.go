package pipeline

// state tracks where a transcription run is in its fixed sequence. Runs move
// Idle → Uploading → AwaitingTranscription → Segmenting → Done; any failure
// after Idle lands in Failed.
type state int

const (
	stateIdle state = iota
	stateUploading
	stateAwaitingTranscription
	stateSegmenting
	stateDone
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateUploading:
		return "uploading"
	case stateAwaitingTranscription:
		return "awaiting_transcription"
	case stateSegmenting:
		return "segmenting"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
