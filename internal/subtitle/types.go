package subtitle

// WordSpan is a single recognized word with its timing in milliseconds.
type WordSpan struct {
	Text    string
	StartMs int64
	EndMs   int64
}

// Line is one subtitle block: a 1-based index, the time range covered by its
// words, and the words themselves (space-joined on output).
type Line struct {
	Index   int
	StartMs int64
	EndMs   int64
	Words   []string
}
