package subtitle

import "iter"

// Segment re-groups a word stream into subtitle lines. A new line starts when
// the current one already holds maxWords words, or when a word begins maxGapMs
// milliseconds or more after the previous word ended. The split decision is
// made before the word is appended, so no line ever exceeds maxWords.
//
// The transform is single-pass and lazy: it never holds more than one line's
// worth of words, so arbitrarily long transcripts stream through in constant
// memory. An empty input yields an empty sequence.
func Segment(words iter.Seq[WordSpan], maxWords int, maxGapMs int64) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var (
			acc     []string
			index   = 1
			startMs int64
			endMs   int64
		)

		flush := func() Line {
			line := Line{
				Index:   index,
				StartMs: startMs,
				EndMs:   endMs,
				Words:   acc,
			}
			index++
			acc = nil
			return line
		}

		for w := range words {
			if len(acc) == maxWords || (len(acc) > 0 && w.StartMs-endMs >= maxGapMs) {
				if !yield(flush()) {
					return
				}
			}
			if len(acc) == 0 {
				startMs = w.StartMs
			}
			acc = append(acc, w.Text)
			endMs = w.EndMs
		}

		if len(acc) > 0 {
			yield(flush())
		}
	}
}
