package subtitle

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

func collect(words []WordSpan, maxWords int, maxGapMs int64) []Line {
	var lines []Line
	for line := range Segment(slices.Values(words), maxWords, maxGapMs) {
		lines = append(lines, line)
	}
	return lines
}

func TestSegment_Empty(t *testing.T) {
	lines := collect(nil, 12, 500)
	if lines != nil {
		t.Errorf("expected no lines for empty input, got %v", lines)
	}
}

func TestSegment_SingleWord(t *testing.T) {
	lines := collect([]WordSpan{{Text: "hello", StartMs: 100, EndMs: 400}}, 12, 500)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	got := lines[0]
	if got.Index != 1 || got.StartMs != 100 || got.EndMs != 400 {
		t.Errorf("line = %+v, want index 1, 100..400", got)
	}
	if len(got.Words) != 1 || got.Words[0] != "hello" {
		t.Errorf("words = %v, want [hello]", got.Words)
	}
}

func TestSegment_GapSplit(t *testing.T) {
	words := []WordSpan{
		{Text: "Hello", StartMs: 0, EndMs: 300},
		{Text: "world", StartMs: 350, EndMs: 700},
		{Text: "foo", StartMs: 2000, EndMs: 2300},
	}
	lines := collect(words, 12, 500)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if got := strings.Join(lines[0].Words, " "); got != "Hello world" {
		t.Errorf("line 1 text = %q, want 'Hello world'", got)
	}
	if lines[0].StartMs != 0 || lines[0].EndMs != 700 {
		t.Errorf("line 1 range = %d..%d, want 0..700", lines[0].StartMs, lines[0].EndMs)
	}
	if got := strings.Join(lines[1].Words, " "); got != "foo" {
		t.Errorf("line 2 text = %q, want 'foo'", got)
	}
	if lines[1].StartMs != 2000 || lines[1].EndMs != 2300 {
		t.Errorf("line 2 range = %d..%d, want 2000..2300", lines[1].StartMs, lines[1].EndMs)
	}
}

func TestSegment_GapThresholdExact(t *testing.T) {
	// A gap of exactly maxGapMs splits; one millisecond less does not.
	words := []WordSpan{
		{Text: "a", StartMs: 0, EndMs: 100},
		{Text: "b", StartMs: 600, EndMs: 700},
	}
	if lines := collect(words, 12, 500); len(lines) != 2 {
		t.Errorf("gap == threshold: expected 2 lines, got %d", len(lines))
	}

	words[1].StartMs = 599
	if lines := collect(words, 12, 500); len(lines) != 1 {
		t.Errorf("gap == threshold-1: expected 1 line, got %d", len(lines))
	}
}

func TestSegment_WordCountSplit(t *testing.T) {
	// 13 words with uniform 100 ms gaps: the 13th word starts a new line by
	// count, never by gap.
	var words []WordSpan
	for i := range 13 {
		start := int64(i) * 400
		words = append(words, WordSpan{
			Text:    fmt.Sprintf("w%d", i),
			StartMs: start,
			EndMs:   start + 300,
		})
	}

	lines := collect(words, 12, 500)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if len(lines[0].Words) != 12 {
		t.Errorf("line 1 has %d words, want 12", len(lines[0].Words))
	}
	if len(lines[1].Words) != 1 || lines[1].Words[0] != "w12" {
		t.Errorf("line 2 words = %v, want [w12]", lines[1].Words)
	}
	// The second line starts at the word that triggered the split.
	if lines[1].StartMs != words[12].StartMs {
		t.Errorf("line 2 start = %d, want %d", lines[1].StartMs, words[12].StartMs)
	}
}

func TestSegment_IndicesContiguous(t *testing.T) {
	var words []WordSpan
	for i := range 100 {
		// Every word is followed by a large gap, forcing one line per word.
		start := int64(i) * 10_000
		words = append(words, WordSpan{Text: "x", StartMs: start, EndMs: start + 200})
	}

	lines := collect(words, 12, 500)
	if len(lines) != 100 {
		t.Fatalf("expected 100 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if line.Index != i+1 {
			t.Fatalf("line %d has index %d, want %d", i, line.Index, i+1)
		}
	}
}

func TestSegment_CapNeverExceeded(t *testing.T) {
	var words []WordSpan
	for i := range 50 {
		start := int64(i) * 150
		words = append(words, WordSpan{Text: "x", StartMs: start, EndMs: start + 100})
	}

	for _, maxWords := range []int{1, 3, 12} {
		for _, line := range collect(words, maxWords, 500) {
			if len(line.Words) > maxWords {
				t.Errorf("maxWords=%d: line %d has %d words", maxWords, line.Index, len(line.Words))
			}
		}
	}
}

func TestSegment_LazyStopsEarly(t *testing.T) {
	// Pulling only the first line must not consume the whole input.
	consumed := 0
	words := func(yield func(WordSpan) bool) {
		for i := range 1000 {
			consumed++
			start := int64(i) * 10_000
			if !yield(WordSpan{Text: "x", StartMs: start, EndMs: start + 100}) {
				return
			}
		}
	}

	for range Segment(words, 1, 500) {
		break
	}
	if consumed > 2 {
		t.Errorf("consumed %d words for one line, want at most 2", consumed)
	}
}
