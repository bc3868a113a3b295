package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Write serializes lines to w in SRT form, one block per line as it arrives:
//
//	<index>
//	<start> --> <end>
//	<word> <word> ...
//	<blank>
//
// Lines are written in the order received; index contiguity is the
// segmenter's responsibility. The whole document is never buffered.
func Write(w io.Writer, lines iter.Seq[Line]) error {
	bw := bufio.NewWriter(w)
	for line := range lines {
		_, err := fmt.Fprintf(bw, "%d\n%s --> %s\n%s\n\n",
			line.Index,
			Timecode(line.StartMs), Timecode(line.EndMs),
			strings.Join(line.Words, " "))
		if err != nil {
			return fmt.Errorf("write subtitle line %d: %w", line.Index, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush subtitle output: %w", err)
	}
	return nil
}
