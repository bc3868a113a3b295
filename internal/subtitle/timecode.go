package subtitle

import "fmt"

// Timecode converts a non-negative millisecond offset to SRT time format
// HH:MM:SS,mmm. Pure integer arithmetic, truncating.
func Timecode(ms int64) string {
	h := ms / 3_600_000
	m := ms / 60_000 % 60
	s := ms / 1_000 % 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms%1_000)
}
