package subtitle

import "testing"

func TestTimecode(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00,000"},
		{1, "00:00:00,001"},
		{999, "00:00:00,999"},
		{1_000, "00:00:01,000"},
		{59_999, "00:00:59,999"},
		{60_000, "00:01:00,000"},
		{3_600_000, "01:00:00,000"},
		{3_661_001, "01:01:01,001"},
		{36_000_000, "10:00:00,000"},
	}

	for _, tt := range tests {
		if got := Timecode(tt.ms); got != tt.want {
			t.Errorf("Timecode(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
