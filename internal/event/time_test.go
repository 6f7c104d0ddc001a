package event

import "testing"

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
		{"", 0},
		{"9:00", 0}, // too short
	}

	for _, tc := range tests {
		if got := TimeToMinutes(tc.in); got != tc.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{750, "12:30"},
		{1439, "23:59"},
		{-10, "00:00"},  // clamped
		{2000, "23:59"}, // clamped
	}

	for _, tc := range tests {
		if got := MinutesToTime(tc.in); got != tc.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"partial", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"touching", "09:00", "10:00", "10:00", "11:00", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimesOverlap(tc.start1, tc.end1, tc.start2, tc.end2); got != tc.want {
				t.Errorf("TimesOverlap = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := TimesOverlap(tc.start2, tc.end2, tc.start1, tc.end1); got != tc.want {
				t.Errorf("TimesOverlap (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlapMinutes(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       int
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", 60},
		{"half overlap", "09:00", "10:00", "09:30", "10:30", 30},
		{"contained", "09:00", "12:00", "10:00", "11:00", 60},
		{"touching", "09:00", "10:00", "10:00", "11:00", 0},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OverlapMinutes(tc.start1, tc.end1, tc.start2, tc.end2); got != tc.want {
				t.Errorf("OverlapMinutes = %d, want %d", got, tc.want)
			}
		})
	}
}
