package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid date range", func(t *testing.T) {
		dr, err := NewDateRange("2025-01-15", "2025-01-20")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expectedStart := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
		expectedEnd := time.Date(2025, 1, 20, 0, 0, 0, 0, time.Local)
		if !dr.Start.Equal(expectedStart) {
			t.Errorf("got start %v, want %v", dr.Start, expectedStart)
		}
		if !dr.End.Equal(expectedEnd) {
			t.Errorf("got end %v, want %v", dr.End, expectedEnd)
		}
	})

	t.Run("empty end defaults to start", func(t *testing.T) {
		dr, err := NewDateRange("2025-01-15", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dr.Start.Equal(dr.End) {
			t.Errorf("expected start and end to be equal, got %v and %v", dr.Start, dr.End)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewDateRange("2025-01-20", "2025-01-15")
		if !errors.Is(err, ErrEndDateBeforeStart) {
			t.Errorf("got error %v, want %v", err, ErrEndDateBeforeStart)
		}
	})
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		wantMonday time.Time
		wantSunday time.Time
	}{
		{
			name:       "wednesday",
			date:       time.Date(2025, 1, 15, 14, 30, 0, 0, time.Local),
			wantMonday: time.Date(2025, 1, 13, 0, 0, 0, 0, time.Local),
			wantSunday: time.Date(2025, 1, 19, 0, 0, 0, 0, time.Local),
		},
		{
			name:       "monday",
			date:       time.Date(2025, 1, 13, 0, 0, 0, 0, time.Local),
			wantMonday: time.Date(2025, 1, 13, 0, 0, 0, 0, time.Local),
			wantSunday: time.Date(2025, 1, 19, 0, 0, 0, 0, time.Local),
		},
		{
			name:       "sunday belongs to preceding week",
			date:       time.Date(2025, 1, 19, 23, 0, 0, 0, time.Local),
			wantMonday: time.Date(2025, 1, 13, 0, 0, 0, 0, time.Local),
			wantSunday: time.Date(2025, 1, 19, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.date)
			if !monday.Equal(tt.wantMonday) {
				t.Errorf("got monday %v, want %v", monday, tt.wantMonday)
			}
			if !sunday.Equal(tt.wantSunday) {
				t.Errorf("got sunday %v, want %v", sunday, tt.wantSunday)
			}
		})
	}
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(time.Date(2025, 1, 15, 10, 0, 0, 0, time.Local)) // Wednesday

	if days[0].Weekday() != time.Monday {
		t.Errorf("expected first day Monday, got %s", days[0].Weekday())
	}
	if days[6].Weekday() != time.Sunday {
		t.Errorf("expected last day Sunday, got %s", days[6].Weekday())
	}
	for i := 1; i < 7; i++ {
		if got := days[i].Sub(days[i-1]); got != 24*time.Hour {
			t.Errorf("days %d and %d are %v apart, want 24h", i-1, i, got)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local)
	b := time.Date(2025, 1, 15, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, 1, 16, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Error("expected same day for two times on Jan 15")
	}
	if SameDay(a, c) {
		t.Error("expected different days for Jan 15 and Jan 16")
	}
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday("Saturday")
	if !ok || d != time.Saturday {
		t.Errorf("got %v ok=%v, want Saturday", d, ok)
	}
	if _, ok := ParseWeekday("caturday"); ok {
		t.Error("expected unknown weekday to fail")
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Wednesday
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"today", "today", time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)},
		{"empty", "", time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)},
		{"tomorrow", "tomorrow", time.Date(2025, 1, 16, 0, 0, 0, 0, time.Local)},
		{"friday", "friday", time.Date(2025, 1, 17, 0, 0, 0, 0, time.Local)},
		{"same weekday wraps a week", "wednesday", time.Date(2025, 1, 22, 0, 0, 0, 0, time.Local)},
		{"absolute", "2025-02-03", time.Date(2025, 2, 3, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("garbage input", func(t *testing.T) {
		_, err := ParseRelativeDate("someday", now)
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}
