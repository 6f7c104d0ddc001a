package event

import (
	"errors"
	"testing"
	"time"
)

func TestNew_Valid(t *testing.T) {
	e, err := New("Write report", "flexible", "2026-09-07", "09:00", "11:00")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if e.Title != "Write report" {
		t.Errorf("Title = %q", e.Title)
	}
	if e.Type != TypeFlexible {
		t.Errorf("Type = %q, want flexible", e.Type)
	}
	if e.Day.Format("2006-01-02") != "2026-09-07" {
		t.Errorf("Day = %s", e.Day.Format("2006-01-02"))
	}
	if e.Duration() != 120 {
		t.Errorf("Duration = %d, want 120", e.Duration())
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestNew_EmptyDayDefaultsToToday(t *testing.T) {
	e, err := New("Dentist", "fixed", "", "10:00", "11:00")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	today := time.Now().Format("2006-01-02")
	if e.Day.Format("2006-01-02") != today {
		t.Errorf("Day = %s, want today (%s)", e.Day.Format("2006-01-02"), today)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		typ     string
		day     string
		start   string
		end     string
		wantErr error
	}{
		{"empty title", "", "fixed", "2026-09-07", "09:00", "10:00", ErrEmptyTitle},
		{"unknown type", "X", "rigid", "2026-09-07", "09:00", "10:00", ErrInvalidType},
		{"bad date", "X", "fixed", "07/09/2026", "09:00", "10:00", nil},
		{"bad start", "X", "fixed", "2026-09-07", "9am", "10:00", ErrInvalidTimeFormat},
		{"bad end", "X", "fixed", "2026-09-07", "09:00", "10", ErrInvalidTimeFormat},
		{"end before start", "X", "fixed", "2026-09-07", "10:00", "09:00", ErrEndBeforeStart},
		{"end equals start", "X", "fixed", "2026-09-07", "10:00", "10:00", ErrEndBeforeStart},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.title, tc.typ, tc.day, tc.start, tc.end)
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"fixed", "flexible", "fluid"} {
		if _, err := ParseType(s); err != nil {
			t.Errorf("ParseType(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseType("rigid"); !errors.Is(err, ErrInvalidType) {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}

func TestDuration_OverrideWins(t *testing.T) {
	e := &Event{Start: "09:00", End: "10:00", DurationMin: 90}
	if e.Duration() != 90 {
		t.Errorf("Duration = %d, want the 90-minute override", e.Duration())
	}

	e.DurationMin = 0
	if e.Duration() != 60 {
		t.Errorf("Duration = %d, want the 60-minute window", e.Duration())
	}
}

func TestClone_Independent(t *testing.T) {
	e := &Event{ID: 1, Title: "Original", Start: "09:00", End: "10:00"}
	c := e.Clone()

	c.Title = "Changed"
	c.Start = "11:00"

	if e.Title != "Original" || e.Start != "09:00" {
		t.Error("Clone shares state with the original")
	}
}

func TestOverlapsWith(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	nextDay := day.AddDate(0, 0, 1)

	a := &Event{ID: 1, Day: day, Start: "10:00", End: "11:00"}

	tests := []struct {
		name  string
		other *Event
		want  bool
	}{
		{"same window", &Event{Day: day, Start: "10:00", End: "11:00"}, true},
		{"contained", &Event{Day: day, Start: "10:15", End: "10:45"}, true},
		{"touching", &Event{Day: day, Start: "11:00", End: "12:00"}, false},
		{"other day", &Event{Day: nextDay, Start: "10:00", End: "11:00"}, false},
		{"nil", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.OverlapsWith(tc.other); got != tc.want {
				t.Errorf("OverlapsWith = %v, want %v", got, tc.want)
			}
		})
	}
}
