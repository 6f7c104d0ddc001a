package ui

import (
	"testing"
	"time"

	"github.com/javiermolinar/rocinante/internal/event"
)

func TestStatsAccumulate(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	events := []*event.Event{
		{Title: "Dentist", Type: event.TypeFixed, Day: day, Start: "09:00", End: "10:00"},
		{Title: "Report", Type: event.TypeFlexible, Day: day, Start: "10:00", End: "11:30"},
		{Title: "Inbox", Type: event.TypeFluid, Day: day, Start: "12:00", End: "12:30"},
	}

	var stats Stats
	for _, e := range events {
		stats.Accumulate(e)
	}

	if stats.FixedMinutes != 60 {
		t.Errorf("FixedMinutes = %d, want 60", stats.FixedMinutes)
	}
	if stats.FlexibleMinutes != 90 {
		t.Errorf("FlexibleMinutes = %d, want 90", stats.FlexibleMinutes)
	}
	if stats.FluidMinutes != 30 {
		t.Errorf("FluidMinutes = %d, want 30", stats.FluidMinutes)
	}
	if stats.TotalMinutes() != 180 {
		t.Errorf("TotalMinutes = %d, want 180", stats.TotalMinutes())
	}
	if stats.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d, want 3", stats.TotalEvents)
	}
	if stats.FixedPercent() != 33 {
		t.Errorf("FixedPercent = %d, want 33", stats.FixedPercent())
	}
}

func TestStatsEmpty(t *testing.T) {
	var stats Stats
	if stats.TotalMinutes() != 0 {
		t.Errorf("TotalMinutes = %d, want 0", stats.TotalMinutes())
	}
	if stats.FixedPercent() != 0 {
		t.Errorf("FixedPercent = %d, want 0", stats.FixedPercent())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{30, "30m"},
		{60, "1h"},
		{90, "1h30m"},
		{480, "8h"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
