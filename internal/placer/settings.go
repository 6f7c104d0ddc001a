package placer

import (
	"fmt"
	"strings"
	"time"
)

// Settings holds the per-user scheduling constraints for a placement call.
// It is read-only during placement.
type Settings struct {
	ActiveStart string // "HH:MM", start of the daily scheduling window
	ActiveEnd   string // "HH:MM", end of the daily scheduling window
	RestDay     string // "saturday" or "sunday"
}

// Validate checks that the settings are well formed. Any violation aborts the
// whole placement call before any work happens.
func (s Settings) Validate() error {
	if err := validateClock(s.ActiveStart, "active start"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := validateClock(s.ActiveEnd, "active end"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if s.ActiveStart >= s.ActiveEnd {
		return fmt.Errorf("%w: active start %s must be before active end %s",
			ErrInvalidSettings, s.ActiveStart, s.ActiveEnd)
	}
	switch strings.ToLower(s.RestDay) {
	case "saturday", "sunday":
	default:
		return fmt.Errorf("%w: rest day must be 'saturday' or 'sunday', got %q",
			ErrInvalidSettings, s.RestDay)
	}
	return nil
}

// restWeekday returns the configured rest day as a time.Weekday.
// Only valid after Validate has passed.
func (s Settings) restWeekday() time.Weekday {
	if strings.ToLower(s.RestDay) == "saturday" {
		return time.Saturday
	}
	return time.Sunday
}

// validateClock checks that a time string is in HH:MM format.
func validateClock(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	if !isDigits(t[0:2]) || !isDigits(t[3:5]) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	if t[0:2] > "23" || t[3:5] > "59" {
		return fmt.Errorf("%s is out of range, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
