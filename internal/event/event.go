// Package event defines the core domain types for rocinante.
package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/rocinante/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidType       = errors.New("type must be 'fixed', 'flexible' or 'fluid'")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
)

// Domain errors.
var (
	ErrWindowOverlap = errors.New("time window overlaps with existing event")
	ErrEventNotFound = errors.New("event not found")
)

// Type classifies how movable an event is during placement.
// Fixed events never move; flexible events keep their day but may change time;
// fluid events may land anywhere in their week outside the rest day.
type Type string

const (
	TypeFixed    Type = "fixed"
	TypeFlexible Type = "flexible"
	TypeFluid    Type = "fluid"
)

// Valid returns true if the type is one of the three known classes.
func (t Type) Valid() bool {
	switch t {
	case TypeFixed, TypeFlexible, TypeFluid:
		return true
	default:
		return false
	}
}

// ParseType converts a string into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// Event represents a calendar event occupying a time window on a single day.
type Event struct {
	ID        int64
	Title     string
	Type      Type
	Day       time.Time // date of the window, midnight local
	Start     string    // "HH:MM" format
	End       string    // "HH:MM" format
	OwnerID   string
	CreatedAt time.Time

	// DurationMin overrides the window-derived duration when > 0.
	// Used when the requested window is a placeholder for a flexible or
	// fluid event and only the length matters.
	DurationMin int
}

// New creates a new Event with validation.
// day can be empty (defaults to today) or in YYYY-MM-DD format.
// typ must be "fixed", "flexible" or "fluid".
// start and end must be in HH:MM format, with end after start.
func New(title, typ, day, start, end string) (*Event, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	t, err := ParseType(typ)
	if err != nil {
		return nil, err
	}

	date, err := dateutil.ParseDate(day)
	if err != nil {
		return nil, err
	}

	if err := validateTimeFormat(start); err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}

	if err := validateTimeFormat(end); err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	if end <= start {
		return nil, ErrEndBeforeStart
	}

	return &Event{
		Title:     title,
		Type:      t,
		Day:       date,
		Start:     start,
		End:       end,
		CreatedAt: time.Now(),
	}, nil
}

func validateTimeFormat(s string) error {
	if len(s) != 5 {
		return ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}

// IsFixed returns true if the event cannot be moved.
func (e *Event) IsFixed() bool {
	return e.Type == TypeFixed
}

// IsFlexible returns true if the event may change time within its day.
func (e *Event) IsFlexible() bool {
	return e.Type == TypeFlexible
}

// IsFluid returns true if the event may move anywhere in its week.
func (e *Event) IsFluid() bool {
	return e.Type == TypeFluid
}

// Duration returns the event duration in minutes.
// DurationMin takes precedence over the window length when set.
func (e *Event) Duration() int {
	if e.DurationMin > 0 {
		return e.DurationMin
	}
	return TimeToMinutes(e.End) - TimeToMinutes(e.Start)
}

// Clone returns a copy of the event. The placement engine works on clones so
// the caller's snapshot is never mutated.
func (e *Event) Clone() *Event {
	c := *e
	return &c
}

// SameDay returns true if both events occupy the same calendar day.
func (e *Event) SameDay(other *Event) bool {
	return dateutil.SameDay(e.Day, other.Day)
}

// OverlapsWith returns true if this event overlaps with another event.
// Events must be on the same day and have overlapping time ranges.
func (e *Event) OverlapsWith(other *Event) bool {
	if other == nil {
		return false
	}
	if !e.SameDay(other) {
		return false
	}
	return TimesOverlap(e.Start, e.End, other.Start, other.End)
}

// String returns a compact human-readable description of the event.
func (e *Event) String() string {
	return fmt.Sprintf("#%d %q [%s] %s %s-%s",
		e.ID, e.Title, e.Type, e.Day.Format("2006-01-02"), e.Start, e.End)
}
