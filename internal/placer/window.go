package placer

import (
	"fmt"
	"time"

	"github.com/javiermolinar/rocinante/internal/dateutil"
	"github.com/javiermolinar/rocinante/internal/event"
)

// Window is a concrete candidate time window on a single day.
type Window struct {
	Day   time.Time
	Start string // "HH:MM"
	End   string // "HH:MM"
}

// windowOf returns the window an event currently occupies.
func windowOf(e *event.Event) Window {
	return Window{Day: dateutil.TruncateToDay(e.Day), Start: e.Start, End: e.End}
}

// Minutes returns the window length in minutes.
func (w Window) Minutes() int {
	return event.TimeToMinutes(w.End) - event.TimeToMinutes(w.Start)
}

// Overlaps returns true if the two windows share any time on the same day.
// Touching windows do not overlap.
func (w Window) Overlaps(o Window) bool {
	if !dateutil.SameDay(w.Day, o.Day) {
		return false
	}
	return event.TimesOverlap(w.Start, w.End, o.Start, o.End)
}

// OverlapsEvent returns true if the window overlaps the event's window.
func (w Window) OverlapsEvent(e *event.Event) bool {
	return w.Overlaps(windowOf(e))
}

// String returns a compact representation like "2025-01-15 10:00-11:00".
func (w Window) String() string {
	return fmt.Sprintf("%s %s-%s", w.Day.Format("2006-01-02"), w.Start, w.End)
}

// overlapsAny returns true if the window overlaps any of the given windows.
func overlapsAny(w Window, zones []Window) bool {
	for _, z := range zones {
		if w.Overlaps(z) {
			return true
		}
	}
	return false
}
