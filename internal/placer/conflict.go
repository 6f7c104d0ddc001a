package placer

import "github.com/javiermolinar/rocinante/internal/event"

// findConflicts returns every event whose window overlaps the candidate
// window. Two half-open windows conflict iff candidate.start < other.end AND
// candidate.end > other.start; windows that merely touch do not conflict.
func findConflicts(w Window, events []*event.Event) []*event.Event {
	var conflicts []*event.Event
	for _, e := range events {
		if w.OverlapsEvent(e) {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}
