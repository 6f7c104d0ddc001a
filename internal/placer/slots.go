package placer

import (
	"time"

	"github.com/javiermolinar/rocinante/internal/event"
)

// SlotGranularityMin is the spacing between candidate start instants.
const SlotGranularityMin = 15

// daySlots enumerates candidate start times at the slot granularity, from
// active start up to (excluding) active end.
func (p *Placer) daySlots() []string {
	start := event.TimeToMinutes(p.settings.ActiveStart)
	end := event.TimeToMinutes(p.settings.ActiveEnd)

	var slots []string
	for m := start; m < end; m += SlotGranularityMin {
		slots = append(slots, event.MinutesToTime(m))
	}
	return slots
}

// forwardCheck prunes the candidate slots for a window of durationMin on the
// given day, before any commitment. A slot survives unless its window:
//   - runs past the active-hours end,
//   - overlaps the relocating event's own original window,
//   - overlaps a forbidden zone, or
//   - overlaps any existing event.
//
// Surviving windows are returned earliest-first.
func (p *Placer) forwardCheck(day time.Time, durationMin int, existing []*event.Event, req request) []Window {
	activeEnd := event.TimeToMinutes(p.settings.ActiveEnd)

	var valid []Window
	for _, slot := range p.daySlots() {
		startMin := event.TimeToMinutes(slot)
		endMin := startMin + durationMin
		if endMin > activeEnd {
			break // slots are ordered, later ones only run further past
		}

		w := Window{Day: day, Start: slot, End: event.MinutesToTime(endMin)}
		if req.relocate && w.Overlaps(windowOf(req.event)) {
			continue
		}
		if overlapsAny(w, req.forbidden) {
			continue
		}
		if len(findConflicts(w, existing)) > 0 {
			continue
		}
		valid = append(valid, w)
	}
	return valid
}

// findDirectSlot runs the forward check on a single day and returns the
// earliest surviving window, if any.
func (p *Placer) findDirectSlot(day time.Time, durationMin int, req request, st *state) (Window, bool) {
	valid := p.forwardCheck(day, durationMin, st.dayEvents(day), req)
	if len(valid) == 0 {
		return Window{}, false
	}
	return valid[0], true
}
