package placer

import (
	"time"

	"github.com/javiermolinar/rocinante/internal/event"
)

// Gap is a maximal idle interval between scheduled events on a day, within
// active-hours bounds. Zero-length gaps mark boundaries between back-to-back
// events; they matter for adjacency checks.
type Gap struct {
	Day   time.Time
	Start string // "HH:MM"
	End   string // "HH:MM"
}

// Minutes returns the gap length.
func (g Gap) Minutes() int {
	return event.TimeToMinutes(g.End) - event.TimeToMinutes(g.Start)
}

// window converts the gap to a Window, for forbidden-zone use.
func (g Gap) window() Window {
	return Window{Day: g.Day, Start: g.Start, End: g.End}
}

// adjacentTo returns true if the gap shares a boundary instant with the
// event's window.
func (g Gap) adjacentTo(e *event.Event) bool {
	return g.End == e.Start || e.End == g.Start
}

// dayGaps walks chronologically across the day's events (sorted by start
// time) and emits every maximal idle interval between active-hours bounds.
func (p *Placer) dayGaps(day time.Time, sorted []*event.Event) []Gap {
	cursor := p.settings.ActiveStart

	var gaps []Gap
	for _, e := range sorted {
		if e.Start >= cursor {
			gaps = append(gaps, Gap{Day: day, Start: cursor, End: e.Start})
		}
		if e.End > cursor {
			cursor = e.End
		}
	}
	if cursor <= p.settings.ActiveEnd {
		gaps = append(gaps, Gap{Day: day, Start: cursor, End: p.settings.ActiveEnd})
	}
	return gaps
}
