package placer

import (
	"slices"
	"time"

	"github.com/javiermolinar/rocinante/internal/dateutil"
	"github.com/javiermolinar/rocinante/internal/event"
)

// state threads the placement context through the recursion: the immutable
// event snapshot, the ids displaced out of it, the relocated replacements
// accumulated so far, and the remaining depth budget. The base snapshot is
// never mutated; branches fork the state and roll back by discarding the fork.
type state struct {
	base  []*event.Event       // caller's snapshot, read-only
	skip  map[int64]struct{}   // ids removed from base (displaced or self)
	moved []*event.Event       // relocated copies, visible alongside base
	depth int
	trace *Trace
}

func newState(base []*event.Event, trace *Trace) *state {
	return &state{
		base:  base,
		skip:  make(map[int64]struct{}),
		trace: trace,
	}
}

// fork returns an independent copy at the same depth. Mutations to the fork
// never leak back, which makes strategy rollback a matter of dropping it.
func (s *state) fork() *state {
	skip := make(map[int64]struct{}, len(s.skip))
	for id := range s.skip {
		skip[id] = struct{}{}
	}
	return &state{
		base:  s.base,
		skip:  skip,
		moved: slices.Clone(s.moved),
		depth: s.depth,
		trace: s.trace,
	}
}

// child returns a fork one recursion level deeper, for relocation calls.
func (s *state) child() *state {
	c := s.fork()
	c.depth = s.depth + 1
	return c
}

// exclude removes an event from the visible pool by id.
func (s *state) exclude(id int64) {
	s.skip[id] = struct{}{}
	for i, m := range s.moved {
		if m.ID == id {
			s.moved = slices.Delete(s.moved, i, i+1)
			break
		}
	}
}

// admit adds a relocated event to the pool, replacing any prior position.
func (s *state) admit(e *event.Event) {
	s.exclude(e.ID)
	s.moved = append(s.moved, e)
}

// merge admits a sub-placement's scheduled event and everything it moved.
func (s *state) merge(o *outcome) {
	s.admit(o.placed)
	for _, m := range o.moved {
		s.admit(m)
	}
}

// visible returns the events currently occupying the calendar: the snapshot
// minus displaced ids, plus relocated replacements.
func (s *state) visible() []*event.Event {
	out := make([]*event.Event, 0, len(s.base)+len(s.moved))
	for _, e := range s.base {
		if _, gone := s.skip[e.ID]; gone {
			continue
		}
		out = append(out, e)
	}
	return append(out, s.moved...)
}

// dayEvents returns the visible events on the given day, sorted by start time.
func (s *state) dayEvents(day time.Time) []*event.Event {
	var out []*event.Event
	for _, e := range s.visible() {
		if dateutil.SameDay(e.Day, day) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b *event.Event) int {
		if a.Start < b.Start {
			return -1
		}
		if a.Start > b.Start {
			return 1
		}
		return 0
	})
	return out
}
