package placer

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/javiermolinar/rocinante/internal/event"
)

// createSpace tries to make room for a flexible event on its day by
// relocating fluid events, in increasing cost order: a single big enough
// fluid event, then a fluid event adjacent to a gap, then an adjacent fluid
// pair. The first successful attempt wins; a failed attempt is rolled back
// completely (its forked state is discarded) before the next is tried.
func (p *Placer) createSpace(day time.Time, dur int, req request, st *state) (*outcome, error) {
	strategies := []func(time.Time, int, request, *state) (*outcome, error){
		p.spaceBySingleFluid,
		p.spaceByGapAndFluid,
		p.spaceByFluidPair,
	}

	for _, strategy := range strategies {
		out, err := strategy(day, dur, req, st)
		if err != nil {
			return nil, err
		}
		if out != nil {
			return out, nil
		}
	}

	return nil, fmt.Errorf("%w: no room for %d minutes on %s",
		ErrNoAvailableSlot, dur, day.Format("2006-01-02"))
}

// spaceBySingleFluid relocates one same-day fluid event whose own duration
// covers the needed duration, shortest candidate first, then retries direct
// placement in the freed window.
func (p *Placer) spaceBySingleFluid(day time.Time, dur int, req request, st *state) (*outcome, error) {
	for _, f := range shortestFirst(p.fluidsOn(day, st)) {
		if f.Duration() < dur {
			continue
		}
		st.trace.record(ActionStrategy, st.depth, req.event,
			"relocating fluid %s to free its window", f)

		out, err := p.relocateAndRetry(day, dur, req, st, []*event.Event{f}, nil)
		if err != nil {
			return nil, err
		}
		if out != nil {
			return out, nil
		}
	}
	return nil, nil
}

// spaceByGapAndFluid relocates a same-day fluid event that shares a boundary
// with an idle gap, when the event plus the gap cover the needed duration.
// The relocated event is forbidden from reoccupying the gap, so the combined
// space stays free for the retry. Events big enough on their own are covered
// by spaceBySingleFluid and skipped here.
func (p *Placer) spaceByGapAndFluid(day time.Time, dur int, req request, st *state) (*outcome, error) {
	gaps := p.dayGaps(day, st.dayEvents(day))

	for _, f := range shortestFirst(p.fluidsOn(day, st)) {
		if f.Duration() >= dur {
			continue
		}
		for _, g := range gaps {
			if !g.adjacentTo(f) || f.Duration()+g.Minutes() < dur {
				continue
			}
			st.trace.record(ActionStrategy, st.depth, req.event,
				"relocating fluid %s away from adjacent gap %s-%s", f, g.Start, g.End)

			out, err := p.relocateAndRetry(day, dur, req, st,
				[]*event.Event{f}, []Window{g.window()})
			if err != nil {
				return nil, err
			}
			if out != nil {
				return out, nil
			}
		}
	}
	return nil, nil
}

// spaceByFluidPair relocates two mutually adjacent same-day fluid events
// whose combined duration covers the need. The second event is forbidden
// from reoccupying the first's vacated window. Pairs where either member is
// big enough alone are covered by spaceBySingleFluid and skipped.
func (p *Placer) spaceByFluidPair(day time.Time, dur int, req request, st *state) (*outcome, error) {
	fluids := p.fluidsOn(day, st)

	for _, a := range fluids {
		for _, b := range fluids {
			if a.ID == b.ID || a.End != b.Start {
				continue
			}
			if a.Duration() >= dur || b.Duration() >= dur {
				continue
			}
			if a.Duration()+b.Duration() < dur {
				continue
			}
			st.trace.record(ActionStrategy, st.depth, req.event,
				"relocating adjacent fluid pair %s and %s", a, b)

			out, err := p.relocateAndRetry(day, dur, req, st,
				[]*event.Event{a, b}, []Window{windowOf(a)})
			if err != nil {
				return nil, err
			}
			if out != nil {
				return out, nil
			}
		}
	}
	return nil, nil
}

// relocateAndRetry forks the state, relocates the given events in order, and
// retries direct placement of the requested event against the pool minus the
// relocated events plus their new positions. Every relocation is barred from
// extraForbidden and inherits the request's own forbidden zones, so
// transitive moves never reoccupy a window reserved higher up the recursion.
//
// Returns (nil, nil) when the attempt simply fails, so the caller rolls back
// and tries the next candidate; depth exhaustion propagates as an error.
func (p *Placer) relocateAndRetry(day time.Time, dur int, req request, st *state, targets []*event.Event, extraForbidden []Window) (*outcome, error) {
	attempt := st.fork()
	var moved []*event.Event

	for _, f := range targets {
		attempt.exclude(f.ID)

		forbidden := append(slices.Clone(req.forbidden), extraForbidden...)

		sub, err := p.place(request{event: f.Clone(), forbidden: forbidden, relocate: true}, attempt.child())
		if err != nil {
			if errors.Is(err, ErrCascadeDepthExceeded) {
				return nil, err
			}
			return nil, nil // attempt failed, roll back
		}

		st.trace.record(ActionRelocate, st.depth, f, "moved to %s", windowOf(sub.placed))
		attempt.merge(sub)
		moved = append(moved, sub.placed)
		moved = append(moved, sub.moved...)
	}

	w, ok := p.findDirectSlot(day, dur, req, attempt)
	if !ok {
		return nil, nil
	}

	st.trace.record(ActionDirect, st.depth, req.event, "placed at %s after making space", w)
	return &outcome{placed: placedAt(req.event, w), moved: moved}, nil
}

// fluidsOn returns the visible fluid events on the given day, sorted by
// start time.
func (p *Placer) fluidsOn(day time.Time, st *state) []*event.Event {
	var fluids []*event.Event
	for _, e := range st.dayEvents(day) {
		if e.IsFluid() {
			fluids = append(fluids, e)
		}
	}
	return fluids
}

// shortestFirst orders events by ascending duration, then by start time.
func shortestFirst(events []*event.Event) []*event.Event {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b *event.Event) int {
		return a.Duration() - b.Duration()
	})
	return out
}
