// Package placer assigns concrete time windows to calendar events under
// per-user active-hours and rest-day constraints. Conflicts with
// lower-priority events are resolved by recursively relocating them
// (cascading). The engine is a pure function over an immutable snapshot of
// existing events: it performs no I/O and never mutates its inputs, so the
// caller persists the result and must serialize placements per event
// collection.
package placer

import (
	"fmt"
	"time"

	"github.com/javiermolinar/rocinante/internal/dateutil"
	"github.com/javiermolinar/rocinante/internal/event"
)

// maxCascadeDepth bounds the relocation recursion. Exceeding it is a
// distinct failure, not a crash.
const maxCascadeDepth = 3

// Placer places events against a settings snapshot.
type Placer struct {
	settings Settings
}

// New creates a Placer with the given scheduling settings.
func New(settings Settings) *Placer {
	return &Placer{settings: settings}
}

// Result is the outcome of a successful placement.
type Result struct {
	// Placed is the input event with its concrete window assigned.
	Placed *event.Event

	// Moved lists every other event whose window changed, in relocation
	// order. Empty when the event fit without displacing anything.
	Moved []*event.Event

	// Trace is the decision log of the run, populated on failure too.
	Trace *Trace
}

// request is a unit of placement work. Relocation requests are produced only
// internally during cascades and space creation, never accepted from callers.
type request struct {
	event     *event.Event
	forbidden []Window // windows the event must not reoccupy
	relocate  bool     // the event is being moved out of its current window
}

// outcome is the internal result of one recursive placement step.
type outcome struct {
	placed *event.Event
	moved  []*event.Event
}

// Place assigns a window to e against the snapshot of existing events.
// On failure the returned Result still carries the decision trace; the error
// matches one of the package sentinel errors under errors.Is. No partial
// relocations are ever surfaced: Moved is complete on success and absent on
// failure.
func (p *Placer) Place(e *event.Event, existing []*event.Event) (*Result, error) {
	trace := &Trace{}
	res := &Result{Trace: trace}

	if err := p.settings.Validate(); err != nil {
		trace.record(ActionReject, 0, e, "settings rejected: %v", err)
		return res, err
	}
	trace.record(ActionValidate, 0, e, "settings ok, active %s-%s, rest day %s",
		p.settings.ActiveStart, p.settings.ActiveEnd, p.settings.RestDay)

	st := newState(existing, trace)
	if e.ID != 0 {
		// Re-placing a known event must not conflict with its own old row.
		st.exclude(e.ID)
	}

	out, err := p.place(request{event: e.Clone()}, st)
	if err != nil {
		trace.record(ActionReject, 0, e, "%v", err)
		return res, err
	}

	res.Placed = out.placed
	res.Moved = out.moved
	return res, nil
}

// place is the recursive placement procedure. It dispatches exhaustively on
// the event's rigidity class.
func (p *Placer) place(req request, st *state) (*outcome, error) {
	if st.depth > maxCascadeDepth {
		return nil, fmt.Errorf("%w: relocation chain deeper than %d",
			ErrCascadeDepthExceeded, maxCascadeDepth)
	}

	switch req.event.Type {
	case event.TypeFixed:
		return p.placeFixed(req, st)
	case event.TypeFlexible:
		return p.placeFlexible(req, st)
	case event.TypeFluid:
		return p.placeFluid(req, st)
	default:
		return nil, fmt.Errorf("%w: %q", event.ErrInvalidType, req.event.Type)
	}
}

// placeFixed places an immovable event at its exact requested window,
// cascading every displaceable conflict. A conflict with another fixed event
// is unrecoverable.
func (p *Placer) placeFixed(req request, st *state) (*outcome, error) {
	w := windowOf(req.event)

	if ok, msg := p.checkBasicConstraints(w); !ok {
		return nil, fmt.Errorf("%w: %s", ErrConstraintViolation, msg)
	}

	conflicts := findConflicts(w, st.visible())
	if len(conflicts) == 0 {
		st.trace.record(ActionKeep, st.depth, req.event, "window %s is free", w)
		return &outcome{placed: req.event.Clone()}, nil
	}

	for _, c := range conflicts {
		if c.IsFixed() {
			return nil, fmt.Errorf("%w: %s overlaps %s", ErrFixedConflict, w, c)
		}
	}

	moved, err := p.cascade(w, conflicts, req, st)
	if err != nil {
		return nil, err
	}
	return &outcome{placed: req.event.Clone(), moved: moved}, nil
}

// placeFlexible places an event whose day is fixed but whose time-of-day is
// free. It keeps the requested window when that is already valid, otherwise
// forward-checks the day, otherwise tries to create space by relocating
// fluid events.
func (p *Placer) placeFlexible(req request, st *state) (*outcome, error) {
	day := dateutil.TruncateToDay(req.event.Day)
	dur := req.event.Duration()

	if p.isRestDay(day) {
		return nil, fmt.Errorf("%w: %s is the rest day",
			ErrConstraintViolation, day.Format("2006-01-02"))
	}

	if out, ok := p.keepRequested(req, st); ok {
		return out, nil
	}

	if w, ok := p.findDirectSlot(day, dur, req, st); ok {
		st.trace.record(ActionDirect, st.depth, req.event, "placed at %s", w)
		return &outcome{placed: placedAt(req.event, w)}, nil
	}

	return p.createSpace(day, dur, req, st)
}

// placeFluid places a fully movable event on the first day of its week that
// offers a valid slot, skipping the rest day, using the earliest slot.
func (p *Placer) placeFluid(req request, st *state) (*outcome, error) {
	dur := req.event.Duration()

	if out, ok := p.keepRequested(req, st); ok {
		return out, nil
	}

	for _, day := range dateutil.WeekDays(req.event.Day) {
		if p.isRestDay(day) {
			continue
		}
		if w, ok := p.findDirectSlot(day, dur, req, st); ok {
			st.trace.record(ActionDirect, st.depth, req.event, "placed at %s", w)
			return &outcome{placed: placedAt(req.event, w)}, nil
		}
	}

	monday, _ := dateutil.WeekRange(req.event.Day)
	return nil, fmt.Errorf("%w: %d minutes in week of %s",
		ErrNoAvailableSlot, dur, monday.Format("2006-01-02"))
}

// keepRequested honors the requested window unchanged when it is already
// constraint-valid and conflict-free. Relocations never qualify: a relocating
// event must leave its window. Re-placing an already valid event is therefore
// a no-op with no moves.
func (p *Placer) keepRequested(req request, st *state) (*outcome, bool) {
	if req.relocate {
		return nil, false
	}
	w := windowOf(req.event)
	if w.Minutes() != req.event.Duration() {
		return nil, false // placeholder window, only the length is meant
	}
	if ok, _ := p.checkBasicConstraints(w); !ok {
		return nil, false
	}
	if overlapsAny(w, req.forbidden) {
		return nil, false
	}
	if len(findConflicts(w, st.visible())) > 0 {
		return nil, false
	}
	st.trace.record(ActionKeep, st.depth, req.event, "requested window %s is free", w)
	return &outcome{placed: req.event.Clone()}, true
}

// checkBasicConstraints verifies the rest-day and active-hours rules for a
// window. Non-throwing: returns a validity flag and a message for the caller.
func (p *Placer) checkBasicConstraints(w Window) (bool, string) {
	if p.isRestDay(w.Day) {
		return false, fmt.Sprintf("%s is the rest day", w.Day.Format("2006-01-02"))
	}
	if w.Start < p.settings.ActiveStart || w.End > p.settings.ActiveEnd {
		return false, fmt.Sprintf("window %s-%s outside active hours %s-%s",
			w.Start, w.End, p.settings.ActiveStart, p.settings.ActiveEnd)
	}
	return true, ""
}

// isRestDay returns true if the day falls on the configured rest day.
func (p *Placer) isRestDay(day time.Time) bool {
	return day.Weekday() == p.settings.restWeekday()
}

// placedAt returns a copy of the event occupying the given window.
func placedAt(e *event.Event, w Window) *event.Event {
	c := e.Clone()
	c.Day = w.Day
	c.Start = w.Start
	c.End = w.End
	return c
}
