// Package series orchestrates placement of a sequence of event instances,
// such as the expansion of a recurring definition supplied by the caller.
// It coordinates the placement engine and the repository: each instance is
// placed against a snapshot that already includes every previously placed
// instance, and each success is persisted atomically before moving on.
package series

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/rocinante/internal/dateutil"
	"github.com/javiermolinar/rocinante/internal/event"
	"github.com/javiermolinar/rocinante/internal/placer"
)

// ErrEmptyBatch is returned when Run is called with no events.
var ErrEmptyBatch = errors.New("no events to place")

// Runner places batches of events through a shared repository.
type Runner struct {
	repo     event.Repository
	settings placer.Settings
}

// New creates a Runner with the given repository and scheduling settings.
func New(repo event.Repository, settings placer.Settings) *Runner {
	return &Runner{repo: repo, settings: settings}
}

// Outcome is the per-instance result of a batch run.
type Outcome struct {
	Requested *event.Event
	Result    *placer.Result
	Err       error // nil on success; the instance was skipped otherwise
}

// Skipped returns true if the instance could not be placed.
func (o Outcome) Skipped() bool {
	return o.Err != nil
}

// Run places the given events in order. Invalid settings abort the whole
// batch before any placement; every other failure is scoped to its instance
// and recorded as a skipped Outcome while the batch continues. Each success
// is persisted transactionally and folded into the snapshot used for the
// remaining instances.
func (r *Runner) Run(ctx context.Context, events []*event.Event) ([]Outcome, error) {
	if len(events) == 0 {
		return nil, ErrEmptyBatch
	}

	if err := r.settings.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := r.loadSnapshot(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	p := placer.New(r.settings)
	outcomes := make([]Outcome, 0, len(events))

	for _, e := range events {
		res, err := p.Place(e, snapshot)
		if err != nil {
			outcomes = append(outcomes, Outcome{Requested: e, Result: res, Err: err})
			continue
		}

		if err := r.repo.ApplyPlacement(ctx, res.Placed, res.Moved); err != nil {
			outcomes = append(outcomes, Outcome{Requested: e, Result: res,
				Err: fmt.Errorf("persisting placement: %w", err)})
			continue
		}

		snapshot = fold(snapshot, res)
		outcomes = append(outcomes, Outcome{Requested: e, Result: res})
	}

	return outcomes, nil
}

// loadSnapshot fetches every event in the span of weeks touched by the batch.
func (r *Runner) loadSnapshot(ctx context.Context, events []*event.Event) ([]*event.Event, error) {
	first, last := dateutil.WeekRange(events[0].Day)
	for _, e := range events[1:] {
		monday, sunday := dateutil.WeekRange(e.Day)
		if monday.Before(first) {
			first = monday
		}
		if sunday.After(last) {
			last = sunday
		}
	}

	return r.repo.ListEventsByDateRange(ctx, first, last)
}

// fold merges a placement result into the snapshot: moved events and a
// re-placed event replace their old copies, a new event joins the pool.
func fold(snapshot []*event.Event, res *placer.Result) []*event.Event {
	replaceByID := make(map[int64]*event.Event, len(res.Moved)+1)
	for _, m := range res.Moved {
		replaceByID[m.ID] = m
	}
	if res.Placed.ID != 0 {
		replaceByID[res.Placed.ID] = res.Placed
	}

	placedSeen := false
	out := make([]*event.Event, 0, len(snapshot)+1)
	for _, e := range snapshot {
		if r, ok := replaceByID[e.ID]; ok {
			out = append(out, r)
			placedSeen = placedSeen || r == res.Placed
			continue
		}
		out = append(out, e)
	}
	if !placedSeen {
		out = append(out, res.Placed)
	}
	return out
}

// SpanOf reports the first and last day a batch touches, for display.
func SpanOf(events []*event.Event) (time.Time, time.Time) {
	if len(events) == 0 {
		return time.Time{}, time.Time{}
	}
	first, last := events[0].Day, events[0].Day
	for _, e := range events[1:] {
		if e.Day.Before(first) {
			first = e.Day
		}
		if e.Day.After(last) {
			last = e.Day
		}
	}
	return dateutil.TruncateToDay(first), dateutil.TruncateToDay(last)
}
