package placer

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/rocinante/internal/event"
)

// Action identifies a kind of placement decision.
type Action string

const (
	ActionValidate Action = "validate"
	ActionKeep     Action = "keep"     // requested window honored unchanged
	ActionDirect   Action = "direct"   // forward check found a free slot
	ActionCascade  Action = "cascade"  // conflicting events pushed aside
	ActionRelocate Action = "relocate" // a displaced event was moved
	ActionStrategy Action = "strategy" // space-creation attempt
	ActionReject   Action = "reject"   // a step failed
)

// Decision is one recorded step of a placement run.
type Decision struct {
	Action  Action
	Depth   int
	EventID int64
	Title   string
	Detail  string
}

// String formats the decision for human consumption.
func (d Decision) String() string {
	if d.Title == "" {
		return fmt.Sprintf("[%d] %-8s %s", d.Depth, d.Action, d.Detail)
	}
	return fmt.Sprintf("[%d] %-8s %q: %s", d.Depth, d.Action, d.Title, d.Detail)
}

// Trace is the structured decision log of a single placement call. Every
// attempt is recorded, including rolled-back strategy branches, so tests can
// assert on the decision sequence and users can inspect why a placement
// landed where it did.
type Trace struct {
	decisions []Decision
}

func (t *Trace) record(action Action, depth int, e *event.Event, format string, args ...any) {
	d := Decision{Action: action, Depth: depth, Detail: fmt.Sprintf(format, args...)}
	if e != nil {
		d.EventID = e.ID
		d.Title = e.Title
	}
	t.decisions = append(t.decisions, d)
}

// Decisions returns the recorded steps in order.
func (t *Trace) Decisions() []Decision {
	out := make([]Decision, len(t.decisions))
	copy(out, t.decisions)
	return out
}

// Actions returns just the action sequence, for compact assertions.
func (t *Trace) Actions() []Action {
	out := make([]Action, len(t.decisions))
	for i, d := range t.decisions {
		out[i] = d.Action
	}
	return out
}

// String renders the whole trace, one decision per line.
func (t *Trace) String() string {
	var b strings.Builder
	for _, d := range t.decisions {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}
