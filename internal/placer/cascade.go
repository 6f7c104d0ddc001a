package placer

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/rocinante/internal/event"
)

// cascade relocates every event in conflicts out of the target window,
// recursively relocating anything those moves displace in turn. Fluid events
// go first: they have no day constraint, so moving them is cheaper and keeps
// the cascade shallow. Placement is all-or-nothing: if any relocation fails
// the whole cascade fails and no partial moves are retained.
//
// conflicts must not contain fixed events; those fail upstream.
func (p *Placer) cascade(target Window, conflicts []*event.Event, req request, st *state) ([]*event.Event, error) {
	st.trace.record(ActionCascade, st.depth, req.event,
		"%d conflicting events in %s", len(conflicts), target)

	cur := st.fork()
	var moved []*event.Event

	for _, c := range orderCheapestFirst(conflicts) {
		cur.exclude(c.ID)

		reloc := request{
			event:     c.Clone(),
			forbidden: append(append([]Window{}, req.forbidden...), target),
			relocate:  true,
		}

		sub, err := p.place(reloc, cur.child())
		if err != nil {
			if errors.Is(err, ErrCascadeDepthExceeded) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: could not relocate %s: %v", ErrCascadeFailed, c, err)
		}

		st.trace.record(ActionRelocate, st.depth, c, "moved to %s", windowOf(sub.placed))
		cur.merge(sub)
		moved = append(moved, sub.placed)
		moved = append(moved, sub.moved...)
	}

	return moved, nil
}

// orderCheapestFirst partitions conflicts into fluid then flexible, keeping
// the original order within each class.
func orderCheapestFirst(conflicts []*event.Event) []*event.Event {
	ordered := make([]*event.Event, 0, len(conflicts))
	for _, c := range conflicts {
		if c.IsFluid() {
			ordered = append(ordered, c)
		}
	}
	for _, c := range conflicts {
		if !c.IsFluid() {
			ordered = append(ordered, c)
		}
	}
	return ordered
}
