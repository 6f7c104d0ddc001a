package placer

import "errors"

// Placement errors. Every failure is terminal for the single event being
// placed; ErrInvalidSettings is the only one that should abort a whole batch.
var (
	// ErrInvalidSettings means the scheduling settings are malformed.
	// Checked before any placement work happens.
	ErrInvalidSettings = errors.New("invalid scheduling settings")

	// ErrConstraintViolation means the requested window falls on the rest
	// day or outside active hours.
	ErrConstraintViolation = errors.New("window violates scheduling constraints")

	// ErrFixedConflict means a fixed event overlaps another fixed event.
	// Two immovable events cannot coexist, so no cascade is attempted.
	ErrFixedConflict = errors.New("fixed event conflicts with another fixed event")

	// ErrNoAvailableSlot means the forward check found no valid slot after
	// exhausting the event type's strategy.
	ErrNoAvailableSlot = errors.New("no available slot")

	// ErrCascadeFailed means a conflicting event could not be relocated.
	ErrCascadeFailed = errors.New("cascade relocation failed")

	// ErrCascadeDepthExceeded means the relocation recursion hit its
	// safety limit.
	ErrCascadeDepthExceeded = errors.New("cascade depth exceeded")
)
