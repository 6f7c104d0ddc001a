package event

import (
	"context"
	"time"
)

// Repository defines the storage interface for events.
type Repository interface {
	// CreateEvent adds a new event to the repository.
	CreateEvent(ctx context.Context, e *Event) error

	// GetEvent retrieves an event by ID. Returns nil if not found.
	GetEvent(ctx context.Context, id int64) (*Event, error)

	// DeleteEvent removes an event by ID.
	// Returns ErrEventNotFound if no such event exists.
	DeleteEvent(ctx context.Context, id int64) error

	// ListEventsByDateRange returns all events scheduled within the date
	// range (inclusive), ordered by day then start time.
	ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*Event, error)

	// ApplyPlacement persists a placement result atomically: the scheduled
	// event is inserted (or its window updated when it already exists) and
	// every moved event is rewritten in the same transaction. The final
	// state is validated for overlaps before commit; on any failure nothing
	// is written.
	ApplyPlacement(ctx context.Context, placed *Event, moved []*Event) error

	// Close releases any resources held by the repository.
	Close() error
}
