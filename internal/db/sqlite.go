// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/rocinante/internal/event"
)

// SQLite implements event.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const eventColumns = `id, title, type, scheduled_date, scheduled_start, scheduled_end, owner_id, created_at`

// CreateEvent adds a new event to the repository.
// Returns ErrWindowOverlap if the event overlaps an existing event.
func (s *SQLite) CreateEvent(ctx context.Context, e *event.Event) error {
	if err := s.checkOverlap(ctx, e.Day, e.Start, e.End, 0); err != nil {
		return err
	}

	query := `
		INSERT INTO events (title, type, scheduled_date, scheduled_start, scheduled_end, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Title,
		e.Type,
		e.Day.Format("2006-01-02"),
		e.Start,
		e.End,
		e.OwnerID,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

// GetEvent retrieves an event by ID. Returns nil if not found.
func (s *SQLite) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	e, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return e, nil
}

// DeleteEvent removes an event by ID.
func (s *SQLite) DeleteEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: id %d", event.ErrEventNotFound, id)
	}

	return nil
}

// ListEventsByDateRange returns all events scheduled within the date range (inclusive).
func (s *SQLite) ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*event.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE scheduled_date >= ? AND scheduled_date <= ?
		ORDER BY scheduled_date, scheduled_start
	`

	rows, err := s.db.QueryContext(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// ApplyPlacement persists a placement result atomically: the scheduled event
// plus every moved event, in one transaction. The final state of every
// touched day is validated for overlaps before commit; on any failure the
// transaction rolls back and nothing is written.
func (s *SQLite) ApplyPlacement(ctx context.Context, placed *event.Event, moved []*event.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	updateQuery := `
		UPDATE events
		SET scheduled_date = ?, scheduled_start = ?, scheduled_end = ?
		WHERE id = ?
	`

	for _, m := range moved {
		result, err := tx.ExecContext(ctx, updateQuery,
			m.Day.Format("2006-01-02"), m.Start, m.End, m.ID)
		if err != nil {
			return fmt.Errorf("moving event %d: %w", m.ID, err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return fmt.Errorf("%w: moved event id %d", event.ErrEventNotFound, m.ID)
		}
	}

	if placed.ID == 0 {
		insertQuery := `
			INSERT INTO events (title, type, scheduled_date, scheduled_start, scheduled_end, owner_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`
		result, err := tx.ExecContext(ctx, insertQuery,
			placed.Title,
			placed.Type,
			placed.Day.Format("2006-01-02"),
			placed.Start,
			placed.End,
			placed.OwnerID,
			placed.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting placed event: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
		placed.ID = id
	} else {
		result, err := tx.ExecContext(ctx, updateQuery,
			placed.Day.Format("2006-01-02"), placed.Start, placed.End, placed.ID)
		if err != nil {
			return fmt.Errorf("updating placed event: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return fmt.Errorf("%w: placed event id %d", event.ErrEventNotFound, placed.ID)
		}
	}

	if err := s.checkFinalState(ctx, tx, append([]*event.Event{placed}, moved...)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// checkFinalState verifies that no touched day contains overlapping events
// after the writes in the transaction.
func (s *SQLite) checkFinalState(ctx context.Context, tx *sql.Tx, touched []*event.Event) error {
	days := make(map[string]struct{})
	for _, e := range touched {
		days[e.Day.Format("2006-01-02")] = struct{}{}
	}

	query := `
		SELECT id, title, scheduled_start, scheduled_end
		FROM events
		WHERE scheduled_date = ?
		ORDER BY scheduled_start
	`

	type row struct {
		id         int64
		title      string
		start, end string
	}

	for day := range days {
		rows, err := tx.QueryContext(ctx, query, day)
		if err != nil {
			return fmt.Errorf("querying day %s: %w", day, err)
		}

		var dayRows []row
		for rows.Next() {
			var r row
			if err := rows.Scan(&r.id, &r.title, &r.start, &r.end); err != nil {
				_ = rows.Close()
				return fmt.Errorf("scanning event: %w", err)
			}
			dayRows = append(dayRows, r)
		}
		if err := rows.Close(); err != nil {
			return fmt.Errorf("closing rows: %w", err)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating events: %w", err)
		}

		for i := 0; i < len(dayRows); i++ {
			for j := i + 1; j < len(dayRows); j++ {
				a, b := dayRows[i], dayRows[j]
				if event.TimesOverlap(a.start, a.end, b.start, b.end) {
					return fmt.Errorf("%w: %q (%s-%s) conflicts with %q (%s-%s) on %s",
						event.ErrWindowOverlap,
						a.title, a.start, a.end,
						b.title, b.start, b.end, day)
				}
			}
		}
	}

	return nil
}

// checkOverlap checks if a time window overlaps existing events on the same
// day, excluding the event with excludeID when non-zero.
func (s *SQLite) checkOverlap(ctx context.Context, day time.Time, start, end string, excludeID int64) error {
	query := `
		SELECT id, title, scheduled_start, scheduled_end
		FROM events
		WHERE scheduled_date = ?
		  AND id != ?
		  AND scheduled_start < ?
		  AND scheduled_end > ?
		LIMIT 1
	`

	var (
		id         int64
		title      string
		existStart string
		existEnd   string
	)

	err := s.db.QueryRowContext(ctx, query,
		day.Format("2006-01-02"),
		excludeID,
		end,
		start,
	).Scan(&id, &title, &existStart, &existEnd)

	if err == sql.ErrNoRows {
		return nil // No overlap
	}
	if err != nil {
		return fmt.Errorf("checking overlap: %w", err)
	}

	return fmt.Errorf("%w: conflicts with #%d %q (%s-%s)",
		event.ErrWindowOverlap, id, title, existStart, existEnd)
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEvent reads one event row.
func scanEvent(sc scanner) (*event.Event, error) {
	var (
		e             event.Event
		scheduledDate string
		createdAt     string
	)

	err := sc.Scan(
		&e.ID,
		&e.Title,
		&e.Type,
		&scheduledDate,
		&e.Start,
		&e.End,
		&e.OwnerID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	e.Day, err = parseDate(scheduledDate)
	if err != nil {
		return nil, fmt.Errorf("parsing scheduled date: %w", err)
	}

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	return &e, nil
}

// parseDate parses a date string in various formats SQLite might return.
// Date-only values (midnight) are parsed in local timezone to match time.Now() behavior.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z" - extract the
	// date part and treat it as local midnight.
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		if t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
