package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS events (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			title           TEXT NOT NULL,
			type            TEXT CHECK(type IN ('fixed', 'flexible', 'fluid')),
			scheduled_date  DATE NOT NULL,
			scheduled_start TIME NOT NULL,
			scheduled_end   TIME NOT NULL,
			owner_id        TEXT NOT NULL DEFAULT '',
			created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_events_scheduled ON events(scheduled_date);
		CREATE INDEX IF NOT EXISTS idx_events_owner ON events(owner_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating events table: %w", err)
	}

	return nil
}
