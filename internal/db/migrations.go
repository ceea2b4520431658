package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS templates (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS template_configurations (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			template_id      INTEGER NOT NULL REFERENCES templates(id) ON DELETE CASCADE,
			key              TEXT NOT NULL,
			class_type_id    INTEGER NOT NULL,
			instructor_id    INTEGER NOT NULL,
			class_room_id    INTEGER NOT NULL,
			capacity         INTEGER NOT NULL,
			duration_minutes INTEGER NOT NULL,
			position         INTEGER NOT NULL,
			UNIQUE(template_id, key)
		);

		CREATE TABLE IF NOT EXISTS template_slots (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			template_id INTEGER NOT NULL REFERENCES templates(id) ON DELETE CASCADE,
			key         TEXT NOT NULL,
			day         INTEGER NOT NULL CHECK(day BETWEEN 0 AND 6),
			hour        INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_template_configurations_template ON template_configurations(template_id);
		CREATE INDEX IF NOT EXISTS idx_template_slots_template ON template_slots(template_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating template tables: %w", err)
	}

	return nil
}
