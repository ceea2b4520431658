// Package db provides SQLite storage for named schedule templates.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/studiogrid/internal/schedule"
)

// Storage errors.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrEmptyName        = errors.New("template name cannot be empty")
)

// Template is a stored template plus its creation time.
type Template struct {
	Name           string
	Configurations []schedule.TemplateConfiguration
	Slots          []schedule.TemplateSlot
	CreatedAt      time.Time
}

// TemplateInfo is a template's listing row.
type TemplateInfo struct {
	Name        string
	ConfigCount int
	SlotCount   int
	CreatedAt   time.Time
}

// SQLite stores schedule templates in a SQLite database.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Cascade deletes from templates to their rows.
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveTemplate stores a template under the given name, replacing any
// existing template with that name. Configuration order is preserved.
func (s *SQLite) SaveTemplate(ctx context.Context, name string, configs []schedule.TemplateConfiguration, slots []schedule.TemplateSlot) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM templates WHERE name = ?`, name); err != nil {
		return fmt.Errorf("replacing template: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO templates (name, created_at) VALUES (?, ?)`,
		name, time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}
	templateID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting template id: %w", err)
	}

	configStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO template_configurations (
			template_id, key, class_type_id, instructor_id, class_room_id,
			capacity, duration_minutes, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = configStmt.Close() }()

	for i, tc := range configs {
		_, err := configStmt.ExecContext(ctx,
			templateID,
			tc.Key,
			tc.Draft.ClassTypeID,
			tc.Draft.InstructorID,
			tc.Draft.ClassRoomID,
			tc.Draft.Capacity,
			tc.Draft.DurationMinutes,
			i,
		)
		if err != nil {
			return fmt.Errorf("inserting configuration %q: %w", tc.Key, err)
		}
	}

	slotStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO template_slots (template_id, key, day, hour) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = slotStmt.Close() }()

	for _, slot := range slots {
		if _, err := slotStmt.ExecContext(ctx, templateID, slot.Key, slot.Cell.Day, slot.Cell.Hour); err != nil {
			return fmt.Errorf("inserting slot for %q: %w", slot.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// LoadTemplate retrieves a template by name. Configurations come back
// in the order they were saved.
func (s *SQLite) LoadTemplate(ctx context.Context, name string) (*Template, error) {
	var (
		templateID int64
		createdAt  string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM templates WHERE name = ?`, name,
	).Scan(&templateID, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying template: %w", err)
	}

	tpl := &Template{Name: name}
	tpl.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT key, class_type_id, instructor_id, class_room_id, capacity, duration_minutes
		FROM template_configurations
		WHERE template_id = ?
		ORDER BY position
	`, templateID)
	if err != nil {
		return nil, fmt.Errorf("querying configurations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var tc schedule.TemplateConfiguration
		err := rows.Scan(
			&tc.Key,
			&tc.Draft.ClassTypeID,
			&tc.Draft.InstructorID,
			&tc.Draft.ClassRoomID,
			&tc.Draft.Capacity,
			&tc.Draft.DurationMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning configuration: %w", err)
		}
		tpl.Configurations = append(tpl.Configurations, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating configurations: %w", err)
	}

	slotRows, err := s.db.QueryContext(ctx, `
		SELECT key, day, hour
		FROM template_slots
		WHERE template_id = ?
		ORDER BY day, hour
	`, templateID)
	if err != nil {
		return nil, fmt.Errorf("querying slots: %w", err)
	}
	defer func() { _ = slotRows.Close() }()

	for slotRows.Next() {
		var slot schedule.TemplateSlot
		if err := slotRows.Scan(&slot.Key, &slot.Cell.Day, &slot.Cell.Hour); err != nil {
			return nil, fmt.Errorf("scanning slot: %w", err)
		}
		tpl.Slots = append(tpl.Slots, slot)
	}
	if err := slotRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slots: %w", err)
	}

	return tpl, nil
}

// ListTemplates returns all stored templates, newest first.
func (s *SQLite) ListTemplates(ctx context.Context) ([]TemplateInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.name, t.created_at,
		       (SELECT COUNT(*) FROM template_configurations c WHERE c.template_id = t.id),
		       (SELECT COUNT(*) FROM template_slots sl WHERE sl.template_id = t.id)
		FROM templates t
		ORDER BY t.created_at DESC, t.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []TemplateInfo
	for rows.Next() {
		var (
			info      TemplateInfo
			createdAt string
		)
		if err := rows.Scan(&info.Name, &createdAt, &info.ConfigCount, &info.SlotCount); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		info.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}

	return infos, nil
}

// DeleteTemplate removes a template and its rows.
func (s *SQLite) DeleteTemplate(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM templates WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
