package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/studiogrid/internal/api"
	"github.com/javiermolinar/studiogrid/internal/config"
	"github.com/javiermolinar/studiogrid/internal/db"
	"github.com/javiermolinar/studiogrid/internal/schedule"
)

func testDirectory() *api.Directory {
	return api.NewDirectory(
		[]api.DirectoryEntry{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bruno"}},
		[]api.DirectoryEntry{{ID: 1, Name: "Yoga"}, {ID: 2, Name: "Pilates"}},
		[]api.DirectoryEntry{{ID: 1, Name: "Studio A"}, {ID: 2, Name: "Studio B"}},
	)
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	store, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.Default()
	return New(cfg, nil, testDirectory(), store)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func pressRune(t *testing.T, m Model, r rune) Model {
	t.Helper()
	return pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestNewDefaults(t *testing.T) {
	m := newTestModel(t)

	if m.mode != ModeGrid {
		t.Errorf("mode = %v, want ModeGrid", m.mode)
	}
	if m.editor.Registry().Len() != 0 {
		t.Errorf("registry should start empty")
	}
	if len(m.anchors) != anchorCount {
		t.Errorf("anchors = %d, want %d", len(m.anchors), anchorCount)
	}
	if !m.hourVisible(m.cursor.Hour) {
		t.Errorf("cursor hour %d not visible", m.cursor.Hour)
	}
	if m.weeks != 1 {
		t.Errorf("weeks = %d, want 1", m.weeks)
	}
}

func TestHoursWindow(t *testing.T) {
	m := newTestModel(t)

	full := m.hours()
	if full[0] != m.config.Grid.StartHour || full[len(full)-1] != m.config.Grid.EndHour {
		t.Errorf("full window = %v", full)
	}

	m.compact = true
	compact := m.hours()
	if compact[0] != m.config.Grid.CompactStartHour {
		t.Errorf("compact window starts at %d, want %d", compact[0], m.config.Grid.CompactStartHour)
	}
	if len(compact) >= len(full) {
		t.Errorf("compact window should be smaller than full")
	}
}

func TestMoveCursorClamps(t *testing.T) {
	m := newTestModel(t)
	m.cursor = Position{Day: 0, Hour: m.config.Grid.StartHour}

	m.moveCursor(-1, -1)
	if m.cursor.Day != 0 || m.cursor.Hour != m.config.Grid.StartHour {
		t.Errorf("cursor moved past origin: %+v", m.cursor)
	}

	for i := 0; i < 40; i++ {
		m.moveCursor(1, 1)
	}
	if m.cursor.Day != schedule.DaysPerWeek-1 {
		t.Errorf("day = %d, want %d", m.cursor.Day, schedule.DaysPerWeek-1)
	}
	if m.cursor.Hour != m.config.Grid.EndHour {
		t.Errorf("hour = %d, want %d", m.cursor.Hour, m.config.Grid.EndHour)
	}
}

func TestViewRendersGrid(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	if out == "" {
		t.Fatal("empty view")
	}
	for _, want := range []string{"STUDIOGRID", "Sun", "Sat", "No configurations yet"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
