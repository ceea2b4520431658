package tui

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/studiogrid/internal/schedule"
)

// hours returns the hour rows currently shown, honoring the compact
// window toggle.
func (m *Model) hours() []int {
	start := m.config.Grid.StartHour
	if m.compact {
		start = m.config.Grid.CompactStartHour
	}
	var hours []int
	for h := start; h <= m.config.Grid.EndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// hourVisible reports whether the hour is inside the shown window.
func (m *Model) hourVisible(hour int) bool {
	for _, h := range m.hours() {
		if h == hour {
			return true
		}
	}
	return false
}

// moveCursor shifts the cursor, clamping to the visible grid.
func (m *Model) moveCursor(dDay, dHour int) {
	day := m.cursor.Day + dDay
	if day < 0 {
		day = 0
	}
	if day >= schedule.DaysPerWeek {
		day = schedule.DaysPerWeek - 1
	}
	m.cursor.Day = day

	hours := m.hours()
	idx := 0
	for i, h := range hours {
		if h == m.cursor.Hour {
			idx = i
			break
		}
	}
	idx += dHour
	if idx < 0 {
		idx = 0
	}
	if idx >= len(hours) {
		idx = len(hours) - 1
	}
	m.cursor.Hour = hours[idx]
}

// configIndex returns the 1-based position of a configuration in the
// registry, or 0 when absent. Shown as the cell digit.
func (m *Model) configIndex(id uuid.UUID) int {
	for i, cfg := range m.editor.Registry().All() {
		if cfg.ID == id {
			return i + 1
		}
	}
	return 0
}

// templatePayload converts the current grid into storable template
// rows. Keys are positional; ids are re-minted on load.
func templatePayload(ed *schedule.Editor) ([]schedule.TemplateConfiguration, []schedule.TemplateSlot) {
	keyByID := make(map[uuid.UUID]string)
	var configs []schedule.TemplateConfiguration
	for i, cfg := range ed.Registry().All() {
		key := fmt.Sprintf("cfg-%d", i+1)
		keyByID[cfg.ID] = key
		configs = append(configs, schedule.TemplateConfiguration{Key: key, Draft: cfg.Draft})
	}

	var slots []schedule.TemplateSlot
	sel := ed.Selection()
	for _, c := range sel.Cells() {
		for _, cfg := range ed.Registry().All() {
			if sel.Has(c, cfg.ID) {
				slots = append(slots, schedule.TemplateSlot{Key: keyByID[cfg.ID], Cell: c})
			}
		}
	}
	return configs, slots
}

// conflictCells returns the set of cells with at least one room
// conflict, for grid highlighting.
func conflictCells(conflicts []schedule.RoomConflict) map[schedule.Cell]bool {
	cells := make(map[schedule.Cell]bool, len(conflicts))
	for _, rc := range conflicts {
		cells[rc.Cell] = true
	}
	return cells
}

// setStatus shows a temporary status message.
func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTime = m.nowFunc().Add(4 * time.Second)
}

// pattern returns the repeat pattern currently selected in the
// picker.
func (m *Model) pattern() schedule.RepeatPattern {
	if m.once {
		return schedule.OneTime()
	}
	p, err := schedule.Weekly(m.weeks)
	if err != nil {
		return schedule.OneTime()
	}
	return p
}

// anchor returns the picker's selected week anchor.
func (m *Model) anchor() time.Time {
	if len(m.anchors) == 0 {
		return m.nowFunc()
	}
	if m.anchorIdx < 0 || m.anchorIdx >= len(m.anchors) {
		return m.anchors[0]
	}
	return m.anchors[m.anchorIdx]
}
