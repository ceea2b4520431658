package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/javiermolinar/studiogrid/internal/dateutil"
	"github.com/javiermolinar/studiogrid/internal/schedule"
	"github.com/javiermolinar/studiogrid/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModePicker:
		return m.handlePickerKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeResults:
		return m.handleResultsKeys(msg)
	case ModeTemplates:
		return m.handleTemplateKeys(msg)
	case ModeSaveName:
		return m.handleSaveNameKeys(msg)
	default:
		return m.handleGridKeys(msg)
	}
}

// handleGridKeys handles keys in the grid painting mode.
func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		m.moveCursor(-1, 0)
	case "l", "right":
		m.moveCursor(1, 0)
	case "k", "up":
		m.moveCursor(0, -1)
	case "j", "down":
		m.moveCursor(0, 1)

	// Painting
	case " ", "enter":
		if m.editor.Active() == uuid.Nil {
			m.setStatus("Add a configuration first ('a').")
			break
		}
		m.editor.ToggleCell(schedule.Cell{Day: m.cursor.Day, Hour: m.cursor.Hour})
	case "r":
		m.editor.ToggleRow(m.cursor.Hour)
	case "c":
		m.editor.ToggleColumn(m.cursor.Day)
	case "x":
		m.editor.ClearAll()
		m.setStatus("Cleared all slots.")

	// Configurations
	case "a":
		m.openForm(false)
	case "e":
		m.openForm(true)
	case "d":
		cfg := m.editor.ActiveConfiguration()
		if cfg == nil {
			m.setStatus("No configuration selected.")
			break
		}
		m.editor.RemoveConfiguration(cfg.ID)
		m.setStatus(fmt.Sprintf("Removed %s.", cfg.Label()))
	case "tab":
		m.cycleActive(1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		all := m.editor.Registry().All()
		if idx < len(all) {
			m.editor.SetActive(all[idx].ID)
		}

	// View
	case "f":
		m.compact = !m.compact
		if !m.hourVisible(m.cursor.Hour) {
			m.cursor.Hour = m.hours()[0]
		}

	// Templates
	case "s":
		if m.editor.Registry().Len() == 0 {
			m.setStatus("Nothing to save yet.")
			break
		}
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		m.mode = ModeSaveName
	case "t":
		return m, commands.ListTemplates(m.store)

	// Submission
	case "p":
		if m.editor.Registry().Len() == 0 {
			m.setStatus("Add a configuration first ('a').")
			break
		}
		if m.editor.Selection().IsEmpty() {
			m.setStatus("Select at least one slot first.")
			break
		}
		m.anchors = dateutil.UpcomingSundays(m.nowFunc(), anchorCount)
		m.anchorIdx = 0
		m.mode = ModePicker
	}

	return m, nil
}

// handlePickerKeys handles the start-week and repeat picker.
func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = ModeGrid
	case "left", "h":
		if m.anchorIdx > 0 {
			m.anchorIdx--
		}
	case "right", "l":
		if m.anchorIdx < len(m.anchors)-1 {
			m.anchorIdx++
		}
	case "up", "k", "+":
		if !m.once && m.weeks < schedule.MaxWeeks {
			m.weeks++
		}
	case "down", "j", "-":
		if !m.once && m.weeks > 1 {
			m.weeks--
		}
	case "o":
		m.once = !m.once
	case "enter":
		return m.startConflictCheck()
	}
	return m, nil
}

// startConflictCheck expands the plan and fetches the persisted
// classes in its range.
func (m Model) startConflictCheck() (tea.Model, tea.Cmd) {
	reg := m.editor.Registry()
	sel := m.editor.Selection()

	m.pendingSlots = schedule.Expand(sel, reg, m.anchor(), m.pattern())
	m.pendingGroups = schedule.BuildSubmissionGroups(m.pendingSlots, reg)
	m.roomConflicts = schedule.DetectRoomConflicts(sel, reg)
	m.scheduleConflicts = nil
	m.checking = true
	m.mode = ModeConfirm

	from := dateutil.FormatDate(dateutil.StartOfWeek(m.anchor()))
	to := dateutil.FormatDate(schedule.EndDate(m.anchor(), m.pattern()))
	return m, commands.LoadClasses(m.client, from, to)
}

// handleConfirmKeys handles the pre-submission summary.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "n":
		m.mode = ModePicker
	case "y", "enter":
		if m.checking || m.submitting {
			break
		}
		m.submitting = true
		submitter := schedule.NewSubmitter(m.client, m.client)
		return m, commands.Submit(submitter, m.pendingGroups)
	}
	return m, nil
}

// handleResultsKeys handles the post-submission results screen.
func (m Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.results = nil
		m.pendingSlots = nil
		m.pendingGroups = nil
		m.mode = ModeGrid
	}
	return m, nil
}

// handleTemplateKeys handles the stored template list.
func (m Model) handleTemplateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = ModeGrid
	case "up", "k":
		if m.templateIdx > 0 {
			m.templateIdx--
		}
	case "down", "j":
		if m.templateIdx < len(m.templates)-1 {
			m.templateIdx++
		}
	case "enter":
		if len(m.templates) == 0 {
			m.mode = ModeGrid
			break
		}
		return m, commands.LoadTemplate(m.store, m.templates[m.templateIdx].Name)
	}
	return m, nil
}

// handleSaveNameKeys handles the template name prompt.
func (m Model) handleSaveNameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.nameInput.Blur()
		m.mode = ModeGrid
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.setStatus("Template name cannot be empty.")
			return m, nil
		}
		m.nameInput.Blur()
		m.mode = ModeGrid
		configs, slots := templatePayload(m.editor)
		return m, commands.SaveTemplate(m.store, name, configs, slots)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// cycleActive advances the active configuration in registry order.
func (m *Model) cycleActive(delta int) {
	all := m.editor.Registry().All()
	if len(all) == 0 {
		return
	}
	idx := 0
	for i, cfg := range all {
		if cfg.ID == m.editor.Active() {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(all)) % len(all)
	m.editor.SetActive(all[idx].ID)
}
