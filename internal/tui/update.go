package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/studiogrid/internal/schedule"
	"github.com/javiermolinar/studiogrid/internal/tui/commands"
)

// clearStatusMsg is the internal tick for expiring the status line.
type clearStatusMsg struct{}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.ClassesLoadedMsg:
		var conflicts []schedule.ScheduleConflict
		for _, cand := range schedule.Candidates(m.pendingSlots, m.editor.Registry()) {
			conflicts = append(conflicts, schedule.DetectScheduleConflicts(cand, msg.Existing)...)
		}
		m.scheduleConflicts = conflicts
		m.checking = false
		return m, nil

	case commands.SubmittedMsg:
		m.results = msg.Results
		m.submitting = false
		m.mode = ModeResults
		return m, nil

	case commands.TemplateSavedMsg:
		m.setStatus(fmt.Sprintf("Saved template %q.", msg.Name))
		return m, m.expireStatus()

	case commands.TemplatesListedMsg:
		if len(msg.Infos) == 0 {
			m.setStatus("No templates saved yet.")
			return m, m.expireStatus()
		}
		m.templates = msg.Infos
		m.templateIdx = 0
		m.mode = ModeTemplates
		return m, nil

	case commands.TemplateLoadedMsg:
		if err := m.editor.LoadTemplate(msg.Template.Configurations, msg.Template.Slots); err != nil {
			m.setStatus(fmt.Sprintf("Template %q: %v", msg.Template.Name, err))
			m.mode = ModeGrid
			return m, m.expireStatus()
		}
		m.mode = ModeGrid
		m.setStatus(fmt.Sprintf("Loaded template %q.", msg.Template.Name))
		return m, m.expireStatus()

	case commands.ErrMsg:
		m.err = msg.Err
		m.checking = false
		m.submitting = false
		if m.mode == ModeConfirm {
			m.mode = ModePicker
		}
		m.setStatus(fmt.Sprintf("Error: %v", msg.Err))
		return m, m.expireStatus()

	case clearStatusMsg:
		if m.nowFunc().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// expireStatus schedules the status line to clear.
func (m Model) expireStatus() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
