package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/javiermolinar/studiogrid/internal/api"
	"github.com/javiermolinar/studiogrid/internal/schedule"
)

// Form field indexes, in focus order.
const (
	fieldClassType = iota
	fieldInstructor
	fieldRoom
	fieldCapacity
	fieldDuration
	fieldCount
)

// formState holds the configuration form. The three id fields cycle
// through the backend directories; capacity and duration are typed.
type formState struct {
	editing       uuid.UUID // uuid.Nil means a new configuration
	classTypeIdx  int
	instructorIdx int
	roomIdx       int
	capacity      textinput.Model
	duration      textinput.Model
	focus         int
}

func newFormState(styles *Styles) formState {
	capacity := textinput.New()
	capacity.Placeholder = "capacity"
	capacity.CharLimit = 4
	capacity.Width = 8

	duration := textinput.New()
	duration.Placeholder = "minutes"
	duration.CharLimit = 4
	duration.Width = 8

	for _, ti := range []*textinput.Model{&capacity, &duration} {
		ti.PlaceholderStyle = styles.FormPlaceholder
		ti.TextStyle = styles.FormInput
		ti.PromptStyle = styles.FormInput
	}

	return formState{capacity: capacity, duration: duration}
}

// openForm prepares the form for a new configuration or for editing
// the active one.
func (m *Model) openForm(edit bool) {
	if len(m.dir.ClassTypes()) == 0 || len(m.dir.Instructors()) == 0 || len(m.dir.ClassRooms()) == 0 {
		m.setStatus("Backend directories are empty; nothing to schedule.")
		return
	}

	m.form.editing = uuid.Nil
	m.form.classTypeIdx = 0
	m.form.instructorIdx = 0
	m.form.roomIdx = 0
	m.form.capacity.SetValue("10")
	m.form.duration.SetValue("60")

	if edit {
		cfg := m.editor.ActiveConfiguration()
		if cfg == nil {
			m.setStatus("No configuration selected.")
			return
		}
		m.form.editing = cfg.ID
		m.form.classTypeIdx = directoryIndex(m.dir.ClassTypes(), cfg.Draft.ClassTypeID)
		m.form.instructorIdx = directoryIndex(m.dir.Instructors(), cfg.Draft.InstructorID)
		m.form.roomIdx = directoryIndex(m.dir.ClassRooms(), cfg.Draft.ClassRoomID)
		m.form.capacity.SetValue(strconv.Itoa(cfg.Draft.Capacity))
		m.form.duration.SetValue(strconv.Itoa(cfg.Draft.DurationMinutes))
	}

	m.form.focus = fieldClassType
	m.form.capacity.Blur()
	m.form.duration.Blur()
	m.mode = ModeForm
}

// handleFormKeys handles keys while the configuration form is open.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeGrid
		return m, nil

	case "enter":
		if err := m.submitForm(); err != nil {
			m.setStatus(err.Error())
			return m, nil
		}
		m.mode = ModeGrid
		return m, nil

	case "tab", "down":
		m.setFormFocus((m.form.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFormFocus((m.form.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "left":
		m.cycleFormField(-1)
		return m, nil

	case "right":
		m.cycleFormField(1)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldCapacity:
		m.form.capacity, cmd = m.form.capacity.Update(msg)
	case fieldDuration:
		m.form.duration, cmd = m.form.duration.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFormFocus(focus int) {
	m.form.focus = focus
	m.form.capacity.Blur()
	m.form.duration.Blur()
	switch focus {
	case fieldCapacity:
		m.form.capacity.Focus()
	case fieldDuration:
		m.form.duration.Focus()
	}
}

// cycleFormField steps a directory-backed field through its entries.
func (m *Model) cycleFormField(delta int) {
	cycle := func(idx, n int) int {
		return (idx + delta + n) % n
	}
	switch m.form.focus {
	case fieldClassType:
		m.form.classTypeIdx = cycle(m.form.classTypeIdx, len(m.dir.ClassTypes()))
	case fieldInstructor:
		m.form.instructorIdx = cycle(m.form.instructorIdx, len(m.dir.Instructors()))
	case fieldRoom:
		m.form.roomIdx = cycle(m.form.roomIdx, len(m.dir.ClassRooms()))
	}
}

// submitForm validates the form and applies it to the registry.
func (m *Model) submitForm() error {
	capacity, err := strconv.Atoi(m.form.capacity.Value())
	if err != nil {
		return errors.New("capacity must be a number")
	}
	duration, err := strconv.Atoi(m.form.duration.Value())
	if err != nil {
		return errors.New("duration must be a number")
	}

	draft := schedule.Draft{
		ClassTypeID:     m.dir.ClassTypes()[m.form.classTypeIdx].ID,
		InstructorID:    m.dir.Instructors()[m.form.instructorIdx].ID,
		ClassRoomID:     m.dir.ClassRooms()[m.form.roomIdx].ID,
		Capacity:        capacity,
		DurationMinutes: duration,
	}

	if m.form.editing != uuid.Nil {
		if _, err := m.editor.UpdateConfiguration(m.form.editing, draft); err != nil {
			return err
		}
		m.setStatus("Configuration updated.")
		return nil
	}

	cfg, err := m.editor.AddConfiguration(draft)
	if err != nil {
		return err
	}
	m.setStatus(fmt.Sprintf("Added %s.", cfg.Label()))
	return nil
}

func directoryIndex(entries []api.DirectoryEntry, id int64) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return 0
}
