// Package tui provides the terminal user interface for studiogrid.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/studiogrid/internal/api"
	"github.com/javiermolinar/studiogrid/internal/config"
	"github.com/javiermolinar/studiogrid/internal/dateutil"
	"github.com/javiermolinar/studiogrid/internal/db"
	"github.com/javiermolinar/studiogrid/internal/schedule"
	"github.com/javiermolinar/studiogrid/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeGrid      Mode = iota
	ModeForm           // Configuration form (new or edit)
	ModePicker         // Start week and repeat pattern selection
	ModeConfirm        // Plan summary and conflicts before submitting
	ModeResults        // Per-group submission results
	ModeTemplates      // Stored template list
	ModeSaveName       // Template name prompt
)

// anchorCount is how many upcoming Sundays the week picker offers.
const anchorCount = 4

// Position represents a cursor position in the grid.
type Position struct {
	Day  int // 0=Sunday, 6=Saturday
	Hour int // wall-clock hour
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	client *api.Client
	dir    *api.Directory
	store  *db.SQLite

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Editing state
	editor  *schedule.Editor
	cursor  Position
	compact bool // true when only the compact hour window is shown
	mode    Mode

	// Configuration form
	form formState

	// Template state
	nameInput   textinput.Model
	templates   []db.TemplateInfo
	templateIdx int

	// Submission setup
	anchors   []time.Time // upcoming Sundays
	anchorIdx int
	weeks     int
	once      bool

	// Submission flow
	pendingSlots      []schedule.ExpandedSlot
	pendingGroups     []schedule.SubmissionGroup
	roomConflicts     []schedule.RoomConflict
	scheduleConflicts []schedule.ScheduleConflict
	checking          bool
	submitting        bool
	results           []schedule.GroupResult

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error

	nowFunc func() time.Time
}

// New creates a new TUI model.
func New(cfg *config.Config, client *api.Client, dir *api.Directory, store *db.SQLite) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("dark")
	}
	styles := NewStyles(t)

	grid := schedule.Grid{StartHour: cfg.Grid.StartHour, EndHour: cfg.Grid.EndHour}
	editor := schedule.NewEditor(grid, dir)

	nameInput := textinput.New()
	nameInput.Placeholder = "template name"
	nameInput.CharLimit = 64
	nameInput.Width = 32

	now := time.Now
	m := &Model{
		config:    cfg,
		client:    client,
		dir:       dir,
		store:     store,
		theme:     t,
		styles:    styles,
		editor:    editor,
		cursor:    Position{Day: int(now().Weekday()), Hour: cfg.Grid.StartHour},
		mode:      ModeGrid,
		form:      newFormState(styles),
		nameInput: nameInput,
		anchors:   dateutil.UpcomingSundays(now(), anchorCount),
		weeks:     1,
		nowFunc:   now,
	}

	if !m.hourVisible(m.cursor.Hour) {
		m.cursor.Hour = m.hours()[0]
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the TUI.
func Run(cfg *config.Config, client *api.Client, dir *api.Directory, store *db.SQLite) error {
	model := New(cfg, client, dir, store)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
