// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/studiogrid/internal/db"
	"github.com/javiermolinar/studiogrid/internal/schedule"
)

// ClassLister fetches persisted classes in a date range.
type ClassLister interface {
	ListClasses(ctx context.Context, from, to string) ([]schedule.ExistingClass, error)
}

// ClassesLoadedMsg is sent when the persisted classes for a date
// range have been fetched for conflict checking.
type ClassesLoadedMsg struct {
	Existing []schedule.ExistingClass
}

// SubmittedMsg is sent when a submission run finishes. Per-group
// failures are inside Results, not in an ErrMsg.
type SubmittedMsg struct {
	Results []schedule.GroupResult
}

// TemplateSavedMsg is sent when the current grid was stored.
type TemplateSavedMsg struct {
	Name string
}

// TemplatesListedMsg is sent when the stored template list is ready.
type TemplatesListedMsg struct {
	Infos []db.TemplateInfo
}

// TemplateLoadedMsg is sent when a stored template was fetched.
type TemplateLoadedMsg struct {
	Template *db.Template
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// LoadClasses fetches the persisted classes between two dates.
func LoadClasses(lister ClassLister, from, to string) tea.Cmd {
	return func() tea.Msg {
		existing, err := lister.ListClasses(context.Background(), from, to)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ClassesLoadedMsg{Existing: existing}
	}
}

// Submit runs the groups through the submitter sequentially.
func Submit(submitter *schedule.Submitter, groups []schedule.SubmissionGroup) tea.Cmd {
	return func() tea.Msg {
		results := submitter.Submit(context.Background(), groups)
		return SubmittedMsg{Results: results}
	}
}

// SaveTemplate stores the grid under a name, replacing any previous
// template with that name.
func SaveTemplate(store *db.SQLite, name string, configs []schedule.TemplateConfiguration, slots []schedule.TemplateSlot) tea.Cmd {
	return func() tea.Msg {
		if err := store.SaveTemplate(context.Background(), name, configs, slots); err != nil {
			return ErrMsg{Err: err}
		}
		return TemplateSavedMsg{Name: name}
	}
}

// ListTemplates fetches the stored template list.
func ListTemplates(store *db.SQLite) tea.Cmd {
	return func() tea.Msg {
		infos, err := store.ListTemplates(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return TemplatesListedMsg{Infos: infos}
	}
}

// LoadTemplate fetches one stored template by name.
func LoadTemplate(store *db.SQLite, name string) tea.Cmd {
	return func() tea.Msg {
		tpl, err := store.LoadTemplate(context.Background(), name)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return TemplateLoadedMsg{Template: tpl}
	}
}
