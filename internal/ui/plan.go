package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/javiermolinar/studiogrid/internal/dateutil"
	"github.com/javiermolinar/studiogrid/internal/schedule"
)

// plan is a template expanded over a date range, ready to be checked,
// exported or submitted.
type plan struct {
	editor  *schedule.Editor
	anchor  time.Time
	pattern schedule.RepeatPattern
	slots   []schedule.ExpandedSlot
}

// nullDirectory resolves no names. Used by commands that never show
// names and should not hit the network for them.
type nullDirectory struct{}

func (nullDirectory) InstructorName(int64) string { return "" }
func (nullDirectory) ClassTypeName(int64) string  { return "" }
func (nullDirectory) RoomName(int64) string       { return "" }

// buildPlan loads a stored template and expands it from the week of
// the start date. An empty start date means the current week.
func (a *App) buildPlan(ctx context.Context, dir schedule.Directory, templateName, startDate string, weeks int, once bool) (*plan, error) {
	if err := a.ensureStore(); err != nil {
		return nil, err
	}

	tpl, err := a.store.LoadTemplate(ctx, templateName)
	if err != nil {
		return nil, err
	}

	anchor, err := dateutil.ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	pattern := schedule.OneTime()
	if !once {
		pattern, err = schedule.Weekly(weeks)
		if err != nil {
			return nil, err
		}
	}

	grid := schedule.Grid{StartHour: a.config.Grid.StartHour, EndHour: a.config.Grid.EndHour}
	editor := schedule.NewEditor(grid, dir)
	if err := editor.LoadTemplate(tpl.Configurations, tpl.Slots); err != nil {
		return nil, fmt.Errorf("loading template %q: %w", templateName, err)
	}

	if editor.Selection().IsEmpty() {
		return nil, fmt.Errorf("template %q has no selected slots", templateName)
	}

	slots := schedule.Expand(editor.Selection(), editor.Registry(), anchor, pattern)

	return &plan{
		editor:  editor,
		anchor:  dateutil.StartOfWeek(anchor),
		pattern: pattern,
		slots:   slots,
	}, nil
}

// dateRange returns the plan's first and last calendar dates.
func (p *plan) dateRange() (string, string) {
	start := dateutil.FormatDate(p.anchor)
	end := dateutil.FormatDate(schedule.EndDate(p.anchor, p.pattern))
	return start, end
}

// scheduleConflicts checks every planned class against the classes
// already persisted in the plan's date range.
func (a *App) scheduleConflicts(ctx context.Context, p *plan) ([]schedule.ScheduleConflict, error) {
	if err := a.ensureClient(); err != nil {
		return nil, err
	}

	from, to := p.dateRange()
	existing, err := a.client.ListClasses(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var conflicts []schedule.ScheduleConflict
	for _, cand := range schedule.Candidates(p.slots, p.editor.Registry()) {
		conflicts = append(conflicts, schedule.DetectScheduleConflicts(cand, existing)...)
	}
	return conflicts, nil
}
