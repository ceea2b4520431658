package integration

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/studiogrid/internal/db"
	"github.com/javiermolinar/studiogrid/internal/dateutil"
	"github.com/javiermolinar/studiogrid/internal/schedule"
)

// staticDirectory resolves names without a backend.
type staticDirectory struct{}

func (staticDirectory) InstructorName(id int64) string {
	return map[int64]string{1: "Ana", 2: "Bruno"}[id]
}

func (staticDirectory) ClassTypeName(id int64) string {
	return map[int64]string{1: "Yoga", 2: "Pilates"}[id]
}

func (staticDirectory) RoomName(id int64) string {
	return map[int64]string{1: "Studio A", 2: "Studio B"}[id]
}

// recordingBackend captures creation calls and converts local times
// with a fixed offset, standing in for the real API.
type recordingBackend struct {
	offsetMinutes int
	calls         []creationCall
	failTimes     map[string]error // local time -> error
}

type creationCall struct {
	draft     schedule.Draft
	dates     []string
	startTime string
}

func (b *recordingBackend) CreateClasses(_ context.Context, draft schedule.Draft, dates []string, startTimeUTC string) error {
	b.calls = append(b.calls, creationCall{draft: draft, dates: dates, startTime: startTimeUTC})
	return nil
}

func (b *recordingBackend) ToUTC(_ context.Context, localTime, _ string) (string, error) {
	if err, ok := b.failTimes[localTime]; ok {
		return "", err
	}
	return schedule.MinutesToTime(schedule.TimeToMinutes(localTime) + b.offsetMinutes), nil
}

func openStore(t *testing.T) *db.SQLite {
	t.Helper()
	store, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// TestAuthorSaveReloadSubmit walks the whole authoring flow: paint a
// week, store it as a template, reload it into a fresh editor, expand
// it over two weeks and submit it through a fake backend.
func TestAuthorSaveReloadSubmit(t *testing.T) {
	ctx := context.Background()
	grid := schedule.DefaultGrid()

	// Author a week with two configurations.
	editor := schedule.NewEditor(grid, staticDirectory{})
	yoga, err := editor.AddConfiguration(schedule.Draft{ClassTypeID: 1, InstructorID: 1, ClassRoomID: 1, Capacity: 12, DurationMinutes: 60})
	if err != nil {
		t.Fatalf("adding yoga: %v", err)
	}
	pilates, err := editor.AddConfiguration(schedule.Draft{ClassTypeID: 2, InstructorID: 2, ClassRoomID: 2, Capacity: 8, DurationMinutes: 45})
	if err != nil {
		t.Fatalf("adding pilates: %v", err)
	}

	editor.SetActive(yoga.ID)
	editor.ToggleCell(schedule.Cell{Day: 1, Hour: 9})  // Monday 09:00
	editor.ToggleCell(schedule.Cell{Day: 3, Hour: 9})  // Wednesday 09:00
	editor.SetActive(pilates.ID)
	editor.ToggleCell(schedule.Cell{Day: 2, Hour: 18}) // Tuesday 18:00

	// Store and reload through SQLite.
	store := openStore(t)
	var configs []schedule.TemplateConfiguration
	keyByID := map[string]string{}
	for i, cfg := range editor.Registry().All() {
		key := fmt.Sprintf("cfg-%d", i+1)
		keyByID[cfg.ID.String()] = key
		configs = append(configs, schedule.TemplateConfiguration{Key: key, Draft: cfg.Draft})
	}
	var slots []schedule.TemplateSlot
	for _, c := range editor.Selection().Cells() {
		for _, cfg := range editor.Registry().All() {
			if editor.Selection().Has(c, cfg.ID) {
				slots = append(slots, schedule.TemplateSlot{Key: keyByID[cfg.ID.String()], Cell: c})
			}
		}
	}
	if err := store.SaveTemplate(ctx, "standard-week", configs, slots); err != nil {
		t.Fatalf("saving template: %v", err)
	}

	tpl, err := store.LoadTemplate(ctx, "standard-week")
	if err != nil {
		t.Fatalf("loading template: %v", err)
	}

	fresh := schedule.NewEditor(grid, staticDirectory{})
	if err := fresh.LoadTemplate(tpl.Configurations, tpl.Slots); err != nil {
		t.Fatalf("importing template: %v", err)
	}
	if fresh.Selection().Total() != 3 {
		t.Fatalf("reloaded %d slots, want 3", fresh.Selection().Total())
	}

	// Expand two weeks anchored on a known Sunday.
	anchor := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC) // Wednesday
	pattern, err := schedule.Weekly(2)
	if err != nil {
		t.Fatalf("pattern: %v", err)
	}
	expanded := schedule.Expand(fresh.Selection(), fresh.Registry(), anchor, pattern)
	if len(expanded) != 6 {
		t.Fatalf("expanded %d slots, want 6", len(expanded))
	}
	if got := dateutil.FormatDate(dateutil.StartOfWeek(anchor)); got != "2025-09-07" {
		t.Fatalf("week anchor = %s, want 2025-09-07", got)
	}
	// First expanded slot is the first week's Monday 09:00.
	if expanded[0].Date.Format("2006-01-02") != "2025-09-08" || expanded[0].LocalTime != "09:00" {
		t.Errorf("first slot = %s %s", expanded[0].Date.Format("2006-01-02"), expanded[0].LocalTime)
	}

	// No room conflicts: the shared grid has none.
	if conflicts := schedule.DetectRoomConflicts(fresh.Selection(), fresh.Registry()); len(conflicts) != 0 {
		t.Fatalf("unexpected room conflicts: %+v", conflicts)
	}

	// Submit through the fake backend: one call per (config, time).
	backend := &recordingBackend{offsetMinutes: 5 * 60}
	submitter := schedule.NewSubmitter(backend, backend)
	groups := schedule.BuildSubmissionGroups(expanded, fresh.Registry())
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	results := submitter.Submit(ctx, groups)
	if schedule.FailedCount(results) != 0 {
		t.Fatalf("failures: %+v", results)
	}
	if len(backend.calls) != 2 {
		t.Fatalf("backend calls = %d, want 2", len(backend.calls))
	}

	// Yoga group: two dates per week over two weeks, converted to UTC.
	yogaCall := backend.calls[0]
	if len(yogaCall.dates) != 4 {
		t.Errorf("yoga dates = %v", yogaCall.dates)
	}
	if yogaCall.startTime != "14:00" {
		t.Errorf("yoga UTC start = %q, want 14:00", yogaCall.startTime)
	}
	pilatesCall := backend.calls[1]
	if len(pilatesCall.dates) != 2 || pilatesCall.dates[0] != "2025-09-09" {
		t.Errorf("pilates dates = %v", pilatesCall.dates)
	}
}

// TestSubmitContinuesPastFailures verifies one group's failure does
// not stop the rest of the batch.
func TestSubmitContinuesPastFailures(t *testing.T) {
	grid := schedule.DefaultGrid()
	editor := schedule.NewEditor(grid, staticDirectory{})
	yoga, _ := editor.AddConfiguration(schedule.Draft{ClassTypeID: 1, InstructorID: 1, ClassRoomID: 1, Capacity: 12, DurationMinutes: 60})
	pilates, _ := editor.AddConfiguration(schedule.Draft{ClassTypeID: 2, InstructorID: 2, ClassRoomID: 2, Capacity: 8, DurationMinutes: 45})

	editor.SetActive(yoga.ID)
	editor.ToggleCell(schedule.Cell{Day: 1, Hour: 9})
	editor.SetActive(pilates.ID)
	editor.ToggleCell(schedule.Cell{Day: 2, Hour: 18})

	anchor := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)
	expanded := schedule.Expand(editor.Selection(), editor.Registry(), anchor, schedule.OneTime())

	backend := &recordingBackend{
		offsetMinutes: 60,
		failTimes:     map[string]error{"09:00": fmt.Errorf("conversion unavailable")},
	}
	submitter := schedule.NewSubmitter(backend, backend)
	results := submitter.Submit(context.Background(), schedule.BuildSubmissionGroups(expanded, editor.Registry()))

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].OK() {
		t.Errorf("first group should fail")
	}
	if !results[1].OK() {
		t.Errorf("second group should succeed: %v", results[1].Err)
	}
	if len(backend.calls) != 1 {
		t.Errorf("backend calls = %d, want 1 (failed group converts before creating)", len(backend.calls))
	}
}
