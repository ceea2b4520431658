package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/studiogrid/internal/db"
	"github.com/javiermolinar/studiogrid/internal/schedule"
)

type fakeLister struct {
	classes []schedule.ExistingClass
	err     error
}

func (f *fakeLister) ListClasses(_ context.Context, _, _ string) ([]schedule.ExistingClass, error) {
	return f.classes, f.err
}

func TestLoadClasses(t *testing.T) {
	lister := &fakeLister{classes: []schedule.ExistingClass{{ID: 1, ClassTypeName: "Yoga"}}}

	msg := LoadClasses(lister, "2025-09-07", "2025-09-13")()
	loaded, ok := msg.(ClassesLoadedMsg)
	if !ok {
		t.Fatalf("msg = %T, want ClassesLoadedMsg", msg)
	}
	if len(loaded.Existing) != 1 || loaded.Existing[0].ClassTypeName != "Yoga" {
		t.Errorf("existing = %+v", loaded.Existing)
	}
}

func TestLoadClassesError(t *testing.T) {
	wantErr := errors.New("backend down")
	lister := &fakeLister{err: wantErr}

	msg := LoadClasses(lister, "2025-09-07", "2025-09-13")()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, wantErr) {
		t.Errorf("err = %v", errMsg.Err)
	}
}

func TestTemplateCommands(t *testing.T) {
	store, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer func() { _ = store.Close() }()

	configs := []schedule.TemplateConfiguration{
		{Key: "cfg-1", Draft: schedule.Draft{ClassTypeID: 1, InstructorID: 1, ClassRoomID: 1, Capacity: 10, DurationMinutes: 60}},
	}
	slots := []schedule.TemplateSlot{{Key: "cfg-1", Cell: schedule.Cell{Day: 2, Hour: 9}}}

	msg := SaveTemplate(store, "week", configs, slots)()
	if saved, ok := msg.(TemplateSavedMsg); !ok || saved.Name != "week" {
		t.Fatalf("msg = %#v, want TemplateSavedMsg{week}", msg)
	}

	msg = ListTemplates(store)()
	listed, ok := msg.(TemplatesListedMsg)
	if !ok || len(listed.Infos) != 1 {
		t.Fatalf("msg = %#v, want one listed template", msg)
	}

	msg = LoadTemplate(store, "week")()
	loaded, ok := msg.(TemplateLoadedMsg)
	if !ok {
		t.Fatalf("msg = %T, want TemplateLoadedMsg", msg)
	}
	if len(loaded.Template.Configurations) != 1 || len(loaded.Template.Slots) != 1 {
		t.Errorf("template = %+v", loaded.Template)
	}

	msg = LoadTemplate(store, "missing")()
	if _, ok := msg.(ErrMsg); !ok {
		t.Errorf("msg = %T, want ErrMsg for missing template", msg)
	}
}
