package schedule

import (
	"testing"

	"github.com/google/uuid"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	return NewEditor(DefaultGrid(), testDirectory())
}

func TestEditorToggleCell_NoActiveConfiguration(t *testing.T) {
	e := newTestEditor(t)

	// No configuration yet: toggles fall through silently.
	e.ToggleCell(Cell{Day: 0, Hour: 9})
	e.ToggleRow(9)
	e.ToggleColumn(0)
	if !e.Selection().IsEmpty() {
		t.Error("toggles without an active configuration modified the selection")
	}
}

func TestEditorAddActivates(t *testing.T) {
	e := newTestEditor(t)
	c, err := e.AddConfiguration(validDraft())
	if err != nil {
		t.Fatalf("AddConfiguration failed: %v", err)
	}
	if e.Active() != c.ID {
		t.Error("new configuration should become active")
	}

	e.ToggleCell(Cell{Day: 2, Hour: 9})
	if e.Selection().CountFor(c.ID) != 1 {
		t.Error("toggle did not paint the active configuration")
	}
}

func TestEditorToggleCell_OutsideGrid(t *testing.T) {
	e := newTestEditor(t)
	if _, err := e.AddConfiguration(validDraft()); err != nil {
		t.Fatal(err)
	}
	e.ToggleCell(Cell{Day: 0, Hour: 23})
	if !e.Selection().IsEmpty() {
		t.Error("out-of-grid cell was selected")
	}
}

func TestEditorRemoveConfiguration_CascadesToSelection(t *testing.T) {
	e := newTestEditor(t)
	a, _ := e.AddConfiguration(validDraft())
	b, _ := e.AddConfiguration(validDraft())

	e.SetActive(a.ID)
	e.ToggleCell(Cell{Day: 1, Hour: 10})
	e.ToggleRow(15)
	e.SetActive(b.ID)
	e.ToggleCell(Cell{Day: 1, Hour: 10})

	if !e.RemoveConfiguration(a.ID) {
		t.Fatal("RemoveConfiguration returned false")
	}
	if e.Selection().CountFor(a.ID) != 0 {
		t.Error("removed configuration still occupies cells")
	}
	if e.Selection().CountFor(b.ID) != 1 {
		t.Error("surviving configuration's cells disturbed")
	}
	if e.Active() != b.ID {
		t.Error("active configuration not moved to a surviving one")
	}
}

func TestEditorRemoveConfiguration_CountForAlwaysZero(t *testing.T) {
	e := newTestEditor(t)
	a, _ := e.AddConfiguration(validDraft())

	// Arbitrary prior state: cells, a full row, a full column.
	e.ToggleCell(Cell{Day: 6, Hour: 21})
	e.ToggleRow(9)
	e.ToggleColumn(3)

	e.RemoveConfiguration(a.ID)
	if got := e.Selection().CountFor(a.ID); got != 0 {
		t.Errorf("CountFor after removal = %d, want 0", got)
	}
}

func TestEditorClearAll(t *testing.T) {
	e := newTestEditor(t)
	if _, err := e.AddConfiguration(validDraft()); err != nil {
		t.Fatal(err)
	}
	e.ToggleRow(9)
	e.ClearAll()
	if !e.Selection().IsEmpty() {
		t.Error("ClearAll left occupants")
	}
	if e.Registry().Len() != 1 {
		t.Error("ClearAll touched the registry")
	}
}

func TestEditorLoadTemplate(t *testing.T) {
	e := newTestEditor(t)
	old, _ := e.AddConfiguration(validDraft())
	e.ToggleCell(Cell{Day: 0, Hour: 9})

	configs := []TemplateConfiguration{
		{Key: "tpl-yoga", Draft: Draft{ClassTypeID: 1, InstructorID: 1, ClassRoomID: 1, Capacity: 10, DurationMinutes: 60}},
		{Key: "tpl-spin", Draft: Draft{ClassTypeID: 3, InstructorID: 2, ClassRoomID: 2, Capacity: 20, DurationMinutes: 45}},
	}
	slots := []TemplateSlot{
		{Key: "tpl-yoga", Cell: Cell{Day: 1, Hour: 8}},
		{Key: "tpl-spin", Cell: Cell{Day: 1, Hour: 8}},
		{Key: "tpl-spin", Cell: Cell{Day: 5, Hour: 19}},
	}

	if err := e.LoadTemplate(configs, slots); err != nil {
		t.Fatalf("LoadTemplate failed: %v", err)
	}

	if e.Registry().Len() != 2 {
		t.Fatalf("expected 2 configurations, got %d", e.Registry().Len())
	}
	if e.Registry().Get(old.ID) != nil {
		t.Error("pre-template configuration survived the bulk replace")
	}
	if e.Active() == uuid.Nil || e.Active() != e.Registry().All()[0].ID {
		t.Error("first loaded configuration should be active")
	}

	yoga := e.Registry().All()[0]
	spin := e.Registry().All()[1]
	if e.Selection().CountFor(yoga.ID) != 1 || e.Selection().CountFor(spin.ID) != 2 {
		t.Errorf("template slots not re-keyed: yoga=%d spin=%d",
			e.Selection().CountFor(yoga.ID), e.Selection().CountFor(spin.ID))
	}
	if e.Selection().OccupantCount(Cell{Day: 1, Hour: 8}) != 2 {
		t.Error("shared cell lost an occupant during import")
	}
}
