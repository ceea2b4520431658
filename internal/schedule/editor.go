package schedule

import "github.com/google/uuid"

// Editor is one authoring session: a grid, a configuration registry,
// a slot selection, and the configuration currently being painted.
// It enforces the cross-cutting invariants the registry and selection
// cannot enforce alone, in particular the cascading purge when a
// configuration is removed.
//
// All mutations are synchronous and single-threaded; the selection is
// replaced wholesale on every change (see Selection).
type Editor struct {
	grid     Grid
	registry *Registry
	sel      *Selection
	active   uuid.UUID
}

// NewEditor creates an authoring session over the given grid,
// resolving configuration display names through dir.
func NewEditor(g Grid, dir Directory) *Editor {
	return &Editor{
		grid:     g,
		registry: NewRegistry(dir),
		sel:      NewSelection(),
	}
}

// Grid returns the session's grid.
func (e *Editor) Grid() Grid {
	return e.grid
}

// Registry returns the session's configuration registry.
func (e *Editor) Registry() *Registry {
	return e.registry
}

// Selection returns the current selection state.
func (e *Editor) Selection() *Selection {
	return e.sel
}

// Active returns the id of the configuration being painted, or
// uuid.Nil when none is active.
func (e *Editor) Active() uuid.UUID {
	return e.active
}

// ActiveConfiguration returns the active configuration, or nil.
func (e *Editor) ActiveConfiguration() *Configuration {
	return e.registry.Get(e.active)
}

// SetActive selects which configuration cell toggles paint with.
// Passing uuid.Nil deactivates painting.
func (e *Editor) SetActive(id uuid.UUID) {
	e.active = id
}

// AddConfiguration validates and adds a configuration, making it the
// active one.
func (e *Editor) AddConfiguration(d Draft) (*Configuration, error) {
	c, err := e.registry.Add(d)
	if err != nil {
		return nil, err
	}
	e.active = c.ID
	return c, nil
}

// UpdateConfiguration replaces the fields of an existing
// configuration.
func (e *Editor) UpdateConfiguration(id uuid.UUID, d Draft) (bool, error) {
	return e.registry.Update(id, d)
}

// RemoveConfiguration deletes a configuration and purges it from
// every grid cell. No dangling occupant references survive.
func (e *Editor) RemoveConfiguration(id uuid.UUID) bool {
	if !e.registry.Remove(id) {
		return false
	}
	e.sel = e.sel.RemoveConfiguration(id)
	if e.active == id {
		e.active = uuid.Nil
		if len(e.registry.All()) > 0 {
			e.active = e.registry.All()[0].ID
		}
	}
	return true
}

// ToggleCell flips the active configuration in the cell. Silently
// does nothing when no configuration is active or the cell is outside
// the grid.
func (e *Editor) ToggleCell(c Cell) {
	if !e.grid.Valid(c) {
		return
	}
	e.sel = e.sel.ToggleCell(c, e.active)
}

// ToggleRow toggles the active configuration across all days at the
// given hour.
func (e *Editor) ToggleRow(hour int) {
	if hour < e.grid.StartHour || hour > e.grid.EndHour {
		return
	}
	e.sel = e.sel.ToggleRow(hour, e.active)
}

// ToggleColumn toggles the active configuration across the grid's
// full hour range on the given day.
func (e *Editor) ToggleColumn(day int) {
	if day < 0 || day >= DaysPerWeek {
		return
	}
	e.sel = e.sel.ToggleColumn(e.grid, day, e.active)
}

// ClearAll empties the selection; the registry is untouched.
func (e *Editor) ClearAll() {
	e.sel = e.sel.Clear()
}

// LoadTemplate bulk-replaces the session with a template's
// configurations and slot assignments. Every configuration is
// re-keyed with a fresh id and the selection is rewritten through the
// old-to-new id map, so imported assignments stay consistent with the
// new identities. The first loaded configuration becomes active.
func (e *Editor) LoadTemplate(configs []TemplateConfiguration, slots []TemplateSlot) error {
	idMap, err := e.registry.LoadFromTemplate(configs)
	if err != nil {
		return err
	}
	e.sel = e.sel.Import(slots, idMap)
	e.active = uuid.Nil
	if len(e.registry.All()) > 0 {
		e.active = e.registry.All()[0].ID
	}
	return nil
}
