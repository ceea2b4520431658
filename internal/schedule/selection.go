package schedule

import (
	"sort"

	"github.com/google/uuid"
)

// Selection is an immutable sparse mapping from grid cell to the set
// of configuration ids occupying it. Every operation returns a new
// Selection; unchanged inner sets are shared between versions, so no
// two versions ever alias a set that one of them mutates.
//
// An empty occupant set and an absent cell are equivalent for all
// reads; mutations prune sets that become empty.
type Selection struct {
	cells map[Cell]map[uuid.UUID]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{cells: map[Cell]map[uuid.UUID]struct{}{}}
}

// Has returns true if the configuration occupies the cell.
func (s *Selection) Has(c Cell, id uuid.UUID) bool {
	_, ok := s.cells[c][id]
	return ok
}

// OccupantCount returns the number of configurations occupying a cell.
func (s *Selection) OccupantCount(c Cell) int {
	return len(s.cells[c])
}

// CountFor returns the number of cells containing the configuration.
func (s *Selection) CountFor(id uuid.UUID) int {
	n := 0
	for _, occ := range s.cells {
		if _, ok := occ[id]; ok {
			n++
		}
	}
	return n
}

// Total returns the total number of (cell, configuration) pairs.
func (s *Selection) Total() int {
	n := 0
	for _, occ := range s.cells {
		n += len(occ)
	}
	return n
}

// IsEmpty returns true if no cell has any occupant.
func (s *Selection) IsEmpty() bool {
	return s.Total() == 0
}

// Cells returns the occupied cells sorted by day, then hour.
func (s *Selection) Cells() []Cell {
	cells := make([]Cell, 0, len(s.cells))
	for c, occ := range s.cells {
		if len(occ) > 0 {
			cells = append(cells, c)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Day != cells[j].Day {
			return cells[i].Day < cells[j].Day
		}
		return cells[i].Hour < cells[j].Hour
	})
	return cells
}

// ToggleCell flips membership of the configuration in the cell's set.
// A zero id is a no-op.
func (s *Selection) ToggleCell(c Cell, id uuid.UUID) *Selection {
	if id == uuid.Nil {
		return s
	}
	next := s.clone()
	next.toggle(c, id)
	return next
}

// ToggleRow toggles the configuration across all 7 day-cells at the
// given hour. If every cell at that hour already contains the id, it
// is removed from all of them; otherwise it is added to all of them.
// The all-or-nothing tie-break looks at the full current row state,
// not each cell individually. A zero id is a no-op.
func (s *Selection) ToggleRow(hour int, id uuid.UUID) *Selection {
	if id == uuid.Nil {
		return s
	}
	allSelected := true
	for day := 0; day < DaysPerWeek; day++ {
		if !s.Has(Cell{Day: day, Hour: hour}, id) {
			allSelected = false
			break
		}
	}
	next := s.clone()
	for day := 0; day < DaysPerWeek; day++ {
		c := Cell{Day: day, Hour: hour}
		if allSelected {
			next.remove(c, id)
		} else {
			next.add(c, id)
		}
	}
	return next
}

// ToggleColumn toggles the configuration across every hour of the
// grid's full range on the given day, with the same all-or-nothing
// rule as ToggleRow. The full configured range is used even when a
// view shows a narrower window. A zero id is a no-op.
func (s *Selection) ToggleColumn(g Grid, day int, id uuid.UUID) *Selection {
	if id == uuid.Nil {
		return s
	}
	allSelected := true
	for _, hour := range g.Hours() {
		if !s.Has(Cell{Day: day, Hour: hour}, id) {
			allSelected = false
			break
		}
	}
	next := s.clone()
	for _, hour := range g.Hours() {
		c := Cell{Day: day, Hour: hour}
		if allSelected {
			next.remove(c, id)
		} else {
			next.add(c, id)
		}
	}
	return next
}

// Clear returns an empty selection.
func (s *Selection) Clear() *Selection {
	return NewSelection()
}

// RemoveConfiguration removes the configuration from every cell.
// Used for the cascading delete when a configuration leaves the
// registry.
func (s *Selection) RemoveConfiguration(id uuid.UUID) *Selection {
	next := s.clone()
	for c := range next.cells {
		next.remove(c, id)
	}
	return next
}

// TemplateSlot is one (template configuration key, cell) assignment as
// stored in a template.
type TemplateSlot struct {
	Key  string
	Cell Cell
}

// Import builds a selection from template slots, rewriting every
// occupant key through idMap. Slots whose key is absent from idMap are
// dropped silently; that should not occur when the registry's
// LoadFromTemplate contract is honored.
func (s *Selection) Import(slots []TemplateSlot, idMap map[string]uuid.UUID) *Selection {
	next := NewSelection()
	for _, ts := range slots {
		id, ok := idMap[ts.Key]
		if !ok {
			continue
		}
		next.add(ts.Cell, id)
	}
	return next
}

// clone copies the outer map; inner sets are shared until modified.
func (s *Selection) clone() *Selection {
	next := &Selection{cells: make(map[Cell]map[uuid.UUID]struct{}, len(s.cells))}
	for c, occ := range s.cells {
		next.cells[c] = occ
	}
	return next
}

// add inserts id into the cell's set, copying the set first so shared
// versions are untouched.
func (s *Selection) add(c Cell, id uuid.UUID) {
	occ := s.cells[c]
	if _, ok := occ[id]; ok {
		return
	}
	copied := make(map[uuid.UUID]struct{}, len(occ)+1)
	for k := range occ {
		copied[k] = struct{}{}
	}
	copied[id] = struct{}{}
	s.cells[c] = copied
}

// remove deletes id from the cell's set, copying the set first.
// Sets that become empty are pruned.
func (s *Selection) remove(c Cell, id uuid.UUID) {
	occ := s.cells[c]
	if _, ok := occ[id]; !ok {
		return
	}
	if len(occ) == 1 {
		delete(s.cells, c)
		return
	}
	copied := make(map[uuid.UUID]struct{}, len(occ)-1)
	for k := range occ {
		if k != id {
			copied[k] = struct{}{}
		}
	}
	s.cells[c] = copied
}

// toggle flips membership of id in the cell's set.
func (s *Selection) toggle(c Cell, id uuid.UUID) {
	if _, ok := s.cells[c][id]; ok {
		s.remove(c, id)
	} else {
		s.add(c, id)
	}
}
