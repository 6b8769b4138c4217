// Package reservation implements the shared space-time reservation table
// that the planner consults and the orchestrator commits into.
package reservation

import "github.com/elektrokombinacija/warehouse-mapf/internal/model"

// Table is the set of committed space-time cells. The zero value is an
// empty, ready-to-use table.
type Table struct {
	cells map[model.SpaceTimePoint]struct{}
}

// New returns an empty reservation table.
func New() *Table {
	return &Table{cells: make(map[model.SpaceTimePoint]struct{})}
}

// Insert claims p. Idempotent.
func (t *Table) Insert(p model.SpaceTimePoint) {
	if t.cells == nil {
		t.cells = make(map[model.SpaceTimePoint]struct{})
	}
	t.cells[p] = struct{}{}
}

// InsertDwell claims every cell of a contiguous stay at pos from
// [fromT, fromT+duration] inclusive. duration may be 0, in which case only
// fromT is claimed.
func (t *Table) InsertDwell(pos model.SpacePoint, fromT, duration int) {
	for dt := 0; dt <= duration; dt++ {
		t.Insert(model.SpaceTimePoint{X: pos.X, Y: pos.Y, T: fromT + dt})
	}
}

// Available reports whether p may be occupied: true iff none of
// (p.X,p.Y,p.T-1), p, (p.X,p.Y,p.T+1) is reserved. An empty table is always
// available, a deliberate shortcut preserving "no self-conflict for the
// first planned path" carried from the source implementation.
func (t *Table) Available(p model.SpaceTimePoint) bool {
	if len(t.cells) == 0 {
		return true
	}
	if t.has(p) {
		return false
	}
	if t.has(model.SpaceTimePoint{X: p.X, Y: p.Y, T: p.T - 1}) {
		return false
	}
	if t.has(model.SpaceTimePoint{X: p.X, Y: p.Y, T: p.T + 1}) {
		return false
	}
	return true
}

func (t *Table) has(p model.SpaceTimePoint) bool {
	_, ok := t.cells[p]
	return ok
}

// Len returns the number of distinct reserved cells, for diagnostics.
func (t *Table) Len() int {
	return len(t.cells)
}
