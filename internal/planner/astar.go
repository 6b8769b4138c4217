// Package planner implements the single-robot space-time A* search that
// the orchestrator chains into four-leg delivery plans.
package planner

import (
	"container/heap"

	"github.com/elektrokombinacija/warehouse-mapf/internal/model"
	"github.com/elektrokombinacija/warehouse-mapf/internal/reservation"
)

// HeuristicFactor bounds how far past start.T a search may explore, as a
// multiple of the Manhattan distance from start to goal. Exceeding it
// aborts the whole search rather than just the offending successor — it
// guards against pathological dwelling when reservations hem a robot in.
const HeuristicFactor = 20

type pqEntry struct {
	point  model.SpaceTimePoint
	charge int
	f      int
	index  int
}

type openQueue []*pqEntry

func (q openQueue) Len() int { return len(q) }

// Less orders by f ascending; ties prefer the smaller x. Arbitrary, but
// observable in output and must be reproduced for deterministic results.
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].point.X < q[j].point.X
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}

func (q *openQueue) Push(x any) {
	e := x.(*pqEntry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// SpaceTimeAStar plans a path for one robot from start to goal under table,
// admitting a goal arrival only if this search has not already reached the
// goal cell at the arrival tick or any of the restAfter+1 ticks after it;
// that dwell check does not consult table. charge is the robot's remaining
// energy budget; a move costs one unit, a stay costs nothing. It returns nil
// if charge is already negative, if no admissible path exists, or if a
// successor reaches HeuristicFactor*Manhattan(start,goal) ticks past start.
func SpaceTimeAStar(start model.SpaceTimePoint, goal model.SpacePoint, restAfter, charge, width, height int, table *reservation.Table) []model.SpaceTimePoint {
	return SpaceTimeAStarWithFactor(start, goal, restAfter, charge, width, height, table, HeuristicFactor)
}

// SpaceTimeAStarWithFactor is SpaceTimeAStar with the sanity-bound
// multiplier exposed, for callers (the CLI's --max-time-factor flag) that
// need to override the default.
func SpaceTimeAStarWithFactor(start model.SpaceTimePoint, goal model.SpacePoint, restAfter, charge, width, height int, table *reservation.Table, heuristicFactor int) []model.SpaceTimePoint {
	if charge < 0 {
		return nil
	}

	open := &openQueue{}
	heap.Init(open)
	heap.Push(open, &pqEntry{point: start, charge: charge, f: start.T + model.Manhattan(start, goal)})

	cameFrom := make(map[model.SpaceTimePoint]model.SpaceTimePoint)
	heuristicDistance := model.Manhattan(start, goal)

	for open.Len() > 0 {
		curr := heap.Pop(open).(*pqEntry)

		if curr.point.Space() == goal {
			return reconstructPath(cameFrom, curr.point)
		}

		for _, n := range neighbours(curr.point, width, height, table) {
			moved := n.Space() != curr.point.Space()
			newCharge := curr.charge
			if moved {
				newCharge--
			}
			if newCharge < 0 {
				continue
			}

			if n.T-start.T >= heuristicFactor*heuristicDistance {
				return nil
			}

			if _, seen := cameFrom[n]; seen {
				continue
			}

			if n.Space() == goal && !dwellAdmissible(cameFrom, n, restAfter) {
				continue
			}

			cameFrom[n] = curr.point
			heap.Push(open, &pqEntry{point: n, charge: newCharge, f: n.T + model.Manhattan(n, goal)})
		}
	}

	return nil
}

// dwellAdmissible reports whether n, which sits on the goal cell, can be
// followed by restAfter+1 more ticks at the same cell without colliding
// with a space-time point this same search has already reached.
func dwellAdmissible(cameFrom map[model.SpaceTimePoint]model.SpaceTimePoint, n model.SpaceTimePoint, restAfter int) bool {
	for i := 0; i <= restAfter+1; i++ {
		if _, blocked := cameFrom[model.SpaceTimePoint{X: n.X, Y: n.Y, T: n.T + i}]; blocked {
			return false
		}
	}
	return true
}

func neighbours(p model.SpaceTimePoint, width, height int, table *reservation.Table) []model.SpaceTimePoint {
	candidates := make([]model.SpaceTimePoint, 0, 5)
	candidates = append(candidates, model.SpaceTimePoint{X: p.X, Y: p.Y, T: p.T + 1})
	if p.X > 0 {
		candidates = append(candidates, model.SpaceTimePoint{X: p.X - 1, Y: p.Y, T: p.T + 1})
	}
	if p.X < width-1 {
		candidates = append(candidates, model.SpaceTimePoint{X: p.X + 1, Y: p.Y, T: p.T + 1})
	}
	if p.Y > 0 {
		candidates = append(candidates, model.SpaceTimePoint{X: p.X, Y: p.Y - 1, T: p.T + 1})
	}
	if p.Y < height-1 {
		candidates = append(candidates, model.SpaceTimePoint{X: p.X, Y: p.Y + 1, T: p.T + 1})
	}

	valid := make([]model.SpaceTimePoint, 0, len(candidates))
	for _, c := range candidates {
		if table.Available(c) {
			valid = append(valid, c)
		}
	}
	return valid
}

func reconstructPath(cameFrom map[model.SpaceTimePoint]model.SpaceTimePoint, goal model.SpaceTimePoint) []model.SpaceTimePoint {
	path := []model.SpaceTimePoint{goal}
	curr := goal
	for {
		parent, ok := cameFrom[curr]
		if !ok {
			break
		}
		path = append(path, parent)
		curr = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// UsedCharge returns the energy a path consumed: the number of ticks at
// which the robot's cell differs from the previous tick. Dwell ticks are
// free; only moves cost charge.
func UsedCharge(path []model.SpaceTimePoint) int {
	if len(path) == 0 {
		return 0
	}
	used := 0
	last := path[0].Space()
	for _, p := range path {
		cur := p.Space()
		if cur != last {
			used++
		}
		last = cur
	}
	return used
}
