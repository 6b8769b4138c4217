// Package filler implements the trailing-idle walk that extends every
// under-length robot trajectory to the delivery orchestrator's global
// maximum, once all deliveries have been scheduled.
package filler

import (
	"fmt"
	"math/rand"

	"github.com/elektrokombinacija/warehouse-mapf/internal/model"
	"github.com/elektrokombinacija/warehouse-mapf/internal/planner"
	"github.com/elektrokombinacija/warehouse-mapf/internal/reservation"
)

// NewRNG seeds a deterministic random source, following the injectable
// *rand.Rand field pattern used for every seeded subsystem in this
// codebase: construct once, thread explicitly, never reach for the global
// math/rand functions.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Fill extends every robot whose move string is shorter than the longest
// one with a randomized, reservation-respecting depth-first walk, until
// all trajectories share the same length. rng drives every shuffle; two
// runs with the same instance, reservation history and seed produce
// byte-identical output.
func Fill(inst *model.Instance, table *reservation.Table, rng *rand.Rand) error {
	maxLen := 0
	for _, r := range inst.Robots {
		if len(r.MoveString) > maxLen {
			maxLen = len(r.MoveString)
		}
	}

	for _, r := range inst.Robots {
		needed := maxLen - r.LastKnown.T
		if needed <= 0 {
			continue
		}

		seq, ok := walk(r.LastKnown, r.Charge, needed, inst.Grid.Width, inst.Grid.Height, table, rng)
		if !ok {
			return fmt.Errorf("%w: robot %d", ErrCannotEvade, r.ID)
		}

		full := append([]model.SpaceTimePoint{r.LastKnown}, seq...)
		r.Charge -= planner.UsedCharge(full)

		prev := r.LastKnown
		for _, p := range seq {
			table.Insert(p)
			r.Append(model.DirectionBetween(prev.Space(), p.Space()))
			prev = p
		}
		r.LastKnown = prev
	}

	return nil
}

// walk performs one level of the recursive randomized walk: it enumerates
// up to five successors of current, keeps only the ones free under table,
// shuffles them with rng, and recurses on each in turn until one yields a
// completing suffix of length stepsLeft or all are exhausted.
func walk(current model.SpaceTimePoint, charge, stepsLeft, width, height int, table *reservation.Table, rng *rand.Rand) ([]model.SpaceTimePoint, bool) {
	if stepsLeft == 0 {
		return nil, true
	}

	candidates := successors(current, width, height)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, c := range candidates {
		if !table.Available(c) {
			continue
		}

		newCharge := charge
		if c.Space() != current.Space() {
			newCharge--
		}
		if newCharge < 0 {
			continue
		}

		rest, ok := walk(c, newCharge, stepsLeft-1, width, height, table, rng)
		if !ok {
			continue
		}
		return append([]model.SpaceTimePoint{c}, rest...), true
	}

	return nil, false
}

func successors(p model.SpaceTimePoint, width, height int) []model.SpaceTimePoint {
	out := make([]model.SpaceTimePoint, 0, 5)
	out = append(out, model.SpaceTimePoint{X: p.X, Y: p.Y, T: p.T + 1})
	if p.X > 0 {
		out = append(out, model.SpaceTimePoint{X: p.X - 1, Y: p.Y, T: p.T + 1})
	}
	if p.X < width-1 {
		out = append(out, model.SpaceTimePoint{X: p.X + 1, Y: p.Y, T: p.T + 1})
	}
	if p.Y > 0 {
		out = append(out, model.SpaceTimePoint{X: p.X, Y: p.Y - 1, T: p.T + 1})
	}
	if p.Y < height-1 {
		out = append(out, model.SpaceTimePoint{X: p.X, Y: p.Y + 1, T: p.T + 1})
	}
	return out
}
