// Package movestring converts space-time paths into the per-tick action
// alphabet {U, D, L, R, S} the orchestrator appends to each robot's
// accumulated move string.
package movestring

import "github.com/elektrokombinacija/warehouse-mapf/internal/model"

// EncodeLeg converts a leg of |path| consecutive SpaceTimePoints into
// |path|-1 direction characters, one per tick transition. A one-element
// (or empty) leg yields no characters.
func EncodeLeg(path []model.SpaceTimePoint) []model.Direction {
	if len(path) < 2 {
		return nil
	}
	out := make([]model.Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		out = append(out, model.DirectionBetween(path[i-1].Space(), path[i].Space()))
	}
	return out
}

// Dwell returns n Stay characters, used for recharge-dwell ticks.
func Dwell(n int) []model.Direction {
	if n <= 0 {
		return nil
	}
	out := make([]model.Direction, n)
	for i := range out {
		out[i] = model.Stay
	}
	return out
}
