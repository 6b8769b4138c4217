package model

import (
	"fmt"
	"sort"
	"strings"
)

// Instance is the fully parsed problem description: the grid dimensions,
// the maximum charge, every shelf and charger, the robots, and the ordered
// list of deliveries to execute. The Robots it points to start at their
// parsed positions and carry live planning state, which the orchestrator
// and filler mutate in place.
type Instance struct {
	Grid      Grid
	MaxCharge int
	Shelves   []Shelf
	Chargers  []Charger
	Robots    []*Robot
	Deliveries []Delivery
}

// ShelfPosition resolves a shelf letter to its grid cell.
func (inst *Instance) ShelfPosition(letter byte) (SpacePoint, error) {
	for _, s := range inst.Shelves {
		if s.Letter == letter {
			return s.Position, nil
		}
	}
	return SpacePoint{}, fmt.Errorf("%w: %q", ErrUnknownShelf, letter)
}

// RobotByID finds a robot by its parsed digit id, or nil if absent.
func (inst *Instance) RobotByID(id RobotID) *Robot {
	for _, r := range inst.Robots {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// ChargersByProximity returns the instance's chargers sorted ascending by
// the sum of Manhattan distances to the given reference points. A single
// reference point is the common case (leg D); two is leg B's
// pickup+dropoff composite.
func (inst *Instance) ChargersByProximity(refs ...SpacePoint) []Charger {
	out := make([]Charger, len(inst.Chargers))
	copy(out, inst.Chargers)
	cost := func(c Charger) int {
		total := 0
		for _, r := range refs {
			total += ManhattanSpace(c.Position, r)
		}
		return total
	}
	sort.SliceStable(out, func(i, j int) bool {
		return cost(out[i]) < cost(out[j])
	})
	return out
}

// String renders a debug dump of the instance, supplementing the parser's
// interface with a human-readable view used by verbose logging.
func (inst *Instance) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "instance %dx%d charge=%d\n", inst.Grid.Width, inst.Grid.Height, inst.MaxCharge)
	for _, s := range inst.Shelves {
		fmt.Fprintf(&b, "  shelf %c at %s\n", s.Letter, s.Position)
	}
	for _, c := range inst.Chargers {
		fmt.Fprintf(&b, "  charger at %s\n", c.Position)
	}
	for _, r := range inst.Robots {
		fmt.Fprintf(&b, "  robot %d at %s charge=%d\n", r.ID, r.LastKnown.Space(), r.Charge)
	}
	for _, d := range inst.Deliveries {
		fmt.Fprintf(&b, "  delivery %c: %c -> %c\n", d.ID, d.Pickup, d.Dropoff)
	}
	return b.String()
}
