// Package orchestrator implements the sequential delivery planner: for
// each delivery, in input order, it picks the earliest-free robot and
// chains four space-time A* legs (home→pickup, pickup→charger,
// charger→dropoff, dropoff→charger) into a single committed reservation.
package orchestrator

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/elektrokombinacija/warehouse-mapf/internal/model"
	"github.com/elektrokombinacija/warehouse-mapf/internal/movestring"
	"github.com/elektrokombinacija/warehouse-mapf/internal/planner"
	"github.com/elektrokombinacija/warehouse-mapf/internal/reservation"
)

// Run executes every delivery of inst against table, in order, mutating
// each selected robot's charge, last-known position and move string in
// place. It never backtracks: the first delivery no robot can complete in
// full returns ErrNoSolution, wrapped with the delivery's id. It uses the
// default planner.HeuristicFactor sanity bound; see RunWithFactor to
// override it.
func Run(inst *model.Instance, table *reservation.Table, logger *zap.Logger) error {
	return RunWithFactor(inst, table, logger, planner.HeuristicFactor)
}

// RunWithFactor is Run with the A* sanity-bound multiplier exposed, for the
// CLI's --max-time-factor flag.
func RunWithFactor(inst *model.Instance, table *reservation.Table, logger *zap.Logger, heuristicFactor int) error {
	if len(inst.Chargers) == 0 && len(inst.Deliveries) > 0 {
		return ErrNoChargers
	}

	for _, delivery := range inst.Deliveries {
		if err := planAndCommitDelivery(inst, table, delivery, logger, heuristicFactor); err != nil {
			return fmt.Errorf("delivery %c: %w", delivery.ID, err)
		}
	}
	return nil
}

func planAndCommitDelivery(inst *model.Instance, table *reservation.Table, delivery model.Delivery, logger *zap.Logger, heuristicFactor int) error {
	pickup, err := inst.ShelfPosition(delivery.Pickup)
	if err != nil {
		return err
	}
	dropoff, err := inst.ShelfPosition(delivery.Dropoff)
	if err != nil {
		return err
	}

	candidates := make([]*model.Robot, len(inst.Robots))
	copy(candidates, inst.Robots)
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].LastKnown.T != candidates[j].LastKnown.T {
			return candidates[i].LastKnown.T < candidates[j].LastKnown.T
		}
		return candidates[i].ID < candidates[j].ID
	})

	for _, robot := range candidates {
		p, ok := planFourLegs(inst, table, robot, pickup, dropoff, heuristicFactor)
		if !ok {
			continue
		}
		commit(table, robot, delivery.ID, p)
		logger.Info("delivery committed",
			zap.Int("robot", int(robot.ID)),
			zap.String("delivery", string(delivery.ID)),
			zap.Int("last_known_t", robot.LastKnown.T),
		)
		return nil
	}

	logger.Warn("no robot could complete delivery", zap.String("delivery", string(delivery.ID)))
	return ErrNoSolution
}

// deliveryPlan holds every leg and dwell computed for one candidate robot.
// Nothing here is committed to the shared reservation table or robot state
// until the whole plan is known to succeed.
type deliveryPlan struct {
	pathA, pathB, pathC, pathD []model.SpaceTimePoint

	dwell1Pos                  model.SpacePoint
	dwell1From, dwell1Duration int

	legDOK    bool
	legDStart model.SpaceTimePoint

	dwell2Pos                  model.SpacePoint
	dwell2From, dwell2Duration int

	lastKnown   model.SpaceTimePoint
	finalCharge int
}

// planFourLegs attempts the home→pickup→charger→dropoff→charger chain for
// one robot. It consults table read-only and returns ok=false the moment
// leg A, B or C fails, without having mutated anything. A failed leg D is
// tolerated: the plan then ends at the dropoff with no second recharge.
func planFourLegs(inst *model.Instance, table *reservation.Table, robot *model.Robot, pickup, dropoff model.SpacePoint, heuristicFactor int) (*deliveryPlan, bool) {
	w, h := inst.Grid.Width, inst.Grid.Height

	pathA := planner.SpaceTimeAStarWithFactor(robot.LastKnown, pickup, 1, robot.Charge, w, h, table, heuristicFactor)
	if pathA == nil {
		return nil, false
	}
	chargeAfterA := robot.Charge - planner.UsedCharge(pathA)
	tAEnd := pathA[len(pathA)-1].T

	chargerB := inst.ChargersByProximity(pickup, dropoff)[0].Position
	legBStart := model.SpaceTimePoint{X: pickup.X, Y: pickup.Y, T: tAEnd + 1}
	pathB := planner.SpaceTimeAStarWithFactor(legBStart, chargerB, inst.MaxCharge, chargeAfterA, w, h, table, heuristicFactor)
	if pathB == nil {
		return nil, false
	}
	chargeAfterB := chargeAfterA - planner.UsedCharge(pathB)
	tBEnd := pathB[len(pathB)-1].T
	duration1 := inst.MaxCharge - chargeAfterB

	legCStart := model.SpaceTimePoint{X: chargerB.X, Y: chargerB.Y, T: tBEnd + duration1}
	pathC := planner.SpaceTimeAStarWithFactor(legCStart, dropoff, 1, inst.MaxCharge, w, h, table, heuristicFactor)
	if pathC == nil {
		return nil, false
	}
	chargeAfterC := inst.MaxCharge - planner.UsedCharge(pathC)
	tCEnd := pathC[len(pathC)-1].T

	unloadPoint := model.SpaceTimePoint{X: dropoff.X, Y: dropoff.Y, T: tCEnd + 1}
	chargerD := inst.ChargersByProximity(dropoff)[0].Position
	pathD := planner.SpaceTimeAStarWithFactor(unloadPoint, chargerD, inst.MaxCharge, chargeAfterC, w, h, table, heuristicFactor)

	plan := &deliveryPlan{
		pathA: pathA, pathB: pathB, pathC: pathC,
		dwell1Pos: chargerB, dwell1From: tBEnd + 1, dwell1Duration: duration1,
	}

	if pathD == nil {
		plan.legDStart = unloadPoint
		plan.lastKnown = unloadPoint
		plan.finalCharge = chargeAfterC
		return plan, true
	}

	chargeAfterD := chargeAfterC - planner.UsedCharge(pathD)
	tDEnd := pathD[len(pathD)-1].T
	duration2 := inst.MaxCharge - chargeAfterD

	plan.legDOK = true
	plan.pathD = pathD
	plan.dwell2Pos = chargerD
	plan.dwell2From = tDEnd + 1
	plan.dwell2Duration = duration2
	plan.lastKnown = model.SpaceTimePoint{X: chargerD.X, Y: chargerD.Y, T: tDEnd + duration2}
	plan.finalCharge = inst.MaxCharge

	return plan, true
}

// commit inserts every cell of a successful plan into table and advances
// robot's charge, last-known position and move string.
func commit(table *reservation.Table, robot *model.Robot, deliveryID byte, p *deliveryPlan) {
	for _, pt := range p.pathA {
		table.Insert(pt)
	}
	for _, pt := range p.pathB {
		table.Insert(pt)
	}
	table.InsertDwell(p.dwell1Pos, p.dwell1From, p.dwell1Duration-1)
	for _, pt := range p.pathC {
		table.Insert(pt)
	}

	if p.legDOK {
		for _, pt := range p.pathD {
			table.Insert(pt)
		}
		table.InsertDwell(p.dwell2Pos, p.dwell2From, p.dwell2Duration-1)
	} else {
		table.Insert(p.legDStart)
	}

	robot.Append(movestring.EncodeLeg(p.pathA)...)
	robot.AppendRune(rune(deliveryID))
	robot.Append(movestring.EncodeLeg(p.pathB)...)
	robot.Append(movestring.Dwell(p.dwell1Duration)...)
	robot.Append(movestring.EncodeLeg(p.pathC)...)
	robot.AppendRune(rune(deliveryID))
	if p.legDOK {
		robot.Append(movestring.EncodeLeg(p.pathD)...)
		robot.Append(movestring.Dwell(p.dwell2Duration)...)
	}

	robot.Charge = p.finalCharge
	robot.LastKnown = p.lastKnown
}
