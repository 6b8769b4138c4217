package orchestrator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/warehouse-mapf/internal/model"
	"github.com/elektrokombinacija/warehouse-mapf/internal/reservation"
)

func twoRobotInstance() *model.Instance {
	w, h := 10, 10
	return &model.Instance{
		Grid:      model.Grid{Width: w, Height: h},
		MaxCharge: 100,
		Shelves: []model.Shelf{
			{Letter: 'A', Position: model.SpacePoint{X: 0, Y: 0}},
			{Letter: 'B', Position: model.SpacePoint{X: w - 1, Y: h - 1}},
		},
		Chargers: []model.Charger{
			{Position: model.SpacePoint{X: w / 2, Y: h / 2}},
		},
		Robots: []*model.Robot{
			model.NewRobot(0, model.SpacePoint{X: 0, Y: 0}, 100),
			model.NewRobot(1, model.SpacePoint{X: w - 1, Y: h - 1}, 100),
		},
		Deliveries: []model.Delivery{
			{ID: 'p', Pickup: 'A', Dropoff: 'B'},
		},
	}
}

func TestRunSingleDeliveryUsesOneRobot(t *testing.T) {
	inst := twoRobotInstance()
	table := reservation.New()

	err := Run(inst, table, zap.NewNop())
	require.NoError(t, err)

	used := 0
	for _, r := range inst.Robots {
		if len(r.MoveString) > 0 {
			used++
			s := string(r.MoveString)
			iLoad := strings.IndexByte(s, 'p')
			iUnload := strings.LastIndexByte(s, 'p')
			require.NotEqual(t, -1, iLoad)
			require.Greater(t, iUnload, iLoad)
			require.Equal(t, 2, strings.Count(s, "p"))
		}
	}
	require.Equal(t, 1, used)
}

func TestRunNoSolutionWhenChargersBlocked(t *testing.T) {
	inst := twoRobotInstance()
	table := reservation.New()

	charger := inst.Chargers[0].Position
	for tt := 0; tt < 500; tt++ {
		table.Insert(model.SpaceTimePoint{X: charger.X, Y: charger.Y, T: tt})
	}

	err := Run(inst, table, zap.NewNop())
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestRunNoChargersFastFail(t *testing.T) {
	inst := twoRobotInstance()
	inst.Chargers = nil
	table := reservation.New()

	err := Run(inst, table, zap.NewNop())
	require.ErrorIs(t, err, ErrNoChargers)
}
