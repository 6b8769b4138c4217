package ioformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/warehouse-mapf/internal/model"
)

const sampleInstance = `####
#A_#
#0B#
####
charge 100
packages
p A B
`

func TestParseInstance(t *testing.T) {
	inst, err := ParseInstance(strings.NewReader(sampleInstance))
	require.NoError(t, err)

	require.Equal(t, 2, inst.Grid.Width)
	require.Equal(t, 2, inst.Grid.Height)
	require.Equal(t, 100, inst.MaxCharge)

	require.Len(t, inst.Shelves, 2)
	require.Len(t, inst.Chargers, 1)
	require.Len(t, inst.Robots, 1)
	require.Len(t, inst.Deliveries, 1)

	require.Equal(t, model.RobotID(0), inst.Robots[0].ID)
	require.Equal(t, model.SpacePoint{X: 0, Y: 1}, inst.Robots[0].LastKnown.Space())

	pos, err := inst.ShelfPosition('B')
	require.NoError(t, err)
	require.Equal(t, model.SpacePoint{X: 1, Y: 1}, pos)

	require.Equal(t, model.Delivery{ID: 'p', Pickup: 'A', Dropoff: 'B'}, inst.Deliveries[0])
}

func TestParseInstanceEmptyFile(t *testing.T) {
	_, err := ParseInstance(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyInstance)
}

func TestParseInstanceMissingChargeHeader(t *testing.T) {
	bad := "####\n#__#\n####\npackages\np A B\n"
	_, err := ParseInstance(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrMissingHeader)
}

func TestParseInstanceBadGridLineLength(t *testing.T) {
	bad := "####\n#__\n####\ncharge 10\npackages\n"
	_, err := ParseInstance(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrMalformedGrid)
}

func TestWriteOutput(t *testing.T) {
	r0 := model.NewRobot(0, model.SpacePoint{X: 0, Y: 0}, 100)
	r0.Append(model.Right, model.Down)
	r1 := model.NewRobot(1, model.SpacePoint{X: 1, Y: 1}, 100)
	r1.Append(model.Stay, model.Stay)

	inst := &model.Instance{Robots: []*model.Robot{r1, r0}}

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, inst))
	require.Equal(t, "RS\nDS\n", buf.String())
}
