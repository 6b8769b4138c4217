package movestring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/warehouse-mapf/internal/model"
)

func TestEncodeLeg(t *testing.T) {
	path := []model.SpaceTimePoint{
		{X: 0, Y: 0, T: 0},
		{X: 1, Y: 0, T: 1},
		{X: 1, Y: 1, T: 2},
		{X: 1, Y: 1, T: 3},
	}
	got := EncodeLeg(path)
	require.Equal(t, []model.Direction{model.Right, model.Down, model.Stay}, got)
}

func TestEncodeLegTrivial(t *testing.T) {
	require.Nil(t, EncodeLeg(nil))
	require.Nil(t, EncodeLeg([]model.SpaceTimePoint{{X: 1, Y: 1, T: 0}}))
}

func TestDwell(t *testing.T) {
	require.Equal(t, []model.Direction{model.Stay, model.Stay, model.Stay}, Dwell(3))
	require.Nil(t, Dwell(0))
	require.Nil(t, Dwell(-1))
}
