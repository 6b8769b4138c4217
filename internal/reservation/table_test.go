package reservation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/warehouse-mapf/internal/model"
)

func TestAvailableOnEmptyTable(t *testing.T) {
	tbl := New()
	require.True(t, tbl.Available(model.SpaceTimePoint{X: 3, Y: 3, T: 5}))
}

func TestAvailableExcludesAdjacentTicks(t *testing.T) {
	tbl := New()
	tbl.Insert(model.SpaceTimePoint{X: 2, Y: 2, T: 5})

	require.False(t, tbl.Available(model.SpaceTimePoint{X: 2, Y: 2, T: 4}))
	require.False(t, tbl.Available(model.SpaceTimePoint{X: 2, Y: 2, T: 5}))
	require.False(t, tbl.Available(model.SpaceTimePoint{X: 2, Y: 2, T: 6}))
	require.True(t, tbl.Available(model.SpaceTimePoint{X: 2, Y: 2, T: 3}))
	require.True(t, tbl.Available(model.SpaceTimePoint{X: 2, Y: 2, T: 7}))
	require.True(t, tbl.Available(model.SpaceTimePoint{X: 3, Y: 2, T: 5}))
}

func TestInsertIdempotent(t *testing.T) {
	tbl := New()
	p := model.SpaceTimePoint{X: 1, Y: 1, T: 1}
	tbl.Insert(p)
	tbl.Insert(p)
	require.Equal(t, 1, tbl.Len())
}

func TestInsertDwell(t *testing.T) {
	tbl := New()
	tbl.InsertDwell(model.SpacePoint{X: 4, Y: 4}, 10, 3)
	require.Equal(t, 4, tbl.Len())
	for tt := 10; tt <= 13; tt++ {
		require.False(t, tbl.Available(model.SpaceTimePoint{X: 4, Y: 4, T: tt}))
	}
}

func TestInsertDwellZeroDuration(t *testing.T) {
	tbl := New()
	tbl.InsertDwell(model.SpacePoint{X: 0, Y: 0}, 7, 0)
	require.Equal(t, 1, tbl.Len())
}
