package navigator

import (
	"math"
	"testing"

	"campusnav/pkg/datastructure"
	"campusnav/pkg/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeGraphOutOfBounds(t *testing.T) {
	locs := testLocations(t, 2)
	nv := NewNavigator()

	err := nv.InitializeGraph(locs, [][2]int{{0, 5}}, []float64{10})
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))

	err = nv.InitializeGraph(locs, [][2]int{{-1, 1}}, []float64{10})
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))
}

func TestInitializeGraphLengthMismatch(t *testing.T) {
	locs := testLocations(t, 2)
	nv := NewNavigator()
	err := nv.InitializeGraph(locs, [][2]int{{0, 1}}, []float64{10, 20})
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))
}

func TestFindPathNilAndUnknownEndpoints(t *testing.T) {
	locs := testLocations(t, 2)
	nv := buildNavigator(t, locs, [][2]int{{0, 1}}, []float64{10})

	_, err := nv.FindPath(nil, locs[1])
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))

	stranger, err := datastructure.NewLocation("Stranger", 12.9, 80.2, "", 99)
	require.NoError(t, err)
	_, err = nv.FindPath(locs[0], stranger)
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))
}

func TestFindPathByName(t *testing.T) {
	locs := testLocations(t, 3)
	nv := buildNavigator(t, locs, [][2]int{{0, 1}, {1, 2}}, []float64{10, 5})

	path, err := nv.FindPathByName("A", "C")
	require.NoError(t, err)
	assert.InDelta(t, 15.0, path.TotalDistance(), 1e-9)

	_, err = nv.FindPathByName("A", "Nowhere")
	require.Error(t, err)
	assert.Equal(t, server.ErrNotFound, server.GetCode(err))

	_, err = nv.FindPathByName("", "C")
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))
}

func TestFindPathViaOrderedWaypoints(t *testing.T) {
	locs := testLocations(t, 4)
	// chain A-B-C-D, no direct A-D edge
	nv := buildNavigator(t, locs,
		[][2]int{{0, 1}, {1, 2}, {2, 3}},
		[]float64{10, 5, 10})

	path, err := nv.FindPathVia(locs[0], locs[3], []*datastructure.Location{locs[1], locs[2]})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, pathNames(t, path))
	assert.InDelta(t, 25.0, path.TotalDistance(), 1e-9)
}

func TestFindPathViaEmptyViasEqualsTwoArgForm(t *testing.T) {
	locs := testLocations(t, 3)
	nv := buildNavigator(t, locs, [][2]int{{0, 1}, {1, 2}}, []float64{10, 5})

	direct, err := nv.FindPath(locs[0], locs[2])
	require.NoError(t, err)
	viaForm, err := nv.FindPathVia(locs[0], locs[2], nil)
	require.NoError(t, err)

	assert.True(t, direct.Equal(viaForm))
	assert.InDelta(t, direct.TotalDistance(), viaForm.TotalDistance(), 1e-9)
}

func TestFindPathViaEqualEndpointRejected(t *testing.T) {
	locs := testLocations(t, 3)
	nv := buildNavigator(t, locs, [][2]int{{0, 1}, {1, 2}}, []float64{10, 5})

	_, err := nv.FindPathVia(locs[0], locs[2], []*datastructure.Location{locs[0]})
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))

	_, err = nv.FindPathVia(locs[0], locs[2], []*datastructure.Location{locs[2]})
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))
}

// the per-leg optimum sum must survive stitching even when edge weights are
// nothing like the geometry between the points
func TestFindPathViaOverridesCombineGeometry(t *testing.T) {
	locs := testLocations(t, 3)
	nv := buildNavigator(t, locs,
		[][2]int{{0, 1}, {1, 2}},
		[]float64{1000, 2000})

	path, err := nv.FindPathVia(locs[0], locs[2], []*datastructure.Location{locs[1]})
	require.NoError(t, err)
	assert.InDelta(t, 3000.0, path.TotalDistance(), 1e-9)

	// and the geometric re-derivation Combine would produce differs
	geometric := locs[0].DistanceTo(locs[1]) + locs[1].DistanceTo(locs[2])
	assert.Greater(t, math.Abs(geometric-path.TotalDistance()), 1.0)
}

func TestFailedFindPathKeepsLastPath(t *testing.T) {
	locs := testLocations(t, 4)
	nv := buildNavigator(t, locs,
		[][2]int{{0, 1}, {2, 3}},
		[]float64{10, 10})

	good, err := nv.FindPath(locs[0], locs[1])
	require.NoError(t, err)
	require.Equal(t, good, nv.GetLastPath())

	_, err = nv.FindPath(locs[0], locs[3])
	require.Error(t, err)
	// stale but unchanged
	assert.Equal(t, good, nv.GetLastPath())
}

func TestEstimatedTime(t *testing.T) {
	locs := testLocations(t, 2)
	nv := buildNavigator(t, locs, [][2]int{{0, 1}}, []float64{1000})

	minutes, err := nv.GetEstimatedTime()
	require.NoError(t, err)
	assert.Equal(t, 0.0, minutes)

	_, err = nv.FindPath(locs[0], locs[1])
	require.NoError(t, err)

	minutes, err = nv.GetEstimatedTime()
	require.NoError(t, err)
	assert.InDelta(t, 12.0, minutes, 1e-9)

	require.NoError(t, nv.SetNavigationMode(NewCyclingMode()))
	minutes, err = nv.GetEstimatedTime()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, minutes, 1e-9)
}

func TestSetNavigationModeNil(t *testing.T) {
	nv := NewNavigator()
	err := nv.SetNavigationMode(nil)
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))
	// default mode untouched
	assert.Equal(t, "Walking", nv.GetNavigationMode().Name())
}

func TestGetAllLocationsSnapshot(t *testing.T) {
	locs := testLocations(t, 3)
	nv := buildNavigator(t, locs, [][2]int{{0, 1}, {1, 2}}, []float64{1, 1})

	all := nv.GetAllLocations()
	assert.Len(t, all, 3)
	all[0] = nil
	assert.NotNil(t, nv.GetAllLocations()[0])
}

func TestGetGraphNeighborInspection(t *testing.T) {
	locs := testLocations(t, 3)
	nv := buildNavigator(t, locs, [][2]int{{0, 1}, {1, 2}}, []float64{10, 5})

	g := nv.GetGraph()
	assert.True(t, g.HasEdge(locs[0].ID(), locs[1].ID()))
	assert.Len(t, g.Neighbors(locs[1].ID()), 2)
}
