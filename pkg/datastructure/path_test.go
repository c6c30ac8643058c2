package datastructure

import (
	"math"
	"testing"

	"campusnav/pkg/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string, lat, lon float64, id int) *Location {
	t.Helper()
	loc, err := NewLocation(name, lat, lon, "", id)
	require.NoError(t, err)
	return loc
}

func TestPathAppendAccumulatesDistance(t *testing.T) {
	a := mustLocation(t, "Main Gate", 12.839500, 80.136500, 0)
	b := mustLocation(t, "Auditorium", 12.838500, 80.136500, 9)
	c := mustLocation(t, "Academic Block", 12.838200, 80.137400, 1)

	p := NewPath()
	assert.True(t, p.Empty())

	require.NoError(t, p.Append(a))
	assert.Equal(t, 1, p.Size())
	assert.Equal(t, 0.0, p.TotalDistance())

	require.NoError(t, p.Append(b))
	assert.Equal(t, 2, p.Size())
	assert.InDelta(t, a.DistanceTo(b), p.TotalDistance(), 1e-9)

	require.NoError(t, p.Append(c))
	assert.InDelta(t, a.DistanceTo(b)+b.DistanceTo(c), p.TotalDistance(), 1e-9)
}

func TestPathAppendNil(t *testing.T) {
	p := NewPath()
	err := p.Append(nil)
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))
}

func TestPathAt(t *testing.T) {
	a := mustLocation(t, "A", 1, 1, 0)
	p := NewPathFrom(a)

	got, err := p.At(0)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = p.At(1)
	require.Error(t, err)
	assert.Equal(t, server.ErrOutOfRange, server.GetCode(err))
	_, err = p.At(-1)
	require.Error(t, err)
}

func TestSetTotalDistanceOverride(t *testing.T) {
	a := mustLocation(t, "A", 12.8390, 80.1365, 0)
	b := mustLocation(t, "B", 12.8385, 80.1365, 1)

	p := NewPath()
	require.NoError(t, p.Append(a))
	require.NoError(t, p.Append(b))

	// override with an algorithm-computed optimum distinct from geometry
	require.NoError(t, p.SetTotalDistance(1234.5))
	assert.Equal(t, 1234.5, p.TotalDistance())

	err := p.SetTotalDistance(-1)
	require.Error(t, err)
	assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))
}

func TestCombineDropsDuplicateJoin(t *testing.T) {
	a := mustLocation(t, "A", 12.8395, 80.1365, 0)
	b := mustLocation(t, "B", 12.8385, 80.1365, 1)
	c := mustLocation(t, "C", 12.8382, 80.1374, 2)

	first := NewPath()
	require.NoError(t, first.Append(a))
	require.NoError(t, first.Append(b))

	second := NewPath()
	require.NoError(t, second.Append(b))
	require.NoError(t, second.Append(c))

	combined, err := first.Combine(second)
	require.NoError(t, err)
	assert.Equal(t, 3, combined.Size())
	got, _ := combined.At(1)
	assert.Equal(t, b.ID(), got.ID())
	assert.InDelta(t, a.DistanceTo(b)+b.DistanceTo(c), combined.TotalDistance(), 1e-9)
}

func TestCombineNoJoinDuplicate(t *testing.T) {
	a := mustLocation(t, "A", 12.8395, 80.1365, 0)
	b := mustLocation(t, "B", 12.8385, 80.1365, 1)
	c := mustLocation(t, "C", 12.8382, 80.1374, 2)
	d := mustLocation(t, "D", 12.8379, 80.1371, 3)

	first := NewPath()
	require.NoError(t, first.Append(a))
	require.NoError(t, first.Append(b))
	second := NewPath()
	require.NoError(t, second.Append(c))
	require.NoError(t, second.Append(d))

	combined, err := first.Combine(second)
	require.NoError(t, err)
	assert.Equal(t, 4, combined.Size())
	// the b->c hop is accumulated geometrically
	assert.InDelta(t, a.DistanceTo(b)+b.DistanceTo(c)+c.DistanceTo(d), combined.TotalDistance(), 1e-9)
}

// Combine's generic contract disagrees with an externally installed optimum:
// the result's distance is re-derived geometrically and both operands' cached
// totals are ignored. Multi-waypoint routing depends on re-applying the
// per-leg optimum sum after stitching. This pins the quirk down so nobody
// "fixes" it silently.
func TestCombineIgnoresCachedTotals(t *testing.T) {
	a := mustLocation(t, "A", 12.8395, 80.1365, 0)
	b := mustLocation(t, "B", 12.8385, 80.1365, 1)
	c := mustLocation(t, "C", 12.8382, 80.1374, 2)

	first := NewPath()
	require.NoError(t, first.Append(a))
	require.NoError(t, first.Append(b))
	require.NoError(t, first.SetTotalDistance(9999))

	second := NewPath()
	require.NoError(t, second.Append(b))
	require.NoError(t, second.Append(c))
	require.NoError(t, second.SetTotalDistance(8888))

	combined, err := first.Combine(second)
	require.NoError(t, err)
	geometric := a.DistanceTo(b) + b.DistanceTo(c)
	assert.InDelta(t, geometric, combined.TotalDistance(), 1e-9)
	assert.Greater(t, math.Abs(9999+8888-combined.TotalDistance()), 1.0)
}

func TestPathEqualityIgnoresDistance(t *testing.T) {
	a := mustLocation(t, "A", 12.8395, 80.1365, 0)
	b := mustLocation(t, "B", 12.8385, 80.1365, 1)

	p1 := NewPath()
	require.NoError(t, p1.Append(a))
	require.NoError(t, p1.Append(b))
	p2 := NewPath()
	require.NoError(t, p2.Append(a))
	require.NoError(t, p2.Append(b))
	require.NoError(t, p2.SetTotalDistance(5000))

	assert.True(t, p1.Equal(p2))

	p3 := NewPathFrom(a)
	assert.False(t, p1.Equal(p3))
}

func TestPathOrdering(t *testing.T) {
	short := NewPath()
	require.NoError(t, short.SetTotalDistance(10))
	long := NewPath()
	require.NoError(t, long.SetTotalDistance(20))

	assert.True(t, short.Less(long))
	assert.True(t, long.Greater(short))
	assert.False(t, long.Less(short))
}

func TestPathString(t *testing.T) {
	a := mustLocation(t, "Main Gate", 12.8395, 80.1365, 0)
	b := mustLocation(t, "Auditorium", 12.8385, 80.1365, 9)
	p := NewPath()
	require.NoError(t, p.Append(a))
	require.NoError(t, p.Append(b))
	assert.Contains(t, p.String(), "Main Gate -> Auditorium")
}
