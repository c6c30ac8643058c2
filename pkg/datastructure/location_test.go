package datastructure

import (
	"testing"

	"campusnav/pkg/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	loc, err := NewLocation("Main Gate", 12.839500, 80.136500, "Main entrance to the campus", 0)
	require.NoError(t, err)
	assert.Equal(t, "Main Gate", loc.Name())
	assert.Equal(t, 12.839500, loc.Latitude())
	assert.Equal(t, 80.136500, loc.Longitude())
	assert.Equal(t, "Main entrance to the campus", loc.Description())
	assert.Equal(t, 0, loc.ID())
}

func TestNewLocationValidation(t *testing.T) {
	cases := []struct {
		name     string
		locName  string
		lat, lon float64
	}{
		{name: "empty name", locName: "", lat: 12.8, lon: 80.1},
		{name: "latitude above range", locName: "X", lat: 91, lon: 80.1},
		{name: "latitude below range", locName: "X", lat: -90.01, lon: 80.1},
		{name: "longitude below range", locName: "X", lat: 12.8, lon: -181},
		{name: "longitude above range", locName: "X", lat: 12.8, lon: 180.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewLocation(c.locName, c.lat, c.lon, "", 1)
			require.Error(t, err)
			assert.Equal(t, server.ErrInvalidArgument, server.GetCode(err))
		})
	}
}

func TestLocationSetters(t *testing.T) {
	loc, err := NewLocation("Library", 12.837900, 80.137100, "Knowledge Plaza", 11)
	require.NoError(t, err)

	require.NoError(t, loc.SetLatitude(-90))
	require.NoError(t, loc.SetLongitude(180))
	assert.Error(t, loc.SetLatitude(90.0001))
	assert.Error(t, loc.SetName(""))
	// failed setter leaves the previous value
	assert.Equal(t, "Library", loc.Name())
	assert.Equal(t, -90.0, loc.Latitude())
}

func TestDistanceToSymmetric(t *testing.T) {
	a, err := NewLocation("Main Gate", 12.839500, 80.136500, "", 0)
	require.NoError(t, err)
	b, err := NewLocation("Auditorium", 12.838500, 80.136500, "", 9)
	require.NoError(t, err)

	assert.InDelta(t, a.DistanceTo(b), b.DistanceTo(a), 1e-9)
	assert.InDelta(t, 111.19, a.DistanceTo(b), 0.5)
	assert.InDelta(t, 0, a.DistanceTo(a), 1e-9)
}
