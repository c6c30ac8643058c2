package datastructure

import (
	"campusnav/pkg/geo"
	"campusnav/pkg/server"
)

// Location is a named geolocated campus point. Identity is the integer id,
// assigned once at creation and stable for the lifetime of the dataset.
type Location struct {
	name        string
	description string
	lat         float64
	lon         float64
	id          int
}

func NewLocation(name string, lat, lon float64, description string, id int) (*Location, error) {
	loc := &Location{description: description, id: id}
	if err := loc.SetName(name); err != nil {
		return nil, err
	}
	if err := loc.SetLatitude(lat); err != nil {
		return nil, err
	}
	if err := loc.SetLongitude(lon); err != nil {
		return nil, err
	}
	return loc, nil
}

func (l *Location) Name() string {
	return l.name
}

func (l *Location) Latitude() float64 {
	return l.lat
}

func (l *Location) Longitude() float64 {
	return l.lon
}

func (l *Location) Description() string {
	return l.description
}

func (l *Location) ID() int {
	return l.id
}

func (l *Location) Coordinate() geo.Coordinate {
	return geo.NewCoordinate(l.lat, l.lon)
}

func (l *Location) SetName(name string) error {
	if name == "" {
		return server.NewErrorf(server.ErrInvalidArgument, "location name cannot be empty")
	}
	l.name = name
	return nil
}

func (l *Location) SetLatitude(lat float64) error {
	if !geo.ValidLatitude(lat) {
		return server.NewErrorf(server.ErrInvalidArgument, "latitude must be between -90 and 90 degrees, got %f", lat)
	}
	l.lat = lat
	return nil
}

func (l *Location) SetLongitude(lon float64) error {
	if !geo.ValidLongitude(lon) {
		return server.NewErrorf(server.ErrInvalidArgument, "longitude must be between -180 and 180 degrees, got %f", lon)
	}
	l.lon = lon
	return nil
}

func (l *Location) SetDescription(description string) {
	l.description = description
}

// DistanceTo returns the great-circle distance to other in meters.
func (l *Location) DistanceTo(other *Location) float64 {
	return geo.CalculateHaversineDistance(l.lat, l.lon, other.lat, other.lon)
}
