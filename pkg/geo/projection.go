package geo

import (
	"github.com/golang/geo/s2"
)

// ProjectPointToLineCoord projects the snap coordinate onto the great-circle
// segment between segStart and segEnd and returns the projected coordinate.
func ProjectPointToLineCoord(segStart, segEnd, snap Coordinate) Coordinate {
	segStartS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(segStart.Lat, segStart.Lon))
	segEndS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(segEnd.Lat, segEnd.Lon))
	snapS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(snap.Lat, snap.Lon))
	projection := s2.Project(snapS2, segStartS2, segEndS2)
	projectLatLng := s2.LatLngFromPoint(projection)
	return Coordinate{Lat: projectLatLng.Lat.Degrees(), Lon: projectLatLng.Lng.Degrees()}
}
