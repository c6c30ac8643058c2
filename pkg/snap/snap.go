// Package snap answers "where am I on campus": nearest-building lookup
// through an R-tree over the location set, and projection of an arbitrary
// coordinate onto the nearest walkway.
package snap

import (
	"math"

	"campusnav/pkg/datastructure"
	"campusnav/pkg/geo"
	"campusnav/pkg/server"

	"github.com/dhconnelly/rtreego"
)

const (
	// degenerate point rects need a tiny extent for the r-tree
	pointExtent = 1e-7
)

// LocationEntry wraps a location for r-tree storage.
type LocationEntry struct {
	Location *datastructure.Location
	bbox     rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *LocationEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// LocationIndex is a read-only spatial index over the campus locations.
// Queries use planar lon/lat degrees, which is accurate enough over a
// campus-sized extent.
type LocationIndex struct {
	tree *rtreego.Rtree
}

func NewLocationIndex(locations []*datastructure.Location) (*LocationIndex, error) {
	tree := rtreego.NewTree(2, 2, 8)
	for _, loc := range locations {
		if loc == nil {
			return nil, server.NewErrorf(server.ErrInvalidArgument, "nil location in index input")
		}
		bbox, err := rtreego.NewRect(
			rtreego.Point{loc.Longitude(), loc.Latitude()},
			[]float64{pointExtent, pointExtent},
		)
		if err != nil {
			return nil, server.WrapErrorf(err, server.ErrInvalidArgument, "building r-tree rect for %s", loc.Name())
		}
		tree.Insert(&LocationEntry{Location: loc, bbox: bbox})
	}
	return &LocationIndex{tree: tree}, nil
}

// Nearest returns up to k locations closest to the coordinate, nearest first.
func (idx *LocationIndex) Nearest(lat, lon float64, k int) ([]*datastructure.Location, error) {
	if !geo.ValidLatitude(lat) || !geo.ValidLongitude(lon) {
		return nil, server.NewErrorf(server.ErrInvalidArgument, "coordinate (%f, %f) out of range", lat, lon)
	}
	if k <= 0 {
		return nil, server.NewErrorf(server.ErrInvalidArgument, "k must be positive, got %d", k)
	}

	results := idx.tree.NearestNeighbors(k, rtreego.Point{lon, lat})
	locations := make([]*datastructure.Location, 0, len(results))
	for _, item := range results {
		if item == nil {
			break
		}
		entry := item.(*LocationEntry)
		locations = append(locations, entry.Location)
	}
	if len(locations) == 0 {
		return nil, server.NewErrorf(server.ErrNotFound, "no locations indexed")
	}
	return locations, nil
}

// NearestLocation returns the single closest location.
func (idx *LocationIndex) NearestLocation(lat, lon float64) (*datastructure.Location, error) {
	nearest, err := idx.Nearest(lat, lon, 1)
	if err != nil {
		return nil, err
	}
	return nearest[0], nil
}

// WalkwaySnap is the result of projecting a coordinate onto the walkway
// network: the projected point on the nearest walkway segment and the nearer
// of the segment's two endpoint locations.
type WalkwaySnap struct {
	Entry     *datastructure.Location
	Projected geo.Coordinate
	DistanceM float64
}

// SnapToWalkway projects the coordinate onto every graph edge segment and
// keeps the closest projection. Linear in the edge count, fine at campus
// scale.
func SnapToWalkway(graph *datastructure.Graph[int], byID map[int]*datastructure.Location,
	lat, lon float64) (*WalkwaySnap, error) {

	if !geo.ValidLatitude(lat) || !geo.ValidLongitude(lon) {
		return nil, server.NewErrorf(server.ErrInvalidArgument, "coordinate (%f, %f) out of range", lat, lon)
	}

	query := geo.NewCoordinate(lat, lon)
	best := &WalkwaySnap{DistanceM: math.Inf(1)}

	for _, fromID := range graph.AllNodes() {
		from, ok := byID[fromID]
		if !ok {
			continue
		}
		for _, edge := range graph.Neighbors(fromID) {
			to, ok := byID[edge.To]
			if !ok {
				continue
			}
			projected := geo.ProjectPointToLineCoord(from.Coordinate(), to.Coordinate(), query)
			dist := geo.CalculateHaversineDistance(lat, lon, projected.Lat, projected.Lon)
			if dist >= best.DistanceM {
				continue
			}
			entry := from
			if geo.CalculateHaversineDistance(projected.Lat, projected.Lon, to.Latitude(), to.Longitude()) <
				geo.CalculateHaversineDistance(projected.Lat, projected.Lon, from.Latitude(), from.Longitude()) {
				entry = to
			}
			best = &WalkwaySnap{Entry: entry, Projected: projected, DistanceM: dist}
		}
	}

	if best.Entry == nil {
		return nil, server.NewErrorf(server.ErrNotFound, "walkway network is empty")
	}
	return best, nil
}
