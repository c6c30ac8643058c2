package navigator

import (
	"campusnav/pkg/datastructure"
	"campusnav/pkg/server"
)

// Navigator owns the campus graph and answers shortest-route queries over it.
// The graph is keyed by location id; the id→location table resolves nodes back
// to their records during path reconstruction.
//
// Build once, query many: after InitializeGraph the graph is treated as
// read-only. The last-path cache and the active mode are per-instance mutable
// state, so a Navigator must not be shared between goroutines without outside
// synchronization.
type Navigator struct {
	graph        *datastructure.Graph[int]
	allLocations []*datastructure.Location
	locationByID map[int]*datastructure.Location
	currentMode  NavigationMode
	lastPath     *datastructure.Path
}

func NewNavigator() *Navigator {
	return &Navigator{
		graph:        datastructure.NewGraph[int](),
		allLocations: make([]*datastructure.Location, 0),
		locationByID: make(map[int]*datastructure.Location),
		currentMode:  NewWalkingMode(),
	}
}

// InitializeGraph builds the campus graph: every location becomes a node and
// each (i,j) index pair an undirected edge with the matching weight.
func (nv *Navigator) InitializeGraph(locations []*datastructure.Location,
	connections [][2]int, weights []float64) error {

	if len(connections) != len(weights) {
		return server.NewErrorf(server.ErrInvalidArgument,
			"got %d connections but %d weights", len(connections), len(weights))
	}

	nv.allLocations = locations
	nv.locationByID = make(map[int]*datastructure.Location, len(locations))
	for _, loc := range locations {
		if loc == nil {
			return server.NewErrorf(server.ErrInvalidArgument, "nil location in graph input")
		}
		nv.locationByID[loc.ID()] = loc
		nv.graph.AddNode(loc.ID())
	}

	for i, conn := range connections {
		from, to := conn[0], conn[1]
		if from < 0 || from >= len(locations) || to < 0 || to >= len(locations) {
			return server.NewErrorf(server.ErrInvalidArgument,
				"connection %d references location index out of bounds: (%d,%d)", i, from, to)
		}
		nv.graph.AddUndirectedEdge(locations[from].ID(), locations[to].ID(), weights[i])
	}
	return nil
}

// FindPath returns the shortest path between start and end and caches it for
// time-estimate queries. A failed call leaves the previous cached path in
// place, so callers must check the error instead of trusting cached state.
func (nv *Navigator) FindPath(start, end *datastructure.Location) (*datastructure.Path, error) {
	if start == nil || end == nil {
		return nil, server.NewErrorf(server.ErrInvalidArgument, "start or end location is nil")
	}
	if !nv.graph.HasNode(start.ID()) || !nv.graph.HasNode(end.ID()) {
		return nil, server.NewErrorf(server.ErrInvalidArgument, "location not found in graph")
	}

	path, err := nv.dijkstraShortestPath(start, end)
	if err != nil {
		return nil, err
	}
	nv.lastPath = path
	return path, nil
}

// FindPathByName resolves both endpoints through GetLocationByName first.
func (nv *Navigator) FindPathByName(startName, endName string) (*datastructure.Path, error) {
	if startName == "" || endName == "" {
		return nil, server.NewErrorf(server.ErrInvalidArgument, "location names cannot be empty")
	}
	start, err := nv.GetLocationByName(startName)
	if err != nil {
		return nil, err
	}
	end, err := nv.GetLocationByName(endName)
	if err != nil {
		return nil, err
	}
	return nv.FindPath(start, end)
}

// FindPathVia routes start→end through the given ordered waypoints. Each leg
// is an independent shortest-path query; legs are stitched with Combine and
// the final cached distance is re-set to the sum of per-leg optima. The
// override matters: Combine re-derives distance geometrically at the join
// points, which drifts from the true shortest-path sum whenever edge weights
// differ from raw geometry.
func (nv *Navigator) FindPathVia(start, end *datastructure.Location,
	vias []*datastructure.Location) (*datastructure.Path, error) {

	if start == nil || end == nil {
		return nil, server.NewErrorf(server.ErrInvalidArgument, "start or end location is nil")
	}
	if !nv.graph.HasNode(start.ID()) || !nv.graph.HasNode(end.ID()) {
		return nil, server.NewErrorf(server.ErrInvalidArgument, "location not found in graph")
	}
	for _, via := range vias {
		if via == nil {
			return nil, server.NewErrorf(server.ErrInvalidArgument, "via location is nil")
		}
		if via.ID() == start.ID() || via.ID() == end.ID() {
			return nil, server.NewErrorf(server.ErrInvalidArgument,
				"via %s cannot be the start or end of the route", via.Name())
		}
		if !nv.graph.HasNode(via.ID()) {
			return nil, server.NewErrorf(server.ErrInvalidArgument,
				"via %s not found in graph", via.Name())
		}
	}
	if len(vias) == 0 {
		return nv.FindPath(start, end)
	}

	stops := make([]*datastructure.Location, 0, len(vias)+2)
	stops = append(stops, start)
	stops = append(stops, vias...)
	stops = append(stops, end)

	var combined *datastructure.Path
	totalDist := 0.0
	for i := 0; i+1 < len(stops); i++ {
		leg, err := nv.dijkstraShortestPath(stops[i], stops[i+1])
		if err != nil {
			return nil, err
		}
		totalDist += leg.TotalDistance()
		if combined == nil {
			combined = leg
			continue
		}
		combined, err = combined.Combine(leg)
		if err != nil {
			return nil, err
		}
	}

	if err := combined.SetTotalDistance(totalDist); err != nil {
		return nil, err
	}
	nv.lastPath = combined
	return combined, nil
}

func (nv *Navigator) SetNavigationMode(mode NavigationMode) error {
	if mode == nil {
		return server.NewErrorf(server.ErrInvalidArgument, "navigation mode cannot be nil")
	}
	nv.currentMode = mode
	return nil
}

func (nv *Navigator) GetNavigationMode() NavigationMode {
	return nv.currentMode
}

// GetEstimatedTime applies the active mode to the last computed path, 0 when
// nothing has been routed yet.
func (nv *Navigator) GetEstimatedTime() (float64, error) {
	if nv.lastPath == nil || nv.lastPath.Empty() {
		return 0, nil
	}
	if nv.currentMode == nil {
		// unreachable: walking is installed at construction
		return 0, server.NewErrorf(server.ErrInternalServerError, "navigation mode not set")
	}
	return nv.currentMode.CalculateTime(nv.lastPath.TotalDistance()), nil
}

// GetLocationByName is a linear scan, fine at campus scale.
func (nv *Navigator) GetLocationByName(name string) (*datastructure.Location, error) {
	for _, loc := range nv.allLocations {
		if loc.Name() == name {
			return loc, nil
		}
	}
	return nil, server.NewErrorf(server.ErrNotFound, "location %q not found", name)
}

func (nv *Navigator) GetAllLocations() []*datastructure.Location {
	locs := make([]*datastructure.Location, len(nv.allLocations))
	copy(locs, nv.allLocations)
	return locs
}

// GetGraph exposes the graph for read-only neighbor inspection by a renderer.
func (nv *Navigator) GetGraph() *datastructure.Graph[int] {
	return nv.graph
}

func (nv *Navigator) GetLastPath() *datastructure.Path {
	return nv.lastPath
}
