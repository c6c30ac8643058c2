package service

import (
	"context"
	"sync"

	"campusnav/pkg/datastructure"
	"campusnav/pkg/navigator"
	"campusnav/pkg/server"
	"campusnav/pkg/snap"
)

// CampusNavigator is the query surface the service needs from the routing
// core.
type CampusNavigator interface {
	FindPathVia(start, end *datastructure.Location, vias []*datastructure.Location) (*datastructure.Path, error)
	GetLocationByName(name string) (*datastructure.Location, error)
	GetAllLocations() []*datastructure.Location
	GetGraph() *datastructure.Graph[int]
	SetNavigationMode(mode navigator.NavigationMode) error
	GetEstimatedTime() (float64, error)
}

// NavigationService mediates between the REST layer and the single-threaded
// routing core: the navigator's last-path cache and active mode are mutable,
// so route computation is serialized with a mutex instead of promising a
// concurrent core.
type NavigationService struct {
	mu    sync.Mutex
	nav   CampusNavigator
	index *snap.LocationIndex
	byID  map[int]*datastructure.Location
}

func NewNavigationService(nav CampusNavigator) (*NavigationService, error) {
	locs := nav.GetAllLocations()
	index, err := snap.NewLocationIndex(locs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*datastructure.Location, len(locs))
	for _, loc := range locs {
		byID[loc.ID()] = loc
	}
	return &NavigationService{nav: nav, index: index, byID: byID}, nil
}

type RouteResult struct {
	Path       *datastructure.Path
	Polyline   string
	DistanceM  float64
	EtaMinutes float64
	Mode       string
}

// Route resolves the named endpoints and waypoints, computes the shortest
// route in the requested mode and returns it with the time estimate and an
// encoded polyline of the route geometry.
func (uc *NavigationService) Route(ctx context.Context, fromName, toName string,
	viaNames []string, modeName string) (*RouteResult, error) {

	mode := navigator.ModeByName(modeName)
	if mode == nil {
		return nil, server.NewErrorf(server.ErrInvalidArgument, "unknown navigation mode %q", modeName)
	}

	start, err := uc.nav.GetLocationByName(fromName)
	if err != nil {
		return nil, err
	}
	end, err := uc.nav.GetLocationByName(toName)
	if err != nil {
		return nil, err
	}
	vias := make([]*datastructure.Location, 0, len(viaNames))
	for _, name := range viaNames {
		via, err := uc.nav.GetLocationByName(name)
		if err != nil {
			return nil, err
		}
		vias = append(vias, via)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.nav.SetNavigationMode(mode); err != nil {
		return nil, err
	}
	path, err := uc.nav.FindPathVia(start, end, vias)
	if err != nil {
		return nil, err
	}
	eta, err := uc.nav.GetEstimatedTime()
	if err != nil {
		return nil, err
	}

	return &RouteResult{
		Path:       path,
		Polyline:   datastructure.RenderPath(path),
		DistanceM:  path.TotalDistance(),
		EtaMinutes: eta,
		Mode:       mode.Name(),
	}, nil
}

func (uc *NavigationService) Locations(ctx context.Context) []*datastructure.Location {
	return uc.nav.GetAllLocations()
}

type NearestResult struct {
	Locations []*datastructure.Location
	Walkway   *snap.WalkwaySnap
}

// Nearest returns the k closest locations to the coordinate plus the walkway
// snap of the query point.
func (uc *NavigationService) Nearest(ctx context.Context, lat, lon float64, k int) (*NearestResult, error) {
	locations, err := uc.index.Nearest(lat, lon, k)
	if err != nil {
		return nil, err
	}
	walkway, err := snap.SnapToWalkway(uc.nav.GetGraph(), uc.byID, lat, lon)
	if err != nil {
		return nil, err
	}
	return &NearestResult{Locations: locations, Walkway: walkway}, nil
}
