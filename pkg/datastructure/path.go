package datastructure

import (
	"fmt"
	"strings"

	"campusnav/pkg/server"
)

// Path is an ordered sequence of locations with a cached running total
// distance in meters. Appends accumulate pairwise great-circle distances;
// SetTotalDistance overrides the cache with an externally computed optimum
// (edge weights need not be pure geographic distances) and the override is
// never re-derived from geometry.
type Path struct {
	locations     []*Location
	totalDistance float64
}

func NewPath() *Path {
	return &Path{locations: make([]*Location, 0)}
}

func NewPathFrom(start *Location) *Path {
	p := NewPath()
	if start != nil {
		p.locations = append(p.locations, start)
	}
	return p
}

func (p *Path) Empty() bool {
	return len(p.locations) == 0
}

func (p *Path) Size() int {
	return len(p.locations)
}

func (p *Path) At(index int) (*Location, error) {
	if index < 0 || index >= len(p.locations) {
		return nil, server.NewErrorf(server.ErrOutOfRange, "path index %d out of range [0,%d)", index, len(p.locations))
	}
	return p.locations[index], nil
}

func (p *Path) Locations() []*Location {
	locs := make([]*Location, len(p.locations))
	copy(locs, p.locations)
	return locs
}

func (p *Path) TotalDistance() float64 {
	return p.totalDistance
}

func (p *Path) SetTotalDistance(dist float64) error {
	if dist < 0 {
		return server.NewErrorf(server.ErrInvalidArgument, "distance cannot be negative")
	}
	p.totalDistance = dist
	return nil
}

// Append adds loc at the end; when the path is non-empty the great-circle
// distance from the current last location is added to the running total.
func (p *Path) Append(loc *Location) error {
	if loc == nil {
		return server.NewErrorf(server.ErrInvalidArgument, "cannot add nil location to path")
	}
	if len(p.locations) != 0 {
		last := p.locations[len(p.locations)-1]
		p.totalDistance += last.DistanceTo(loc)
	}
	p.locations = append(p.locations, loc)
	return nil
}

func (p *Path) Clear() {
	p.locations = p.locations[:0]
	p.totalDistance = 0
}

// Combine concatenates p and other into a fresh path. When the last location
// of p and the first of other share an id the duplicate join location is
// dropped. The result's total distance is re-accumulated with Append
// semantics, so it is geometric regardless of either operand's cached total;
// callers that carry an externally computed optimum must re-apply it with
// SetTotalDistance afterwards.
func (p *Path) Combine(other *Path) (*Path, error) {
	combined := NewPath()

	for _, loc := range p.locations {
		if combined.Empty() {
			combined.locations = append(combined.locations, loc)
			continue
		}
		if err := combined.Append(loc); err != nil {
			return nil, err
		}
	}

	startIndex := 0
	if !combined.Empty() && !other.Empty() &&
		combined.locations[len(combined.locations)-1].ID() == other.locations[0].ID() {
		startIndex = 1
	}

	for i := startIndex; i < len(other.locations); i++ {
		if combined.Empty() {
			combined.locations = append(combined.locations, other.locations[i])
			continue
		}
		if err := combined.Append(other.locations[i]); err != nil {
			return nil, err
		}
	}

	return combined, nil
}

// Equal reports whether both paths visit the same location ids in the same
// order. Cached distance is not part of equality.
func (p *Path) Equal(other *Path) bool {
	if len(p.locations) != len(other.locations) {
		return false
	}
	for i := range p.locations {
		if p.locations[i].ID() != other.locations[i].ID() {
			return false
		}
	}
	return true
}

// Less orders paths by cached total distance only.
func (p *Path) Less(other *Path) bool {
	return p.totalDistance < other.totalDistance
}

func (p *Path) Greater(other *Path) bool {
	return p.totalDistance > other.totalDistance
}

func (p *Path) String() string {
	names := make([]string, 0, len(p.locations))
	for _, loc := range p.locations {
		names = append(names, loc.Name())
	}
	return fmt.Sprintf("Path (%.2fm): %s", p.totalDistance, strings.Join(names, " -> "))
}
