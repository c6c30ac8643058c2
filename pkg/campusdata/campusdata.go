// Package campusdata carries the static IIITDM Kancheepuram campus dataset:
// building records with GPS coordinates and the walkway connections between
// them, plus the assembly of a ready-to-query Navigator from that data.
package campusdata

import (
	"campusnav/pkg/datastructure"
	"campusnav/pkg/navigator"
	"campusnav/pkg/server"
)

type BuildingInfo struct {
	Name        string
	Latitude    float64
	Longitude   float64
	Description string
	Category    string // Academic, Hostel, Amenity, Administrative, Entrance
}

// PathConnection is a bidirectional walkway between two buildings.
// DistanceMeters <= 0 means "derive from the haversine distance between the
// endpoints" rather than a zero-length walkway; the sentinel is resolved here
// while assembling edge data, never inside the router.
type PathConnection struct {
	From           string
	To             string
	DistanceMeters float64
}

// Real GPS coordinates of IIITDM Kancheepuram buildings.
var Buildings = []BuildingInfo{
	{"Main Gate", 12.839500, 80.136500, "Main entrance to the campus", "Entrance"},
	{"Academic Block", 12.838200, 80.137400, "Main academic building with classrooms", "Academic"},
	{"Admin Block", 12.838000, 80.136800, "Administrative offices", "Administrative"},
	{"Lab Complex", 12.837700, 80.137600, "Laboratory facilities", "Academic"},
	{"Hostel A", 12.837200, 80.136500, "Student hostel block A", "Hostel"},
	{"Hostel B", 12.836800, 80.136800, "Student hostel block B", "Hostel"},
	{"Hostel C", 12.836500, 80.137200, "Student hostel block C", "Hostel"},
	{"Hostel D", 12.836200, 80.137600, "Student hostel block D", "Hostel"},
	{"Mess", 12.837000, 80.138000, "Dining hall and cafeteria", "Amenity"},
	{"Auditorium", 12.838500, 80.136500, "Main auditorium for events", "Amenity"},
	{"Sports Complex", 12.836000, 80.136800, "Sports facilities including courts and grounds", "Amenity"},
	{"Library", 12.837900, 80.137100, "Knowledge Plaza - Central library", "Academic"},
	{"Lecture Hall Complex", 12.838300, 80.137000, "Additional lecture halls", "Academic"},
}

// Walkway connections along actual campus paths, distances measured along the
// ground in meters.
var Paths = []PathConnection{
	{"Main Gate", "Auditorium", 111.19},
	{"Main Gate", "Admin Block", 169.93},
	{"Auditorium", "Academic Block", 103.12},
	{"Auditorium", "Lecture Hall Complex", 58.59},
	{"Admin Block", "Academic Block", 68.75},
	{"Academic Block", "Library", 46.59},
	{"Academic Block", "Lab Complex", 59.68},
	{"Library", "Lecture Hall Complex", 45.78},
	{"Lab Complex", "Mess", 89.10},
	{"Hostel A", "Admin Block", 94.72},
	{"Hostel A", "Hostel B", 55.10},
	{"Hostel B", "Hostel C", 54.71},
	{"Hostel C", "Hostel D", 54.71},
	{"Hostel D", "Mess", 98.96},
	{"Hostel C", "Sports Complex", 70.51},
	{"Hostel A", "Sports Complex", 137.34},
	{"Mess", "Lab Complex", 89.10},
	{"Sports Complex", "Hostel B", 88.96},
}

// BuildingIndex returns the index of the named building, -1 when absent.
func BuildingIndex(name string) int {
	for i, b := range Buildings {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// Locations constructs the location records; ids are the table indices.
func Locations() ([]*datastructure.Location, error) {
	locs := make([]*datastructure.Location, 0, len(Buildings))
	for i, b := range Buildings {
		loc, err := datastructure.NewLocation(b.Name, b.Latitude, b.Longitude, b.Description, i)
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

// EdgeData resolves the named connections into index pairs and weights,
// substituting the haversine distance for sentinel (<= 0) weights.
func EdgeData(locs []*datastructure.Location, conns []PathConnection) ([][2]int, []float64, error) {
	pairs := make([][2]int, 0, len(conns))
	weights := make([]float64, 0, len(conns))
	for _, conn := range conns {
		from := BuildingIndex(conn.From)
		to := BuildingIndex(conn.To)
		if from < 0 || to < 0 {
			return nil, nil, server.NewErrorf(server.ErrNotFound,
				"walkway references unknown building: %s - %s", conn.From, conn.To)
		}
		weight := conn.DistanceMeters
		if weight <= 0 {
			weight = locs[from].DistanceTo(locs[to])
		}
		pairs = append(pairs, [2]int{from, to})
		weights = append(weights, weight)
	}
	return pairs, weights, nil
}

// BuildNavigator assembles the full campus navigator from the static tables.
func BuildNavigator() (*navigator.Navigator, error) {
	locs, err := Locations()
	if err != nil {
		return nil, err
	}
	pairs, weights, err := EdgeData(locs, Paths)
	if err != nil {
		return nil, err
	}
	nv := navigator.NewNavigator()
	if err := nv.InitializeGraph(locs, pairs, weights); err != nil {
		return nil, err
	}
	return nv, nil
}
