package datastructure

import (
	"github.com/twpayne/go-polyline"
)

// RenderPath encodes the path's location coordinates as a google encoded
// polyline for map display.
func RenderPath(path *Path) string {
	coords := make([][]float64, 0, path.Size())
	for _, loc := range path.Locations() {
		coords = append(coords, []float64{loc.Latitude(), loc.Longitude()})
	}
	return string(polyline.EncodeCoords(coords))
}
