// Console walk-through of the routing core: lists the campus dataset, routes
// between buildings in both modes, chains waypoints and shows the typed
// failure cases.
package main

import (
	"fmt"
	"log"

	"campusnav/pkg/campusdata"
	"campusnav/pkg/datastructure"
	"campusnav/pkg/navigator"
)

func main() {
	nv, err := campusdata.BuildNavigator()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== IIITDM Kancheepuram campus navigator ===")
	fmt.Printf("\n%d buildings:\n", len(campusdata.Buildings))
	for _, loc := range nv.GetAllLocations() {
		fmt.Printf("  [%2d] %-22s (%.6f, %.6f)  %s\n",
			loc.ID(), loc.Name(), loc.Latitude(), loc.Longitude(), loc.Description())
	}

	fmt.Println("\n--- shortest route: Main Gate -> Mess ---")
	path, err := nv.FindPathByName("Main Gate", "Mess")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(path)

	walkTime, err := nv.GetEstimatedTime()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%c %s: %.1f min\n", nv.GetNavigationMode().Icon(), nv.GetNavigationMode().Name(), walkTime)

	if err := nv.SetNavigationMode(navigator.NewCyclingMode()); err != nil {
		log.Fatal(err)
	}
	cycleTime, err := nv.GetEstimatedTime()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%c %s: %.1f min\n", nv.GetNavigationMode().Icon(), nv.GetNavigationMode().Name(), cycleTime)

	fmt.Println("\n--- via route: Main Gate -> Mess through Sports Complex ---")
	start, err := nv.GetLocationByName("Main Gate")
	if err != nil {
		log.Fatal(err)
	}
	end, err := nv.GetLocationByName("Mess")
	if err != nil {
		log.Fatal(err)
	}
	sports, err := nv.GetLocationByName("Sports Complex")
	if err != nil {
		log.Fatal(err)
	}
	viaPath, err := nv.FindPathVia(start, end, []*datastructure.Location{sports})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(viaPath)

	fmt.Println("\n--- failure cases ---")
	if _, err := nv.FindPathByName("Main Gate", "Clock Tower"); err != nil {
		fmt.Printf("unknown building: %v\n", err)
	}
	if _, err := nv.FindPathVia(start, end, nil); err == nil {
		fmt.Println("empty via list behaves like the plain route")
	}
	if _, err := nv.FindPathVia(start, end, []*datastructure.Location{start}); err != nil {
		fmt.Printf("via equals start: %v\n", err)
	}
}
