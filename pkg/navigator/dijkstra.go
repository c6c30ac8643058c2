package navigator

import (
	"math"

	"campusnav/pkg/datastructure"
	"campusnav/pkg/server"
	"campusnav/pkg/util"
)

// dijkstraShortestPath runs single-source Dijkstra over the id-keyed campus
// graph from start to end and returns the reconstructed path with its total
// distance set to the algorithm optimum.
//
// Classic min-heap variant without decrease-key: improved distances are pushed
// as fresh queue entries and superseded ones are skipped through the visited
// check when popped. Extraction of the destination is final because edge
// weights are non-negative, so the loop exits early there.
func (nv *Navigator) dijkstraShortestPath(start, end *datastructure.Location) (*datastructure.Path, error) {
	dist := make(map[int]float64)
	previous := make(map[int]int)
	visited := make(map[int]struct{})

	for _, id := range nv.graph.AllNodes() {
		dist[id] = math.Inf(1)
	}
	dist[start.ID()] = 0.0

	pq := datastructure.NewMinHeap[int]()
	pq.Insert(datastructure.NewPriorityQueueNode(0.0, start.ID()))

	for pq.Size() != 0 {
		current, _ := pq.ExtractMin()
		currentID := current.Item

		if _, ok := visited[currentID]; ok {
			continue
		}
		visited[currentID] = struct{}{}

		if currentID == end.ID() {
			break
		}

		for _, edge := range nv.graph.Neighbors(currentID) {
			tentative := dist[currentID] + edge.Weight
			if tentative < dist[edge.To] {
				dist[edge.To] = tentative
				previous[edge.To] = currentID
				pq.Insert(datastructure.NewPriorityQueueNode(tentative, edge.To))
			}
		}
	}

	if math.IsInf(dist[end.ID()], 1) {
		return nil, server.NewErrorf(server.ErrPathNotFound,
			"no path exists between %s and %s", start.Name(), end.Name())
	}

	return nv.reconstructPath(start, end, previous, dist[end.ID()])
}

// reconstructPath walks predecessor links backward from end to start. A break
// in the chain cannot happen once the destination's distance is finite; it is
// surfaced as an internal error rather than a user-facing one.
func (nv *Navigator) reconstructPath(start, end *datastructure.Location,
	previous map[int]int, totalDist float64) (*datastructure.Path, error) {

	reverseIDs := make([]int, 0)
	currentID := end.ID()
	for currentID != start.ID() {
		reverseIDs = append(reverseIDs, currentID)
		prevID, ok := previous[currentID]
		if !ok {
			return nil, server.NewErrorf(server.ErrInternalServerError,
				"path reconstruction failed: broken predecessor chain at node %d", currentID)
		}
		currentID = prevID
	}
	reverseIDs = append(reverseIDs, start.ID())

	path := datastructure.NewPath()
	for _, id := range util.ReverseG(reverseIDs) {
		loc, ok := nv.locationByID[id]
		if !ok {
			return nil, server.NewErrorf(server.ErrInternalServerError,
				"path reconstruction failed: unknown node %d", id)
		}
		if err := path.Append(loc); err != nil {
			return nil, err
		}
	}

	// install the algorithm optimum; edge weights are not necessarily pure
	// geographic distances
	if err := path.SetTotalDistance(totalDist); err != nil {
		return nil, err
	}
	return path, nil
}
