package validate

import (
	"fmt"

	"github.com/MOH131185/genarch/plan"
)

// exteriorNode is the synthetic graph node reached through entrance doors.
const exteriorNode = "EXTERIOR"

// Connectivity validates circulation: every room must be reachable from
// the start room (entrance room, then a hallway, then the first room)
// through internal doors. Rooms cut off from the circulation graph are
// reported in plan order. A plan with zero rooms is trivially connected.
func Connectivity(fp *plan.FloorPlan) Report {
	if len(fp.Rooms) == 0 {
		return report(nil)
	}

	graph := doorGraph(fp)
	start := startRoom(fp)
	reached := reachable(graph, start.ID)

	var diags []string
	for _, r := range fp.Rooms {
		if !reached[r.ID] {
			diags = append(diags, fmt.Sprintf(
				"room %q unreachable from %q", r.Name, start.Name))
		}
	}
	if len(fp.OpeningsByType(plan.Entrance)) == 0 {
		diags = append(diags, "plan has no entrance door")
	}
	return report(diags)
}

// doorGraph builds the circulation graph: one node per room plus the
// exterior node, edges through door-type openings on each hosting wall.
func doorGraph(fp *plan.FloorPlan) map[string][]string {
	graph := make(map[string][]string, len(fp.Rooms)+1)
	for _, w := range fp.Walls {
		for _, o := range w.Openings {
			if !o.Type.IsDoor() {
				continue
			}
			switch len(w.RoomIDs) {
			case 2:
				addEdge(graph, w.RoomIDs[0], w.RoomIDs[1])
			case 1:
				addEdge(graph, w.RoomIDs[0], exteriorNode)
			}
		}
	}
	return graph
}

func addEdge(graph map[string][]string, a, b string) {
	graph[a] = append(graph[a], b)
	graph[b] = append(graph[b], a)
}

// startRoom picks the circulation origin: the entrance room if one is
// classified, otherwise a corridor, otherwise the first room.
func startRoom(fp *plan.FloorPlan) *plan.Room {
	for _, r := range fp.Rooms {
		if roomClass(r) == plan.ClassEntrance {
			return r
		}
	}
	for _, r := range fp.Rooms {
		if roomClass(r) == plan.ClassCorridor {
			return r
		}
	}
	return fp.Rooms[0]
}

// reachable runs a breadth-first traversal from start over the door graph.
// The exterior node is marked reached but never expanded: two rooms that
// each open only to the outside are not connected through it.
func reachable(graph map[string][]string, start string) map[string]bool {
	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == exteriorNode {
			continue
		}
		for _, next := range graph[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}

// roomClass returns the room's classification, deriving it from the name
// when the materializer left it unset.
func roomClass(r *plan.Room) plan.RoomClass {
	if r.Class != plan.ClassOther {
		return r.Class
	}
	return plan.ClassifyRoom(r.Name)
}
