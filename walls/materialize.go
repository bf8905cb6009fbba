package walls

import (
	"fmt"
	"math"

	"github.com/MOH131185/genarch/bsp"
	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
)

// Materialize converts assigned regions into immutable Rooms and derives
// the full wall set from the envelope boundary and shared region edges.
// Bare regions (no room assignment) produce no rooms and no walls.
// Complexity: O(r² · e²) over rooms and polygon edges.
func Materialize(regions []bsp.Region, c *plan.Constraints, ids *plan.IDGen, floor int) ([]*plan.Room, []*plan.Wall) {
	rooms := buildRooms(regions, ids, floor)
	ws := exteriorWalls(rooms, c, ids, floor)
	ws = append(ws, interiorWalls(rooms, c, ids, floor)...)
	attachWalls(rooms, ws)
	return rooms, ws
}

// buildRooms creates a Room per assigned region, in region order, with the
// classification computed once from the room name.
func buildRooms(regions []bsp.Region, ids *plan.IDGen, floor int) []*plan.Room {
	var rooms []*plan.Room
	for _, reg := range regions {
		if reg.Spec == nil {
			continue
		}
		rooms = append(rooms, &plan.Room{
			ID:         ids.RoomID(floor),
			Name:       reg.Spec.Name,
			Polygon:    reg.Polygon,
			Area:       geom.Area(reg.Polygon),
			FloorIndex: floor,
			Class:      plan.ClassifyRoom(reg.Spec.Name),
		})
	}
	return rooms
}

// exteriorWalls emits one wall per envelope edge, in envelope order.
func exteriorWalls(rooms []*plan.Room, c *plan.Constraints, ids *plan.IDGen, floor int) []*plan.Wall {
	var out []*plan.Wall
	env := c.Envelope
	for i := range env {
		start, end := env[i], env[(i+1)%len(env)]
		out = append(out, &plan.Wall{
			ID:        ids.WallID(floor, true),
			Start:     start,
			End:       end,
			Thickness: c.ExternalWallThickness,
			Exterior:  true,
			Facade:    FacadeOf(start, end),
			RoomIDs:   roomsOnEdge(rooms, start, end),
			Openings:  []*plan.Opening{},
		})
	}
	return out
}

// interiorWalls emits one wall per unique shared edge between two rooms.
func interiorWalls(rooms []*plan.Room, c *plan.Constraints, ids *plan.IDGen, floor int) []*plan.Wall {
	var out []*plan.Wall
	seen := make(map[string]bool)
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			start, end, ok := geom.SharedEdge(rooms[i].Polygon, rooms[j].Polygon, geom.EdgeTolerance)
			if !ok {
				continue
			}
			key := edgeKey(start, end)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, &plan.Wall{
				ID:        ids.WallID(floor, false),
				Start:     start,
				End:       end,
				Thickness: c.InternalWallThickness,
				Exterior:  false,
				RoomIDs:   []string{rooms[i].ID, rooms[j].ID},
				Openings:  []*plan.Opening{},
			})
		}
	}
	return out
}

// FacadeOf computes the cardinal facade of an exterior edge from its
// outward normal. For a clockwise envelope the interior lies on the right
// of start→end, so the outward normal is (dy, -dx); the dominant component
// selects E/W versus N/S, its sign the specific direction.
func FacadeOf(start, end geom.Point) plan.Facade {
	dx, dy := end.X-start.X, end.Y-start.Y
	nx, ny := dy, -dx
	if math.Abs(nx) > math.Abs(ny) {
		if nx > 0 {
			return plan.FacadeEast
		}
		return plan.FacadeWest
	}
	if ny > 0 {
		return plan.FacadeNorth
	}
	return plan.FacadeSouth
}

// roomsOnEdge returns ids of rooms whose boundary contains the edge,
// matched endpoint-wise within the engine tolerance.
func roomsOnEdge(rooms []*plan.Room, start, end geom.Point) []string {
	var ids []string
	for _, room := range rooms {
		n := len(room.Polygon)
		for i := 0; i < n; i++ {
			a, b := room.Polygon[i], room.Polygon[(i+1)%n]
			if geom.EdgesMatch(start, end, a, b, geom.EdgeTolerance) {
				ids = append(ids, room.ID)
				break
			}
		}
	}
	return ids
}

// edgeKey builds an order-independent identity for an edge, rounded to
// millimeters so float drift does not split one physical wall in two.
func edgeKey(a, b geom.Point) string {
	ka := fmt.Sprintf("%.3f,%.3f", a.X, a.Y)
	kb := fmt.Sprintf("%.3f,%.3f", b.X, b.Y)
	if kb < ka {
		ka, kb = kb, ka
	}
	return ka + "|" + kb
}

// attachWalls records on every room the ids of its bounding walls.
func attachWalls(rooms []*plan.Room, ws []*plan.Wall) {
	for _, room := range rooms {
		for _, w := range ws {
			if w.BoundsRoom(room.ID) {
				room.WallIDs = append(room.WallIDs, w.ID)
			}
		}
	}
}
