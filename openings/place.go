package openings

import (
	"math"
	"sort"

	"github.com/MOH131185/genarch/plan"
)

// Placement clearances, in meters.
const (
	// DoorCornerClearance is the minimum distance from a door or entrance
	// edge to a wall corner.
	DoorCornerClearance = 0.2

	// WindowCornerClearance is the minimum distance from a window edge to
	// a wall corner.
	WindowCornerClearance = 0.4

	// OpeningSpacing is the minimum clear distance between two openings
	// on the same wall.
	OpeningSpacing = 0.6
)

// candidateOffsets are tried in order after the centered position fails,
// as normalized offsets from the target.
var candidateOffsets = []float64{0.1, 0.2, 0.3, -0.1, -0.2, -0.3}

// facadePriority orders window placement: south light first.
var facadePriority = map[plan.Facade]int{
	plan.FacadeSouth: 0,
	plan.FacadeEast:  1,
	plan.FacadeWest:  2,
	plan.FacadeNorth: 3,
}

// Place positions all openings for one floor: entrance first, then
// internal doors per adjacency requirement, then windows. Openings are
// attached to their host walls and returned in placement order. Rooms'
// ConnectedRooms lists are populated as doors land.
func Place(rooms []*plan.Room, ws []*plan.Wall, c *plan.Constraints, ids *plan.IDGen, floor int) []*plan.Opening {
	var out []*plan.Opening

	if o := placeEntrance(rooms, ws, c, ids, floor); o != nil {
		out = append(out, o)
	}
	out = append(out, placeInternalDoors(rooms, ws, c, ids, floor)...)
	out = append(out, placeWindows(rooms, ws, c, ids, floor)...)
	return out
}

// placeEntrance puts the entrance door on the configured facade. Wall
// choice prefers a facade wall bounding the entrance-classified room (or
// the first room when none is), falling back to any wall on the facade.
func placeEntrance(rooms []*plan.Room, ws []*plan.Wall, c *plan.Constraints, ids *plan.IDGen, floor int) *plan.Opening {
	if len(rooms) == 0 {
		return nil
	}
	entranceRoom := rooms[0]
	for _, r := range rooms {
		if r.Class == plan.ClassEntrance {
			entranceRoom = r
			break
		}
	}

	var wall *plan.Wall
	for _, w := range ws {
		if w.Exterior && w.Facade == c.EntranceFacade && w.BoundsRoom(entranceRoom.ID) {
			wall = w
			break
		}
	}
	if wall == nil {
		for _, w := range ws {
			if w.Exterior && w.Facade == c.EntranceFacade {
				wall = w
				break
			}
		}
	}
	if wall == nil {
		return nil
	}

	spec := c.Openings[plan.Entrance]
	pos := clampToCorners(wall, 0.5, spec.Width, DoorCornerClearance)

	o := &plan.Opening{
		ID:         ids.OpeningID(plan.Entrance, floor, c.EntranceFacade),
		Type:       plan.Entrance,
		WallID:     wall.ID,
		Position:   pos,
		Width:      spec.Width,
		Height:     spec.Height,
		SillHeight: spec.SillHeight,
		Facade:     wall.Facade,
		Center:     wall.PointAt(pos),
	}
	wall.Openings = append(wall.Openings, o)
	return o
}

// placeInternalDoors walks the room program in order and places one door
// per declared, still-unconnected adjacency pair on their shared interior
// wall. Already-connected pairs are skipped so no pair gets two doors.
func placeInternalDoors(rooms []*plan.Room, ws []*plan.Wall, c *plan.Constraints, ids *plan.IDGen, floor int) []*plan.Opening {
	var out []*plan.Opening
	connected := make(map[string]bool)

	for _, room := range rooms {
		spec := c.RoomSpecByName(room.Name)
		if spec == nil {
			continue
		}
		for _, adjName := range spec.Adjacency {
			key := pairKey(room.Name, adjName)
			if connected[key] {
				continue
			}
			adjRoom := roomByName(rooms, adjName)
			if adjRoom == nil {
				continue
			}
			wall := sharedInteriorWall(ws, room.ID, adjRoom.ID)
			if wall == nil {
				continue
			}
			door := placeOnWall(wall, plan.Door, c.Openings[plan.Door], DoorCornerClearance, ids, floor)
			if door == nil {
				continue
			}
			out = append(out, door)
			connected[key] = true
			room.ConnectedRooms = appendUnique(room.ConnectedRooms, adjRoom.ID)
			adjRoom.ConnectedRooms = appendUnique(adjRoom.ConnectedRooms, room.ID)
		}
	}
	return out
}

// placeWindows gives each daylight-needing room one window on its best
// exterior wall (facade priority S > E > W > N, longer walls first).
func placeWindows(rooms []*plan.Room, ws []*plan.Wall, c *plan.Constraints, ids *plan.IDGen, floor int) []*plan.Opening {
	var out []*plan.Opening

	for _, room := range rooms {
		spec := c.RoomSpecByName(room.Name)
		needs := (spec != nil && spec.ExteriorWall) || room.Class.Habitable()
		if !needs {
			continue
		}

		var ext []*plan.Wall
		for _, w := range ws {
			if w.Exterior && w.BoundsRoom(room.ID) {
				ext = append(ext, w)
			}
		}
		if len(ext) == 0 {
			continue
		}

		sort.SliceStable(ext, func(i, j int) bool {
			pi, pj := facadeRank(ext[i].Facade), facadeRank(ext[j].Facade)
			if pi != pj {
				return pi < pj
			}
			return ext[i].Length() > ext[j].Length()
		})

		win := placeOnWall(ext[0], plan.Window, c.Openings[plan.Window], WindowCornerClearance, ids, floor)
		if win != nil {
			out = append(out, win)
		}
	}
	return out
}

// placeOnWall runs the center-then-offset search for one opening and, on
// success, creates it and attaches it to the wall. Returns nil when no
// candidate position clears the constraints.
func placeOnWall(wall *plan.Wall, t plan.OpeningType, spec plan.OpeningSpec, corner float64, ids *plan.IDGen, floor int) *plan.Opening {
	pos, ok := findPosition(wall, 0.5, spec.Width, corner)
	if !ok {
		return nil
	}
	facade := plan.FacadeInterior
	if wall.Exterior {
		facade = wall.Facade
	}
	o := &plan.Opening{
		ID:         ids.OpeningID(t, floor, facade),
		Type:       t,
		WallID:     wall.ID,
		Position:   pos,
		Width:      spec.Width,
		Height:     spec.Height,
		SillHeight: spec.SillHeight,
		Facade:     facade,
		Center:     wall.PointAt(pos),
	}
	wall.Openings = append(wall.Openings, o)
	return o
}

// findPosition searches for a conflict-free normalized position near
// target: target itself first, then the fixed candidate offsets. ok is
// false when the wall cannot host the opening at all.
func findPosition(wall *plan.Wall, target, width, corner float64) (float64, bool) {
	length := wall.Length()
	if length <= 0 {
		return 0, false
	}
	half := width / 2 / length
	minPos := math.Max(corner/length, half)
	maxPos := math.Min(1-corner/length, 1-half)
	if minPos >= maxPos {
		return 0, false
	}

	if positionClear(wall, target, half, minPos, maxPos, length) {
		return target, true
	}
	for _, off := range candidateOffsets {
		pos := target + off
		if pos < minPos || pos > maxPos {
			continue
		}
		if positionClear(wall, pos, half, minPos, maxPos, length) {
			return pos, true
		}
	}
	return 0, false
}

// positionClear checks the bounds and the spacing interval against every
// opening already on the wall.
func positionClear(wall *plan.Wall, pos, half, minPos, maxPos, length float64) bool {
	if pos < minPos || pos > maxPos {
		return false
	}
	spacing := OpeningSpacing / length
	for _, existing := range wall.Openings {
		existingHalf := existing.Width / 2 / length
		if math.Abs(pos-existing.Position) < half+existingHalf+spacing {
			return false
		}
	}
	return true
}

// clampToCorners nudges a position inward so the opening keeps the corner
// clearance on both ends; used for the entrance, which is always created.
func clampToCorners(wall *plan.Wall, pos, width, corner float64) float64 {
	length := wall.Length()
	if length <= 0 {
		return pos
	}
	bound := corner/length + width/2/length
	return math.Max(bound, math.Min(1-bound, pos))
}

func facadeRank(f plan.Facade) int {
	if p, ok := facadePriority[f]; ok {
		return p
	}
	return 4
}

func sharedInteriorWall(ws []*plan.Wall, roomA, roomB string) *plan.Wall {
	for _, w := range ws {
		if !w.Exterior && w.BoundsRoom(roomA) && w.BoundsRoom(roomB) {
			return w
		}
	}
	return nil
}

func roomByName(rooms []*plan.Room, name string) *plan.Room {
	for _, r := range rooms {
		if r.Name == name {
			return r
		}
	}
	return nil
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
