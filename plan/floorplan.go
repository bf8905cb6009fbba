package plan

import (
	"github.com/MOH131185/genarch/geom"
)

// Opening is a door or window placed on a wall.
type Opening struct {
	// ID format: {type}_{floor}_{facade|INT}_{index}.
	ID   string      `json:"id"`
	Type OpeningType `json:"type"`

	// WallID references the hosting Wall.
	WallID string `json:"wall_id"`

	// Position is the normalized position along the wall, 0 at the wall
	// start and 1 at its end.
	Position float64 `json:"position_along_wall"`

	Width      float64 `json:"width_m"`
	Height     float64 `json:"height_m"`
	SillHeight float64 `json:"sill_height_m"`

	// Facade is the hosting wall's facade, or FacadeInterior.
	Facade Facade `json:"facade"`

	// Center is the world-space center of the opening in plan view.
	Center geom.Point `json:"center"`
}

// Wall is a single wall segment, exterior or interior.
type Wall struct {
	// ID format: wall_{floor}_{ext|int}_{index}.
	ID    string     `json:"id"`
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`

	Thickness float64 `json:"thickness_m"`
	Exterior  bool    `json:"is_exterior"`

	// Facade is set for exterior walls only.
	Facade Facade `json:"facade,omitempty"`

	// RoomIDs lists bounding rooms: 1 for exterior walls, 2 for interior.
	RoomIDs []string `json:"room_ids"`

	// Openings hosted on this wall, in placement order.
	Openings []*Opening `json:"openings"`
}

// Length returns the wall length in meters.
func (w *Wall) Length() float64 { return geom.Dist(w.Start, w.End) }

// Direction returns the unit direction vector from Start to End, or the
// zero vector for a degenerate wall.
func (w *Wall) Direction() (float64, float64) {
	l := w.Length()
	if l == 0 {
		return 0, 0
	}
	return (w.End.X - w.Start.X) / l, (w.End.Y - w.Start.Y) / l
}

// Midpoint returns the wall midpoint.
func (w *Wall) Midpoint() geom.Point { return w.PointAt(0.5) }

// PointAt returns the point at normalized position t along the wall
// (0 = start, 1 = end).
func (w *Wall) PointAt(t float64) geom.Point {
	return geom.Point{
		X: w.Start.X + t*(w.End.X-w.Start.X),
		Y: w.Start.Y + t*(w.End.Y-w.Start.Y),
	}
}

// BoundsRoom reports whether the wall bounds the given room.
func (w *Wall) BoundsRoom(roomID string) bool {
	for _, id := range w.RoomIDs {
		if id == roomID {
			return true
		}
	}
	return false
}

// Room is a materialized room with its boundary polygon.
type Room struct {
	// ID format: room_{floor}_{index}.
	ID   string `json:"id"`
	Name string `json:"name"`

	// Polygon is the boundary, clockwise, in meters.
	Polygon []geom.Point `json:"polygon"`

	Area       float64 `json:"area_m2"`
	FloorIndex int     `json:"floor_index"`

	// Class is the closed classification computed from Name.
	Class RoomClass `json:"-"`

	// ConnectedRooms lists ids of rooms reachable through a door,
	// populated by the opening placer.
	ConnectedRooms []string `json:"connected_rooms"`

	// WallIDs lists walls bounding this room.
	WallIDs []string `json:"wall_ids"`
}

// Bounds returns the room's bounding box.
func (r *Room) Bounds() geom.Rect { return geom.Bounds(r.Polygon) }

// Centroid returns the room centroid.
func (r *Room) Centroid() geom.Point { return geom.Centroid(r.Polygon) }

// Width returns the X extent of the room.
func (r *Room) Width() float64 { return r.Bounds().Width() }

// Depth returns the Y extent of the room.
func (r *Room) Depth() float64 { return r.Bounds().Height() }

// FloorPlan is the complete output of one generation run.
type FloorPlan struct {
	Rooms    []*Room      `json:"rooms"`
	Walls    []*Wall      `json:"walls"`
	Openings []*Opening   `json:"openings"`
	Envelope []geom.Point `json:"envelope"`

	FloorIndex int     `json:"floor_index"`
	TotalArea  float64 `json:"total_area_m2"`
}

// NewFloorPlan assembles a FloorPlan, computing total area as the sum of
// room areas when totalArea is zero.
func NewFloorPlan(rooms []*Room, walls []*Wall, openings []*Opening, envelope []geom.Point, floorIndex int, totalArea float64) *FloorPlan {
	if totalArea == 0 {
		for _, r := range rooms {
			totalArea += r.Area
		}
	}
	return &FloorPlan{
		Rooms:      rooms,
		Walls:      walls,
		Openings:   openings,
		Envelope:   envelope,
		FloorIndex: floorIndex,
		TotalArea:  totalArea,
	}
}

// RoomByID returns the room with the given id, or nil.
func (fp *FloorPlan) RoomByID(id string) *Room {
	for _, r := range fp.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// RoomByName returns the room with the given name, or nil.
func (fp *FloorPlan) RoomByName(name string) *Room {
	for _, r := range fp.Rooms {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// WallByID returns the wall with the given id, or nil.
func (fp *FloorPlan) WallByID(id string) *Wall {
	for _, w := range fp.Walls {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// WallsForRoom returns every wall bounding the given room.
func (fp *FloorPlan) WallsForRoom(roomID string) []*Wall {
	var out []*Wall
	for _, w := range fp.Walls {
		if w.BoundsRoom(roomID) {
			out = append(out, w)
		}
	}
	return out
}

// ExteriorWalls returns all exterior walls in envelope order.
func (fp *FloorPlan) ExteriorWalls() []*Wall {
	var out []*Wall
	for _, w := range fp.Walls {
		if w.Exterior {
			out = append(out, w)
		}
	}
	return out
}

// InteriorWalls returns all interior walls.
func (fp *FloorPlan) InteriorWalls() []*Wall {
	var out []*Wall
	for _, w := range fp.Walls {
		if !w.Exterior {
			out = append(out, w)
		}
	}
	return out
}

// OpeningsByType returns openings of one type, in placement order.
func (fp *FloorPlan) OpeningsByType(t OpeningType) []*Opening {
	var out []*Opening
	for _, o := range fp.Openings {
		if o.Type == t {
			out = append(out, o)
		}
	}
	return out
}
