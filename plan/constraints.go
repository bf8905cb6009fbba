package plan

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MOH131185/genarch/geom"
)

// UK Building Regs defaults for room dimensions and the building fabric.
const (
	// DefaultMinRoomWidth is the default minimum habitable width (m).
	DefaultMinRoomWidth = 2.4

	// DefaultFloorHeight is the floor-to-floor height (m).
	DefaultFloorHeight = 3.0

	// DefaultExternalWallThickness models a 350 mm cavity wall.
	DefaultExternalWallThickness = 0.35

	// DefaultInternalWallThickness models a 100 mm partition.
	DefaultInternalWallThickness = 0.1
)

// RoomSpec is a single room requirement from the architectural program.
// Parsed once from constraints and read-only thereafter.
type RoomSpec struct {
	// Name uniquely keys the room (e.g. "Living Room", "Master Bedroom").
	Name string `json:"name"`

	// Area is the target area in square meters.
	Area float64 `json:"area_m2"`

	// Adjacency lists names of rooms this room must share a wall with.
	Adjacency []string `json:"adjacency,omitempty"`

	// ExteriorWall marks rooms that prefer an exterior wall (for windows).
	ExteriorWall bool `json:"exterior_wall_preference,omitempty"`

	// MinWidth and MinDepth are minimum dimensions in meters.
	MinWidth float64 `json:"min_width_m"`
	MinDepth float64 `json:"min_depth_m"`

	// AspectRange is the valid width/depth ratio range.
	AspectRange [2]float64 `json:"aspect_ratio_range"`
}

// OpeningSpec gives default dimensions for one opening type.
type OpeningSpec struct {
	Type       OpeningType `json:"type"`
	Width      float64     `json:"width_m"`
	Height     float64     `json:"height_m"`
	SillHeight float64     `json:"sill_height_m"`
}

// DefaultOpenings returns the UK-regulation-aware opening defaults, in
// meters. Callers may override individual entries via the constraints
// document's "openings" field.
func DefaultOpenings() map[OpeningType]OpeningSpec {
	return map[OpeningType]OpeningSpec{
		Window:   {Type: Window, Width: 1.2, Height: 1.2, SillHeight: 0.9},
		Door:     {Type: Door, Width: 0.9, Height: 2.1},
		Entrance: {Type: Entrance, Width: 1.0, Height: 2.1},
		Patio:    {Type: Patio, Width: 2.4, Height: 2.1},
		French:   {Type: French, Width: 1.8, Height: 2.1},
	}
}

// Constraints is the complete declarative program for one floor:
// envelope, rooms, building parameters, and opening defaults.
type Constraints struct {
	// Envelope is the building footprint polygon, clockwise, in meters.
	Envelope []geom.Point `json:"envelope"`

	// TotalArea is the target floor area in square meters.
	TotalArea float64 `json:"total_area_m2"`

	// Rooms is the ordered, non-empty room program.
	Rooms []RoomSpec `json:"rooms"`

	BuildingType BuildingType `json:"building_type"`
	FloorCount   int          `json:"floor_count"`
	FloorHeight  float64      `json:"floor_height_m"`

	ExternalWallThickness float64 `json:"external_wall_thickness_m"`
	InternalWallThickness float64 `json:"internal_wall_thickness_m"`

	// EntranceFacade selects the exterior facade hosting the entrance.
	EntranceFacade Facade `json:"entrance_facade"`

	// Openings maps opening type to its default dimensions.
	Openings map[OpeningType]OpeningSpec `json:"openings"`
}

// NewConstraints builds validated Constraints with defaulted building
// parameters. It rejects malformed input immediately: a degenerate
// envelope, non-positive area, empty room program, or unknown facade.
func NewConstraints(envelope []geom.Point, totalArea float64, rooms []RoomSpec, facade string) (*Constraints, error) {
	c := &Constraints{
		Envelope:              envelope,
		TotalArea:             totalArea,
		Rooms:                 rooms,
		BuildingType:          Residential,
		FloorCount:            1,
		FloorHeight:           DefaultFloorHeight,
		ExternalWallThickness: DefaultExternalWallThickness,
		InternalWallThickness: DefaultInternalWallThickness,
		Openings:              DefaultOpenings(),
	}
	f, err := ParseFacade(facade)
	if err != nil {
		return nil, err
	}
	c.EntranceFacade = f
	if err := c.Validate(); err != nil {
		return nil, err
	}
	applyRoomDefaults(c.Rooms)
	return c, nil
}

// Validate checks the fail-fast construction invariants.
func (c *Constraints) Validate() error {
	if len(c.Envelope) < 3 {
		return fmt.Errorf("%w: got %d", ErrEnvelopeVertices, len(c.Envelope))
	}
	if c.TotalArea <= 0 {
		return fmt.Errorf("%w: got %.2f", ErrNonPositiveArea, c.TotalArea)
	}
	if len(c.Rooms) == 0 {
		return ErrNoRooms
	}
	if c.FloorCount != 1 {
		return fmt.Errorf("%w: got %d", ErrFloorCount, c.FloorCount)
	}
	switch c.EntranceFacade {
	case FacadeNorth, FacadeSouth, FacadeEast, FacadeWest:
	default:
		return fmt.Errorf("%w: %q", ErrBadFacade, c.EntranceFacade)
	}
	return nil
}

// Bounds returns the envelope bounding box.
func (c *Constraints) Bounds() geom.Rect { return geom.Bounds(c.Envelope) }

// TotalRoomArea returns the sum of all room target areas.
func (c *Constraints) TotalRoomArea() float64 {
	var sum float64
	for _, r := range c.Rooms {
		sum += r.Area
	}
	return sum
}

// RoomSpecByName returns the spec for a room name, or nil.
func (c *Constraints) RoomSpecByName(name string) *RoomSpec {
	for i := range c.Rooms {
		if c.Rooms[i].Name == name {
			return &c.Rooms[i]
		}
	}
	return nil
}

// constraintsDoc mirrors Constraints for decoding, keeping facade and
// defaults handling out of the public struct.
type constraintsDoc struct {
	Envelope              []geom.Point               `json:"envelope"`
	TotalArea             float64                    `json:"total_area_m2"`
	Rooms                 []RoomSpec                 `json:"rooms"`
	BuildingType          BuildingType               `json:"building_type"`
	FloorCount            *int                       `json:"floor_count"`
	FloorHeight           float64                    `json:"floor_height_m"`
	ExternalWallThickness float64                    `json:"external_wall_thickness_m"`
	InternalWallThickness float64                    `json:"internal_wall_thickness_m"`
	EntranceFacade        string                     `json:"entrance_facade"`
	Openings              map[string]OpeningSpec     `json:"openings"`
}

// DecodeConstraints reads a constraints document from r, applies defaults
// for omitted fields, and validates. This is the single entry point for
// external constraint documents.
func DecodeConstraints(r io.Reader) (*Constraints, error) {
	var doc constraintsDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("plan: decode constraints: %w", err)
	}

	c := &Constraints{
		Envelope:              doc.Envelope,
		TotalArea:             doc.TotalArea,
		Rooms:                 doc.Rooms,
		BuildingType:          doc.BuildingType,
		FloorCount:            1,
		FloorHeight:           doc.FloorHeight,
		ExternalWallThickness: doc.ExternalWallThickness,
		InternalWallThickness: doc.InternalWallThickness,
		Openings:              DefaultOpenings(),
	}
	if doc.FloorCount != nil {
		c.FloorCount = *doc.FloorCount
	}
	if c.BuildingType == "" {
		c.BuildingType = Residential
	}
	if c.FloorHeight == 0 {
		c.FloorHeight = DefaultFloorHeight
	}
	if c.ExternalWallThickness == 0 {
		c.ExternalWallThickness = DefaultExternalWallThickness
	}
	if c.InternalWallThickness == 0 {
		c.InternalWallThickness = DefaultInternalWallThickness
	}
	for key, spec := range doc.Openings {
		t := OpeningType(key)
		if spec.Type == "" {
			spec.Type = t
		}
		c.Openings[t] = spec
	}

	facade := doc.EntranceFacade
	if facade == "" {
		facade = "south"
	}
	f, err := ParseFacade(facade)
	if err != nil {
		return nil, err
	}
	c.EntranceFacade = f

	if err := c.Validate(); err != nil {
		return nil, err
	}
	applyRoomDefaults(c.Rooms)
	return c, nil
}

// applyRoomDefaults fills zero-valued room dimensions with UK defaults.
func applyRoomDefaults(rooms []RoomSpec) {
	for i := range rooms {
		if rooms[i].MinWidth == 0 {
			rooms[i].MinWidth = DefaultMinRoomWidth
		}
		if rooms[i].MinDepth == 0 {
			rooms[i].MinDepth = DefaultMinRoomWidth
		}
		if rooms[i].AspectRange == [2]float64{} {
			rooms[i].AspectRange = [2]float64{0.5, 2.0}
		}
	}
}
