package plan

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for constraint construction and parsing.
var (
	// ErrEnvelopeVertices indicates an envelope with fewer than 3 vertices.
	ErrEnvelopeVertices = errors.New("plan: envelope polygon needs at least 3 vertices")

	// ErrNonPositiveArea indicates a non-positive total target area.
	ErrNonPositiveArea = errors.New("plan: total area must be positive")

	// ErrNoRooms indicates an empty room list.
	ErrNoRooms = errors.New("plan: at least one room is required")

	// ErrBadFacade indicates an entrance facade outside {N,S,E,W}.
	ErrBadFacade = errors.New("plan: invalid entrance facade")

	// ErrFloorCount indicates a floor count other than 1; the engine
	// produces exactly one floor's layout per invocation.
	ErrFloorCount = errors.New("plan: floor_count must be 1")
)

// Facade is a cardinal-direction classification of an exterior wall.
type Facade string

// Facade values. FacadeInterior marks openings hosted on interior walls.
const (
	FacadeNorth    Facade = "N"
	FacadeSouth    Facade = "S"
	FacadeEast     Facade = "E"
	FacadeWest     Facade = "W"
	FacadeInterior Facade = "INT"
)

// ParseFacade accepts full names or single-letter abbreviations,
// case-insensitively. Returns ErrBadFacade for anything else.
func ParseFacade(s string) (Facade, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return FacadeNorth, nil
	case "s", "south":
		return FacadeSouth, nil
	case "e", "east":
		return FacadeEast, nil
	case "w", "west":
		return FacadeWest, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadFacade, s)
	}
}

// BuildingType classifies the overall program.
type BuildingType string

// Supported building types.
const (
	Residential BuildingType = "residential"
	Commercial  BuildingType = "commercial"
	Healthcare  BuildingType = "healthcare"
	Educational BuildingType = "educational"
)

// OpeningType identifies the kind of an opening.
type OpeningType string

// Opening types. Door-like types all count as doors for connectivity and
// regulation purposes; only Window counts as a window.
const (
	Window   OpeningType = "window"
	Door     OpeningType = "door"
	Entrance OpeningType = "entrance"
	Patio    OpeningType = "patio"
	French   OpeningType = "french"
	Sliding  OpeningType = "sliding"
)

// IsDoor reports whether the type is traversable (door, entrance, patio,
// french, sliding).
func (t OpeningType) IsDoor() bool {
	switch t {
	case Door, Entrance, Patio, French, Sliding:
		return true
	}
	return false
}

// IsWindow reports whether the type is a window.
func (t OpeningType) IsWindow() bool { return t == Window }

// idPrefix returns the identifier prefix for the type; windows abbreviate
// to "win" for compatibility with the platform's existing ID scheme.
func (t OpeningType) idPrefix() string {
	if t == Window {
		return "win"
	}
	return string(t)
}
