package plan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
)

func envelope10x8() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 8}, {X: 0, Y: 8}}
}

func fiveRooms() []plan.RoomSpec {
	return []plan.RoomSpec{
		{Name: "Living Room", Area: 24, Adjacency: []string{"Kitchen"}, ExteriorWall: true},
		{Name: "Kitchen", Area: 12, ExteriorWall: true},
		{Name: "Master Bedroom", Area: 16, ExteriorWall: true},
		{Name: "Bathroom", Area: 6},
		{Name: "Hallway", Area: 10},
	}
}

func TestNewConstraints(t *testing.T) {
	c, err := plan.NewConstraints(envelope10x8(), 80, fiveRooms(), "south")
	require.NoError(t, err)

	require.Equal(t, plan.FacadeSouth, c.EntranceFacade)
	require.Equal(t, 1, c.FloorCount)
	require.Equal(t, plan.DefaultFloorHeight, c.FloorHeight)
	require.Equal(t, plan.DefaultExternalWallThickness, c.ExternalWallThickness)
	require.Equal(t, plan.DefaultInternalWallThickness, c.InternalWallThickness)
	require.InDelta(t, 68, c.TotalRoomArea(), 1e-9)

	// zero-valued room dimensions receive defaults
	for _, r := range c.Rooms {
		require.Equal(t, plan.DefaultMinRoomWidth, r.MinWidth, r.Name)
		require.Equal(t, plan.DefaultMinRoomWidth, r.MinDepth, r.Name)
		require.NotZero(t, r.AspectRange, r.Name)
	}
}

// TestNewConstraints_Rejections verifies fail-fast construction.
func TestNewConstraints_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		envelope []geom.Point
		area     float64
		rooms    []plan.RoomSpec
		facade   string
		wantErr  error
	}{
		{"two-vertex envelope", []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 80, fiveRooms(), "south", plan.ErrEnvelopeVertices},
		{"zero area", envelope10x8(), 0, fiveRooms(), "south", plan.ErrNonPositiveArea},
		{"negative area", envelope10x8(), -5, fiveRooms(), "south", plan.ErrNonPositiveArea},
		{"no rooms", envelope10x8(), 80, nil, "south", plan.ErrNoRooms},
		{"bad facade", envelope10x8(), 80, fiveRooms(), "up", plan.ErrBadFacade},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := plan.NewConstraints(tc.envelope, tc.area, tc.rooms, tc.facade)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParseFacade(t *testing.T) {
	tests := []struct {
		in   string
		want plan.Facade
	}{
		{"n", plan.FacadeNorth},
		{"North", plan.FacadeNorth},
		{"SOUTH", plan.FacadeSouth},
		{" e ", plan.FacadeEast},
		{"west", plan.FacadeWest},
	}
	for _, tc := range tests {
		got, err := plan.ParseFacade(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := plan.ParseFacade("inside")
	require.ErrorIs(t, err, plan.ErrBadFacade)
}

// TestDecodeConstraints decodes a minimal document and checks defaults.
func TestDecodeConstraints(t *testing.T) {
	doc := `{
		"envelope": [{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":8},{"x":0,"y":8}],
		"total_area_m2": 80,
		"rooms": [
			{"name": "Living Room", "area_m2": 30},
			{"name": "Kitchen", "area_m2": 20}
		]
	}`
	c, err := plan.DecodeConstraints(strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, plan.FacadeSouth, c.EntranceFacade, "default facade is south")
	require.Equal(t, plan.Residential, c.BuildingType)
	require.Equal(t, 1, c.FloorCount)
	require.Equal(t, plan.DefaultExternalWallThickness, c.ExternalWallThickness)

	// default openings present, window dimensions per UK habit
	win := c.Openings[plan.Window]
	require.Equal(t, 1.2, win.Width)
	require.Equal(t, 0.9, win.SillHeight)
}

func TestDecodeConstraints_Overrides(t *testing.T) {
	doc := `{
		"envelope": [{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":8},{"x":0,"y":8}],
		"total_area_m2": 80,
		"rooms": [{"name": "Studio", "area_m2": 75}],
		"entrance_facade": "north",
		"external_wall_thickness_m": 0.4,
		"openings": {"door": {"width_m": 0.8, "height_m": 2.0}}
	}`
	c, err := plan.DecodeConstraints(strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, plan.FacadeNorth, c.EntranceFacade)
	require.Equal(t, 0.4, c.ExternalWallThickness)
	require.Equal(t, 0.8, c.Openings[plan.Door].Width)
	require.Equal(t, plan.Door, c.Openings[plan.Door].Type, "type filled from key")
}

func TestDecodeConstraints_RejectsFloorCount(t *testing.T) {
	doc := `{
		"envelope": [{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":8},{"x":0,"y":8}],
		"total_area_m2": 80,
		"rooms": [{"name": "Studio", "area_m2": 75}],
		"floor_count": 3
	}`
	_, err := plan.DecodeConstraints(strings.NewReader(doc))
	require.ErrorIs(t, err, plan.ErrFloorCount)
}
