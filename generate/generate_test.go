package generate_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MOH131185/genarch/generate"
	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
)

func houseConstraints(t *testing.T) *plan.Constraints {
	t.Helper()
	c, err := plan.NewConstraints(
		[]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 8}, {X: 0, Y: 8}},
		80,
		[]plan.RoomSpec{
			{Name: "Living Room", Area: 24, Adjacency: []string{"Kitchen"}, ExteriorWall: true},
			{Name: "Kitchen", Area: 12, ExteriorWall: true},
			{Name: "Master Bedroom", Area: 16, ExteriorWall: true},
			{Name: "Bathroom", Area: 6},
			{Name: "Hallway", Area: 10, Adjacency: []string{"Living Room", "Bathroom"}},
		},
		"south",
	)
	require.NoError(t, err)
	return c
}

func TestRun_NilConstraints(t *testing.T) {
	_, err := generate.Run(nil)
	require.ErrorIs(t, err, generate.ErrNilConstraints)
}

func TestRun_InvalidConstraints(t *testing.T) {
	c := houseConstraints(t)
	c.TotalArea = -1
	_, err := generate.Run(c)
	require.ErrorIs(t, err, plan.ErrNonPositiveArea)
}

// TestRun_ProducesCompletePlan checks the pipeline output end to end:
// rooms, walls, openings, ids, and metadata.
func TestRun_ProducesCompletePlan(t *testing.T) {
	res, err := generate.Run(houseConstraints(t), generate.WithSeed(42))
	require.NoError(t, err)

	fp := res.Plan
	require.NotEmpty(t, fp.Rooms)
	require.GreaterOrEqual(t, len(fp.Walls), 4, "at least the envelope walls")
	require.NotEmpty(t, fp.Openings)

	// area conservation: room areas tile the envelope
	var total float64
	for _, r := range fp.Rooms {
		total += r.Area
	}
	require.InDelta(t, 80, total, 80*0.05)
	require.InDelta(t, total, fp.TotalArea, 1e-6)

	// an entrance door exists on the requested facade
	entrances := fp.OpeningsByType(plan.Entrance)
	require.Len(t, entrances, 1)
	require.Equal(t, plan.FacadeSouth, entrances[0].Facade)

	// ids restart at zero each run
	require.Equal(t, "room_0_0", fp.Rooms[0].ID)
	require.Equal(t, "wall_0_ext_0", fp.Walls[0].ID)

	md := res.Metadata
	require.NotEmpty(t, md.RunID)
	require.Equal(t, int64(42), md.Seed)
	require.Contains(t, md.ValidationResults, "geometry")
	require.Contains(t, md.ValidationResults, "connectivity")
	require.Contains(t, md.ValidationResults, "regulations")
	require.Equal(t, len(fp.Rooms), md.Statistics["room_count"])
}

// TestRun_Deterministic verifies two runs with equal seed produce
// byte-identical plans, and a different seed a different plan.
func TestRun_Deterministic(t *testing.T) {
	a, err := generate.Run(houseConstraints(t), generate.WithSeed(42))
	require.NoError(t, err)
	b, err := generate.Run(houseConstraints(t), generate.WithSeed(42))
	require.NoError(t, err)

	aj, err := json.Marshal(a.Plan)
	require.NoError(t, err)
	bj, err := json.Marshal(b.Plan)
	require.NoError(t, err)
	require.True(t, bytes.Equal(aj, bj), "plans for equal seeds differ")

	c, err := generate.Run(houseConstraints(t), generate.WithSeed(123))
	require.NoError(t, err)
	cj, err := json.Marshal(c.Plan)
	require.NoError(t, err)
	require.False(t, bytes.Equal(aj, cj), "different seeds produced identical plans")
}

// TestRun_NoOverlap verifies no two rooms overlap beyond a shared wall.
func TestRun_NoOverlap(t *testing.T) {
	for _, seed := range []int64{42, 123} {
		res, err := generate.Run(houseConstraints(t), generate.WithSeed(seed))
		require.NoError(t, err)
		rooms := res.Plan.Rooms
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				ia := geom.Inset(rooms[i].Polygon, 0.01)
				ib := geom.Inset(rooms[j].Polygon, 0.01)
				if ia == nil || ib == nil {
					continue
				}
				require.False(t, geom.Intersect(ia, ib),
					"seed %d: %q overlaps %q", seed, rooms[i].Name, rooms[j].Name)
			}
		}
	}
}

// TestRun_OverDeclaredProgram verifies the pipeline degrades softly when
// the program cannot fit instead of failing.
func TestRun_OverDeclaredProgram(t *testing.T) {
	rooms := make([]plan.RoomSpec, 0, 12)
	for _, n := range []string{"Living Room", "Kitchen", "Master Bedroom",
		"Bedroom 2", "Bedroom 3", "Bathroom", "WC", "Hallway", "Dining Room",
		"Study", "Utility Room", "Storage"} {
		rooms = append(rooms, plan.RoomSpec{Name: n, Area: 10})
	}
	c, err := plan.NewConstraints(
		[]geom.Point{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 6}, {X: 0, Y: 6}}, 48, rooms, "north")
	require.NoError(t, err)

	res, err := generate.Run(c, generate.WithSeed(42))
	require.NoError(t, err)
	require.NotEmpty(t, res.Plan.Rooms)
	require.LessOrEqual(t, len(res.Plan.Rooms), 12)

	var total float64
	for _, r := range res.Plan.Rooms {
		total += r.Area
	}
	require.InDelta(t, 48, total, 1e-6, "placed rooms still tile the envelope")
}

// TestRun_AreaAccuracyStatistic checks the derived accuracy statistic.
func TestRun_AreaAccuracyStatistic(t *testing.T) {
	res, err := generate.Run(houseConstraints(t), generate.WithSeed(42))
	require.NoError(t, err)

	acc, ok := res.Metadata.Statistics["area_accuracy"].(float64)
	require.True(t, ok)
	require.False(t, math.IsNaN(acc))
	require.Greater(t, acc, 0.9)
}

func TestRun_FloorOption(t *testing.T) {
	res, err := generate.Run(houseConstraints(t), generate.WithSeed(42), generate.WithFloor(2))
	require.NoError(t, err)
	require.Equal(t, 2, res.Plan.FloorIndex)
	require.Equal(t, "room_2_0", res.Plan.Rooms[0].ID)
}
