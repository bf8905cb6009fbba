package export_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MOH131185/genarch/export"
	"github.com/MOH131185/genarch/generate"
	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
)

func generated(t *testing.T) (*plan.FloorPlan, *plan.RunMetadata) {
	t.Helper()
	c, err := plan.NewConstraints(
		[]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 8}, {X: 0, Y: 8}}, 80,
		[]plan.RoomSpec{
			{Name: "Living Room", Area: 40, Adjacency: []string{"Kitchen"}},
			{Name: "Kitchen", Area: 40},
		},
		"south")
	require.NoError(t, err)
	res, err := generate.Run(c, generate.WithSeed(42))
	require.NoError(t, err)
	return res.Plan, res.Metadata
}

// TestComputeStatistics checks the derived counts and aggregates.
func TestComputeStatistics(t *testing.T) {
	fp, _ := generated(t)
	s := export.ComputeStatistics(fp)

	require.Equal(t, len(fp.Rooms), s.RoomCount)
	require.Equal(t, len(fp.Walls), s.WallCount)
	require.Equal(t, len(fp.Openings), s.OpeningCount)
	require.InDelta(t, fp.TotalArea, s.TotalArea, 1e-9)
	require.Equal(t, s.WallCount, s.ExteriorWallCount+s.InteriorWallCount)
	require.InDelta(t, s.TotalWallLength, s.ExteriorWallLength+s.InteriorWallLength, 1e-9)
	require.GreaterOrEqual(t, s.LargestRoom, s.SmallestRoom)
	require.Equal(t, s.OpeningCount, s.DoorCount+s.WindowCount)
	require.InDelta(t, float64(s.DoorCount)/float64(s.RoomCount), s.DoorsPerRoom, 1e-9)
}

// TestJSON verifies the document shape: plan fields inline, metadata and
// statistics blocks attached.
func TestJSON(t *testing.T) {
	fp, md := generated(t)

	var buf bytes.Buffer
	require.NoError(t, export.JSON(&buf, fp, md))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	for _, key := range []string{"rooms", "walls", "openings", "envelope", "total_area_m2", "metadata", "statistics"} {
		require.Contains(t, doc, key)
	}

	var stats export.Statistics
	require.NoError(t, json.Unmarshal(doc["statistics"], &stats))
	require.Equal(t, len(fp.Rooms), stats.RoomCount)
}

func TestJSON_OmitsNilMetadata(t *testing.T) {
	fp, _ := generated(t)

	var buf bytes.Buffer
	require.NoError(t, export.JSON(&buf, fp, nil))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.NotContains(t, doc, "metadata")
}

// TestWriteFile verifies parent directories are created and the file
// round-trips.
func TestWriteFile(t *testing.T) {
	fp, md := generated(t)
	path := filepath.Join(t.TempDir(), "out", "plan.json")

	require.NoError(t, export.WriteFile(path, fp, md))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got plan.FloorPlan
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got.Rooms, len(fp.Rooms))
	require.InDelta(t, fp.TotalArea, got.TotalArea, 1e-9)
}
