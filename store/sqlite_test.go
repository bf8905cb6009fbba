package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MOH131185/genarch/generate"
	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
	"github.com/MOH131185/genarch/store"
)

func openStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "plans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.EnsureSchema())
	return s
}

func houseConstraints(t *testing.T) *plan.Constraints {
	t.Helper()
	c, err := plan.NewConstraints(
		[]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 8}, {X: 0, Y: 8}}, 80,
		[]plan.RoomSpec{
			{Name: "Living Room", Area: 40},
			{Name: "Kitchen", Area: 40},
		},
		"south")
	require.NoError(t, err)
	return c
}

// TestFingerprint verifies equal inputs key identically and any change
// rekeys.
func TestFingerprint(t *testing.T) {
	c := houseConstraints(t)

	a, err := store.Fingerprint(c, 42)
	require.NoError(t, err)
	b, err := store.Fingerprint(houseConstraints(t), 42)
	require.NoError(t, err)
	require.Equal(t, a, b, "equal constraints and seed must share a key")

	diffSeed, err := store.Fingerprint(c, 43)
	require.NoError(t, err)
	require.NotEqual(t, a, diffSeed)

	c2 := houseConstraints(t)
	c2.Rooms[0].Area = 39
	diffRooms, err := store.Fingerprint(c2, 42)
	require.NoError(t, err)
	require.NotEqual(t, a, diffRooms)
}

// TestPutGet round-trips a generated plan through the cache.
func TestPutGet(t *testing.T) {
	s := openStore(t)
	c := houseConstraints(t)

	res, err := generate.Run(c, generate.WithSeed(42))
	require.NoError(t, err)

	key, err := store.Fingerprint(c, 42)
	require.NoError(t, err)

	// miss before put
	_, _, ok, err := s.Get(key)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Put(key, 42, res.Plan, res.Metadata))

	fp, md, ok, err := s.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, fp.Rooms, len(res.Plan.Rooms))
	require.InDelta(t, res.Plan.TotalArea, fp.TotalArea, 1e-9)
	require.Equal(t, res.Metadata.RunID, md.RunID)
	require.Equal(t, int64(42), md.Seed)

	n, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

// TestPutReplaces verifies a second Put under the same key overwrites.
func TestPutReplaces(t *testing.T) {
	s := openStore(t)
	c := houseConstraints(t)

	first, err := generate.Run(c, generate.WithSeed(42))
	require.NoError(t, err)
	second, err := generate.Run(c, generate.WithSeed(42))
	require.NoError(t, err)

	key, err := store.Fingerprint(c, 42)
	require.NoError(t, err)
	require.NoError(t, s.Put(key, 42, first.Plan, first.Metadata))
	require.NoError(t, s.Put(key, 42, second.Plan, second.Metadata))

	_, md, ok, err := s.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, second.Metadata.RunID, md.RunID)

	n, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestDelete(t *testing.T) {
	s := openStore(t)
	c := houseConstraints(t)

	res, err := generate.Run(c, generate.WithSeed(42))
	require.NoError(t, err)
	key, err := store.Fingerprint(c, 42)
	require.NoError(t, err)
	require.NoError(t, s.Put(key, 42, res.Plan, res.Metadata))

	removed, err := s.Delete(key)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = s.Delete(key)
	require.NoError(t, err)
	require.False(t, removed, "second delete finds nothing")
}
