package plan_test

import (
	"testing"

	"github.com/MOH131185/genarch/plan"
)

// TestIDGenSequences verifies the id formats and per-prefix counters.
func TestIDGenSequences(t *testing.T) {
	g := plan.NewIDGen()

	if got := g.RoomID(0); got != "room_0_0" {
		t.Errorf("RoomID = %q", got)
	}
	if got := g.RoomID(0); got != "room_0_1" {
		t.Errorf("RoomID = %q", got)
	}
	// a different floor has its own counter
	if got := g.RoomID(1); got != "room_1_0" {
		t.Errorf("RoomID floor 1 = %q", got)
	}

	if got := g.WallID(0, true); got != "wall_0_ext_0" {
		t.Errorf("WallID ext = %q", got)
	}
	if got := g.WallID(0, false); got != "wall_0_int_0" {
		t.Errorf("WallID int = %q", got)
	}
	if got := g.WallID(0, true); got != "wall_0_ext_1" {
		t.Errorf("WallID ext = %q", got)
	}

	if got := g.OpeningID(plan.Window, 0, plan.FacadeSouth); got != "win_0_S_0" {
		t.Errorf("window OpeningID = %q", got)
	}
	if got := g.OpeningID(plan.Door, 0, plan.FacadeInterior); got != "door_0_INT_0" {
		t.Errorf("door OpeningID = %q", got)
	}
	if got := g.OpeningID(plan.Entrance, 0, plan.FacadeSouth); got != "entrance_0_S_0" {
		t.Errorf("entrance OpeningID = %q", got)
	}
}

// TestIDGenReset verifies Reset restarts every sequence, which is what
// makes replayed runs emit identical ids.
func TestIDGenReset(t *testing.T) {
	g := plan.NewIDGen()
	first := []string{g.RoomID(0), g.WallID(0, true), g.OpeningID(plan.Door, 0, plan.FacadeInterior)}

	g.Reset()
	second := []string{g.RoomID(0), g.WallID(0, true), g.OpeningID(plan.Door, 0, plan.FacadeInterior)}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("sequence %d after Reset: %q != %q", i, second[i], first[i])
		}
	}
}
