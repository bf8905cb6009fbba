package validate

import (
	"fmt"

	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
)

// UK residential space and access standards.
const (
	// MinGlazingRatio is the minimum window-to-floor area ratio for
	// habitable rooms (Approved Document F daylight proxy).
	MinGlazingRatio = 0.10

	// MinInternalDoorWidth is the minimum clear width for internal doors.
	MinInternalDoorWidth = 0.75

	// MinEntranceDoorWidth is the minimum clear width for entrance doors.
	MinEntranceDoorWidth = 0.80

	// MinAccessibleDoorWidth applies to patio, french and sliding doors
	// (Approved Document M).
	MinAccessibleDoorWidth = 0.85
)

// minRoomAreas maps room classes to their minimum floor area in m²
// (Nationally Described Space Standard).
var minRoomAreas = map[plan.RoomClass]float64{
	plan.ClassBedroomSingle: 6.5,
	plan.ClassBedroomDouble: 11.0,
	plan.ClassLivingRoom:    13.0,
	plan.ClassKitchen:       5.5,
	plan.ClassBathroom:      2.5,
	plan.ClassWC:            1.5,
}

// minRoomDims maps room classes to their minimum bounding dimension in m.
var minRoomDims = map[plan.RoomClass]float64{
	plan.ClassBedroomSingle: 2.1,
	plan.ClassBedroomDouble: 2.1,
	plan.ClassLivingRoom:    2.4,
	plan.ClassKitchen:       2.4,
	plan.ClassDining:        2.4,
	plan.ClassStudy:         2.4,
	plan.ClassCorridor:      0.9,
	plan.ClassBathroom:      1.7,
	plan.ClassWC:            1.7,
}

// Regulations checks the plan against UK residential standards: minimum
// room areas and dimensions per class, door widths per door type, and the
// glazing ratio of habitable rooms. The strict flag is reserved for
// jurisdictions with additional checks and currently selects the same set.
func Regulations(fp *plan.FloorPlan, strict bool) Report {
	_ = strict

	var diags []string
	for _, r := range fp.Rooms {
		class := roomClass(r)
		if min, ok := minRoomAreas[class]; ok && r.Area < min {
			diags = append(diags, fmt.Sprintf(
				"room %q area %.1fm² below %s minimum %.1fm²",
				r.Name, r.Area, class, min))
		}
		if min, ok := minRoomDims[class]; ok {
			if w := geom.MinWidth(r.Polygon); w < min {
				diags = append(diags, fmt.Sprintf(
					"room %q dimension %.2fm below %s minimum %.2fm",
					r.Name, w, class, min))
			}
		}
	}
	diags = append(diags, doorWidthDiagnostics(fp)...)
	diags = append(diags, glazingDiagnostics(fp)...)
	return report(diags)
}

func doorWidthDiagnostics(fp *plan.FloorPlan) []string {
	var diags []string
	for _, o := range fp.Openings {
		var min float64
		switch o.Type {
		case plan.Door:
			min = MinInternalDoorWidth
		case plan.Entrance:
			min = MinEntranceDoorWidth
		case plan.Patio, plan.French, plan.Sliding:
			min = MinAccessibleDoorWidth
		default:
			continue
		}
		if o.Width < min {
			diags = append(diags, fmt.Sprintf(
				"door %q width %.2fm below minimum %.2fm", o.ID, o.Width, min))
		}
	}
	return diags
}

// glazingDiagnostics checks that each habitable room's window area is at
// least MinGlazingRatio of its floor area. A window is attributed to the
// first room of its hosting wall.
func glazingDiagnostics(fp *plan.FloorPlan) []string {
	glazing := make(map[string]float64, len(fp.Rooms))
	for _, w := range fp.Walls {
		if len(w.RoomIDs) == 0 {
			continue
		}
		for _, o := range w.Openings {
			if o.Type.IsWindow() {
				glazing[w.RoomIDs[0]] += o.Width * o.Height
			}
		}
	}

	var diags []string
	for _, r := range fp.Rooms {
		if !roomClass(r).Habitable() || r.Area <= 0 {
			continue
		}
		if ratio := glazing[r.ID] / r.Area; ratio < MinGlazingRatio {
			diags = append(diags, fmt.Sprintf(
				"room %q glazing ratio %.0f%% below minimum %.0f%%",
				r.Name, ratio*100, MinGlazingRatio*100))
		}
	}
	return diags
}
