package validate

import (
	"fmt"
	"math"

	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
)

// Geometry check defaults.
const (
	// DefaultMinRoomWidth is the minimum bounding-box dimension (m).
	DefaultMinRoomWidth = 2.0

	// DefaultAreaTolerance is the acceptable total-area deviation (5%).
	DefaultAreaTolerance = 0.05

	// overlapTolerance insets polygons before the intersection test so
	// shared walls do not count as overlap (10 mm).
	overlapTolerance = 0.01

	// cornerClearance is the minimum opening-to-corner distance (m).
	cornerClearance = 0.2
)

// GeometryOption configures the geometry validator.
type GeometryOption func(*geometryOptions)

type geometryOptions struct {
	minRoomWidth  float64
	areaTolerance float64
}

// WithMinRoomWidth overrides the minimum room width check threshold.
func WithMinRoomWidth(w float64) GeometryOption {
	return func(o *geometryOptions) { o.minRoomWidth = w }
}

// WithAreaTolerance overrides the total-area deviation tolerance.
func WithAreaTolerance(t float64) GeometryOption {
	return func(o *geometryOptions) { o.areaTolerance = t }
}

// Geometry validates the plan's geometry: room overlap, minimum widths,
// total area against targetArea (skipped when targetArea <= 0), and
// opening corner clearance. It never fails the run; every problem becomes
// a diagnostic.
func Geometry(fp *plan.FloorPlan, targetArea float64, opts ...GeometryOption) Report {
	o := geometryOptions{
		minRoomWidth:  DefaultMinRoomWidth,
		areaTolerance: DefaultAreaTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var diags []string
	diags = append(diags, overlapDiagnostics(fp.Rooms)...)
	diags = append(diags, widthDiagnostics(fp.Rooms, o.minRoomWidth)...)
	if targetArea > 0 {
		diags = append(diags, areaDiagnostics(fp, targetArea, o.areaTolerance)...)
	}
	diags = append(diags, clearanceDiagnostics(fp)...)
	return report(diags)
}

// overlapDiagnostics flags every pair of rooms whose slightly-inset
// polygons intersect. Touching boundaries are legal; rooms too small to
// inset are treated as non-overlapping.
func overlapDiagnostics(rooms []*plan.Room) []string {
	var diags []string
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if roomsOverlap(rooms[i], rooms[j]) {
				diags = append(diags, fmt.Sprintf(
					"rooms overlap: %q and %q", rooms[i].Name, rooms[j].Name))
			}
		}
	}
	return diags
}

func roomsOverlap(a, b *plan.Room) bool {
	if a.Bounds().Disjoint(b.Bounds(), overlapTolerance) {
		return false
	}
	ia := geom.Inset(a.Polygon, overlapTolerance)
	ib := geom.Inset(b.Polygon, overlapTolerance)
	if ia == nil || ib == nil {
		return false
	}
	return geom.Intersect(ia, ib)
}

func widthDiagnostics(rooms []*plan.Room, minWidth float64) []string {
	var diags []string
	for _, r := range rooms {
		if w := geom.MinWidth(r.Polygon); w < minWidth {
			diags = append(diags, fmt.Sprintf(
				"room %q too narrow: %.2fm (minimum %.2fm)", r.Name, w, minWidth))
		}
	}
	return diags
}

func areaDiagnostics(fp *plan.FloorPlan, target, tolerance float64) []string {
	deviation := math.Abs(fp.TotalArea-target) / target
	if deviation <= tolerance {
		return nil
	}
	return []string{fmt.Sprintf(
		"total area %.1fm² deviates %.1f%% from target %.1fm² (tolerance %.0f%%)",
		fp.TotalArea, deviation*100, target, tolerance*100)}
}

// clearanceDiagnostics flags openings whose normalized position leaves
// either edge closer to a wall corner than the minimum clearance.
func clearanceDiagnostics(fp *plan.FloorPlan) []string {
	var diags []string
	for _, w := range fp.Walls {
		length := w.Length()
		if length <= 0 {
			continue
		}
		minPos := cornerClearance / length
		for _, o := range w.Openings {
			half := o.Width / 2 / length
			if d := o.Position - half; d < minPos {
				diags = append(diags, fmt.Sprintf(
					"opening %q too close to wall start: %.0fmm (minimum %.0fmm)",
					o.ID, d*length*1000, cornerClearance*1000))
			}
			if d := 1 - o.Position - half; d < minPos {
				diags = append(diags, fmt.Sprintf(
					"opening %q too close to wall end: %.0fmm (minimum %.0fmm)",
					o.ID, d*length*1000, cornerClearance*1000))
			}
		}
	}
	return diags
}
