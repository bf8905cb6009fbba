package geom

import "math"

// EdgesMatch reports whether edge a1→a2 coincides with edge b1→b2 within
// tol, in either orientation. Used to attribute envelope walls to room
// boundaries, where full-edge identity is expected.
func EdgesMatch(a1, a2, b1, b2 Point, tol float64) bool {
	return (Dist(a1, b1) < tol && Dist(a2, b2) < tol) ||
		(Dist(a1, b2) < tol && Dist(a2, b1) < tol)
}

// EdgesOverlap reports whether two axis-aligned edges lie on the same line
// and share a run longer than tol. Endpoint coincidence (either orientation)
// short-circuits; otherwise both edges must be vertical on the same X, or
// horizontal on the same Y, with overlapping extent.
//
// This is the adjacency test for BSP-produced layouts: two regions are
// neighbors exactly when some pair of their edges overlaps.
func EdgesOverlap(a1, a2, b1, b2 Point, tol float64) bool {
	if Dist(a1, b2) < tol && Dist(a2, b1) < tol {
		return true
	}
	if Dist(a1, b1) < tol && Dist(a2, b2) < tol {
		return true
	}

	// Both vertical on the same X: compare Y runs.
	if math.Abs(a1.X-a2.X) < tol && math.Abs(b1.X-b2.X) < tol {
		if math.Abs(a1.X-b1.X) < tol {
			lo := math.Max(math.Min(a1.Y, a2.Y), math.Min(b1.Y, b2.Y))
			hi := math.Min(math.Max(a1.Y, a2.Y), math.Max(b1.Y, b2.Y))
			return hi-lo > tol
		}
	}

	// Both horizontal on the same Y: compare X runs.
	if math.Abs(a1.Y-a2.Y) < tol && math.Abs(b1.Y-b2.Y) < tol {
		if math.Abs(a1.Y-b1.Y) < tol {
			lo := math.Max(math.Min(a1.X, a2.X), math.Min(b1.X, b2.X))
			hi := math.Min(math.Max(a1.X, a2.X), math.Max(b1.X, b2.X))
			return hi-lo > tol
		}
	}

	return false
}

// SharedEdge scans two polygons for a pair of overlapping edges and returns
// the first matching edge of a. The boolean is false when the polygons are
// not adjacent. Complexity: O(n*m).
func SharedEdge(a, b []Point, tol float64) (start, end Point, ok bool) {
	for i := range a {
		i2 := (i + 1) % len(a)
		for j := range b {
			j2 := (j + 1) % len(b)
			if EdgesOverlap(a[i], a[i2], b[j], b[j2], tol) {
				return a[i], a[i2], true
			}
		}
	}
	return Point{}, Point{}, false
}

// Adjacent reports whether two polygons share a boundary edge within tol,
// using a bounding-box quick reject before the edge scan.
func Adjacent(a, b []Point, tol float64) bool {
	if Bounds(a).Disjoint(Bounds(b), tol) {
		return false
	}
	_, _, ok := SharedEdge(a, b, tol)
	return ok
}
