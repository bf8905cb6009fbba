package geom

// SplitHorizontal cuts an axis-aligned, rectangle-like polygon at the given
// Y coordinate, returning the lower and upper halves as 4-vertex polygons.
// A cut outside the polygon's Y range returns the original polygon and nil.
// Complexity: O(n) for the bounds scan.
func SplitHorizontal(poly []Point, y float64) (lower, upper []Point) {
	b := Bounds(poly)
	if y <= b.MinY || y >= b.MaxY {
		return poly, nil
	}
	lower = Rect{b.MinX, b.MinY, b.MaxX, y}.Polygon()
	upper = Rect{b.MinX, y, b.MaxX, b.MaxY}.Polygon()
	return lower, upper
}

// SplitVertical cuts an axis-aligned, rectangle-like polygon at the given
// X coordinate, returning the left and right halves as 4-vertex polygons.
// A cut outside the polygon's X range returns the original polygon and nil.
func SplitVertical(poly []Point, x float64) (left, right []Point) {
	b := Bounds(poly)
	if x <= b.MinX || x >= b.MaxX {
		return poly, nil
	}
	left = Rect{b.MinX, b.MinY, x, b.MaxY}.Polygon()
	right = Rect{x, b.MinY, b.MaxX, b.MaxY}.Polygon()
	return left, right
}
