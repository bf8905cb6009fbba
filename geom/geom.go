package geom

import "math"

// EdgeTolerance is the engine-wide tolerance, in meters, for deciding that
// two axis-aligned edges coincide. 100 mm absorbs float drift from repeated
// rectangle splitting without merging distinct walls.
const EdgeTolerance = 0.1

// Point is an immutable 2D point in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance between two points.
// Complexity: O(1).
func Dist(a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return math.Hypot(dx, dy)
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the X extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the Y extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Disjoint reports whether r and other are separated by more than tol
// along either axis.
func (r Rect) Disjoint(other Rect, tol float64) bool {
	return r.MaxX+tol < other.MinX || other.MaxX+tol < r.MinX ||
		r.MaxY+tol < other.MinY || other.MaxY+tol < r.MinY
}

// Polygon returns the rectangle as a 4-vertex polygon, clockwise from the
// bottom-left corner (for the screen-style Y-up coordinate frame the engine
// uses, this ordering matches the envelope convention).
func (r Rect) Polygon() []Point {
	return []Point{
		{r.MinX, r.MinY},
		{r.MaxX, r.MinY},
		{r.MaxX, r.MaxY},
		{r.MinX, r.MaxY},
	}
}

// Area computes the absolute polygon area via the shoelace formula.
// Degenerate polygons (fewer than 3 vertices) have zero area.
// Complexity: O(n).
func Area(poly []Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(sum) / 2
}

// Centroid computes the polygon centroid. Degenerate polygons (near-zero
// signed area, or fewer than 3 vertices) fall back to the vertex average.
// Complexity: O(n).
func Centroid(poly []Point) Point {
	n := len(poly)
	switch n {
	case 0:
		return Point{}
	case 1:
		return poly[0]
	case 2:
		return Point{(poly[0].X + poly[1].X) / 2, (poly[0].Y + poly[1].Y) / 2}
	}
	var cx, cy, signed float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
		signed += cross
		cx += (poly[i].X + poly[j].X) * cross
		cy += (poly[i].Y + poly[j].Y) * cross
	}
	signed /= 2
	if math.Abs(signed) < 1e-10 {
		var ax, ay float64
		for _, p := range poly {
			ax += p.X
			ay += p.Y
		}
		return Point{ax / float64(n), ay / float64(n)}
	}
	return Point{cx / (6 * signed), cy / (6 * signed)}
}

// Bounds computes the axis-aligned bounding box of a polygon.
// An empty polygon yields the zero Rect.
// Complexity: O(n).
func Bounds(poly []Point) Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	r := Rect{poly[0].X, poly[0].Y, poly[0].X, poly[0].Y}
	for _, p := range poly[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// Perimeter computes the closed polygon perimeter.
// Complexity: O(n).
func Perimeter(poly []Point) float64 {
	n := len(poly)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += Dist(poly[i], poly[(i+1)%n])
	}
	return sum
}

// MinWidth returns the smaller bounding-box dimension of a polygon.
// For the axis-aligned rectangles the subdivider produces this is exact;
// for general polygons it is a bounding-box approximation.
func MinWidth(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	b := Bounds(poly)
	return math.Min(b.Width(), b.Height())
}

// Contains reports whether point p lies inside poly, using ray casting.
// Points exactly on the boundary are not guaranteed either way.
// Complexity: O(n).
func Contains(poly []Point, p Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		if (yi > p.Y) != (yj > p.Y) &&
			p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Intersect reports whether two polygons overlap: any vertex of one inside
// the other, or any pair of edges crossing. Touching boundaries count as
// intersecting; callers that want to ignore shared walls should inset the
// polygons first (see Inset).
// Complexity: O(n*m).
func Intersect(a, b []Point) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	for _, p := range a {
		if Contains(b, p) {
			return true
		}
	}
	for _, p := range b {
		if Contains(a, p) {
			return true
		}
	}
	for i := range a {
		i2 := (i + 1) % len(a)
		for j := range b {
			j2 := (j + 1) % len(b)
			if segmentsCross(a[i], a[i2], b[j], b[j2]) {
				return true
			}
		}
	}
	return false
}

// segmentsCross reports proper intersection of segments p1p2 and p3p4.
func segmentsCross(p1, p2, p3, p4 Point) bool {
	ccw := func(a, b, c Point) bool {
		return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
	}
	return ccw(p1, p3, p4) != ccw(p2, p3, p4) && ccw(p1, p2, p3) != ccw(p1, p2, p4)
}

// Inset shrinks an axis-aligned polygon by amount on every side, returning
// the inset rectangle as a polygon. Returns nil when the polygon is too
// small to inset, which callers treat as "nothing left to compare".
func Inset(poly []Point, amount float64) []Point {
	b := Bounds(poly)
	if b.Width() <= 2*amount || b.Height() <= 2*amount {
		return nil
	}
	return Rect{b.MinX + amount, b.MinY + amount, b.MaxX - amount, b.MaxY - amount}.Polygon()
}
