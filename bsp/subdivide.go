package bsp

import (
	"math"
	"sort"

	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
	"github.com/MOH131185/genarch/seedrand"
)

// Subdivide partitions the constraints' envelope into leaf regions and
// assigns rooms to the best-area-matching leaves. Regions are returned in
// assignment order (rooms by descending target area) followed by any bare
// regions left over. The union of region areas approximates the envelope
// area.
//
// rng is consumed in a fixed order (direction draw, jitter draw, per split)
// so equal seeds reproduce equal trees.
func Subdivide(c *plan.Constraints, rng *seedrand.Source, opts ...Option) ([]Region, error) {
	if c == nil {
		return nil, ErrNilConstraints
	}
	if rng == nil {
		return nil, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Largest rooms first, stable so equal areas keep program order.
	rooms := make([]*plan.RoomSpec, len(c.Rooms))
	for i := range c.Rooms {
		rooms[i] = &c.Rooms[i]
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Area > rooms[j].Area
	})

	s := &subdivider{opts: o, rng: rng}
	root := s.alloc(c.Envelope, 0)
	s.build(root, rooms)

	return assignRooms(s.leafPolygons(root), rooms), nil
}

// node is one arena entry. Children are arena indices; -1 marks a leaf.
type node struct {
	poly        []geom.Point
	left, right int
	depth       int
}

type subdivider struct {
	opts  Options
	rng   *seedrand.Source
	nodes []node
}

func (s *subdivider) alloc(poly []geom.Point, depth int) int {
	s.nodes = append(s.nodes, node{poly: poly, left: -1, right: -1, depth: depth})
	return len(s.nodes) - 1
}

// build recursively subdivides the node at idx for the given room subset.
// Arena entries are addressed by index only: alloc may reallocate the
// backing slice, so child links are written after both allocations.
func (s *subdivider) build(idx int, rooms []*plan.RoomSpec) {
	if s.nodes[idx].depth >= s.opts.MaxDepth {
		return
	}
	if len(rooms) <= 1 {
		return
	}

	b := geom.Bounds(s.nodes[idx].poly)
	if b.Width() < 2*s.opts.MinRoomDim || b.Height() < 2*s.opts.MinRoomDim {
		return
	}

	dir := s.chooseDirection(b)
	pos, ok := s.splitPosition(b, rooms, dir)
	if !ok {
		return
	}

	var first, second []geom.Point
	if dir == Horizontal {
		first, second = geom.SplitHorizontal(s.nodes[idx].poly, pos)
	} else {
		first, second = geom.SplitVertical(s.nodes[idx].poly, pos)
	}
	if len(second) == 0 {
		return
	}

	depth := s.nodes[idx].depth
	l := s.alloc(first, depth+1)
	r := s.alloc(second, depth+1)
	s.nodes[idx].left, s.nodes[idx].right = l, r

	firstArea := geom.Area(first)
	leftRooms, rightRooms := partitionRooms(rooms, firstArea/(firstArea+geom.Area(second)))
	s.build(l, leftRooms)
	s.build(r, rightRooms)
}

// chooseDirection picks the split axis from the node's aspect ratio:
// wide nodes bias toward a vertical cut, tall nodes toward a horizontal
// one, near-square nodes choose uniformly.
func (s *subdivider) chooseDirection(b geom.Rect) Direction {
	aspect := math.Inf(1)
	if b.Height() != 0 {
		aspect = b.Width() / b.Height()
	}
	switch {
	case aspect > s.opts.WideAspect:
		if s.rng.Float64() < s.opts.DirectionBias {
			return Vertical
		}
		return Horizontal
	case aspect < s.opts.TallAspect:
		if s.rng.Float64() < s.opts.DirectionBias {
			return Horizontal
		}
		return Vertical
	default:
		if s.rng.IntN(2) == 0 {
			return Horizontal
		}
		return Vertical
	}
}

// splitPosition computes the cut coordinate: the largest remaining room's
// share of the remaining target area, jittered, clamped to the ratio
// window and to the minimum-dimension margin from both edges. ok is false
// when no valid position exists.
func (s *subdivider) splitPosition(b geom.Rect, rooms []*plan.RoomSpec, dir Direction) (pos float64, ok bool) {
	var lo, hi float64
	if dir == Horizontal {
		lo, hi = b.MinY, b.MaxY
	} else {
		lo, hi = b.MinX, b.MaxX
	}

	minPos := lo + s.opts.MinRoomDim
	maxPos := hi - s.opts.MinRoomDim
	if minPos >= maxPos {
		return 0, false
	}

	var total float64
	for _, r := range rooms {
		total += r.Area
	}
	ratio := 0.5
	if total > 0 {
		ratio = rooms[0].Area / total
	}
	ratio += s.rng.Uniform(-s.opts.RatioJitter, s.opts.RatioJitter)
	ratio = math.Max(s.opts.RatioMin, math.Min(s.opts.RatioMax, ratio))

	pos = lo + ratio*(hi-lo)
	pos = math.Max(minPos, math.Min(maxPos, pos))
	return pos, true
}

// partitionRooms splits the room list between children by cumulative
// target area against the first child's area share, guaranteeing each
// child at least one room when both sides could be non-empty.
func partitionRooms(rooms []*plan.RoomSpec, firstRatio float64) (first, second []*plan.RoomSpec) {
	var total float64
	for _, r := range rooms {
		total += r.Area
	}
	target := total * firstRatio

	var acc float64
	for _, r := range rooms {
		if acc < target {
			first = append(first, r)
			acc += r.Area
		} else {
			second = append(second, r)
		}
	}

	if len(first) == 0 && len(second) > 0 {
		first = append(first, second[0])
		second = second[1:]
	} else if len(second) == 0 && len(first) > 0 {
		second = append(second, first[len(first)-1])
		first = first[:len(first)-1]
	}
	return first, second
}

// leafPolygons collects leaf polygons in left-to-right tree order.
func (s *subdivider) leafPolygons(idx int) [][]geom.Point {
	n := s.nodes[idx]
	if n.left < 0 && n.right < 0 {
		return [][]geom.Point{n.poly}
	}
	var out [][]geom.Point
	if n.left >= 0 {
		out = append(out, s.leafPolygons(n.left)...)
	}
	if n.right >= 0 {
		out = append(out, s.leafPolygons(n.right)...)
	}
	return out
}

// assignRooms greedily binds each room (largest first) to the unassigned
// leaf minimizing |leaf area − target area|. Rooms that find no leaf are
// dropped; leaves that find no room are appended as bare regions.
func assignRooms(leaves [][]geom.Point, rooms []*plan.RoomSpec) []Region {
	available := make([]Region, len(leaves))
	for i, poly := range leaves {
		available[i] = Region{Polygon: poly}
	}
	// Largest leaves first, stable to keep tree order on ties.
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Area() > available[j].Area()
	})

	assigned := make([]Region, 0, len(available))
	for _, room := range rooms {
		if len(available) == 0 {
			break
		}
		best, bestDiff := -1, math.Inf(1)
		for i, leaf := range available {
			diff := math.Abs(leaf.Area() - room.Area)
			if diff < bestDiff {
				best, bestDiff = i, diff
			}
		}
		leaf := available[best]
		leaf.Spec = room
		assigned = append(assigned, leaf)
		available = append(available[:best], available[best+1:]...)
	}

	return append(assigned, available...)
}
