package adjacency

import (
	"errors"
	"fmt"

	"github.com/MOH131185/genarch/bsp"
	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
)

// Sentinel errors for adjacency resolution.
var (
	// ErrNilConstraints is returned when constraints are nil.
	ErrNilConstraints = errors.New("adjacency: constraints are nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("adjacency: invalid option supplied")
)

// Option configures the resolver.
type Option func(*Options)

// Options holds resolver tuning parameters.
type Options struct {
	// MaxIterations bounds the swap-repair loop.
	MaxIterations int

	// Tolerance is the edge-matching tolerance in meters.
	Tolerance float64

	err error
}

// DefaultOptions returns the engine defaults: 20 repair iterations and the
// 0.1 m edge tolerance.
func DefaultOptions() Options {
	return Options{MaxIterations: 20, Tolerance: geom.EdgeTolerance}
}

// WithMaxIterations bounds the repair loop; n < 1 is an option violation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the edge tolerance; non-positive is a violation.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// Resolve attempts to satisfy every declared adjacency requirement by
// swapping room assignments between regions, in place. Returns the same
// slice for chaining. Best effort: an unfixable layout is returned as-is.
func Resolve(regions []bsp.Region, c *plan.Constraints, opts ...Option) ([]bsp.Region, error) {
	if c == nil {
		return nil, ErrNilConstraints
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	actual := Compute(regions, o.Tolerance)

	for i := 0; i < o.MaxIterations; i++ {
		violations := findViolations(c, actual)
		if len(violations) == 0 {
			break
		}
		if !attemptSwap(regions, violations[0], actual, o.Tolerance) {
			break // nothing fixable this round, accept best effort
		}
		actual = Compute(regions, o.Tolerance)
	}
	return regions, nil
}

// Compute returns the actual adjacency map of assigned regions: room name
// to the set of room names sharing a boundary edge within tol.
// Complexity: O(n² · e²) over assigned regions and their edges.
func Compute(regions []bsp.Region, tol float64) map[string]map[string]bool {
	adj := make(map[string]map[string]bool)
	for _, r := range regions {
		if r.Spec != nil {
			adj[r.Spec.Name] = make(map[string]bool)
		}
	}
	for i := range regions {
		if regions[i].Spec == nil {
			continue
		}
		for j := i + 1; j < len(regions); j++ {
			if regions[j].Spec == nil {
				continue
			}
			if geom.Adjacent(regions[i].Polygon, regions[j].Polygon, tol) {
				adj[regions[i].Spec.Name][regions[j].Spec.Name] = true
				adj[regions[j].Spec.Name][regions[i].Spec.Name] = true
			}
		}
	}
	return adj
}

// violation is an unmet requirement: a must neighbor b but does not.
type violation struct {
	a, b string
}

// findViolations lists requirement pairs not present in the actual
// adjacency, in room program order so repair is deterministic.
// Requirements naming rooms outside the program are ignored.
func findViolations(c *plan.Constraints, actual map[string]map[string]bool) []violation {
	var out []violation
	for _, room := range c.Rooms {
		for _, other := range room.Adjacency {
			if c.RoomSpecByName(other) == nil {
				continue
			}
			if !actual[room.Name][other] {
				out = append(out, violation{room.Name, other})
			}
		}
	}
	return out
}

// attemptSwap tries to fix one violation (a, b): find a current neighbor C
// of a whose region is geometrically adjacent to b's region, then swap the
// C and b assignments. Candidates are scanned in region order, keeping
// repair deterministic. Reports whether a swap happened.
func attemptSwap(regions []bsp.Region, v violation, actual map[string]map[string]bool, tol float64) bool {
	bIdx := indexOf(regions, v.b)
	if indexOf(regions, v.a) < 0 || bIdx < 0 {
		return false
	}

	for nIdx := range regions {
		if regions[nIdx].Spec == nil {
			continue
		}
		neighbor := regions[nIdx].Spec.Name
		if neighbor == v.b || !actual[v.a][neighbor] {
			continue
		}
		if geom.Adjacent(regions[nIdx].Polygon, regions[bIdx].Polygon, tol) {
			regions[bIdx].Spec, regions[nIdx].Spec = regions[nIdx].Spec, regions[bIdx].Spec
			return true
		}
	}
	return false
}

func indexOf(regions []bsp.Region, name string) int {
	for i, r := range regions {
		if r.Spec != nil && r.Spec.Name == name {
			return i
		}
	}
	return -1
}
