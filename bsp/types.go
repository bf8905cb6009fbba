// Package bsp options and error definitions for envelope subdivision.
package bsp

import (
	"errors"
	"fmt"

	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
)

// Sentinel errors for subdivision.
var (
	// ErrNilConstraints is returned when constraints are nil.
	ErrNilConstraints = errors.New("bsp: constraints are nil")

	// ErrNilSource is returned when the random source is nil.
	ErrNilSource = errors.New("bsp: random source is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bsp: invalid option supplied")
)

// Direction of a split cut.
type Direction int

const (
	// Horizontal cuts across the Y axis, producing lower/upper children.
	Horizontal Direction = iota
	// Vertical cuts across the X axis, producing left/right children.
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Region is a leaf of the subdivision: an axis-aligned rectangular area,
// optionally bound to one room.
type Region struct {
	// Polygon is the region boundary, clockwise.
	Polygon []geom.Point

	// Spec is the assigned room, or nil for a bare region.
	Spec *plan.RoomSpec
}

// Area returns the region's polygon area.
func (r Region) Area() float64 { return geom.Area(r.Polygon) }

// Option configures subdivision via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation when Subdivide runs.
type Option func(*Options)

// Options holds subdivision tuning parameters.
type Options struct {
	// MaxDepth bounds the BSP tree depth.
	MaxDepth int

	// MinRoomDim is the minimum room dimension in meters; a node narrower
	// than twice this value in either axis is never split.
	MinRoomDim float64

	// WideAspect and TallAspect are the aspect-ratio thresholds beyond
	// which the split direction is biased with probability DirectionBias.
	WideAspect float64
	TallAspect float64

	// DirectionBias is the probability of taking the biased direction on
	// a wide or tall node.
	DirectionBias float64

	// RatioJitter is the uniform perturbation (±) applied to the target
	// split ratio; RatioMin and RatioMax clamp the result.
	RatioJitter float64
	RatioMin    float64
	RatioMax    float64

	err error
}

// DefaultOptions returns the engine defaults: depth 10, 2.0 m minimum room
// dimension, aspect thresholds 1.5 and 0.667 with 0.85 bias, and split
// ratio jitter ±0.1 clamped to [0.3, 0.7].
func DefaultOptions() Options {
	return Options{
		MaxDepth:      10,
		MinRoomDim:    2.0,
		WideAspect:    1.5,
		TallAspect:    0.667,
		DirectionBias: 0.85,
		RatioJitter:   0.1,
		RatioMin:      0.3,
		RatioMax:      0.7,
	}
}

// WithMaxDepth bounds the tree depth; d < 1 is an option violation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMinRoomDim sets the minimum room dimension in meters; non-positive
// values are an option violation.
func WithMinRoomDim(m float64) Option {
	return func(o *Options) {
		if m <= 0 {
			o.err = fmt.Errorf("%w: MinRoomDim must be positive (%g)", ErrOptionViolation, m)
			return
		}
		o.MinRoomDim = m
	}
}

// WithRatioClamp sets the split ratio clamp; requires 0 < lo < hi < 1.
func WithRatioClamp(lo, hi float64) Option {
	return func(o *Options) {
		if !(0 < lo && lo < hi && hi < 1) {
			o.err = fmt.Errorf("%w: ratio clamp [%g, %g]", ErrOptionViolation, lo, hi)
			return
		}
		o.RatioMin, o.RatioMax = lo, hi
	}
}
