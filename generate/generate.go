package generate

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/MOH131185/genarch/adjacency"
	"github.com/MOH131185/genarch/bsp"
	"github.com/MOH131185/genarch/openings"
	"github.com/MOH131185/genarch/plan"
	"github.com/MOH131185/genarch/seedrand"
	"github.com/MOH131185/genarch/validate"
	"github.com/MOH131185/genarch/walls"
)

// ErrNilConstraints is returned when Run receives nil constraints.
var ErrNilConstraints = errors.New("generate: nil constraints")

// DefaultSeed is used when no seed option is given.
const DefaultSeed = 42

// Option configures a generation run.
type Option func(*options)

type options struct {
	seed   int64
	floor  int
	strict bool
}

// WithSeed sets the deterministic seed for the run.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithFloor sets the floor index embedded in every generated id.
func WithFloor(floor int) Option {
	return func(o *options) { o.floor = floor }
}

// WithStrict enables the stricter regulation check set.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// Result is the complete output of one generation run.
type Result struct {
	Plan     *plan.FloorPlan
	Metadata *plan.RunMetadata
}

// Run executes the full pipeline for a single floor: subdivision,
// adjacency repair, wall materialization, opening placement, and the
// three validators. Validation failures never abort the run; they are
// recorded in the result metadata.
//
// The same constraints and seed always produce a byte-identical plan.
func Run(c *plan.Constraints, opts ...Option) (*Result, error) {
	if c == nil {
		return nil, ErrNilConstraints
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	o := options{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&o)
	}

	rng := seedrand.New(o.seed)
	ids := plan.NewIDGen()

	regions, err := bsp.Subdivide(c, rng)
	if err != nil {
		return nil, fmt.Errorf("generate: subdivide: %w", err)
	}
	regions, err = adjacency.Resolve(regions, c)
	if err != nil {
		return nil, fmt.Errorf("generate: adjacency: %w", err)
	}

	rooms, ws := walls.Materialize(regions, c, ids, o.floor)
	ops := openings.Place(rooms, ws, c, ids, o.floor)
	fp := plan.NewFloorPlan(rooms, ws, ops, c.Envelope, o.floor, 0)

	md := plan.NewRunMetadata(uuid.NewString(), o.seed)
	runValidators(fp, c, o.strict, md)
	addStatistics(fp, c, md)

	return &Result{Plan: fp, Metadata: md}, nil
}

func runValidators(fp *plan.FloorPlan, c *plan.Constraints, strict bool, md *plan.RunMetadata) {
	geo := validate.Geometry(fp, c.TotalArea)
	conn := validate.Connectivity(fp)
	reg := validate.Regulations(fp, strict)

	md.AddValidation("geometry", geo.Passed)
	md.AddValidation("connectivity", conn.Passed)
	md.AddValidation("regulations", reg.Passed)

	var diags []string
	diags = append(diags, geo.Diagnostics...)
	diags = append(diags, conn.Diagnostics...)
	diags = append(diags, reg.Diagnostics...)
	if len(diags) > 0 {
		md.AddStatistic("validation_diagnostics", diags)
	}
}

func addStatistics(fp *plan.FloorPlan, c *plan.Constraints, md *plan.RunMetadata) {
	md.AddStatistic("room_count", len(fp.Rooms))
	md.AddStatistic("wall_count", len(fp.Walls))
	md.AddStatistic("opening_count", len(fp.Openings))
	md.AddStatistic("total_area_m2", round2(fp.TotalArea))
	md.AddStatistic("target_area_m2", round2(c.TotalArea))
	if c.TotalArea > 0 {
		accuracy := 1 - math.Abs(fp.TotalArea-c.TotalArea)/c.TotalArea
		md.AddStatistic("area_accuracy", round2(accuracy))
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
