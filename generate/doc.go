// Package generate runs the full floor plan pipeline: recursive space
// subdivision, adjacency repair, wall and room materialization, opening
// placement, and validation, producing a plan.FloorPlan plus run metadata.
//
// The pipeline is fully deterministic: the same constraints and seed
// always produce the same plan. All randomness flows through one
// seedrand.Source consumed in a fixed order, and all ids come from one
// per-run plan.IDGen.
//
// Typical use:
//
//	result, err := generate.Run(c, generate.WithSeed(42))
//	if err != nil { ... }
//	fmt.Println(result.Metadata.AllPassed())
package generate
