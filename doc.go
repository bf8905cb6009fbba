// Package genarch is a deterministic residential floor plan generator:
// constraints in, floor plan out, same seed, same plan, every time.
//
// 🏠 What is genarch?
//
//	A generation engine that turns a declarative room program into a
//	buildable single-floor layout:
//		• Space subdivision: recursive binary splits of the envelope
//		• Adjacency repair: room swaps until declared neighbors touch
//		• Materialization: rooms, exterior & interior wall segments
//		• Openings: entrance, internal doors, daylight windows
//		• Validation: geometry, circulation, UK space standards
//
// Everything is organized under focused subpackages:
//
//	geom/      — points, rectangles, polygon predicates & splitting
//	seedrand/  — the single seeded random source every stage draws from
//	plan/      — constraints, floor plan model, ids, run metadata
//	bsp/       — envelope subdivision into room regions
//	adjacency/ — requirement checking & swap-based repair
//	walls/     — wall materialization from regions and the envelope
//	openings/  — entrance, door and window placement
//	validate/  — the three validators and their reports
//	generate/  — the pipeline orchestrator
//	export/    — JSON interchange documents with statistics
//	store/     — SQLite plan cache keyed by constraints fingerprint
//	cmd/       — the genarch command-line front end
//
// Quick ASCII example, a 10x8 envelope after subdivision:
//
//	┌─────────┬────────┐
//	│ Living  │ Master │
//	│  Room   │Bedroom │
//	├────┬────┴───┬────┤
//	│Hall│Kitchen │Bath│
//	└────┴────────┴────┘
//
// Determinism is the core contract: one seedrand.Source consumed in a
// fixed order, one id generator per run, and no map-iteration in any
// decision path, so equal constraints and seed reproduce a
// byte-identical plan.
package genarch
