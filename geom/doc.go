// Package geom provides the 2D geometry kernel for floor plan generation:
// polygon area, centroid, bounds and perimeter, point-in-polygon tests,
// polygon-polygon intersection, axis-aligned rectangle splitting, and
// tolerance-based edge matching.
//
// All functions are pure and stateless. Coordinates are in meters.
// Polygons are ordered vertex lists; area and centroid accept either
// winding and report absolute quantities.
//
// The edge matching helpers (EdgesMatch, EdgesOverlap, SharedEdge) assume
// axis-aligned geometry, which is the only shape the BSP subdivider
// produces. Tolerance is an explicit parameter everywhere; the engine-wide
// default for adjacency work is EdgeTolerance (0.1 m).
package geom
