// Package validate checks finished floor plans. Three independent
// validators share one contract: each returns a Report with a boolean
// pass/fail and zero or more human-readable diagnostics, and none of them
// ever fails the run. Soft generation shortfalls are reported, not raised.
//
//   - Geometry: illegal region overlap, minimum room width, total-area
//     tolerance, opening-to-corner clearance.
//   - Connectivity: every room reachable from the entrance through placed
//     doors, via breadth-first search over the door-traversal graph.
//   - Regulations: UK-regulation rule table: minimum areas and widths per
//     room classification, minimum door widths, minimum glazing ratio.
package validate
