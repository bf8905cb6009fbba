// Package walls materializes assigned BSP regions into Rooms and derives
// the wall set: one exterior wall per envelope edge (facade computed from
// the edge's outward normal, assuming a clockwise envelope) and exactly one
// interior wall per unique shared boundary between two rooms, deduplicated
// by a rounded, order-independent edge key.
//
// Every wall records the id(s) of the rooms whose boundary includes it, and
// every room records the ids of its bounding walls. Identifiers come from
// the caller's per-run IDGen.
package walls
