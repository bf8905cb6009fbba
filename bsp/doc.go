// Package bsp implements recursive binary space partitioning of a building
// envelope into room-sized regions, followed by greedy area-based room
// assignment.
//
// The tree is an arena of nodes addressed by index; children are stored as
// indices, never owning pointers, and the arena lives only for the duration
// of one Subdivide call. Callers receive leaf Regions, each optionally
// bound to one RoomSpec.
//
// Subdivision is deterministic for a given seedrand.Source: the split
// direction and ratio jitter are the only random draws, consumed in a fixed
// order. When the envelope cannot host every room the surplus rooms are
// simply left unassigned: a soft shortfall surfaced by statistics, never
// an error.
package bsp
