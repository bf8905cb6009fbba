// Package openings places doors and windows on materialized walls: the
// main entrance on the configured facade, one internal door per satisfied
// adjacency connection, and one window per daylight-needing room with an
// exterior wall.
//
// Placement is a bounded candidate search. Every opening is tried at the
// wall's center first, then at fixed offsets from center, and accepted at
// the first position that clears both the corner clearance and the
// inter-opening spacing against everything already placed on that wall.
// Positions are normalized wall coordinates in [0, 1]; conflict checks
// treat an opening as occupying its half-width plus the spacing margin.
//
// When no candidate clears, the opening is simply not created, a soft
// shortfall the validators report downstream, never an error.
package openings
