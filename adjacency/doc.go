// Package adjacency post-processes BSP room assignments to satisfy
// declared "room A must neighbor room B" requirements.
//
// The resolver never moves geometry. It detects unmet requirements by
// comparing the declared adjacency sets against actual shared-boundary
// adjacency (bounding-box quick reject, then tolerance-based collinear
// edge overlap), and repairs violations by swapping room assignments
// between regions. Repair is a bounded, greedy local search: at most
// MaxIterations swap attempts, first violation first, stopping early when
// no violation is fixable. The result can therefore leave requirements
// unresolved; those are reported by validators, never force-corrected.
package adjacency
