// Package olc computes the Online Contest (OLC) Classic score for a
// recorded free-flight glider trajectory: the longest broken-line distance
// realisable through the trajectory using one start point, five
// intermediate turnpoints, and one finish point (a 6-leg, 7-point path),
// subject to the 1000 m rule — the finish point's altitude may not be more
// than 1000 m below the start point's altitude.
//
// The package is a pure, call-local computation: it performs no I/O, holds
// no state between calls, and never logs. Callers supply a time-ordered
// slice of Fix values; Optimize returns the optimal Result or a sentinel
// error (see errors.go).
//
// Pipeline
//
//   - Planar Projector (projector.go): projects fixes onto a local tangent
//     plane in kilometres, for fast Euclidean distance.
//   - Distance Matrix Builder (distmatrix.go): a forward-only triangular
//     matrix of planar distances between all fix pairs.
//   - DP Graph Builder (graph.go): a 6-layer dynamic-programming graph,
//     global (unconstrained) and anchored-to-finish (altitude-constrained)
//     variants, plus the path extractor that walks predecessors back to a
//     7-index path.
//   - Validator (validate.go): the 1000 m rule predicate.
//   - Branch-and-Bound Driver (bnb.go): runs the global graph, then
//     refines with anchored graphs for every finish candidate whose
//     unconstrained upper bound still exceeds the best valid distance
//     found so far, until none remain.
//   - Haversine Recomputer (haversine.go): the final seven-leg distance on
//     the sphere, for scoring.
//
// Complexity is O(N²) per graph build (N fixes, 6 legs), with the
// branch-and-bound loop re-running the anchored build only for the
// (typically small) set of finish candidates whose bound beats the
// incumbent.
package olc
