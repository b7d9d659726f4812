package olc

import (
	"math"
	"sort"
	"time"
)

// candidate is a finish-index whose global (unconstrained) upper bound
// still exceeds the current best valid distance, per spec §4.7 step 4.
type candidate struct {
	index int
	bound float32
}

// validSolution pairs an extracted, rule-valid path with its planar
// (pre-haversine) distance, used internally to compare candidates on a
// common scale before the final haversine recomputation.
type validSolution struct {
	path     Path
	distance float32
	found    bool
}

// Optimize computes the OLC Classic score for route, the caller's
// time-ordered slice of fixes (spec §6). It is the package's only public
// entry point: everything else is an internal collaborator of this
// pipeline.
//
// Errors: ErrInsufficientFixes if len(route) < 7; ErrDegenerateInput if
// every fix shares the same coordinate; ErrNumericAnomaly if a fix
// produces a non-finite projected coordinate. No other failure modes.
func Optimize(route []Fix, optFns ...Option) (Result, error) {
	if len(route) < legs+1 {
		return Result{}, ErrInsufficientFixes
	}

	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	points, err := toFlatPoints(route, opts)
	if err != nil {
		return Result{}, err
	}
	if !allFinite(points) {
		return Result{}, ErrNumericAnomaly
	}

	dm := buildDistanceMatrix(points, opts)
	n := len(route)

	global := buildGraph(dm, n, noPenalty, opts)
	best := findBestValidGlobal(global, route, opts.AltitudeRuleMeters)
	if !best.found {
		// Unreachable under spec's invariants (index 0's degenerate
		// zero-distance path is always valid), kept as a defensive guard
		// rather than a silent zero-value Result.
		return Result{}, errDimensionMismatch
	}

	candidates := collectCandidates(global, best.distance)

	var deadline time.Time
	hasDeadline := opts.TimeLimit > 0
	if hasDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	for len(candidates) > 0 {
		last := len(candidates) - 1
		c := candidates[last]
		candidates = candidates[:last]

		if c.bound <= best.distance {
			break
		}
		if hasDeadline && time.Now().After(deadline) {
			break
		}

		finishAltitude := route[c.index].Altitude()
		penalty := altitudePenalty(route, finishAltitude, opts.AltitudeRuleMeters)
		anchored := buildGraph(dm, c.index+1, penalty, opts)

		candidatePath := extractPath(anchored, c.index)
		if isValidPath(route, candidatePath, opts.AltitudeRuleMeters) {
			d := anchored.layers[legs-1][c.index].distance
			if d > best.distance {
				best = validSolution{path: candidatePath, distance: d, found: true}
				candidates = retainAbove(candidates, best.distance)
			}
		}
	}

	return Result{
		Distance: pathDistanceKM(route, best.path),
		Path:     best.path,
	}, nil
}

// findBestValidGlobal scans every terminal cell of the global graph,
// extracts its path, and keeps the largest-distance path that satisfies
// the 1000 m rule (spec §4.7 step 3). The path through index 0 at every
// layer is always valid (distance 0, zero altitude delta), so a valid
// solution always exists.
func findBestValidGlobal(g dpGraph, fixes []Fix, ruleMeters int16) validSolution {
	var best validSolution
	for j := 0; j < g.domain; j++ {
		path := extractPath(g, j)
		if !isValidPath(fixes, path, ruleMeters) {
			continue
		}
		d := g.layers[legs-1][j].distance
		if !best.found || d > best.distance {
			best = validSolution{path: path, distance: d, found: true}
		}
	}

	return best
}

// collectCandidates gathers every finish index whose global upper bound
// exceeds currentBest, sorted ascending by bound so the driver can pop the
// largest first (spec §4.7 step 4/§9 "reference ordering").
func collectCandidates(g dpGraph, currentBest float32) []candidate {
	last := g.layers[legs-1]
	out := make([]candidate, 0, len(last))
	for j, cell := range last {
		if cell.distance > currentBest {
			out = append(out, candidate{index: j, bound: cell.distance})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].bound != out[j].bound {
			return out[i].bound < out[j].bound
		}

		return out[i].index < out[j].index
	})

	return out
}

// retainAbove filters candidates in place to those still exceeding
// newBest, preserving the ascending order collectCandidates established
// (spec §4.7 step 5, "re-filter F against the new D*").
func retainAbove(candidates []candidate, newBest float32) []candidate {
	out := candidates[:0]
	for _, c := range candidates {
		if c.bound > newBest {
			out = append(out, c)
		}
	}

	return out
}

// altitudePenalty builds the anchored graph's layer-0 penalty function
// (spec §4.4/§9): a start whose altitude exceeds the finish altitude by
// more than ruleMeters is disadvantaged by defaultPenaltyKM so any
// compliant start dominates it, while it remains traversable (and later
// rejected by isValidPath) if no compliant start exists.
func altitudePenalty(fixes []Fix, finishAltitude int16, ruleMeters int16) startPenalty {
	return func(i int) float32 {
		if fixes[i].Altitude()-finishAltitude > ruleMeters {
			return -defaultPenaltyKM
		}

		return 0
	}
}

// allFinite reports whether every projected coordinate is finite. A
// non-finite value can only arise from a caller-supplied fix with a NaN
// or infinite latitude/longitude, since the projection itself is a finite
// composition of finite inputs (spec §7).
func allFinite(points []flatPoint) bool {
	for _, p := range points {
		if math.IsNaN(float64(p.x)) || math.IsInf(float64(p.x), 0) ||
			math.IsNaN(float64(p.y)) || math.IsInf(float64(p.y), 0) {
			return false
		}
	}

	return true
}
