package olc

import "math"

// dpGraph is the leg-layered dynamic-programming graph of spec §4.3/§4.4:
// layers[k][j] holds the best (k+1)-leg total distance over monotone
// index sequences ending at j, and the predecessor achieving it. All
// layers share one domain size: [0, domain) for the global graph, or
// [0, finishIndex] for a graph anchored to a specific finish point (spec
// §4.4 restricts the anchored search to indices i <= f).
type dpGraph struct {
	domain int
	layers [6][]graphCell
}

// startPenalty returns an additive penalty (normally 0, otherwise
// negative) applied to layer-0 candidates keyed by start index. The
// global graph uses noPenalty; an anchored graph penalizes starts that
// violate the 1000 m rule against its fixed finish altitude, so they are
// dominated by any compliant start but still traversable if none exists
// (spec §4.4, §9).
type startPenalty func(startIndex int) float32

func noPenalty(int) float32 { return 0 }

// buildGraph runs the DP recurrence of spec §4.3 over dm, restricted to
// [0, domain). Layer 0: cell(j) = max over i<=j of dm.get(i,j)+penalty(i).
// Layer k>0: cell(j) = max over i<=j of layers[k-1][i].distance+dm.get(i,j).
// Rows across j within one layer are independent given the previous layer
// and are computed in parallel (spec §5); layers are sequential since
// layer k depends on layer k-1.
func buildGraph(dm *distMatrix, domain int, penalty startPenalty, opts Options) dpGraph {
	g := dpGraph{domain: domain}

	layer0 := make([]graphCell, domain)
	parallelFor(domain, opts.workerCount(), func(j int) {
		layer0[j] = bestLayer0Cell(dm, j, penalty)
	})
	g.layers[0] = layer0

	for k := 1; k < legs; k++ {
		prev := g.layers[k-1]
		layer := make([]graphCell, domain)
		parallelFor(domain, opts.workerCount(), func(j int) {
			layer[j] = bestSuccessorCell(dm, prev, j)
		})
		g.layers[k] = layer
	}

	return g
}

// bestLayer0Cell scans i in [0,j] for the best first-leg candidate ending
// at j. i == j (distance 0, a degenerate same-point leg) is always
// admissible, so the domain is never empty (spec §4.3 "empty-domain
// cells ... are impossible").
func bestLayer0Cell(dm *distMatrix, j int, penalty startPenalty) graphCell {
	best := graphCell{prevIndex: 0, distance: dm.get(0, j) + penalty(0)}
	for i := 1; i <= j; i++ {
		d := dm.get(i, j) + penalty(i)
		if isBetter(d, i, best.distance, best.prevIndex) {
			best = graphCell{prevIndex: i, distance: d}
		}
	}

	return best
}

// bestSuccessorCell scans i in [0,j] for the best predecessor in `prev`
// extended by one leg to j.
func bestSuccessorCell(dm *distMatrix, prev []graphCell, j int) graphCell {
	best := graphCell{prevIndex: 0, distance: prev[0].distance + dm.get(0, j)}
	for i := 1; i <= j; i++ {
		d := prev[i].distance + dm.get(i, j)
		if isBetter(d, i, best.distance, best.prevIndex) {
			best = graphCell{prevIndex: i, distance: d}
		}
	}

	return best
}

// isBetter implements the deterministic max comparator of spec §4.3: a
// strictly larger distance wins; on a tie, the smaller predecessor index
// wins; a NaN candidate never wins (spec §4.3, §7).
func isBetter(candidateDist float32, candidateIdx int, bestDist float32, bestIdx int) bool {
	if math.IsNaN(float64(candidateDist)) {
		return false
	}
	if candidateDist > bestDist {
		return true
	}

	return candidateDist == bestDist && candidateIdx < bestIdx
}

// extractPath walks predecessors from (layer legs-1, terminal) back to a
// start index, materializing the 7-index path in ascending order (spec
// §4.5). terminal must be a valid index into g.layers[legs-1].
func extractPath(g dpGraph, terminal int) Path {
	path := make(Path, legs+1)
	path[legs] = terminal

	idx := terminal
	for k := legs - 1; k >= 0; k-- {
		prev := g.layers[k][idx].prevIndex
		path[k] = prev
		idx = prev
	}

	return path
}
