package olc

// distMatrix is the forward-only triangular distance matrix of spec §4.2:
// row i stores the planar distance from flat point i to every flat point
// j >= i, so row i has length N-i (row i, offset 0, is always 0 —
// M[i][i]). Storing only the forward half halves the memory a full N×N
// dense matrix would need and matches the DP recurrence, which only ever
// looks up pairs (i, j) with i <= j.
//
// distMatrix also implements Matrix, sharing the At/Rows/Cols surface
// with Dense: At(i,j) for i>j mirrors to At(j,i), even though the DP
// builder never calls it that way.
type distMatrix struct {
	n    int
	rows [][]float32
}

// buildDistanceMatrix computes M[i][j] = points[i].distance(points[j]) for
// every j >= i. Rows are independent given the (immutable) points slice
// and are built in parallel across i (spec §4.2/§5).
func buildDistanceMatrix(points []flatPoint, opts Options) *distMatrix {
	n := len(points)
	m := &distMatrix{n: n, rows: make([][]float32, n)}

	parallelFor(n, opts.workerCount(), func(i int) {
		row := make([]float32, n-i)
		pi := points[i]
		for j := i; j < n; j++ {
			row[j-i] = pi.distance(points[j])
		}
		m.rows[i] = row
	})

	return m
}

// get returns M[i][j] for any 0 <= i,j < n, mirroring across the diagonal
// for i > j. This is the hot-path accessor used by the DP graph builder;
// it never allocates and never errors, since i/j are always produced by
// that builder's own bounded loops.
func (m *distMatrix) get(i, j int) float32 {
	if i <= j {
		return m.rows[i][j-i]
	}

	return m.rows[j][i-j]
}

// Rows implements Matrix.
func (m *distMatrix) Rows() int { return m.n }

// Cols implements Matrix.
func (m *distMatrix) Cols() int { return m.n }

// At implements Matrix, bounds-checked for external callers (tests).
func (m *distMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfBounds
	}

	return float64(m.get(i, j)), nil
}
