package olc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDistMatrixDiagonalIsZero checks that M[i][i] is always 0.
func TestDistMatrixDiagonalIsZero(t *testing.T) {
	fixes := meridianFixes(10, 47.0, 0.02, 1000)
	points, err := toFlatPoints(fixes, DefaultOptions())
	require.NoError(t, err)

	dm := buildDistanceMatrix(points, DefaultOptions())
	for i := 0; i < len(points); i++ {
		require.Equal(t, float32(0), dm.get(i, i))
	}
}

// TestDistMatrixSymmetricAccess verifies that get(i,j) and get(j,i) agree,
// exercising the mirrored accessor path that the forward-only storage
// relies on for i > j lookups.
func TestDistMatrixSymmetricAccess(t *testing.T) {
	fixes := meridianFixes(12, 47.0, 0.03, 1000)
	points, err := toFlatPoints(fixes, DefaultOptions())
	require.NoError(t, err)

	dm := buildDistanceMatrix(points, DefaultOptions())
	for i := 0; i < len(points); i++ {
		for j := i; j < len(points); j++ {
			require.Equal(t, dm.get(i, j), dm.get(j, i))
		}
	}
}

// TestDistMatrixMatchesDirectDistance cross-checks the matrix entries
// against a direct flatPoint.distance computation.
func TestDistMatrixMatchesDirectDistance(t *testing.T) {
	fixes := fixesOf(
		testFix{lat: 47.0, lon: 8.0, alt: 0},
		testFix{lat: 47.1, lon: 8.2, alt: 0},
		testFix{lat: 46.8, lon: 7.9, alt: 0},
	)
	points, err := toFlatPoints(fixes, DefaultOptions())
	require.NoError(t, err)

	dm := buildDistanceMatrix(points, DefaultOptions())
	for i := range points {
		for j := range points {
			want := points[i].distance(points[j])
			require.Equal(t, want, dm.get(i, j))
		}
	}
}

// TestDistMatrixAtBoundsChecked exercises the bounds-checked Matrix
// interface implementation, distinct from the unchecked get() hot path.
func TestDistMatrixAtBoundsChecked(t *testing.T) {
	fixes := meridianFixes(4, 47.0, 0.05, 1000)
	points, err := toFlatPoints(fixes, DefaultOptions())
	require.NoError(t, err)

	dm := buildDistanceMatrix(points, DefaultOptions())
	require.Equal(t, 4, dm.Rows())
	require.Equal(t, 4, dm.Cols())

	_, err = dm.At(-1, 0)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	_, err = dm.At(0, 4)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	v, err := dm.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float64(dm.get(1, 2)), v)
}

// TestDistMatrixRowLengthsAreForwardTriangular confirms row i has exactly
// n-i entries, the storage layout the DP graph builder depends on.
func TestDistMatrixRowLengthsAreForwardTriangular(t *testing.T) {
	fixes := meridianFixes(7, 47.0, 0.02, 1000)
	points, err := toFlatPoints(fixes, DefaultOptions())
	require.NoError(t, err)

	dm := buildDistanceMatrix(points, DefaultOptions())
	for i, row := range dm.rows {
		require.Len(t, row, len(points)-i)
	}
}
