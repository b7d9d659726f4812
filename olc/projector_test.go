package olc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewProjectorDegenerateInput ensures a single-coordinate fix set is
// rejected, since there is no spatial extent to project onto a plane.
func TestNewProjectorDegenerateInput(t *testing.T) {
	fixes := fixesOf(
		testFix{lat: 47.0, lon: 8.0, alt: 1000},
		testFix{lat: 47.0, lon: 8.0, alt: 1200},
		testFix{lat: 47.0, lon: 8.0, alt: 900},
	)
	_, err := newProjector(fixes)
	require.ErrorIs(t, err, ErrDegenerateInput)
}

// TestNewProjectorEmptyInput ensures an empty fix set is also degenerate.
func TestNewProjectorEmptyInput(t *testing.T) {
	_, err := newProjector(nil)
	require.ErrorIs(t, err, ErrDegenerateInput)
}

// TestProjectIdempotent verifies that projecting the same coordinate twice
// yields the identical flat point (spec's projection idempotence property).
func TestProjectIdempotent(t *testing.T) {
	fixes := meridianFixes(5, 47.0, 0.01, 1000)
	proj, err := newProjector(fixes)
	require.NoError(t, err)

	a := proj.project(8.0, 47.02)
	b := proj.project(8.0, 47.02)
	require.Equal(t, a, b)
}

// TestProjectCenterIsOrigin checks that the bounding-box midpoint projects
// to (0, 0), confirming the tangent point is correctly centred.
func TestProjectCenterIsOrigin(t *testing.T) {
	fixes := fixesOf(
		testFix{lat: 47.0, lon: 8.0, alt: 0},
		testFix{lat: 47.2, lon: 8.4, alt: 0},
	)
	proj, err := newProjector(fixes)
	require.NoError(t, err)

	p := proj.project(8.2, 47.1)
	require.InDelta(t, 0.0, float64(p.x), 1e-6)
	require.InDelta(t, 0.0, float64(p.y), 1e-6)
}

// TestToFlatPointsSequentialVsParallel confirms that forcing sequential
// execution (Workers: 1) and the default parallel path produce the same
// projected points, since the projection is a pure per-index function.
func TestToFlatPointsSequentialVsParallel(t *testing.T) {
	fixes := meridianFixes(64, 46.0, 0.01, 500)

	seq, err := toFlatPoints(fixes, Options{Workers: 1})
	require.NoError(t, err)

	par, err := toFlatPoints(fixes, Options{Workers: 0})
	require.NoError(t, err)

	require.Equal(t, seq, par)
}
