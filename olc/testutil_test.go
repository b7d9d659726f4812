package olc

// testFix is a minimal Fix implementation for white-box unit tests of the
// package's internal collaborators (projector, distance matrix, DP graph).
type testFix struct {
	lat, lon float64
	alt      int16
}

func (f testFix) Latitude() float64  { return f.lat }
func (f testFix) Longitude() float64 { return f.lon }
func (f testFix) Altitude() int16    { return f.alt }

// fixesOf adapts a slice of testFix into []Fix.
func fixesOf(raw ...testFix) []Fix {
	out := make([]Fix, len(raw))
	for i, f := range raw {
		out[i] = f
	}

	return out
}

// meridianFixes returns n fixes equally spaced along a meridian
// (constant longitude, increasing latitude), all at altitude alt.
func meridianFixes(n int, startLat, step float64, alt int16) []Fix {
	out := make([]Fix, n)
	for i := 0; i < n; i++ {
		out[i] = testFix{lat: startLat + float64(i)*step, lon: 8.0, alt: alt}
	}

	return out
}
