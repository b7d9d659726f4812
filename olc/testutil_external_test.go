package olc_test

import (
	"math"
	"math/rand"

	"github.com/glide-olc/aeroscore/olc"
)

// fix is a minimal olc.Fix implementation for the package's black-box
// tests.
type fix struct {
	lat, lon float64
	alt      int16
}

func (f fix) Latitude() float64  { return f.lat }
func (f fix) Longitude() float64 { return f.lon }
func (f fix) Altitude() int16    { return f.alt }

func fixesOf(raw ...fix) []olc.Fix {
	out := make([]olc.Fix, len(raw))
	for i, f := range raw {
		out[i] = f
	}

	return out
}

// meridianFixes returns n fixes equally spaced along a meridian (constant
// longitude, increasing latitude), all at altitude alt.
func meridianFixes(n int, startLat, step float64, alt int16) []olc.Fix {
	out := make([]olc.Fix, n)
	for i := 0; i < n; i++ {
		out[i] = fix{lat: startLat + float64(i)*step, lon: 8.0, alt: alt}
	}

	return out
}

// randomFixes returns n fixes scattered within a small bounding box around
// Switzerland, with altitudes randomized within a band that makes the 1000m
// rule bind for some but not all candidate paths.
func randomFixes(rng *rand.Rand, n int) []olc.Fix {
	out := make([]olc.Fix, n)
	for i := 0; i < n; i++ {
		out[i] = fix{
			lat: 46.0 + rng.Float64()*2.0,
			lon: 7.0 + rng.Float64()*3.0,
			alt: int16(500 + rng.Intn(3000)),
		}
	}

	return out
}

// haversineKM is a small, independently written reference distance
// function used only to cross-check olc.Optimize's final recomputed
// distance against an implementation with no shared code path.
func haversineKM(a, b olc.Fix) float64 {
	const earthRadiusKM = 6371.0

	phi1 := a.Latitude() * math.Pi / 180
	phi2 := b.Latitude() * math.Pi / 180
	deltaPhi := (b.Latitude() - a.Latitude()) * math.Pi / 180
	deltaLambda := (b.Longitude() - a.Longitude()) * math.Pi / 180

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKM * c
}

// bruteForceBest scans every monotone 7-index sequence (brute force over
// legs C(n,7)-style nested loops) and returns the largest haversine
// distance among rule-compliant paths. It exists only to provide a ground
// truth for small N in tests; production code never runs this.
func bruteForceBest(fixes []olc.Fix, ruleMeters int16) (float64, olc.Path) {
	n := len(fixes)
	best := -1.0
	var bestPath olc.Path

	var path [7]int
	var rec func(depth, minNext int)
	rec = func(depth, minNext int) {
		if depth == 7 {
			start := fixes[path[0]].Altitude()
			finish := fixes[path[6]].Altitude()
			if start-finish > ruleMeters {
				return
			}
			d := 0.0
			for i := 0; i < 6; i++ {
				d += haversineKM(fixes[path[i]], fixes[path[i+1]])
			}
			if d > best {
				best = d
				bestPath = append(olc.Path{}, path[:]...)
			}

			return
		}
		for i := minNext; i < n; i++ {
			path[depth] = i
			rec(depth+1, i)
		}
	}
	rec(0, 0)

	return best, bestPath
}
