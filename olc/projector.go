package olc

import "math"

// earthRadiusKM is the mean Earth radius used both by the planar
// projection's scale factor and by the haversine recomputer (haversine.go),
// matching original_source/src/haversine.rs's R = 6371.
const earthRadiusKM = 6371.0

// projector maps geographic coordinates (degrees) onto a local tangent
// plane in kilometres, centred on the fix set's bounding box. It is a
// pure function of the fix set: the same fixes always yield the same
// tangent point and therefore the same flat points (spec §4.1,
// "projection idempotence").
//
// The tangent latitude φ₀ is the midpoint of the fix set's latitude
// range; the tangent longitude λ₀ (midpoint of the longitude range) keeps
// projected x-coordinates small and symmetric, though only relative
// distances ever feed the DP — any fixed λ₀ would do.
type projector struct {
	centerLatRad float64
	centerLonRad float64
	cosCenterLat float64
}

// newProjector derives the tangent point from fixes. It returns
// ErrDegenerateInput if every fix shares the same (latitude, longitude)
// coordinate — there is then no spatial extent to project onto a plane
// and every leg distance would be zero by construction (spec §6).
func newProjector(fixes []Fix) (*projector, error) {
	if len(fixes) == 0 {
		return nil, ErrDegenerateInput
	}

	latMin, latMax := fixes[0].Latitude(), fixes[0].Latitude()
	lonMin, lonMax := fixes[0].Longitude(), fixes[0].Longitude()
	for _, f := range fixes[1:] {
		lat, lon := f.Latitude(), f.Longitude()
		if lat < latMin {
			latMin = lat
		}
		if lat > latMax {
			latMax = lat
		}
		if lon < lonMin {
			lonMin = lon
		}
		if lon > lonMax {
			lonMax = lon
		}
	}
	if latMin == latMax && lonMin == lonMax {
		return nil, ErrDegenerateInput
	}

	centerLat := (latMin + latMax) / 2
	centerLon := (lonMin + lonMax) / 2
	centerLatRad := centerLat * math.Pi / 180

	return &projector{
		centerLatRad: centerLatRad,
		centerLonRad: centerLon * math.Pi / 180,
		cosCenterLat: math.Cos(centerLatRad),
	}, nil
}

// project converts one geographic coordinate to a flat point in
// kilometres about the tangent point. The approximation is equirectangular
// about φ₀: the east-west scale cos φ₀ is exact only at φ₀, so at
// mid-latitudes east-west distances drift by roughly 2% per degree of
// latitude away from it (spec §4.1). Only the DP uses these distances; the reported score is
// recomputed with haversine.
func (p *projector) project(lon, lat float64) flatPoint {
	lonRad := lon * math.Pi / 180
	latRad := lat * math.Pi / 180

	x := earthRadiusKM * p.cosCenterLat * (lonRad - p.centerLonRad)
	y := earthRadiusKM * (latRad - p.centerLatRad)

	return flatPoint{x: float32(x), y: float32(y)}
}

// distance returns the planar Euclidean distance between two flat points,
// in kilometres.
func (a flatPoint) distance(b flatPoint) float32 {
	dx := a.x - b.x
	dy := a.y - b.y

	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// toFlatPoints projects every fix, in parallel across rows when the
// caller's worker budget allows it (spec §4.1 "all fixes use the same
// projection"; §5 "independent rows ... may be computed in parallel").
func toFlatPoints(fixes []Fix, opts Options) ([]flatPoint, error) {
	proj, err := newProjector(fixes)
	if err != nil {
		return nil, err
	}

	points := make([]flatPoint, len(fixes))
	parallelFor(len(fixes), opts.workerCount(), func(i int) {
		points[i] = proj.project(fixes[i].Longitude(), fixes[i].Latitude())
	})

	return points, nil
}
