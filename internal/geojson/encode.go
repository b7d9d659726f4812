// Package geojson renders a scored flight track as a GeoJSON
// FeatureCollection: the raw GPS trace plus the winning OLC path,
// styled for direct display on a slippy map. It depends on olc; olc
// never depends on it.
package geojson

import (
	"encoding/json"
	"io"

	"github.com/glide-olc/aeroscore/olc"
)

const (
	trackStroke = "#005717"
	olcStroke   = "#ff40ff"
)

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Properties properties `json:"properties"`
	Geometry   geometry   `json:"geometry"`
}

type properties struct {
	Stroke   string   `json:"stroke"`
	Distance *float64 `json:"distance,omitempty"`
}

type geometry struct {
	Type        string      `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// Encode writes a two-feature GeoJSON FeatureCollection to w: the full
// GPS track (id "gps-track") and the winning OLC path (id "olc"),
// carrying result.Distance as a property. Coordinates are emitted
// [longitude, latitude], per the GeoJSON spec's axis order.
func Encode(w io.Writer, fixes []olc.Fix, result olc.Result) error {
	trackCoords := make([][2]float64, len(fixes))
	for i, f := range fixes {
		trackCoords[i] = [2]float64{f.Longitude(), f.Latitude()}
	}

	olcCoords := make([][2]float64, len(result.Path))
	for i, idx := range result.Path {
		f := fixes[idx]
		olcCoords[i] = [2]float64{f.Longitude(), f.Latitude()}
	}

	distance := result.Distance
	fc := featureCollection{
		Type: "FeatureCollection",
		Features: []feature{
			{
				ID:         "gps-track",
				Type:       "Feature",
				Properties: properties{Stroke: trackStroke},
				Geometry:   geometry{Type: "LineString", Coordinates: trackCoords},
			},
			{
				ID:         "olc",
				Type:       "Feature",
				Properties: properties{Stroke: olcStroke, Distance: &distance},
				Geometry:   geometry{Type: "LineString", Coordinates: olcCoords},
			},
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(fc)
}
