// Command aeroscore scores IGC flight logs using the OLC Classic
// algorithm and optionally renders the result as GeoJSON.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/glide-olc/aeroscore/internal/geojson"
	"github.com/glide-olc/aeroscore/internal/igcfmt"
	"github.com/glide-olc/aeroscore/olc"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := &cli.App{
		Name:  "aeroscore",
		Usage: "score IGC flight logs using the OLC Classic algorithm",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "geojson",
				Usage: "emit a GeoJSON FeatureCollection instead of a plain-text summary",
			},
			&cli.StringFlag{
				Name:  "release-time",
				Usage: "discard fixes logged before this UTC time (HH:MM:SS)",
			},
			&cli.StringFlag{
				Name:  "altitude",
				Usage: "altitude source to score against: gps or pressure",
				Value: "gps",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("aeroscore failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("usage: aeroscore [flags] <igc-file>...", 1)
	}

	releaseAfter, err := parseReleaseTime(c.String("release-time"))
	if err != nil {
		return fmt.Errorf("parsing --release-time: %w", err)
	}

	source, err := parseAltitudeSource(c.String("altitude"))
	if err != nil {
		return fmt.Errorf("parsing --altitude: %w", err)
	}

	for _, path := range c.Args().Slice() {
		if err := analyze(path, releaseAfter, source, c.Bool("geojson")); err != nil {
			slog.Error("analyzing flight", "file", path, "error", err)
		}
	}

	return nil
}

func analyze(path string, releaseAfter time.Duration, source igcfmt.AltitudeSource, asGeoJSON bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	igcFixes, err := igcfmt.ParseFixes(f, releaseAfter, source)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fixes := make([]olc.Fix, len(igcFixes))
	for i, fx := range igcFixes {
		fixes[i] = fx
	}

	result, err := olc.Optimize(fixes)
	if err != nil {
		return fmt.Errorf("scoring %s: %w", path, err)
	}

	if asGeoJSON {
		return geojson.Encode(os.Stdout, fixes, result)
	}

	fmt.Printf("--- %s\n", path)
	fmt.Printf("distance: %.2f km\n", result.Distance)
	fmt.Printf("path: %v\n", result.Path)

	return nil
}

// parseReleaseTime parses an "HH:MM:SS" time-of-day string into a
// time.Duration since midnight UTC. An empty string means no filtering.
func parseReleaseTime(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}

	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return 0, err
	}

	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

func parseAltitudeSource(s string) (igcfmt.AltitudeSource, error) {
	switch s {
	case "gps":
		return igcfmt.AltitudeGPS, nil
	case "pressure":
		return igcfmt.AltitudePressure, nil
	default:
		return 0, fmt.Errorf("unknown altitude source %q, want gps or pressure", s)
	}
}
