// Package igcfmt parses IGC flight-recorder B-records into olc.Fix
// values. It depends on olc; olc never depends on it.
package igcfmt

import "time"

// Fix is a single IGC B-record: a timestamped position and two competing
// altitude readings. It implements olc.Fix; which of AltitudeGPS and
// AltitudePressure its Altitude method reports is chosen by the source
// argument of ParseFixes.
type Fix struct {
	Time            time.Duration // time since midnight UTC
	Lat             float64
	Lon             float64
	AltitudeGPS      int16
	AltitudePressure int16

	// altitudeSource selects which of the two altitude fields
	// Altitude() reports, set by ParseFixes per the caller's choice.
	altitudeSource AltitudeSource
}

// AltitudeSource selects which B-record altitude field a Fix reports
// through olc.Fix.Altitude().
type AltitudeSource int

const (
	AltitudeGPS AltitudeSource = iota
	AltitudePressure
)

// Latitude implements olc.Fix.
func (f Fix) Latitude() float64 { return f.Lat }

// Longitude implements olc.Fix.
func (f Fix) Longitude() float64 { return f.Lon }

// Altitude implements olc.Fix, reporting whichever altitude source the
// parse call selected.
func (f Fix) Altitude() int16 {
	if f.altitudeSource == AltitudePressure {
		return f.AltitudePressure
	}

	return f.AltitudeGPS
}
