package igcfmt

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strconv"
	"time"
)

// ErrMalformedRecord is returned when a line beginning with 'B' does not
// match the IGC B-record layout.
var ErrMalformedRecord = errors.New("igcfmt: malformed B record")

// bRecordRE matches a standard IGC B-record:
//
//	B HHMMSS DDMMmmm[N/S] DDDMMmmm[E/W] A PPPPP GGGGG
//
// time, latitude (degrees + thousandths of minutes), longitude (degrees +
// thousandths of minutes), fix-validity letter, and two five-digit (or
// negative four-digit) altitude fields.
var bRecordRE = regexp.MustCompile(
	`^B(\d{2})(\d{2})(\d{2})` +
		`(\d{2})(\d{5})([NS])` +
		`(\d{3})(\d{5})([EW])` +
		`([A-Z])` +
		`(\d{5}|-\d{4})` +
		`(\d{5}|-\d{4})`,
)

// ParseFix parses a single IGC B-record line. The returned Fix's
// altitudeSource is unset (AltitudeGPS); ParseFixes applies the caller's
// chosen source to every fix it returns.
func ParseFix(line string) (Fix, error) {
	m := bRecordRE.FindStringSubmatch(line)
	if m == nil {
		return Fix{}, ErrMalformedRecord
	}

	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	ss, _ := strconv.Atoi(m[3])
	seconds := time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute + time.Duration(ss)*time.Second

	latDeg, _ := strconv.ParseFloat(m[4], 64)
	latMinThousandths, _ := strconv.ParseFloat(m[5], 64)
	lat := latDeg + latMinThousandths/60000.0
	if m[6] == "S" {
		lat = -lat
	}

	lonDeg, _ := strconv.ParseFloat(m[7], 64)
	lonMinThousandths, _ := strconv.ParseFloat(m[8], 64)
	lon := lonDeg + lonMinThousandths/60000.0
	if m[9] == "W" {
		lon = -lon
	}

	altGPS, err := strconv.Atoi(m[12])
	if err != nil {
		return Fix{}, ErrMalformedRecord
	}
	altPressure, err := strconv.Atoi(m[11])
	if err != nil {
		return Fix{}, ErrMalformedRecord
	}

	return Fix{
		Time:             seconds,
		Lat:              lat,
		Lon:              lon,
		AltitudeGPS:      int16(altGPS),
		AltitudePressure: int16(altPressure),
	}, nil
}

// ParseFixes scans r line by line, parsing every line beginning with 'B'
// as a B-record and discarding fixes timestamped before releaseAfter
// (time since midnight UTC) — the pre-launch ground fixes an IGC logger
// typically records before the release time. A releaseAfter of zero
// keeps every fix. source selects which altitude field each returned
// Fix.Altitude() reports.
func ParseFixes(r io.Reader, releaseAfter time.Duration, source AltitudeSource) ([]Fix, error) {
	var fixes []Fix

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] != 'B' {
			continue
		}

		f, err := ParseFix(line)
		if err != nil {
			return nil, err
		}
		if f.Time < releaseAfter {
			continue
		}

		f.altitudeSource = source
		fixes = append(fixes, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return fixes, nil
}
