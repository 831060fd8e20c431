package extract

import (
	"regexp"
	"strconv"
	"strings"

	"valuematch/geo"
)

var coordinatesPattern = regexp.MustCompile(
	`-?(90|[0-8]?[0-9]\.[0-9]{0,8})\s*,\s*-?(180|(1[0-7][0-9]|[0-9]{0,2})\.[0-9]{0,8})`)

// Coordinates finds the first "lat,lon" pair in s. The pair is removed and
// the rest trimmed; without a pair s is returned unchanged with a nil point.
//
//	Coordinates("Text part 38.8897,-77.0089") // "Text part", (38.8897, -77.0089)
func Coordinates(s string) (string, *geo.Point) {
	loc := coordinatesPattern.FindStringIndex(s)
	if loc == nil {
		return s, nil
	}

	lat, lon, ok := strings.Cut(s[loc[0]:loc[1]], ",")
	if !ok {
		return s, nil
	}

	p, ok := parsePoint(lat, lon)
	if !ok {
		return s, nil
	}

	return strings.TrimSpace(s[:loc[0]] + s[loc[1]:]), p
}

func parsePoint(lat, lon string) (*geo.Point, bool) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return nil, false
	}

	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return nil, false
	}

	return &geo.Point{Lat: la, Lon: lo}, true
}
