package geom

import (
	"errors"
	"strconv"
	"strings"

	"georaster/internal/geo"
)

// ParseWKTData parses a subset of WKT: POINT, MULTIPOINT, LINESTRING and
// POLYGON (with holes).
func ParseWKTData(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	// body returns the text between the first open and the last close delimiter.
	body := func(open, end string) (string, bool) {
		i := strings.Index(s, open)
		j := strings.LastIndex(s, end)
		if i < 0 || j <= i {
			return "", false
		}
		return s[i+len(open) : j], true
	}

	var d Data
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		b, ok := body("(", ")")
		if !ok {
			return Data{}, errors.New("wkt multipoint: invalid")
		}
		// both "MULTIPOINT (1 2, 3 4)" and "MULTIPOINT ((1 2), (3 4))"
		b = strings.NewReplacer("(", "", ")", "").Replace(b)
		for _, c := range parseWKTTuples(b) {
			d.AddPoint(c)
		}
	case strings.HasPrefix(up, "POINT"):
		b, ok := body("(", ")")
		if !ok {
			return Data{}, errors.New("wkt point: invalid")
		}
		for _, c := range parseWKTTuples(b) {
			d.AddPoint(c)
		}
	case strings.HasPrefix(up, "LINESTRING"):
		b, ok := body("(", ")")
		if !ok {
			return Data{}, errors.New("wkt linestring: invalid")
		}
		if ls := parseWKTTuples(b); len(ls) > 0 {
			d.AddLine(ls)
		}
	case strings.HasPrefix(up, "POLYGON"):
		b, ok := body("((", "))")
		if !ok {
			return Data{}, errors.New("wkt polygon: invalid")
		}
		var poly [][]geo.Coordinate
		for _, ring := range splitWKTRings(b) {
			if pts := parseWKTTuples(ring); len(pts) > 0 {
				poly = append(poly, pts)
			}
		}
		if len(poly) > 0 {
			d.AddPolygon(poly)
		}
	default:
		return Data{}, errors.New("unsupported wkt type")
	}
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// splitWKTRings splits "x y, ...), (x y, ..." into ring bodies.
func splitWKTRings(s string) []string {
	var rings []string
	for _, part := range strings.Split(s, ")") {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, ",")
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "(")
		if strings.TrimSpace(part) != "" {
			rings = append(rings, part)
		}
	}
	return rings
}

// parseWKTTuples splits "x y, x y" into coordinates, skipping malformed tuples.
func parseWKTTuples(block string) []geo.Coordinate {
	var out []geo.Coordinate
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, geo.Coordinate{Lon: x, Lat: y})
	}
	return out
}
