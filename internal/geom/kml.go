package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"georaster/internal/geo"
)

// LoadKML extracts placemark geometry from a KML file.
func LoadKML(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return ReadKML(f)
}

// ReadKML reads Placemark Point, LineString and Polygon geometry.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func ReadKML(r io.Reader) (Data, error) {
	type kmlCoords struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlRing struct {
		LinearRing kmlCoords `xml:"LinearRing"`
	}
	type kmlPolygon struct {
		Outer kmlRing   `xml:"outerBoundaryIs"`
		Inner []kmlRing `xml:"innerBoundaryIs"`
	}
	type kmlPlacemark struct {
		Point      *kmlCoords  `xml:"Point"`
		LineString *kmlCoords  `xml:"LineString"`
		Polygon    *kmlPolygon `xml:"Polygon"`
	}
	// Placemarks may sit directly under kml or nested in Document/Folder.
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Placemark"`
		Document   []kmlPlacemark `xml:"Document>Placemark"`
		Folder     []kmlPlacemark `xml:"Document>Folder>Placemark"`
	}

	var doc kmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Data{}, fmt.Errorf("kml: %w", err)
	}
	var d Data
	all := append(append(doc.Placemarks, doc.Document...), doc.Folder...)
	for _, pm := range all {
		switch {
		case pm.Point != nil:
			for _, c := range parseKMLCoords(pm.Point.Coordinates) {
				d.AddPoint(c)
			}
		case pm.LineString != nil:
			if ls := parseKMLCoords(pm.LineString.Coordinates); len(ls) > 0 {
				d.AddLine(ls)
			}
		case pm.Polygon != nil:
			poly := [][]geo.Coordinate{parseKMLCoords(pm.Polygon.Outer.LinearRing.Coordinates)}
			for _, in := range pm.Polygon.Inner {
				poly = append(poly, parseKMLCoords(in.LinearRing.Coordinates))
			}
			if len(poly[0]) > 0 {
				d.AddPolygon(poly)
			}
		}
	}
	if d.Empty() {
		return Data{}, errors.New("kml: no placemarks found")
	}
	return d, nil
}

// parseKMLCoords splits whitespace-separated "lon,lat[,alt]" tuples.
func parseKMLCoords(s string) []geo.Coordinate {
	var out []geo.Coordinate
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, geo.Coordinate{Lon: lon, Lat: lat})
	}
	return out
}
