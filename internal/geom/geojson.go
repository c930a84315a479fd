package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"georaster/internal/geo"
)

// LoadGeo reads a GeoJSON file and returns Data (points, lines, polygons)
func LoadGeo(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return ReadGeoJSON(f)
}

// ReadGeoJSON accepts a FeatureCollection, a Feature or a bare geometry.
func ReadGeoJSON(r io.Reader) (Data, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	var d Data
	var walkGeom func(g map[string]any)
	walkGeom = func(g map[string]any) {
		gt, _ := g["type"].(string)
		coords := g["coordinates"]
		switch gt {
		case "Point":
			if pt, ok := parsePosition(coords); ok {
				d.AddPoint(pt)
			}
		case "MultiPoint":
			for _, pt := range parsePositions(coords) {
				d.AddPoint(pt)
			}
		case "LineString":
			if ls := parsePositions(coords); len(ls) > 0 {
				d.AddLine(ls)
			}
		case "MultiLineString":
			for _, ls := range parseRings(coords) {
				if len(ls) > 0 {
					d.AddLine(ls)
				}
			}
		case "Polygon":
			if poly := parseRings(coords); len(poly) > 0 {
				d.AddPolygon(poly)
			}
		case "MultiPolygon":
			arr, _ := coords.([]any)
			for _, el := range arr {
				if poly := parseRings(el); len(poly) > 0 {
					d.AddPolygon(poly)
				}
			}
		case "GeometryCollection":
			gs, _ := g["geometries"].([]any)
			for _, sub := range gs {
				if sm, ok := sub.(map[string]any); ok {
					walkGeom(sm)
				}
			}
		}
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			if fm, ok := f.(map[string]any); ok {
				if g, ok := fm["geometry"].(map[string]any); ok {
					walkGeom(g)
				}
			}
		}
	case "":
		return Data{}, errors.New("invalid geojson: missing type")
	default:
		walkGeom(raw)
	}
	if d.Empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}

func parsePosition(v any) (geo.Coordinate, bool) {
	a, ok := v.([]any)
	if !ok || len(a) < 2 {
		return geo.Coordinate{}, false
	}
	lon, lok := a[0].(float64)
	lat, aok := a[1].(float64)
	if !lok || !aok {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lon: lon, Lat: lat}, true
}

func parsePositions(v any) []geo.Coordinate {
	arr, _ := v.([]any)
	var pts []geo.Coordinate
	for _, el := range arr {
		if pt, ok := parsePosition(el); ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

func parseRings(v any) [][]geo.Coordinate {
	arr, _ := v.([]any)
	var rings [][]geo.Coordinate
	for _, el := range arr {
		rings = append(rings, parsePositions(el))
	}
	return rings
}
