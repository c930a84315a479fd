package geom

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Attributes returns a table of per-feature properties for formats that
// carry them: GeoJSON properties (keys unioned in first-seen order) and
// CSV columns. Other formats yield no columns and no error.
func Attributes(path string) (cols []string, rows [][]string, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return geoJSONAttributes(path)
	case ".csv":
		return csvAttributes(path)
	}
	return nil, nil, nil
}

func geoJSONAttributes(path string) ([]string, [][]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var raw struct {
		Type       string           `json:"type"`
		Properties map[string]any   `json:"properties"`
		Features   []map[string]any `json:"features"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, nil, fmt.Errorf("geojson: %w", err)
	}
	var props []map[string]any
	switch raw.Type {
	case "FeatureCollection":
		for _, f := range raw.Features {
			pm, _ := f["properties"].(map[string]any)
			props = append(props, pm)
		}
	case "Feature":
		props = append(props, raw.Properties)
	default:
		// bare geometry
		return nil, nil, nil
	}

	var order []string
	seen := map[string]bool{}
	for _, pm := range props {
		keys := make([]string, 0, len(pm))
		for k := range pm {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
	}
	rows := make([][]string, 0, len(props))
	for _, pm := range props {
		vals := make([]string, 0, len(order))
		for _, k := range order {
			vals = append(vals, formatValue(pm[k]))
		}
		rows = append(rows, vals)
	}
	return order, rows, nil
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}

func csvAttributes(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return nil, nil, nil
	}
	header := recs[0]
	rows := make([][]string, 0, len(recs)-1)
	for _, row := range recs[1:] {
		vals := make([]string, len(header))
		copy(vals, row)
		rows = append(rows, vals)
	}
	return header, rows, nil
}
