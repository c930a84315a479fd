package geom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"georaster/internal/geo"
)

func TestParseWKTData(t *testing.T) {
	d, err := ParseWKTData("POINT (1 2)")
	require.NoError(t, err)
	assert.Equal(t, []geo.Coordinate{{Lon: 1, Lat: 2}}, d.Points)

	d, err = ParseWKTData("MULTIPOINT ((1 2), (3 4))")
	require.NoError(t, err)
	assert.Len(t, d.Points, 2)
	assert.Equal(t, BBox{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}, d.BBox)

	d, err = ParseWKTData("linestring(0 0, 10 5, 20 -5)")
	require.NoError(t, err)
	require.Len(t, d.Lines, 1)
	assert.Len(t, d.Lines[0], 3)
	assert.Equal(t, BBox{MinX: 0, MinY: -5, MaxX: 20, MaxY: 5}, d.BBox)

	d, err = ParseWKTData("POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 4 2, 4 4, 2 2))")
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	require.Len(t, d.Polygons[0], 2)
	assert.Len(t, d.Polygons[0][0], 5)
	assert.Len(t, d.Polygons[0][1], 4)
	assert.True(t, d.BBox.Area())
}

func TestParseWKTDataErrors(t *testing.T) {
	for _, s := range []string{"", "  ", "CIRCLE(1 2)", "POINT", "POLYGON (1 2)", "POINT (a b)"} {
		_, err := ParseWKTData(s)
		assert.Error(t, err, s)
	}
}

func TestReadGeoJSON(t *testing.T) {
	src := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"name":"a"},"geometry":{"type":"Point","coordinates":[1,2]}},
		{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[5,5]]}},
		{"type":"Feature","geometry":{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]],[[[5,5],[6,5],[6,6],[5,5]]]]}},
		{"type":"Feature","geometry":{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[-3,7]}]}}
	]}`
	d, err := ReadGeoJSON(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, d.Points, 2)
	assert.Len(t, d.Lines, 1)
	assert.Len(t, d.Polygons, 2)
	assert.Equal(t, BBox{MinX: -3, MinY: 0, MaxX: 6, MaxY: 7}, d.BBox)

	_, err = ReadGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[]}`))
	assert.Error(t, err)
	_, err = ReadGeoJSON(strings.NewReader(`{}`))
	assert.Error(t, err)
	_, err = ReadGeoJSON(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestReadCSV(t *testing.T) {
	d, err := ReadCSV(strings.NewReader("name,Latitude,LNG\na,10,20\nb,bad,1\nc,-5,30\n"))
	require.NoError(t, err)
	assert.Equal(t, []geo.Coordinate{{Lon: 20, Lat: 10}, {Lon: 30, Lat: -5}}, d.Points)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n"))
	assert.Error(t, err)
	_, err = ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadKML(t *testing.T) {
	src := `<?xml version="1.0"?>
<kml xmlns="http://www.opengis.net/kml/2.2"><Document>
  <Placemark><Point><coordinates>1.5,2.5,0</coordinates></Point></Placemark>
  <Placemark><LineString><coordinates>0,0 1,1 2,0</coordinates></LineString></Placemark>
  <Folder><Placemark><Polygon><outerBoundaryIs><LinearRing>
    <coordinates>0,0 4,0 4,4 0,0</coordinates>
  </LinearRing></outerBoundaryIs></Polygon></Placemark></Folder>
</Document></kml>`
	d, err := ReadKML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []geo.Coordinate{{Lon: 1.5, Lat: 2.5}}, d.Points)
	require.Len(t, d.Lines, 1)
	assert.Len(t, d.Lines[0], 3)
	require.Len(t, d.Polygons, 1)
	assert.Len(t, d.Polygons[0][0], 4)

	_, err = ReadKML(strings.NewReader(`<kml></kml>`))
	assert.Error(t, err)
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "shape.wkt")
	require.NoError(t, os.WriteFile(p, []byte("LINESTRING (0 0, 1 1)"), 0o644))
	d, err := Load(p)
	require.NoError(t, err)
	assert.Len(t, d.Lines, 1)

	assert.True(t, Supported("x.GeoJSON"))
	assert.False(t, Supported("x.shp"))
	_, err = Load(filepath.Join(dir, "x.shp"))
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	d, err := ParseWKTData("POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	require.NoError(t, err)
	d.AddPoint(geo.Coordinate{Lon: 50, Lat: 50})

	ix := NewIndex(d)
	assert.Equal(t, 6, ix.Len())

	v, ok := ix.Nearest(geo.Coordinate{Lon: 9, Lat: 1})
	require.True(t, ok)
	assert.Equal(t, geo.Coordinate{Lon: 10, Lat: 0}, v.Coordinate)
	assert.Equal(t, KindPolygon, v.Kind)

	v, ok = ix.Nearest(geo.Coordinate{Lon: 45, Lat: 48})
	require.True(t, ok)
	assert.Equal(t, KindPoint, v.Kind)

	in := ix.Within(BBox{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1})
	assert.Len(t, in, 2) // the ring's first and closing vertex

	_, ok = NewIndex(Data{}).Nearest(geo.Coordinate{})
	assert.False(t, ok)
}
