package scene

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"georaster/internal/config"
	"georaster/internal/geo"
	"georaster/internal/geom"
	"georaster/internal/glyph"
	"georaster/internal/pixel"
)

// 361x181 maps lon/lat to whole pixels: x = lon+180, y = 90-lat.
const testW, testH = 361, 181

func testRenderer() *Renderer {
	return NewRenderer(Style{
		Background:  pixel.Color{1, 1, 1, 255},
		Fill:        pixel.Color{0, 200, 0, 255},
		Line:        pixel.Color{0, 0, 200, 255},
		Point:       pixel.Color{200, 0, 0, 255},
		PointRadius: 2,
	})
}

func get(t *testing.T, b *pixel.Buffer, x, y int) pixel.Color {
	t.Helper()
	c, err := b.Get(x, y)
	require.NoError(t, err)
	return c
}

func TestRenderPolygonWithHole(t *testing.T) {
	d, err := geom.ParseWKTData("POLYGON ((0 0, 20 0, 20 20, 0 20, 0 0), (5 5, 15 5, 15 15, 5 15, 5 5))")
	require.NoError(t, err)

	r := testRenderer()
	buf, st, err := r.Render(d, testW, testH)
	require.NoError(t, err)
	assert.Equal(t, Stats{Polygons: 1}, st)

	assert.Equal(t, r.Style.Fill, get(t, buf, 182, 88))      // lon 2, lat 2
	assert.Equal(t, pixel.Black, get(t, buf, 180, 80))        // outer edge
	assert.Equal(t, r.Style.Background, get(t, buf, 190, 80)) // hole center (10, 10)
	assert.Equal(t, r.Style.Background, get(t, buf, 10, 10))
}

func TestRenderLinesAndPoints(t *testing.T) {
	var d geom.Data
	d.AddLine([]geo.Coordinate{{Lon: -10, Lat: 0}, {Lon: 10, Lat: 0}})
	d.AddPoint(geo.Coordinate{Lon: 100, Lat: -45})
	d.AddPoint(geo.Coordinate{Lon: 500, Lat: 0})

	r := testRenderer()
	buf, st, err := r.Render(d, testW, testH)
	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 1, Points: 1, Skipped: 1}, st)
	assert.Equal(t, r.Style.Line, get(t, buf, 180, 90))
	assert.Equal(t, r.Style.Point, get(t, buf, 279, 135))

	r.Layers = Layers{}
	buf, st, err = r.Render(d, testW, testH)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
	assert.Equal(t, r.Style.Background, get(t, buf, 180, 90))
}

func TestRenderSkipsOffGlobePolygon(t *testing.T) {
	d, err := geom.ParseWKTData("POLYGON ((170 0, 190 0, 190 10, 170 0))")
	require.NoError(t, err)
	_, st, err := testRenderer().Render(d, testW, testH)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Skipped)
}

func TestStyleFromConfig(t *testing.T) {
	s := StyleFromConfig(config.Default().Map)
	assert.Equal(t, pixel.Color{0x2E, 0x7D, 0x32, 0xFF}, s.Fill)
	assert.Equal(t, 3.0, s.PointRadius)
}

func TestHighlight(t *testing.T) {
	buf := pixel.New(testW, testH)
	col := pixel.Color{255, 165, 0, 255}
	p := geo.Coordinate{Lon: 0, Lat: 0}.Screen(testW, testH)
	require.NoError(t, Highlight(buf, p, 4, col))
	assert.Equal(t, col, get(t, buf, 176, 90))
	assert.Equal(t, pixel.Transparent, get(t, buf, 180, 90))
}

func TestCaptionAndPNG(t *testing.T) {
	face, err := glyph.DefaultFace()
	require.NoError(t, err)
	buf := pixel.New(200, 60)
	buf.Fill(pixel.Color{0, 0, 0, 255})
	require.NoError(t, Caption(buf, face, "Map", 24, pixel.Color{255, 255, 255, 255}, image.Pt(4, 4)))

	var lit int
	data := buf.Bytes()
	for i := 0; i < len(data); i += 4 {
		if data[i] > 0 {
			lit++
			assert.Equal(t, data[i], data[i+1], "white text stays gray")
		}
	}
	assert.Positive(t, lit)
	require.NoError(t, Caption(buf, face, "", 24, pixel.Color{}, image.Pt(0, 0)))

	var out bytes.Buffer
	require.NoError(t, WritePNG(&out, buf))
	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 60), img.Bounds())
}
