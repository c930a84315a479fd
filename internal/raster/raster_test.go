package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"georaster/internal/geo"
	"georaster/internal/pixel"
)

var red = pixel.Color{255, 0, 0, 255}

func pts(xy ...float64) []geo.Point {
	out := make([]geo.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geo.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func at(t *testing.T, b *pixel.Buffer, x, y int) pixel.Color {
	t.Helper()
	c, err := b.Get(x, y)
	require.NoError(t, err)
	return c
}

func TestDrawPolygonSquare(t *testing.T) {
	b := pixel.New(12, 12)
	require.NoError(t, DrawPolygon(b, pts(0, 0, 10, 0, 10, 10, 0, 10), red))

	for y := 0; y <= 10; y++ {
		for x := 0; x <= 10; x++ {
			got := at(t, b, x, y)
			if x == 0 || y == 0 || x == 10 || y == 10 {
				assert.Equal(t, pixel.Black, got, "border (%d,%d)", x, y)
			} else {
				assert.Equal(t, red, got, "interior (%d,%d)", x, y)
			}
		}
	}
	// nothing outside the polygon
	for i := 0; i < 12; i++ {
		assert.Equal(t, pixel.Transparent, at(t, b, 11, i))
		assert.Equal(t, pixel.Transparent, at(t, b, i, 11))
	}
}

func TestDrawPolygonTriangle(t *testing.T) {
	b := pixel.New(21, 21)
	require.NoError(t, DrawPolygon(b, pts(10, 0, 20, 20, 0, 20), red))

	assert.Equal(t, red, at(t, b, 10, 15))
	assert.Equal(t, pixel.Black, at(t, b, 10, 0))
	assert.Equal(t, pixel.Black, at(t, b, 0, 20))
	assert.Equal(t, pixel.Transparent, at(t, b, 1, 1))
	assert.Equal(t, pixel.Transparent, at(t, b, 19, 1))
}

func TestDrawPolygonEvenOdd(t *testing.T) {
	// A "U": the notch between the arms is outside.
	b := pixel.New(31, 31)
	u := pts(0, 0, 10, 0, 10, 20, 20, 20, 20, 0, 30, 0, 30, 30, 0, 30)
	require.NoError(t, DrawPolygon(b, u, red))

	assert.Equal(t, red, at(t, b, 5, 10))
	assert.Equal(t, red, at(t, b, 25, 10))
	assert.Equal(t, pixel.Transparent, at(t, b, 15, 10))
	assert.Equal(t, red, at(t, b, 15, 25))
}

func TestDrawPolygonBowtie(t *testing.T) {
	// The lobes wind in opposite directions, so the signed area is zero.
	b := pixel.New(11, 11)
	require.NoError(t, DrawPolygon(b, pts(0, 0, 10, 10, 10, 0, 0, 10), red))

	assert.Equal(t, red, at(t, b, 2, 5), "left lobe")
	assert.Equal(t, red, at(t, b, 8, 5), "right lobe")
	assert.Equal(t, pixel.Transparent, at(t, b, 5, 2), "between the lobes")
}

func TestFillSamplesHalfRows(t *testing.T) {
	// x = 4y along the slanted edge. Row 3 is also sampled at y = 3.5,
	// which reaches x = 14; a whole-row step would stop at x = 12.
	b := pixel.New(41, 11)
	require.NoError(t, fill(b, edges(pts(0, 0, 40, 10, 0, 10)), red))

	assert.Equal(t, red, at(t, b, 14, 3))
	assert.Equal(t, pixel.Transparent, at(t, b, 15, 3))
	assert.Equal(t, red, at(t, b, 2, 0))
	assert.Equal(t, pixel.Transparent, at(t, b, 3, 0))

	b = pixel.New(41, 11)
	require.NoError(t, DrawPolygon(b, pts(0, 0, 40, 10, 0, 10), red))
	assert.Equal(t, red, at(t, b, 14, 3))
}

func TestDrawPolygonDegenerate(t *testing.T) {
	cases := map[string][]geo.Point{
		"empty":     nil,
		"single":    pts(3, 3),
		"segment":   pts(1, 1, 8, 8),
		"repeated":  pts(1, 1, 8, 8, 1, 1, 8, 8),
		"collinear": pts(1, 1, 4, 4, 8, 8),
	}
	for name, poly := range cases {
		t.Run(name, func(t *testing.T) {
			b := pixel.New(10, 10)
			require.NoError(t, DrawPolygon(b, poly, red))
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					assert.NotEqual(t, red, at(t, b, x, y))
				}
			}
		})
	}

	b := pixel.New(10, 10)
	require.NoError(t, DrawPolygon(b, pts(1, 1, 8, 8), red))
	assert.Equal(t, pixel.Black, at(t, b, 4, 4), "outline still drawn")
}

func TestDrawPolygonOutOfBounds(t *testing.T) {
	b := pixel.New(10, 10)
	err := DrawPolygon(b, pts(0, 0, 10, 0, 10, 10, 0, 10), red)
	assert.ErrorIs(t, err, pixel.ErrIndexOutOfBounds)
}

func TestDrawLine(t *testing.T) {
	b := pixel.New(5, 5)
	require.NoError(t, DrawLine(b, geo.Point{X: 0, Y: 0}, geo.Point{X: 4, Y: 4}, red))
	for i := 0; i < 5; i++ {
		assert.Equal(t, red, at(t, b, i, i))
	}
	assert.Equal(t, pixel.Transparent, at(t, b, 1, 0))

	b = pixel.New(5, 5)
	require.NoError(t, DrawLine(b, geo.Point{X: 3.6, Y: 0.4}, geo.Point{X: 3.6, Y: 0.4}, red))
	assert.Equal(t, red, at(t, b, 4, 0), "endpoints round to nearest pixel")

	assert.ErrorIs(t, DrawLine(b, geo.Point{}, geo.Point{X: 5, Y: 0}, red), pixel.ErrIndexOutOfBounds)
}

func TestDrawPolyline(t *testing.T) {
	b := pixel.New(5, 5)
	require.NoError(t, DrawPolyline(b, pts(0, 0, 4, 0, 4, 4), red))
	assert.Equal(t, red, at(t, b, 2, 0))
	assert.Equal(t, red, at(t, b, 4, 2))
	assert.Equal(t, pixel.Transparent, at(t, b, 0, 4), "path is not closed")
}

func TestStrokeCircle(t *testing.T) {
	b := pixel.New(21, 21)
	require.NoError(t, StrokeCircle(b, 10, 10, 8, 2, red))

	assert.Equal(t, red, at(t, b, 10, 3), "on the ring")
	assert.Equal(t, red, at(t, b, 3, 10))
	assert.Equal(t, pixel.Transparent, at(t, b, 10, 10), "center")
	assert.Equal(t, pixel.Transparent, at(t, b, 0, 0), "corner")
}

func TestStrokeCircleClipped(t *testing.T) {
	b := pixel.New(5, 5)
	require.NoError(t, StrokeCircle(b, 0, 0, 4, 1, red))
	assert.Equal(t, red, at(t, b, 3, 0))
	assert.Equal(t, pixel.Transparent, at(t, b, 0, 0))
}
