package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenCoordinateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		w := 2 + rng.Float64()*2000
		h := 2 + rng.Float64()*2000
		p := Point{X: rng.Float64() * (w - 1), Y: rng.Float64() * (h - 1)}
		q := p.Coordinate(w, h).Screen(w, h)
		assert.InDelta(t, p.X, q.X, 1e-9)
		assert.InDelta(t, p.Y, q.Y, 1e-9)
	}
}

func TestProjectionCorners(t *testing.T) {
	cases := []struct {
		p    Point
		want Coordinate
	}{
		{Point{0, 0}, Coordinate{-180, 90}},
		{Point{99, 49}, Coordinate{180, -90}},
		{Point{49.5, 24.5}, Coordinate{0, 0}},
	}
	for _, tc := range cases {
		got := tc.p.Coordinate(100, 50)
		assert.InDelta(t, tc.want.Lon, got.Lon, 1e-12)
		assert.InDelta(t, tc.want.Lat, got.Lat, 1e-12)
		assert.True(t, got.Valid())
	}
}

func TestGreatCircleDistance(t *testing.T) {
	london := Coordinate{Lon: -0.1278, Lat: 51.5074}
	paris := Coordinate{Lon: 2.3522, Lat: 48.8566}

	assert.Equal(t, 0.0, GreatCircleDistance(london, london))
	assert.Equal(t, 0.0, GreatCircleDistance(paris, paris))
	assert.Equal(t, GreatCircleDistance(london, paris), GreatCircleDistance(paris, london))
	assert.InDelta(t, 343_500, london.DistanceTo(paris), 1000)

	// a quarter of the equator
	q := GreatCircleDistance(Coordinate{0, 0}, Coordinate{90, 0})
	assert.InDelta(t, math.Pi/2*MeanEarthRadius, q, 1e-6)

	// antipodes
	a := GreatCircleDistance(Coordinate{0, 0}, Coordinate{180, 0})
	assert.InDelta(t, math.Pi*MeanEarthRadius, a, 1e-6)
}

func TestGreatCircleSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		a := Coordinate{Lon: rng.Float64()*360 - 180, Lat: rng.Float64()*180 - 90}
		b := Coordinate{Lon: rng.Float64()*360 - 180, Lat: rng.Float64()*180 - 90}
		assert.InDelta(t, GreatCircleDistance(a, b), GreatCircleDistance(b, a), 1e-6)
		assert.Equal(t, 0.0, GreatCircleDistance(a, a))
	}
}

func TestPointDistance(t *testing.T) {
	assert.Equal(t, 5.0, Point{0, 0}.Distance(Point{3, 4}))
}
