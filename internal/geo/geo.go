// Package geo converts between screen pixels and longitude/latitude with an
// equirectangular projection, and measures great-circle distances.
package geo

import "math"

// MeanEarthRadius is the IUGG mean radius of the Earth in meters.
const MeanEarthRadius = 6371008.8

// Point is a screen position in pixels. It may lie outside any buffer.
type Point struct {
	X, Y float64
}

// Coordinate is a position on Earth in degrees.
type Coordinate struct {
	Lon, Lat float64
}

// Coordinate maps p on a width x height screen to lon/lat. The screen spans
// the whole globe, pixel 0 at lon -180 and pixel width-1 at lon 180.
func (p Point) Coordinate(width, height float64) Coordinate {
	return Coordinate{
		Lon: 180 * (2*p.X/(width-1) - 1),
		Lat: 90 * (1 - 2*p.Y/(height-1)),
	}
}

// Distance is the Euclidean distance between p and q in pixels.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Screen is the inverse of Point.Coordinate.
func (c Coordinate) Screen(width, height float64) Point {
	return Point{
		X: (width - 1) * (c.Lon/180 + 1) / 2,
		Y: (height - 1) * (1 - c.Lat/90) / 2,
	}
}

// GreatCircleDistance returns the haversine distance between a and b in meters.
func GreatCircleDistance(a, b Coordinate) float64 {
	theta1 := math.Pi * a.Lat / 180
	theta2 := math.Pi * b.Lat / 180
	dTheta := math.Pi * (b.Lat - a.Lat) / 180
	dLambda := math.Pi * (b.Lon - a.Lon) / 180

	s1 := math.Sin(dTheta / 2)
	s2 := math.Sin(dLambda / 2)
	h := s1*s1 + math.Cos(theta1)*math.Cos(theta2)*s2*s2
	return MeanEarthRadius * 2 * math.Asin(math.Sqrt(h))
}

// DistanceTo is GreatCircleDistance(c, o).
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	return GreatCircleDistance(c, o)
}

// Valid reports whether c lies within lon [-180, 180] and lat [-90, 90].
func (c Coordinate) Valid() bool {
	return c.Lon >= -180 && c.Lon <= 180 && c.Lat >= -90 && c.Lat <= 90
}
