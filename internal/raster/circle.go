package raster

import (
	"math"

	"georaster/internal/pixel"
)

// StrokeCircle paints every pixel whose distance from (cx, cy) lies in
// [radius-thickness, radius]. Only the part of the bounding square inside
// buf is scanned.
func StrokeCircle(buf *pixel.Buffer, cx, cy, radius, thickness float64, c pixel.Color) error {
	x0 := math.Max(cx-radius, 0)
	y0 := math.Max(cy-radius, 0)
	x1 := math.Min(cx+radius, float64(buf.Width()))
	y1 := math.Min(cy+radius, float64(buf.Height()))

	r0, r1 := radius-thickness, radius
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			r := math.Hypot(x-cx, y-cy)
			if r < r0 || r > r1 {
				continue
			}
			if err := buf.Set(int(x), int(y), c); err != nil {
				return err
			}
		}
	}
	return nil
}
