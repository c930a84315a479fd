package raster

import (
	"math"

	"georaster/internal/geo"
	"georaster/internal/pixel"
)

// DrawLine paints the Bresenham line between a and b, endpoints included,
// after rounding both to the nearest pixel.
func DrawLine(buf *pixel.Buffer, a, b geo.Point, c pixel.Color) error {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy
	for {
		if err := buf.Set(x0, y0, c); err != nil {
			return err
		}
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawPolyline joins consecutive points with DrawLine. It does not close the path.
func DrawPolyline(buf *pixel.Buffer, pts []geo.Point, c pixel.Color) error {
	for i := 1; i < len(pts); i++ {
		if err := DrawLine(buf, pts[i-1], pts[i], c); err != nil {
			return err
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
