// Package raster paints polygons, lines and circle outlines into a pixel.Buffer.
// There is no anti-aliasing: every painted pixel receives the full color.
package raster

import (
	"math"
	"sort"

	"georaster/internal/geo"
	"georaster/internal/pixel"
)

// scanStep samples each pixel row twice.
const scanStep = 0.5

type edge struct {
	a, b geo.Point
}

// edges returns each consecutive vertex pair plus the closing (last, first) pair.
func edges(poly []geo.Point) []edge {
	out := make([]edge, 0, len(poly))
	for i := range poly {
		out = append(out, edge{poly[i], poly[(i+1)%len(poly)]})
	}
	return out
}

// DrawPolygon fills poly with c using the even-odd rule and then strokes
// every edge in opaque black. A pixel outside buf aborts the call with an
// IndexOutOfBounds error; pixels already painted stay painted.
func DrawPolygon(buf *pixel.Buffer, poly []geo.Point, c pixel.Color) error {
	es := edges(poly)
	if fillable(poly) {
		if err := fill(buf, es, c); err != nil {
			return err
		}
	}
	for _, e := range es {
		if err := DrawLine(buf, e.a, e.b, pixel.Black); err != nil {
			return err
		}
	}
	return nil
}

// fillable rejects polygons with fewer than three distinct vertices or with
// every vertex on one line. Winding is irrelevant: a bowtie whose lobes cancel
// in the signed area still covers pixels under the even-odd rule.
func fillable(poly []geo.Point) bool {
	distinct := map[geo.Point]struct{}{}
	for _, p := range poly {
		distinct[p] = struct{}{}
	}
	if len(distinct) < 3 {
		return false
	}
	p0 := poly[0]
	var d geo.Point
	for _, p := range poly[1:] {
		if p != p0 {
			d = geo.Point{X: p.X - p0.X, Y: p.Y - p0.Y}
			break
		}
	}
	for _, p := range poly[1:] {
		if d.X*(p.Y-p0.Y)-d.Y*(p.X-p0.X) != 0 {
			return true
		}
	}
	return false
}

func fill(buf *pixel.Buffer, es []edge, c pixel.Color) error {
	top, bottom := math.MaxFloat64, -math.MaxFloat64
	for _, e := range es {
		top = math.Min(top, math.Min(e.a.Y, e.b.Y))
		bottom = math.Max(bottom, math.Max(e.a.Y, e.b.Y))
	}

	var xs []int
	for y := top; y < bottom; y += scanStep {
		xs = xs[:0]
		for _, e := range es {
			a, b := e.a, e.b
			if a.Y == b.Y {
				continue
			}
			if a.Y > b.Y {
				a, b = b, a
			}
			if y < a.Y || y > b.Y {
				continue
			}
			if a.X == b.X {
				xs = append(xs, int(a.X))
				continue
			}
			// y = k*x + m
			k := (b.Y - a.Y) / (b.X - a.X)
			m := a.Y - k*a.X
			xs = append(xs, int((y-m)/k))
		}
		sort.Ints(xs)

		row := int(y)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := xs[i]; x <= xs[i+1]; x++ {
				if err := buf.Set(x, row, c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
