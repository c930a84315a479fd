package geom

import "georaster/internal/geo"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Area reports whether the box has positive width and height.
func (b BBox) Area() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Data is a minimal geometry container for rendering
type Data struct {
	Points   []geo.Coordinate
	Lines    [][]geo.Coordinate
	Polygons [][][]geo.Coordinate // polygons with rings (first outer, following holes)
	BBox     BBox

	n int // coordinates folded into BBox so far
}

// extend grows the bbox to include c.
func (d *Data) extend(c geo.Coordinate) {
	if d.n == 0 {
		d.BBox = BBox{MinX: c.Lon, MinY: c.Lat, MaxX: c.Lon, MaxY: c.Lat}
	} else {
		d.BBox.MinX = min(d.BBox.MinX, c.Lon)
		d.BBox.MinY = min(d.BBox.MinY, c.Lat)
		d.BBox.MaxX = max(d.BBox.MaxX, c.Lon)
		d.BBox.MaxY = max(d.BBox.MaxY, c.Lat)
	}
	d.n++
}

func (d *Data) AddPoint(c geo.Coordinate) {
	d.Points = append(d.Points, c)
	d.extend(c)
}

func (d *Data) AddLine(ls []geo.Coordinate) {
	d.Lines = append(d.Lines, ls)
	for _, c := range ls {
		d.extend(c)
	}
}

func (d *Data) AddPolygon(poly [][]geo.Coordinate) {
	d.Polygons = append(d.Polygons, poly)
	for _, ring := range poly {
		for _, c := range ring {
			d.extend(c)
		}
	}
}

// Empty reports whether d holds no geometry.
func (d Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}
