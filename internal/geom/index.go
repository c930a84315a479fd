package geom

import (
	"github.com/dhconnelly/rtreego"

	"georaster/internal/geo"
)

// Kind tells which layer a vertex came from.
type Kind uint8

const (
	KindPoint Kind = iota
	KindLine
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	default:
		return "point"
	}
}

// Vertex is one indexed coordinate with the feature it belongs to.
type Vertex struct {
	geo.Coordinate
	Kind    Kind
	Feature int // index into Data.Points, Data.Lines or Data.Polygons
}

// Bounds implements rtreego.Spatial. Vertices are stored as tiny boxes,
// the tree does not accept zero-length sides.
func (v *Vertex) Bounds() rtreego.Rect {
	const epsilon = 1e-9
	r, _ := rtreego.NewRect(rtreego.Point{v.Lon, v.Lat}, []float64{epsilon, epsilon})
	return r
}

// Index is an R-tree over every vertex of a dataset.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex indexes all vertices in d.
func NewIndex(d Data) *Index {
	ix := &Index{tree: rtreego.NewTree(2, 25, 50)}
	add := func(c geo.Coordinate, k Kind, feature int) {
		ix.tree.Insert(&Vertex{Coordinate: c, Kind: k, Feature: feature})
		ix.size++
	}
	for i, p := range d.Points {
		add(p, KindPoint, i)
	}
	for i, ls := range d.Lines {
		for _, p := range ls {
			add(p, KindLine, i)
		}
	}
	for i, poly := range d.Polygons {
		for _, ring := range poly {
			for _, p := range ring {
				add(p, KindPolygon, i)
			}
		}
	}
	return ix
}

// Len is the number of indexed vertices.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the vertex closest to c in lon/lat space.
func (ix *Index) Nearest(c geo.Coordinate) (Vertex, bool) {
	if ix.size == 0 {
		return Vertex{}, false
	}
	s := ix.tree.NearestNeighbor(rtreego.Point{c.Lon, c.Lat})
	v, ok := s.(*Vertex)
	if !ok {
		return Vertex{}, false
	}
	return *v, true
}

// Within returns the vertices inside b.
func (ix *Index) Within(b BBox) []Vertex {
	r, err := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{b.MaxX - b.MinX, b.MaxY - b.MinY})
	if err != nil {
		return nil
	}
	found := ix.tree.SearchIntersect(r)
	out := make([]Vertex, 0, len(found))
	for _, s := range found {
		out = append(out, *s.(*Vertex))
	}
	return out
}
