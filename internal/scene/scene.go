// Package scene projects geographic data onto a whole-world equirectangular
// canvas and rasterizes it into a pixel.Buffer.
package scene

import (
	"image"
	"image/png"
	"io"
	"log/slog"

	"georaster/internal/config"
	"georaster/internal/geo"
	"georaster/internal/geom"
	"georaster/internal/glyph"
	"georaster/internal/pixel"
	"georaster/internal/raster"
)

// Style holds the RGBA colors for each layer.
type Style struct {
	Background  pixel.Color
	Fill        pixel.Color
	Line        pixel.Color
	Point       pixel.Color
	PointRadius float64
}

// StyleFromConfig converts validated config colors.
func StyleFromConfig(m config.Map) Style {
	return Style{
		Background:  config.MustColor(m.Background),
		Fill:        config.MustColor(m.Fill),
		Line:        config.MustColor(m.Line),
		Point:       config.MustColor(m.Point),
		PointRadius: m.PointRadius,
	}
}

// Layers selects what Render draws.
type Layers struct {
	Points, Lines, Polygons bool
}

var AllLayers = Layers{Points: true, Lines: true, Polygons: true}

// Stats counts what a Render call drew and skipped.
type Stats struct {
	Polygons int
	Lines    int
	Points   int
	// Skipped features have a coordinate outside lon [-180,180] / lat [-90,90].
	Skipped int
}

type Renderer struct {
	Style  Style
	Layers Layers
	Logger *slog.Logger
}

func NewRenderer(s Style) *Renderer {
	return &Renderer{Style: s, Layers: AllLayers, Logger: nopLogger()}
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger == nil {
		return nopLogger()
	}
	return r.Logger
}

// Render draws d into a new width x height RGBA buffer. Polygons are filled
// outer ring first, holes are then painted with the background color.
func (r *Renderer) Render(d geom.Data, width, height int) (*pixel.Buffer, Stats, error) {
	buf := pixel.New(width, height)
	if r.Style.Background[3] != 0 {
		buf.Fill(r.Style.Background)
	}
	var st Stats
	w, h := float64(width), float64(height)

	if r.Layers.Polygons {
		for _, poly := range d.Polygons {
			rings, ok := project(poly, w, h)
			if !ok {
				st.Skipped++
				continue
			}
			for i, ring := range rings {
				c := r.Style.Fill
				if i > 0 {
					c = r.Style.Background
				}
				if err := raster.DrawPolygon(buf, ring, c); err != nil {
					return nil, st, err
				}
			}
			st.Polygons++
		}
	}
	if r.Layers.Lines {
		for _, ls := range d.Lines {
			pts, ok := project([][]geo.Coordinate{ls}, w, h)
			if !ok {
				st.Skipped++
				continue
			}
			if err := raster.DrawPolyline(buf, pts[0], r.Style.Line); err != nil {
				return nil, st, err
			}
			st.Lines++
		}
	}
	if r.Layers.Points {
		for _, c := range d.Points {
			if !c.Valid() {
				st.Skipped++
				continue
			}
			p := c.Screen(w, h)
			if err := raster.StrokeCircle(buf, p.X, p.Y, r.Style.PointRadius, r.Style.PointRadius, r.Style.Point); err != nil {
				return nil, st, err
			}
			st.Points++
		}
	}
	r.logger().Debug("scene rendered",
		slog.Int("width", width), slog.Int("height", height),
		slog.Int("polygons", st.Polygons), slog.Int("lines", st.Lines),
		slog.Int("points", st.Points), slog.Int("skipped", st.Skipped))
	return buf, st, nil
}

// project maps every ring to screen points; ok is false if any coordinate is off the globe.
func project(rings [][]geo.Coordinate, w, h float64) ([][]geo.Point, bool) {
	out := make([][]geo.Point, 0, len(rings))
	for _, ring := range rings {
		pts := make([]geo.Point, 0, len(ring))
		for _, c := range ring {
			if !c.Valid() {
				return nil, false
			}
			pts = append(pts, c.Screen(w, h))
		}
		out = append(out, pts)
	}
	return out, true
}

// Highlight rings screen point p of buf with a circle, as the viewer does
// for the vertex under the mouse.
func Highlight(buf *pixel.Buffer, p geo.Point, radius float64, col pixel.Color) error {
	return raster.StrokeCircle(buf, p.X, p.Y, radius, 1.5, col)
}

// Caption renders text with s and blends it over buf at `at`.
func Caption(buf *pixel.Buffer, s glyph.Shaper, text string, size float64, col pixel.Color, at image.Point) error {
	if text == "" {
		return nil
	}
	img, err := glyph.CreateTextImage(s, text, size, [3]byte{col[0], col[1], col[2]})
	if err != nil {
		return err
	}
	pixel.Draw(buf, pixel.RGBA, img, pixel.BGRA, at, true)
	return nil
}

// WritePNG encodes an RGBA buffer as PNG.
func WritePNG(w io.Writer, buf *pixel.Buffer) error {
	return png.Encode(w, buf.Image(pixel.RGBA))
}
