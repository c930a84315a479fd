// Package glyph turns text into a pixel.Buffer using glyph coverage masks
// supplied by a Shaper.
package glyph

import (
	"image"
	"math"

	"georaster/internal/pixel"
)

// Glyph is one laid-out character.
type Glyph interface {
	// PixelBounds is the glyph's ink box relative to the layout origin on
	// the baseline. ok is false for glyphs without ink, such as spaces.
	PixelBounds() (r image.Rectangle, ok bool)
	// Draw calls fn for every pixel of the ink box with offsets relative to
	// the box's top-left corner and a coverage value in [0, 1].
	Draw(fn func(x, y int, coverage float64))
}

// Shaper lays out text at a pixel size.
type Shaper interface {
	Layout(text string, size float64) ([]Glyph, error)
}

// CreateTextImage renders text into a new buffer just large enough for the
// union of the glyph ink boxes (and the baseline). Pixels are stored BGRA,
// with alpha = round(255*coverage); later glyphs overwrite earlier ones.
// Text without any ink yields a 0x0 buffer.
func CreateTextImage(s Shaper, text string, size float64, color [3]byte) (*pixel.Buffer, error) {
	glyphs, err := s.Layout(text, size)
	if err != nil {
		return nil, &pixel.Error{Kind: pixel.LayoutFailure, Op: "glyph layout", Err: err}
	}

	var yMin, yMax, width int
	for _, g := range glyphs {
		bb, ok := g.PixelBounds()
		if !ok {
			continue
		}
		yMin = min(yMin, bb.Min.Y)
		yMax = max(yMax, bb.Max.Y)
		width = max(width, bb.Max.X)
	}
	buf := pixel.New(width, yMax-yMin)

	for _, g := range glyphs {
		bb, ok := g.PixelBounds()
		if !ok {
			continue
		}
		var first error
		g.Draw(func(x, y int, v float64) {
			if first != nil {
				return
			}
			a := uint8(math.Round(255 * math.Max(0, math.Min(1, v))))
			first = buf.Set(x+bb.Min.X, y+bb.Min.Y-yMin, pixel.Color{color[2], color[1], color[0], a})
		})
		if first != nil {
			return nil, first
		}
	}
	return buf, nil
}
