package glyph

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is a Shaper backed by an OpenType/TrueType font. It lays text out on
// a single line starting at the origin, applying the font's kerning.
type Face struct {
	font *opentype.Font
	dpi  float64
}

// NewFace parses TrueType or OpenType font data.
func NewFace(data []byte) (*Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	return &Face{font: f, dpi: 72}, nil
}

// DefaultFace returns the embedded Go Regular font.
func DefaultFace() (*Face, error) {
	return NewFace(goregular.TTF)
}

// Layout implements Shaper. size is in pixels per em.
func (f *Face) Layout(text string, size float64) ([]Glyph, error) {
	if size <= 0 {
		return nil, fmt.Errorf("glyph: invalid size %v", size)
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     f.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: new face: %w", err)
	}
	defer face.Close()

	var (
		out  []Glyph
		dot  fixed.Point26_6
		prev rune = -1
	)
	for _, r := range text {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if !ok {
			return nil, fmt.Errorf("glyph: no glyph for %q", r)
		}
		g := &maskGlyph{bounds: dr}
		if !dr.Empty() {
			// the face reuses its mask between calls
			g.mask = image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
			draw.Draw(g.mask, g.mask.Bounds(), mask, maskp, draw.Src)
		}
		out = append(out, g)
		dot.X += advance
		prev = r
	}
	return out, nil
}

type maskGlyph struct {
	bounds image.Rectangle
	mask   *image.Alpha
}

func (g *maskGlyph) PixelBounds() (image.Rectangle, bool) {
	return g.bounds, g.mask != nil
}

func (g *maskGlyph) Draw(fn func(x, y int, coverage float64)) {
	if g.mask == nil {
		return
	}
	w, h := g.bounds.Dx(), g.bounds.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fn(x, y, float64(g.mask.AlphaAt(x, y).A)/0xFF)
		}
	}
}
