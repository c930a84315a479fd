// Package pixel holds the raw 4-bytes-per-pixel image buffer shared by the
// rasterizer, the glyph compositor and the display surface.
package pixel

import "image"

// Color is one pixel's four channel bytes, in the buffer's channel order.
type Color [4]byte

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 0xFF}
)

// Order names how the four bytes of a pixel map to color channels.
type Order uint8

const (
	RGBA Order = iota
	BGRA
)

// RGBA returns c's red, green, blue and alpha bytes given the order it was stored in.
func (c Color) RGBA(o Order) (r, g, b, a uint8) {
	if o == BGRA {
		return c[2], c[1], c[0], c[3]
	}
	return c[0], c[1], c[2], c[3]
}

// Buffer is a dense row-major array of w*h pixels, 4 bytes each.
// A Buffer is not safe for concurrent use.
type Buffer struct {
	data   []byte
	width  int
	height int
}

// New returns a zeroed (transparent black) buffer. Negative sizes are treated as zero.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		data:   make([]byte, 4*width*height),
		width:  width,
		height: height,
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Bytes is the read-only byte view handed to display surfaces.
// Callers must not modify the returned slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Stride is the number of bytes per row.
func (b *Buffer) Stride() int { return 4 * b.width }

// In reports whether (x, y) addresses a pixel of b.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *Buffer) offset(op string, x, y int) (int, error) {
	if !b.In(x, y) {
		return 0, &Error{Kind: IndexOutOfBounds, Op: op, X: x, Y: y}
	}
	return 4 * (y*b.width + x), nil
}

// Get returns the color at (x, y).
func (b *Buffer) Get(x, y int) (Color, error) {
	i, err := b.offset("pixel get", x, y)
	if err != nil {
		return Color{}, err
	}
	return Color(b.data[i : i+4]), nil
}

// Set overwrites the color at (x, y). No blending is done.
func (b *Buffer) Set(x, y int, c Color) error {
	i, err := b.offset("pixel set", x, y)
	if err != nil {
		return err
	}
	copy(b.data[i:i+4], c[:])
	return nil
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	for i := 0; i < len(b.data); i += 4 {
		copy(b.data[i:i+4], c[:])
	}
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Crop copies the part of b inside r into a new buffer. r is clipped to b first.
func (b *Buffer) Crop(r image.Rectangle) *Buffer {
	r = r.Intersect(b.Bounds())
	out := New(r.Dx(), r.Dy())
	for y := 0; y < out.height; y++ {
		src := 4 * ((r.Min.Y+y)*b.width + r.Min.X)
		copy(out.data[y*out.Stride():(y+1)*out.Stride()], b.data[src:src+out.Stride()])
	}
	return out
}

// Image converts b into an *image.NRGBA, decoding channels with order o.
func (b *Buffer) Image(o Order) *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for i := 0; i < len(b.data); i += 4 {
		r, g, bl, a := Color(b.data[i:i+4]).RGBA(o)
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, bl, a
	}
	return img
}
