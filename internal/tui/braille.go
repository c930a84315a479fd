package tui

import (
	"strings"

	"georaster/internal/pixel"
)

// brailleBuf packs a 2x4 pixel block into each terminal cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bit for sub-pixel (rx, ry) of a cell, following the Unicode braille layout.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

// presentBraille shows buf in monochrome: a dot for every pixel that is
// neither transparent nor the background color.
func presentBraille(buf *pixel.Buffer, bg pixel.Color) string {
	br := newBrailleBuf((buf.Width()+1)/2, (buf.Height()+3)/4)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c, _ := buf.Get(x, y)
			if c[3] != 0 && c != bg {
				br.setPixel(x, y)
			}
		}
	}
	return strings.Join(br.toLines(), "\n")
}
