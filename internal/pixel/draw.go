package pixel

import "image"

// Draw copies src onto dst with src's origin at `at`, clipped to dst.
// Source pixels are decoded with srcOrder and stored with dstOrder. With
// blend set, source-over alpha compositing is applied; otherwise pixels are
// overwritten, including transparent ones.
func Draw(dst *Buffer, dstOrder Order, src *Buffer, srcOrder Order, at image.Point, blend bool) {
	r := src.Bounds().Add(at).Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			si := 4 * ((y-at.Y)*src.width + (x - at.X))
			di := 4 * (y*dst.width + x)
			sr, sg, sb, sa := Color(src.data[si : si+4]).RGBA(srcOrder)
			if blend {
				if sa == 0 {
					continue
				}
				dr, dg, db, da := Color(dst.data[di : di+4]).RGBA(dstOrder)
				sr, sg, sb, sa = over(sr, sg, sb, sa, dr, dg, db, da)
			}
			c := pack(dstOrder, sr, sg, sb, sa)
			copy(dst.data[di:di+4], c[:])
		}
	}
}

func pack(o Order, r, g, b, a uint8) Color {
	if o == BGRA {
		return Color{b, g, r, a}
	}
	return Color{r, g, b, a}
}

// over composites non-premultiplied source s over destination d.
func over(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	if sa == 0xFF {
		return sr, sg, sb, sa
	}
	as := uint32(sa)
	ad := uint32(da) * (255 - as) / 255
	ao := as + ad
	if ao == 0 {
		return 0, 0, 0, 0
	}
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*as + uint32(d)*ad + ao/2) / ao)
	}
	return mix(sr, dr), mix(sg, dg), mix(sb, db), uint8(ao)
}
