package tui

import (
	"image"

	"georaster/internal/config"
	"georaster/internal/geo"
	"georaster/internal/geom"
	"georaster/internal/pixel"
	"georaster/internal/scene"
)

type canvasKey struct {
	w, h   int
	gen    int
	layers scene.Layers
}

// canvasCache keeps the last full zoomed render; panning and hovering only crop it.
type canvasCache struct {
	key canvasKey
	buf *pixel.Buffer
}

// pxPerCell is how many canvas pixels one terminal cell shows.
func (m Model) pxPerCell() (int, int) {
	if m.braille {
		return 2, 4
	}
	return 1, 2
}

// viewSize is the visible window in canvas pixels.
func (m Model) viewSize() (int, int) {
	sx, sy := m.pxPerCell()
	lo := m.layout()
	return lo.mapW * sx, lo.mapH * sy
}

// worldSize is the zoomed canvas the whole globe is projected onto.
func (m Model) worldSize() (int, int) {
	pw, ph := m.viewSize()
	return pw * m.zoom, ph * m.zoom
}

// visibleBBox is the lon/lat box covered by the visible window.
func (m Model) visibleBBox() (geom.BBox, bool) {
	W, H := m.worldSize()
	pw, ph := m.viewSize()
	if W <= 1 || H <= 1 || pw < 1 || ph < 1 {
		return geom.BBox{}, false
	}
	nw := geo.Point{X: float64(m.offX), Y: float64(m.offY)}.Coordinate(float64(W), float64(H))
	se := geo.Point{X: float64(m.offX + pw - 1), Y: float64(m.offY + ph - 1)}.Coordinate(float64(W), float64(H))
	return geom.BBox{MinX: nw.Lon, MinY: se.Lat, MaxX: se.Lon, MaxY: nw.Lat}, true
}

// cellToCoordinate converts a map cell to lon/lat through the cell's center pixel.
func (m Model) cellToCoordinate(cx, cy int) (geo.Coordinate, bool) {
	W, H := m.worldSize()
	if W <= 1 || H <= 1 {
		return geo.Coordinate{}, false
	}
	sx, sy := m.pxPerCell()
	p := geo.Point{
		X: float64(m.offX+cx*sx) + float64(sx-1)/2,
		Y: float64(m.offY+cy*sy) + float64(sy-1)/2,
	}
	return p.Coordinate(float64(W), float64(H)), true
}

// clampOffset keeps the visible window inside the zoomed canvas.
func (m *Model) clampOffset() {
	W, H := m.worldSize()
	pw, ph := m.viewSize()
	m.offX = max(0, min(m.offX, W-pw))
	m.offY = max(0, min(m.offY, H-ph))
}

// setZoom changes zoom around the center of the visible window.
func (m *Model) setZoom(z int) {
	z = max(1, min(z, m.cfg.Viewer.MaxZoom))
	if z == m.zoom {
		return
	}
	pw, ph := m.viewSize()
	cx := (m.offX + pw/2) * z / m.zoom
	cy := (m.offY + ph/2) * z / m.zoom
	m.zoom = z
	m.offX, m.offY = cx-pw/2, cy-ph/2
	m.clampOffset()
}

func (m Model) world() (*pixel.Buffer, error) {
	W, H := m.worldSize()
	key := canvasKey{w: W, h: H, gen: m.gen, layers: m.renderer.Layers}
	if m.canvas.buf != nil && m.canvas.key == key {
		return m.canvas.buf, nil
	}
	buf, st, err := m.renderer.Render(m.data, W, H)
	if err != nil {
		return nil, err
	}
	if st.Skipped > 0 {
		m.logger().Debug("features skipped", "count", st.Skipped, "width", W, "height", H)
	}
	m.canvas.key, m.canvas.buf = key, buf
	return buf, nil
}

// renderMap draws the visible window of the map, the hover marker and the
// caption, and presents it as terminal text.
func (m Model) renderMap() string {
	W, H := m.worldSize()
	if W < 2 || H < 2 {
		return ""
	}
	base, err := m.world()
	if err != nil {
		return "render error: " + err.Error()
	}
	pw, ph := m.viewSize()
	view := base.Crop(image.Rect(m.offX, m.offY, m.offX+pw, m.offY+ph))

	if m.hoverVertex != nil {
		p := m.hoverVertex.Screen(float64(W), float64(H))
		p.X -= float64(m.offX)
		p.Y -= float64(m.offY)
		sx, _ := m.pxPerCell()
		if err := scene.Highlight(view, p, float64(3*sx), config.MustColor(m.cfg.Viewer.HoverColor)); err != nil {
			m.logger().Warn("highlight failed", "err", err)
		}
	}
	if m.face != nil && m.cfg.Label.Text != "" {
		lb := m.cfg.Label
		at := image.Pt(lb.X, lb.Y)
		if err := scene.Caption(view, m.face, lb.Text, lb.Size, config.MustColor(lb.Color), at); err != nil {
			m.logger().Warn("caption failed", "text", lb.Text, "err", err)
		}
	}

	if m.braille {
		return presentBraille(view, m.renderer.Style.Background)
	}
	return presentHalfBlocks(view, pixel.RGBA)
}
