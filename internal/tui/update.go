package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"georaster/internal/geo"
	"georaster/internal/geom"
)

// handle applies one input event to the model.
func (m *Model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return cmd
	}
	if m.pasteMode {
		return m.handlePasteKey(msg)
	}
	pw, ph := m.viewSize()
	switch msg.String() {
	case "q", "esc":
		if msg.String() == "esc" && (m.inspectPopup != "" || m.showAttrs) {
			m.inspectPopup = ""
			m.showAttrs = false
			return nil
		}
		m.quitting = true
		return tea.Quit
	case "1":
		m.renderer.Layers.Points = !m.renderer.Layers.Points
		m.status = fmt.Sprintf("points: %v", m.renderer.Layers.Points)
	case "2":
		m.renderer.Layers.Lines = !m.renderer.Layers.Lines
		m.status = fmt.Sprintf("lines: %v", m.renderer.Layers.Lines)
	case "3":
		m.renderer.Layers.Polygons = !m.renderer.Layers.Polygons
		m.status = fmt.Sprintf("polys: %v", m.renderer.Layers.Polygons)
	case "l":
		l := &m.renderer.Layers
		all := l.Points && l.Lines && l.Polygons
		l.Points, l.Lines, l.Polygons = !all, !all, !all
		m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", l.Points, l.Lines, l.Polygons)
	case "+", "=":
		m.setZoom(m.zoom + 1)
		m.status = fmt.Sprintf("zoom: %dx", m.zoom)
	case "-", "_":
		m.setZoom(m.zoom - 1)
		m.status = fmt.Sprintf("zoom: %dx", m.zoom)
	case "b":
		m.braille = !m.braille
		m.clampOffset()
		m.status = fmt.Sprintf("braille: %v", m.braille)
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
		}
		m.clampOffset()
	case "p":
		m.pasteMode = true
		m.ta.SetValue("")
		m.status = "paste mode"
		return m.ta.Focus()
	case "h":
		m.helpVisible = !m.helpVisible
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshAttrsFromCurrent()
		}
	case "i":
		m.inspect()
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
			return nil
		}
	case "up":
		m.offY -= ph / 8
		m.clampOffset()
	case "down":
		m.offY += ph / 8
		m.clampOffset()
	case "left":
		m.offX -= pw / 8
		m.clampOffset()
	case "right":
		m.offX += pw / 8
		m.clampOffset()
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handlePasteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return nil
		}
		d, err := geom.ParseWKTData(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return nil
		}
		m.selPath = ""
		m.setData(d)
		m.status = fmt.Sprintf("rendered WKT  counts: pts=%d ls=%d poly=%d", len(d.Points), len(d.Lines), len(d.Polygons))
		m.pasteMode = false
		m.ta.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	lo := m.layout()
	cx, cy := msg.X-lo.mapX, msg.Y-lo.mapY
	if cx < 0 || cy < 0 || cx >= lo.mapW || cy >= lo.mapH {
		m.hovering = false
		m.hoverHasGeo = false
		m.hoverVertex = nil
		return
	}
	m.hovering = true
	m.hoverCellX, m.hoverCellY = cx, cy
	c, ok := m.cellToCoordinate(cx, cy)
	m.hoverHasGeo = ok
	if !ok {
		return
	}
	m.hoverGeo = c
	if v, ok := m.index.Nearest(c); ok {
		m.hoverVertex = &v
	} else {
		m.hoverVertex = nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.measure(c)
	}
}

// measure records the first click and reports the great-circle distance on the second.
func (m *Model) measure(c geo.Coordinate) {
	if m.measureFrom == nil {
		m.measureFrom = &c
		m.status = fmt.Sprintf("measure from lon=%.4f lat=%.4f: click the second point", c.Lon, c.Lat)
		return
	}
	d := geo.GreatCircleDistance(*m.measureFrom, c)
	m.status = fmt.Sprintf("distance: %s", formatDistance(d))
	m.measureFrom = nil
}

func formatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

func (m Model) verticesInView() int {
	bb, ok := m.visibleBBox()
	if !ok {
		return 0
	}
	return len(m.index.Within(bb))
}

// inspect describes the vertex nearest to the center of the visible window.
func (m *Model) inspect() {
	lo := m.layout()
	center, ok := m.cellToCoordinate(lo.mapW/2, lo.mapH/2)
	if !ok {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	v, ok := m.index.Nearest(center)
	if !ok {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<unsaved>"
	}
	bb := m.data.BBox
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
		fmt.Sprintf("counts: pts=%d ls=%d poly=%d vertices=%d", len(m.data.Points), len(m.data.Lines), len(m.data.Polygons), m.index.Len()),
		fmt.Sprintf("in view: %d of %d vertices", m.verticesInView(), m.index.Len()),
		fmt.Sprintf("nearest: %s #%d lon=%.6f lat=%.6f", v.Kind, v.Feature, v.Lon, v.Lat),
		fmt.Sprintf("from center: %s", formatDistance(geo.GreatCircleDistance(center, v.Coordinate))),
		"crs: EPSG:4326 (assumed)",
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}
