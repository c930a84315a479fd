package tui

import (
	"fmt"
	"path/filepath"

	table "github.com/charmbracelet/bubbles/table"

	"georaster/internal/geom"
)

const maxColW = 24

// refreshAttrsFromCurrent rebuilds the table columns/rows from the currently selected path
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildAttributes()
	// an empty table makes the bubbles table panic on render
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: min(len(c)+2, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		cells := make([]string, len(tcols))
		cells[0] = fmt.Sprintf("%d", i+1)
		copy(cells[1:], r)
		trows = append(trows, table.Row(cells))
	}
	// clear rows first so columns and rows never disagree in length
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns the dataset's feature properties, or a one-row
// summary when the file format carries none.
func (m *Model) buildAttributes() ([]string, [][]string) {
	if m.selPath == "" {
		// pasted WKT has no attributes
		return nil, nil
	}
	cols, rows, err := geom.Attributes(m.selPath)
	if err == nil && len(cols) > 0 {
		return cols, rows
	}
	bb := m.data.BBox
	cols = []string{"name", "bbox", "points", "lines", "polygons"}
	vals := []string{
		filepath.Base(m.selPath),
		fmt.Sprintf("[%.5f,%.5f,%.5f,%.5f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
		fmt.Sprintf("%d", len(m.data.Points)),
		fmt.Sprintf("%d", len(m.data.Lines)),
		fmt.Sprintf("%d", len(m.data.Polygons)),
	}
	return cols, [][]string{vals}
}
