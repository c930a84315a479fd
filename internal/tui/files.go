package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"georaster/internal/geom"
)

// fileItem is one loadable file in the sidebar picker.
type fileItem struct {
	name string
	path string
	size int64
}

func (f fileItem) Title() string { return f.name }
func (f fileItem) Description() string {
	return fmt.Sprintf("%s  %s", strings.TrimPrefix(strings.ToLower(filepath.Ext(f.name)), "."), humanSize(f.size))
}
func (f fileItem) FilterValue() string { return f.name }

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}

// refreshDir lists the supported data files in the working directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	files := make([]fileItem, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !geom.Supported(e.Name()) {
			continue
		}
		var size int64
		if fi, err := e.Info(); err == nil {
			size = fi.Size()
		}
		files = append(files, fileItem{name: e.Name(), path: filepath.Join(m.cwd, e.Name()), size: size})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	items := make([]list.Item, len(files))
	for i, f := range files {
		items[i] = f
	}
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath replaces the current dataset with the file at p.
func (m *Model) loadPath(p string) {
	d, err := geom.Load(p)
	if err != nil {
		m.logger().Warn("load failed", "path", p, "err", err)
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setData(d)
	m.logger().Debug("loaded", "path", p, "vertices", m.index.Len())
	m.status = fmt.Sprintf("loaded %s: %d points, %d lines, %d polygons",
		filepath.Base(p), len(d.Points), len(d.Lines), len(d.Polygons))
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}
