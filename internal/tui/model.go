package tui

import (
	"io"
	"log/slog"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"georaster/internal/config"
	"georaster/internal/geo"
	"georaster/internal/geom"
	"georaster/internal/glyph"
	"georaster/internal/scene"
)

type Model struct {
	width  int
	height int

	cfg      config.Config
	st       styles
	renderer *scene.Renderer
	face     glyph.Shaper

	showSidebar bool
	helpVisible bool
	braille     bool

	// zoom multiplies the canvas size; off is the top-left pixel of the
	// visible window inside the zoomed canvas.
	zoom int
	offX int
	offY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data  geom.Data
	index *geom.Index
	gen   int // bumped on every load, invalidates the canvas cache

	canvas *canvasCache

	// paste mode
	pasteMode bool
	ta        textarea.Model

	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverHasGeo bool
	hoverGeo    geo.Coordinate
	hoverVertex *geom.Vertex

	// click-to-measure anchor
	measureFrom *geo.Coordinate

	// attributes table
	showAttrs bool
	tbl       table.Model

	// input collected since the last frame
	pending  []tea.Msg
	frame    FrameFunc
	quitting bool
}

// New builds the viewer. face may be nil, in which case no caption is drawn.
func New(cfg config.Config, face glyph.Shaper) Model {
	r := scene.NewRenderer(scene.StyleFromConfig(cfg.Map))
	m := Model{
		cfg:         cfg,
		st:          newStyles(cfg),
		renderer:    r,
		face:        face,
		helpVisible: true,
		zoom:        1,
		status:      "geomap ready",
		index:       geom.NewIndex(geom.Data{}),
		canvas:      &canvasCache{},
		frame:       handleEvents,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (columns will be inferred per dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(cfg config.Config, face glyph.Shaper, path string) Model {
	m := New(cfg, face)
	m.loadPath(path)
	return m
}

// WithLogger routes the renderer's debug output to l.
func (m Model) WithLogger(l *slog.Logger) Model {
	m.renderer.Logger = l
	return m
}

func (m Model) Init() tea.Cmd { return tick() }

// setData installs a new dataset and resets the viewport.
func (m *Model) setData(d geom.Data) {
	m.data = d
	m.index = geom.NewIndex(d)
	m.gen++
	m.zoom = 1
	m.offX, m.offY = 0, 0
	m.hoverVertex = nil
	m.measureFrom = nil
	m.inspectPopup = ""
	// prefer polys > lines > points for visibility
	l := &m.renderer.Layers
	l.Polygons = len(d.Polygons) > 0
	l.Lines = len(d.Lines) > 0 && !l.Polygons
	l.Points = len(d.Points) > 0 && !l.Polygons
}

func (m Model) logger() *slog.Logger {
	if m.renderer.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m.renderer.Logger
}
