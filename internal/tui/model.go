package tui

import (
	"context"
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	spinner "github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"drillmap/internal/boundary"
	"drillmap/internal/config"
	"drillmap/internal/drilldown"
	"drillmap/internal/style"
)

const sidebarWidth = 32

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	showAttrs   bool

	ctx    context.Context
	cfg    *config.Config
	loader *boundary.Loader
	logger *zap.Logger

	status  string
	loadErr error
	spin    spinner.Model

	// set once the dataset is loaded
	session *drilldown.Session

	cam     *camera
	loop    *eventLoop
	surface *mapSurface
	loc     *location

	// hover state
	hover       *mapShape
	hoverPaint  *style.Descriptor
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// area sidebar
	l list.Model

	// attributes table
	tbl table.Model
}

// location is the last selection the map reported upward.
type location struct {
	area   *boundary.Feature
	bounds *orb.Bound
}

func (l *location) record(f *boundary.Feature, b *orb.Bound) {
	l.area, l.bounds = f, b
}

func New(ctx context.Context, cfg *config.Config, loader *boundary.Loader, logger *zap.Logger) Model {
	m := Model{
		helpVisible: true,
		ctx:         ctx,
		cfg:         cfg,
		loader:      loader,
		logger:      logger,
		status:      "loading map data",
		cam:         newCamera(cfg.Viewport),
		loop:        &eventLoop{},
		loc:         &location{},
	}
	m.surface = &mapSurface{cam: m.cam, loop: m.loop}

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = titleStyle

	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Provinces / Regions"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.load(false))
}

func (m Model) load(reload bool) tea.Cmd {
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		var (
			ds  *boundary.Dataset
			err error
		)
		if reload {
			ds, err = loader.Reload(ctx)
		} else {
			ds, err = loader.Load(ctx)
		}
		return loadedMsg{ds: ds, err: err}
	}
}

// onLoaded builds the drill-down session over the loaded dataset.
func (m Model) onLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.loadErr = msg.err
		m.status = "load error: " + msg.err.Error()
		return m, nil
	}
	m.loadErr = nil

	loc, logger := m.loc, m.logger
	onArea := func(f *boundary.Feature, b *orb.Bound) {
		loc.record(f, b)
		if f == nil {
			logger.Info("map reset")
			return
		}
		logger.Info("area clicked",
			zap.String("area", boundary.DisplayName(f, false)),
			zap.Bool("bounds", b != nil))
	}
	tr := drilldown.NewTimedTransition(m.surface, m.loop, m.cfg.Viewport, m.logger)
	m.session = drilldown.NewSession(msg.ds, m.cfg.Map, tr, onArea, m.logger)
	m.surface.session = m.session
	m.status = readyStatus(msg.ds)

	if name := m.cfg.Map.InitialArea; name != "" {
		if f := msg.ds.Level1.Find(name); f != nil {
			m.session.Override(f)
			m.loc.record(f, nil)
		} else {
			m.logger.Warn("initial area not found", zap.String("area", name))
			m.status = fmt.Sprintf("initial area %q not found", name)
		}
	}
	m.refreshAreas()
	return m, m.loop.drain()
}

func readyStatus(ds *boundary.Dataset) string {
	l3 := "not available"
	if ds.Level3 != nil {
		l3 = fmt.Sprintf("%d areas", ds.Level3.Len())
	}
	return fmt.Sprintf("loaded: %d areas, %d sub-areas  level 3: %s", ds.Level1.Len(), ds.Level2.Len(), l3)
}

// layout is the screen geometry shared by View and the mouse handler.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
}

const (
	headerHeight = 1
	footerHeight = 2
)

func (m Model) layout() layout {
	lay := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		mapY:     headerHeight,
	}
	if m.showSidebar {
		lay.sidebarW = sidebarWidth
		lay.mapX = sidebarWidth + 1
	}
	lay.mapW = max(10, lay.contentW-lay.mapX)
	lay.mapH = lay.contentH
	return lay
}

// resize pushes the layout into the camera and sidebar.
func (m *Model) resize() {
	lay := m.layout()
	m.cam.resize(lay.mapW, lay.mapH)
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
	}
}
