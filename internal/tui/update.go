package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	spinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"drillmap/internal/drilldown"
	"drillmap/internal/style"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case loadedMsg:
		return m.onLoaded(msg)
	case spinner.TickMsg:
		if m.session != nil || m.loadErr != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case timerMsg:
		msg.fn()
		return m, m.loop.drain()
	case frameMsg:
		if m.cam.advance(msg.seq) {
			m.loop.frame(msg.seq)
		}
		return m, m.loop.drain()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "h":
		m.helpVisible = !m.helpVisible
		return m, nil
	case "r":
		if m.loadErr != nil {
			m.loadErr = nil
			m.status = "reloading map data"
			return m, tea.Batch(m.spin.Tick, m.load(true))
		}
	}
	if m.session == nil {
		return m, nil
	}

	switch msg.String() {
	case "b", "esc":
		if m.session.Back() {
			m.afterCommit()
			m.status = "back to overview"
		} else {
			m.status = "viewport busy"
		}
	case "+", "=":
		m.cam.zoomBy(0.5)
		m.status = fmt.Sprintf("zoom: %.1f", m.cam.cur.zoom)
	case "-", "_":
		m.cam.zoomBy(-0.5)
		m.status = fmt.Sprintf("zoom: %.1f", m.cam.cur.zoom)
	case "left":
		m.cam.pan(-2, 0)
	case "right":
		m.cam.pan(2, 0)
	case "tab":
		m.showSidebar = !m.showSidebar
		m.resize()
		if m.showSidebar {
			m.refreshAreas()
		}
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshAttrs()
		}
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(areaItem); ok {
				m.click(it.shape)
			}
		}
	case "up", "down":
		if m.showAttrs {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if msg.String() == "up" {
			m.cam.pan(0, -1)
		} else {
			m.cam.pan(0, 1)
		}
	default:
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, tea.Batch(cmd, m.loop.drain())
		}
	}
	return m, m.loop.drain()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}
	lay := m.layout()
	p, inside := m.cam.cellToLonLat(msg.X-lay.mapX, msg.Y-lay.mapY)
	m.hoverHasGeo = inside
	if inside {
		m.hoverLon, m.hoverLat = p.Lon(), p.Lat()
	}
	if m.showAttrs {
		inside = false
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.cam.zoomBy(0.5)
	case msg.Button == tea.MouseButtonWheelDown:
		m.cam.zoomBy(-0.5)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inside {
			if sh, ok := m.surface.shapeAt(p); ok {
				m.click(sh)
			}
		}
	case msg.Action == tea.MouseActionMotion:
		m.hoverTo(p, inside)
	}
	return m, m.loop.drain()
}

// click routes a click on a rendered shape through the session.
func (m *Model) click(sh mapShape) {
	res := m.session.Handle(drilldown.Event{Kind: drilldown.Click, Layer: sh.layer, Shape: sh})
	if !res.Committed {
		switch {
		case m.session.State().ViewportBusy:
			m.status = "viewport busy"
		case sh.layer == style.Parent:
			m.status = fmt.Sprintf("deepest level reached (%d)", m.session.MaxLevel())
		}
		return
	}
	m.afterCommit()
	st := m.session.State()
	switch {
	case sh.layer == style.Parent:
		m.status = "selected: " + sh.name()
	case st.HighlightedFeature != nil:
		m.status = "highlighted: " + sh.name()
	default:
		m.status = "highlight cleared"
	}
}

// afterCommit drops transient paint and refreshes the panels after the
// selection changed.
func (m *Model) afterCommit() {
	m.hoverPaint = nil
	m.refreshAreas()
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// hoverTo moves the hover to the shape under p, if any.
func (m *Model) hoverTo(p orb.Point, inside bool) {
	var next *mapShape
	if inside {
		if sh, ok := m.surface.shapeAt(p); ok {
			next = &sh
		}
	}
	if sameShape(m.hover, next) {
		return
	}
	if m.hover != nil {
		// resting styles are recomputed every frame
		m.session.Handle(drilldown.Event{Kind: drilldown.HoverLeave, Layer: m.hover.layer, Shape: *m.hover})
		m.hoverPaint = nil
	}
	m.hover = next
	if next != nil {
		res := m.session.Handle(drilldown.Event{Kind: drilldown.HoverEnter, Layer: next.layer, Shape: *next})
		m.hoverPaint = res.Paint
	}
}

func sameShape(a, b *mapShape) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
