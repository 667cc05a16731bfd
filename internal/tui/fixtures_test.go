package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drillmap/internal/boundary"
	"drillmap/internal/config"
)

func rect(minLon, minLat, maxLon, maxLat float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}}
}

// islands has two regions west and east of 121E, each split into two cities.
func islands() *boundary.Dataset {
	region := func(name string, g orb.Polygon) *boundary.Feature {
		return &boundary.Feature{
			Props:    boundary.Properties{Name1: boundary.Str(name)},
			Geometry: g,
			Extra:    map[string]any{"NAME_1": name},
		}
	}
	city := func(region, name string, g orb.Polygon) *boundary.Feature {
		return &boundary.Feature{
			Props:    boundary.Properties{Name1: boundary.Str(region), Name2: boundary.Str(name)},
			Geometry: g,
			Extra:    map[string]any{"NAME_1": region, "NAME_2": name, "POP": float64(1200)},
		}
	}
	return &boundary.Dataset{
		Level1: &boundary.Collection{Level: 1, Features: []*boundary.Feature{
			region("Region A", rect(118, 11, 121, 14)),
			region("Region B", rect(121, 11, 124, 14)),
		}},
		Level2: &boundary.Collection{Level: 2, Features: []*boundary.Feature{
			city("Region A", "Alpha City", rect(118, 11, 119.5, 14)),
			city("Region A", "Beta Town", rect(119.5, 11, 121, 14)),
			city("Region B", "Gamma City", rect(121, 11, 122.5, 14)),
			city("Region B", "Delta Town", rect(122.5, 11, 124, 14)),
		}},
	}
}

// fastConfig keeps transitions short enough to run for real.
func fastConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Viewport.AnimationDuration = 0
	cfg.Viewport.SettleDelay = time.Millisecond
	cfg.Viewport.BusyWindow = 5 * time.Millisecond
	return cfg
}

func loadedModel(t *testing.T, cfg *config.Config, ds *boundary.Dataset) Model {
	t.Helper()
	m := New(context.Background(), cfg, nil, zap.NewNop())
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	next, cmd := m.Update(loadedMsg{ds: ds})
	m = next.(Model)
	require.NotNil(t, m.session)
	return settle(m, cmd)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// settle runs cmd and everything it leads to, feeding messages back into the
// model.
func settle(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = settle(m, c)
		}
		return m
	}
	next, more := m.Update(msg)
	return settle(next.(Model), more)
}

// screenCell is the terminal cell showing p.
func screenCell(m Model, p orb.Point) (int, int) {
	lay := m.layout()
	x, y := m.cam.project(p)
	return int(x/2) + lay.mapX, int(y/4) + lay.mapY
}

func clickAt(m Model, p orb.Point) (Model, tea.Cmd) {
	x, y := screenCell(m, p)
	next, cmd := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return next.(Model), cmd
}

func moveTo(m Model, p orb.Point) Model {
	x, y := screenCell(m, p)
	next, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	return next.(Model)
}

func key(m Model, k string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}
