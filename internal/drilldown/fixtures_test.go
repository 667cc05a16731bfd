package drilldown

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"drillmap/internal/boundary"
	"drillmap/internal/config"
)

// manualScheduler fires timers only when the test advances its clock.
type manualScheduler struct {
	now    time.Duration
	seq    int
	timers []timer
}

type timer struct {
	at  time.Duration
	seq int
	fn  func()
}

func (m *manualScheduler) After(d time.Duration, fn func()) {
	m.seq++
	m.timers = append(m.timers, timer{at: m.now + d, seq: m.seq, fn: fn})
}

// Advance moves the clock and runs every due timer in firing order.
func (m *manualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		sort.SliceStable(m.timers, func(i, j int) bool {
			if m.timers[i].at != m.timers[j].at {
				return m.timers[i].at < m.timers[j].at
			}
			return m.timers[i].seq < m.timers[j].seq
		})
		if len(m.timers) == 0 || m.timers[0].at > target {
			break
		}
		next := m.timers[0]
		m.timers = m.timers[1:]
		m.now = next.at
		next.fn()
	}
	m.now = target
}

func (m *manualScheduler) Pending() int { return len(m.timers) }

type fitCall struct {
	bound   orb.Bound
	padding int
	maxZoom float64
}

type viewCall struct {
	center orb.Point
	zoom   float64
}

// fakeSurface renders whatever the session currently exposes.
type fakeSurface struct {
	session *Session
	extra   []Shape
	fits    []fitCall
	views   []viewCall
	fitErr  error
}

func (s *fakeSurface) Shapes() []Shape {
	var out []Shape
	for _, c := range []*boundary.Collection{s.session.ParentLayer(), s.session.ChildLayer()} {
		if c == nil {
			continue
		}
		for _, f := range c.Features {
			out = append(out, ShapeOf(f))
		}
	}
	return append(out, s.extra...)
}

func (s *fakeSurface) FitBounds(b orb.Bound, padding int, maxZoom float64, _ time.Duration) error {
	s.fits = append(s.fits, fitCall{bound: b, padding: padding, maxZoom: maxZoom})
	return s.fitErr
}

func (s *fakeSurface) SetView(center orb.Point, zoom float64, _ time.Duration) error {
	s.views = append(s.views, viewCall{center: center, zoom: zoom})
	return nil
}

type areaEvent struct {
	area   *boundary.Feature
	bounds *orb.Bound
}

type harness struct {
	ds      *boundary.Dataset
	sched   *manualScheduler
	surface *fakeSurface
	session *Session
	events  []areaEvent
}

func newHarness(ds *boundary.Dataset, maxLevel int) *harness {
	h := &harness{ds: ds, sched: &manualScheduler{}}
	h.surface = &fakeSurface{}
	tr := NewTimedTransition(h.surface, h.sched, config.DefaultViewport(), zap.NewNop())
	h.session = NewSession(ds, config.MapConfig{MaxLevel: maxLevel}, tr, func(f *boundary.Feature, b *orb.Bound) {
		h.events = append(h.events, areaEvent{area: f, bounds: b})
	}, zap.NewNop())
	h.surface.session = h.session
	return h
}

// settle runs the whole busy window.
func (h *harness) settle() { h.sched.Advance(config.DefaultViewport().BusyWindow) }

func square(x, y, size float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y},
	}}
}

// regionDataset has five regions and twenty cities, four of which belong to
// Region A.
func regionDataset() *boundary.Dataset {
	regions := []string{"Region A", "Region B", "Region C", "Region D", "Region E"}
	l1 := &boundary.Collection{Level: 1}
	for i, name := range regions {
		l1.Features = append(l1.Features, &boundary.Feature{
			Props:    boundary.Properties{Name1: boundary.Str(name)},
			Geometry: square(float64(i*2), 0, 2),
		})
	}
	l2 := &boundary.Collection{Level: 2}
	for i := 0; i < 20; i++ {
		region := regions[i/4]
		l2.Features = append(l2.Features, &boundary.Feature{
			Props: boundary.Properties{
				Name1: boundary.Str(region),
				Name2: boundary.Str(fmt.Sprintf("City %02d", i)),
			},
			Geometry: square(float64((i/4)*2)+float64(i%2), float64(i%4/2), 1),
		})
	}
	return &boundary.Dataset{Level1: l1, Level2: l2}
}

// brokenShape is a shape whose bounds cannot be computed.
type brokenShape struct{ f *boundary.Feature }

func (s brokenShape) Feature() *boundary.Feature { return s.f }
func (s brokenShape) Bound() (orb.Bound, error)  { return orb.Bound{}, errors.New("no bounds") }
