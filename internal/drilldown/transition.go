package drilldown

import (
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"drillmap/internal/boundary"
	"drillmap/internal/config"
)

// Transition moves the viewport after a selection change. done must be
// called exactly once, after the viewport has settled.
type Transition interface {
	Focus(area *boundary.Feature, done func())
	Reset(done func())
}

// Surface is the rendered map the viewport belongs to.
type Surface interface {
	// Shapes lists every shape currently rendered, parent layer first.
	Shapes() []Shape
	FitBounds(b orb.Bound, padding int, maxZoom float64, animate time.Duration) error
	SetView(center orb.Point, zoom float64, animate time.Duration) error
}

// Scheduler runs fn on the event loop once d has elapsed.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimedTransition waits for the new layers to render, then fits the viewport.
// The busy window covers the fit animation.
type TimedTransition struct {
	surface Surface
	sched   Scheduler
	cfg     config.ViewportConfig
	logger  *zap.Logger
}

func NewTimedTransition(surface Surface, sched Scheduler, cfg config.ViewportConfig, logger *zap.Logger) *TimedTransition {
	return &TimedTransition{surface: surface, sched: sched, cfg: cfg, logger: logger}
}

func (t *TimedTransition) Focus(area *boundary.Feature, done func()) {
	key := boundary.Identity(area)
	t.sched.After(t.cfg.SettleDelay, func() { t.fitRendered(key) })
	t.sched.After(t.cfg.BusyWindow, done)
}

func (t *TimedTransition) Reset(done func()) {
	if err := t.surface.SetView(t.cfg.Center(), t.cfg.InitialZoom, t.cfg.AnimationDuration); err != nil {
		t.logger.Warn("failed to reset viewport", zap.Error(err))
	}
	t.sched.After(t.cfg.BusyWindow, done)
}

func (t *TimedTransition) fitRendered(key boundary.Key) {
	for _, sh := range t.surface.Shapes() {
		if boundary.Identity(sh.Feature()) != key {
			continue
		}
		b, err := sh.Bound()
		if err != nil {
			t.logger.Warn("failed to fit selected area", zap.Error(err))
			return
		}
		if err := t.surface.FitBounds(b, t.cfg.FitPadding, t.cfg.DetailZoom, t.cfg.AnimationDuration); err != nil {
			t.logger.Warn("failed to fit selected area", zap.Error(err))
		}
		return
	}
	// the viewport stays where it is
	t.logger.Debug("selected area is not rendered, viewport unchanged")
}
