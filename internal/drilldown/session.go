package drilldown

import (
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"drillmap/internal/boundary"
	"drillmap/internal/config"
	"drillmap/internal/style"
)

// AreaClickFunc receives every committed selection change. (nil, nil)
// signals a reset to the root.
type AreaClickFunc func(f *boundary.Feature, bounds *orb.Bound)

// Session is the drill-down state machine. It is not safe for concurrent
// use; all calls must come from the UI event loop.
type Session struct {
	ds          *boundary.Dataset
	maxLevel    int
	state       State
	child       *boundary.Collection
	transition  Transition
	onAreaClick AreaClickFunc
	logger      *zap.Logger
}

// NewSession starts at the root. transition and onAreaClick may be nil.
func NewSession(ds *boundary.Dataset, cfg config.MapConfig, transition Transition, onAreaClick AreaClickFunc, logger *zap.Logger) *Session {
	maxLevel := cfg.MaxLevel
	if maxLevel <= 0 {
		maxLevel = 3
	}
	return &Session{
		ds:          ds,
		maxLevel:    maxLevel,
		transition:  transition,
		onAreaClick: onAreaClick,
		logger:      logger,
	}
}

func (s *Session) State() State               { return s.state }
func (s *Session) MaxLevel() int              { return s.maxLevel }
func (s *Session) Dataset() *boundary.Dataset { return s.ds }

// CanDrill reports whether a parent click would currently drill down.
func (s *Session) CanDrill() bool {
	return !s.state.ViewportBusy && s.state.Level < s.maxLevel
}

// ParentLayer is the top-level collection; it stays rendered while drilled.
func (s *Session) ParentLayer() *boundary.Collection {
	if s.ds == nil {
		return nil
	}
	return s.ds.Level1
}

// ChildLayer is the level 2 collection filtered by the selected area, or nil
// at the root.
func (s *Session) ChildLayer() *boundary.Collection { return s.child }

// Handle dispatches a surface event.
func (s *Session) Handle(ev Event) Result {
	if ev.Shape == nil {
		return Result{}
	}
	switch ev.Kind {
	case Click:
		if ev.Layer == style.Child {
			return Result{Committed: s.ClickChild(ev.Shape)}
		}
		return Result{Committed: s.ClickParent(ev.Shape)}
	case HoverEnter:
		if d, ok := s.HoverEnter(ev.Shape, ev.Layer); ok {
			return Result{Paint: &d}
		}
	case HoverLeave:
		if d, ok := s.HoverLeave(ev.Shape, ev.Layer); ok {
			return Result{Paint: &d}
		}
	}
	return Result{}
}

// ClickParent drills into the clicked area.
func (s *Session) ClickParent(shape Shape) bool {
	if s.state.ViewportBusy || s.state.Level >= s.maxLevel {
		return false
	}
	f := shape.Feature()

	var bounds *orb.Bound
	if b, err := shape.Bound(); err != nil {
		s.logger.Warn("failed to resolve area bounds, skipping viewport fit",
			zap.String("area", boundary.DisplayName(f, false)),
			zap.Error(err))
	} else {
		bounds = &b
	}

	s.state.HighlightedFeature = nil
	s.state.SelectedArea = f
	s.state.Level++
	s.refreshChildren()

	s.logger.Debug("area selected",
		zap.String("area", boundary.DisplayName(f, false)),
		zap.Int("level", s.state.Level),
		zap.Int("children", s.child.Len()))

	s.emit(f, bounds)
	if bounds != nil {
		s.beginFocus(f)
	}
	return true
}

// ClickChild toggles the highlight of a child shape.
func (s *Session) ClickChild(shape Shape) bool {
	if s.state.ViewportBusy {
		return false
	}
	f := shape.Feature()
	if boundary.IsHighlighted(f, s.state.HighlightedFeature) {
		s.state.HighlightedFeature = nil
	} else {
		s.state.HighlightedFeature = f
	}
	return true
}

// Back resets to the root.
func (s *Session) Back() bool {
	if s.state.ViewportBusy {
		return false
	}
	s.state.HighlightedFeature = nil
	s.state.SelectedArea = nil
	s.state.Level = 0
	s.refreshChildren()

	s.emit(nil, nil)
	s.beginReset()
	return true
}

// Override applies a host-driven selection. No upward event is emitted
// since the host already knows.
func (s *Session) Override(f *boundary.Feature) {
	s.state.HighlightedFeature = nil
	s.state.SelectedArea = f
	if f == nil {
		s.state.Level = 0
		s.refreshChildren()
		s.beginReset()
		return
	}
	s.state.Level = 1
	s.refreshChildren()
	s.beginFocus(f)
}

// HoverEnter returns the transient style for a shape under the pointer.
// Nothing is painted while the viewport is busy.
func (s *Session) HoverEnter(shape Shape, layer style.Layer) (style.Descriptor, bool) {
	if s.state.ViewportBusy {
		return style.Descriptor{}, false
	}
	f := shape.Feature()
	if boundary.IsHighlighted(f, s.state.HighlightedFeature) {
		return s.StyleFor(f, layer), true
	}
	return style.Hover(layer), true
}

// HoverLeave returns the resting style, recomputed from the current state.
func (s *Session) HoverLeave(shape Shape, layer style.Layer) (style.Descriptor, bool) {
	if s.state.ViewportBusy {
		return style.Descriptor{}, false
	}
	return s.StyleFor(shape.Feature(), layer), true
}

// StyleFor is the resting style of f on layer.
func (s *Session) StyleFor(f *boundary.Feature, layer style.Layer) style.Descriptor {
	return style.Resolve(layer,
		boundary.IsHighlighted(f, s.state.HighlightedFeature),
		s.state.SelectedArea != nil)
}

func (s *Session) refreshChildren() {
	if s.ds == nil {
		s.child = nil
		return
	}
	c, matched := boundary.FilterChildren(s.ds.Level2, s.state.SelectedArea)
	if c != nil && !matched {
		name, _ := boundary.ParentNameOf(s.state.SelectedArea)
		s.logger.Warn("no children link to the selected area, showing all",
			zap.String("area", name),
			zap.Int("children", c.Len()))
	}
	s.child = c
}

func (s *Session) emit(f *boundary.Feature, bounds *orb.Bound) {
	if s.onAreaClick != nil {
		s.onAreaClick(f, bounds)
	}
}

func (s *Session) beginFocus(f *boundary.Feature) {
	if s.transition == nil {
		return
	}
	s.state.ViewportBusy = true
	s.state.HighlightedFeature = nil
	s.transition.Focus(f, s.endTransition)
}

func (s *Session) beginReset() {
	if s.transition == nil {
		return
	}
	s.state.ViewportBusy = true
	s.state.HighlightedFeature = nil
	s.transition.Reset(s.endTransition)
}

func (s *Session) endTransition() {
	s.state.ViewportBusy = false
}
