// Package drilldown owns the selection state of the boundary map and decides
// how clicks, hovers and back actions change it.
package drilldown

import (
	"github.com/paulmach/orb"

	"drillmap/internal/boundary"
	"drillmap/internal/style"
)

// State is the session's selection. Callers receive copies.
type State struct {
	Level              int
	SelectedArea       *boundary.Feature
	HighlightedFeature *boundary.Feature
	// ViewportBusy is true while an animated viewport transition is in flight.
	ViewportBusy bool
}

// AtRoot reports whether nothing is selected.
func (s State) AtRoot() bool { return s.SelectedArea == nil }

// Shape is a rendered boundary shape as the map surface reports it.
type Shape interface {
	Feature() *boundary.Feature
	Bound() (orb.Bound, error)
}

type featureShape struct{ f *boundary.Feature }

func (s featureShape) Feature() *boundary.Feature { return s.f }
func (s featureShape) Bound() (orb.Bound, error)  { return s.f.Bound() }

// ShapeOf wraps a feature whose bounds come from its own geometry.
func ShapeOf(f *boundary.Feature) Shape { return featureShape{f: f} }

// EventKind is the kind of pointer event a surface emits.
type EventKind int

const (
	Click EventKind = iota
	HoverEnter
	HoverLeave
)

func (k EventKind) String() string {
	switch k {
	case HoverEnter:
		return "hover-enter"
	case HoverLeave:
		return "hover-leave"
	}
	return "click"
}

// Event is emitted by the map surface for one shape on one layer.
type Event struct {
	Kind  EventKind
	Layer style.Layer
	Shape Shape
}

// Result tells the surface what an event did.
type Result struct {
	// Committed is true when the selection state changed.
	Committed bool
	// Paint is the style to apply to the event's shape, if any.
	Paint *style.Descriptor
}
