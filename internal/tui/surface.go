package tui

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"drillmap/internal/boundary"
	"drillmap/internal/drilldown"
	"drillmap/internal/style"
)

// mapShape is a feature as rendered on one layer.
type mapShape struct {
	f     *boundary.Feature
	layer style.Layer
}

func (s mapShape) Feature() *boundary.Feature { return s.f }
func (s mapShape) Bound() (orb.Bound, error)  { return s.f.Bound() }

func (s mapShape) name() string {
	return boundary.DisplayName(s.f, s.layer == style.Child)
}

// mapSurface is the braille canvas as the drill-down session sees it.
type mapSurface struct {
	cam     *camera
	loop    *eventLoop
	session *drilldown.Session
}

func (s *mapSurface) layers() []mapShape {
	if s.session == nil {
		return nil
	}
	var out []mapShape
	add := func(c *boundary.Collection, layer style.Layer) {
		if c == nil {
			return
		}
		for _, f := range c.Features {
			out = append(out, mapShape{f: f, layer: layer})
		}
	}
	add(s.session.ParentLayer(), style.Parent)
	add(s.session.ChildLayer(), style.Child)
	return out
}

func (s *mapSurface) Shapes() []drilldown.Shape {
	rendered := s.layers()
	out := make([]drilldown.Shape, len(rendered))
	for i, sh := range rendered {
		out[i] = sh
	}
	return out
}

func (s *mapSurface) FitBounds(b orb.Bound, padding int, maxZoom float64, animate time.Duration) error {
	v, err := s.cam.fitView(b, padding, maxZoom)
	if err != nil {
		return err
	}
	s.animate(v, animate)
	return nil
}

func (s *mapSurface) SetView(center orb.Point, zoom float64, animate time.Duration) error {
	s.animate(view{center: center, zoom: zoom}, animate)
	return nil
}

func (s *mapSurface) animate(v view, d time.Duration) {
	if seq, ok := s.cam.animateTo(v, d); ok {
		s.loop.frame(seq)
	}
}

// shapeAt returns the topmost rendered shape containing p. The child layer is
// drawn over the parent layer, so it is searched first.
func (s *mapSurface) shapeAt(p orb.Point) (mapShape, bool) {
	rendered := s.layers()
	for i := len(rendered) - 1; i >= 0; i-- {
		if contains(rendered[i].f.Geometry, p) {
			return rendered[i], true
		}
	}
	return mapShape{}, false
}

func contains(g orb.Geometry, p orb.Point) bool {
	if g == nil || !g.Bound().Contains(p) {
		return false
	}
	switch g := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, p)
	}
	return false
}
