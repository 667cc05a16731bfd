package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"drillmap/internal/style"
)

// styleOf is the descriptor a rendered shape is painted with this frame.
func (m Model) styleOf(sh mapShape) style.Descriptor {
	if m.hoverPaint != nil && m.hover != nil && *m.hover == sh {
		return *m.hoverPaint
	}
	return m.session.StyleFor(sh.f, sh.layer)
}

// viewBound is the lon/lat extent currently on screen.
func (m Model) viewBound() orb.Bound {
	a := m.cam.unproject(0, 0)
	b := m.cam.unproject(float64(m.cam.w*2), float64(m.cam.h*4))
	return orb.Bound{Min: orb.Point{a.Lon(), b.Lat()}, Max: orb.Point{b.Lon(), a.Lat()}}
}

// renderMap rasterizes the parent layer and then the child layer on top.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	vb := m.viewBound()
	for _, sh := range m.surface.layers() {
		g := sh.f.Geometry
		if g == nil || !g.Bound().Intersects(vb) {
			continue
		}
		in := inkFor(m.styleOf(sh))
		switch g := g.(type) {
		case orb.Polygon:
			m.drawPolygon(br, g, in)
		case orb.MultiPolygon:
			for _, poly := range g {
				m.drawPolygon(br, poly, in)
			}
		}
	}
	return strings.Join(br.toLines(), "\n")
}

// drawPolygon fills with the even-odd rule per microgrid scanline, so holes
// stay empty, and then draws every ring's edges.
func (m Model) drawPolygon(br *brailleBuf, poly orb.Polygon, in ink) {
	rings := make([][][2]int, 0, len(poly))
	for _, ring := range poly {
		pts := make([][2]int, 0, len(ring))
		for _, p := range ring {
			x, y := m.cam.project(p)
			pts = append(pts, [2]int{int(math.Round(x)), int(math.Round(y))})
		}
		if len(pts) >= 3 {
			rings = append(rings, pts)
		}
	}
	if len(rings) == 0 {
		return
	}

	minY, maxY := rings[0][0][1], rings[0][0][1]
	for _, p := range rings[0] {
		minY = min(minY, p[1])
		maxY = max(maxY, p[1])
	}
	minY = max(0, minY)
	maxY = min(br.h*4-1, maxY)

	fill := cellInk{color: in.fill}
	var xs []int
	for yMic := minY; yMic <= maxY; yMic++ {
		xs = xs[:0]
		for _, r := range rings {
			for i := 0; i < len(r); i++ {
				a := r[i]
				b := r[(i+1)%len(r)]
				if a[1] == b[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], b[1]
				x0, x1 := a[0], b[0]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
				}
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			br.fillSpan(yMic, xs[i], xs[i+1], fill)
		}
	}

	edge := cellInk{color: in.stroke, bold: in.bold}
	for _, r := range rings {
		for i := 0; i < len(r); i++ {
			a := r[i]
			b := r[(i+1)%len(r)]
			br.drawLineMicro(a[0], a[1], b[0], b[1], edge)
			if in.bold {
				br.drawLineMicro(a[0]+1, a[1], b[0]+1, b[1], edge)
			}
		}
	}
}
