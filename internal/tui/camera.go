package tui

import (
	"errors"
	"math"
	"time"

	"github.com/paulmach/orb"

	"drillmap/internal/config"
)

// frameInterval is the tick rate of camera animations.
const frameInterval = 33 * time.Millisecond

var errNoViewport = errors.New("map viewport has no size")

// view is a camera position: center lon/lat and a fractional zoom.
type view struct {
	center orb.Point
	zoom   float64
}

type animation struct {
	from, to    view
	step, steps int
}

// camera projects lon/lat onto the braille microgrid (2x4 dots per cell).
// One dot spans 360/(TileSize*2^zoom) degrees on both axes.
type camera struct {
	cfg  config.ViewportConfig
	cur  view
	w, h int // map size in cells

	anim *animation
	seq  int
}

func newCamera(cfg config.ViewportConfig) *camera {
	c := &camera{cfg: cfg}
	c.cur = view{center: cfg.Center(), zoom: c.clampZoom(cfg.InitialZoom)}
	return c
}

func (c *camera) resize(w, h int) {
	c.w, c.h = w, h
}

func (c *camera) clampZoom(z float64) float64 {
	return clampf(z, c.cfg.MinZoom, c.cfg.MaxZoom)
}

func (c *camera) degPerDot() float64 {
	return 360 / (c.cfg.TileSize * math.Exp2(c.cur.zoom))
}

// project maps lon/lat to fractional microgrid coordinates.
func (c *camera) project(p orb.Point) (float64, float64) {
	d := c.degPerDot()
	x := (p.Lon()-c.cur.center.Lon())/d + float64(c.w*2)/2
	y := (c.cur.center.Lat()-p.Lat())/d + float64(c.h*4)/2
	return x, y
}

func (c *camera) unproject(x, y float64) orb.Point {
	d := c.degPerDot()
	lon := c.cur.center.Lon() + (x-float64(c.w*2)/2)*d
	lat := c.cur.center.Lat() - (y-float64(c.h*4)/2)*d
	return orb.Point{lon, lat}
}

// cellToLonLat converts the center of a map cell back to lon/lat.
func (c *camera) cellToLonLat(cx, cy int) (orb.Point, bool) {
	if c.w <= 0 || c.h <= 0 || cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
		return orb.Point{}, false
	}
	return c.unproject(float64(cx*2)+1, float64(cy*4)+2), true
}

// fitView computes the view that shows b inside the map less padding cells on
// every side, zoomed no further than maxZoom.
func (c *camera) fitView(b orb.Bound, padding int, maxZoom float64) (view, error) {
	if c.w <= 0 || c.h <= 0 {
		return view{}, errNoViewport
	}
	usableW := float64(max(1, c.w-2*padding) * 2)
	usableH := float64(max(1, c.h-2*padding) * 4)

	zoom := maxZoom
	if span := b.Max.Lon() - b.Min.Lon(); span > 0 {
		zoom = math.Min(zoom, math.Log2(360*usableW/(c.cfg.TileSize*span)))
	}
	if span := b.Max.Lat() - b.Min.Lat(); span > 0 {
		zoom = math.Min(zoom, math.Log2(360*usableH/(c.cfg.TileSize*span)))
	}
	return view{center: b.Center(), zoom: c.clampZoom(zoom)}, nil
}

// jump moves the camera at once, superseding any animation.
func (c *camera) jump(v view) {
	c.seq++
	c.anim = nil
	c.cur = view{center: v.center, zoom: c.clampZoom(v.zoom)}
}

// animateTo starts an eased move to v. It returns the sequence number the
// frame ticks must carry, and false when the move completed immediately.
func (c *camera) animateTo(v view, d time.Duration) (int, bool) {
	steps := int(d / frameInterval)
	if steps <= 1 {
		c.jump(v)
		return c.seq, false
	}
	c.seq++
	c.anim = &animation{
		from:  c.cur,
		to:    view{center: v.center, zoom: c.clampZoom(v.zoom)},
		steps: steps,
	}
	return c.seq, true
}

// advance runs one animation frame. Frames from a superseded animation are
// ignored. It reports whether another frame is due.
func (c *camera) advance(seq int) bool {
	if c.anim == nil || seq != c.seq {
		return false
	}
	a := c.anim
	a.step++
	if a.step >= a.steps {
		c.cur = a.to
		c.anim = nil
		return false
	}
	t := easeInOut(float64(a.step) / float64(a.steps))
	c.cur = view{
		center: orb.Point{
			a.from.center.Lon() + (a.to.center.Lon()-a.from.center.Lon())*t,
			a.from.center.Lat() + (a.to.center.Lat()-a.from.center.Lat())*t,
		},
		zoom: a.from.zoom + (a.to.zoom-a.from.zoom)*t,
	}
	return true
}

func (c *camera) animating() bool { return c.anim != nil }

// pan shifts the view by whole cells.
func (c *camera) pan(dx, dy int) {
	d := c.degPerDot()
	c.jump(view{
		center: orb.Point{c.cur.center.Lon() + float64(dx*2)*d, c.cur.center.Lat() - float64(dy*4)*d},
		zoom:   c.cur.zoom,
	})
}

func (c *camera) zoomBy(delta float64) {
	c.jump(view{center: c.cur.center, zoom: c.cur.zoom + delta})
}
