package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellInk is the color a braille cell is drawn with. The last shape drawn
// over a cell owns its color.
type cellInk struct {
	color lipgloss.Color
	bold  bool
}

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	ink  [][]cellInk
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	ink := make([][]cellInk, h)
	for i := range m {
		m[i] = make([]uint8, w)
		ink[i] = make([]cellInk, w)
	}
	return &brailleBuf{w: w, h: h, m: m, ink: ink}
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c cellInk) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	b.ink[cy][cx] = c
}

// fillSpan sets every micro-pixel of row my between x0 and x1 inclusive.
func (b *brailleBuf) fillSpan(my, x0, x1 int, c cellInk) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(0, x0)
	x1 = min(b.w*2-1, x1)
	for x := x0; x <= x1; x++ {
		b.setPixel(x, my, c)
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, c cellInk) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// toLines renders the buffer with runs of equally inked cells batched into
// one lipgloss style each.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		var runInk cellInk
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runInk.color == "" {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(runInk.color).Bold(runInk.bold).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			c := b.ink[y][x]
			r := ' '
			if mask == 0 {
				c = cellInk{}
			} else {
				r = rune(0x2800 + int(mask))
			}
			if c != runInk {
				flush()
				runInk = c
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
