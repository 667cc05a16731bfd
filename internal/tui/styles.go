package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"drillmap/internal/style"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	errFg     = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	crumbStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#93C5FD")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errFg).Bold(true)
	tooltipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FDE68A"))
)

// canvasBg is what a shape's fill is blended against.
var canvasBg = colorful.Color{R: 0.043, G: 0.059, B: 0.078}

// ink is the terminal rendering of a style descriptor.
type ink struct {
	fill   lipgloss.Color
	stroke lipgloss.Color
	bold   bool
}

// inkFor blends the fill color over the canvas by its opacity. Unparseable
// colors fall back to the base foreground.
func inkFor(d style.Descriptor) ink {
	out := ink{fill: baseFg, stroke: baseFg, bold: d.StrokeWeight >= 4}
	if c, err := colorful.Hex(d.FillColor); err == nil {
		out.fill = lipgloss.Color(canvasBg.BlendRgb(c, clampf(d.FillOpacity, 0, 1)).Clamped().Hex())
	}
	if c, err := colorful.Hex(d.StrokeColor); err == nil {
		out.stroke = lipgloss.Color(c.Hex())
	}
	return out
}
