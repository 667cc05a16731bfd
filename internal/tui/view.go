package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"drillmap/internal/boundary"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	header := lipgloss.NewStyle().Width(lay.contentW).Render(m.renderHeader(lay.contentW))

	var body string
	switch {
	case m.loadErr != nil:
		msg := errorStyle.Render("Failed to load map data") + "\n" +
			m.loadErr.Error() + "\n\n" + dimStyle.Render("r retry  q quit")
		box := boxStyle.MaxWidth(max(20, lay.contentW-4)).Render(msg)
		body = lipgloss.Place(lay.contentW, lay.contentH, lipgloss.Center, lipgloss.Center, box)
	case m.session == nil:
		body = lipgloss.Place(lay.contentW, lay.contentH, lipgloss.Center, lipgloss.Center,
			m.spin.View()+" Loading map data...")
	default:
		body = m.renderBody(lay)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	// tooltip and mouse coords at bottom-right
	right := ""
	if m.hover != nil {
		right = tooltipStyle.Render(m.hover.name())
	}
	if m.hoverHasGeo {
		right += dimStyle.Render(fmt.Sprintf("  lon=%.5f lat=%.5f  ", m.hoverLon, m.hoverLat))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lay.contentW-lipgloss.Width(left)-lipgloss.Width(right))
	rightCol := lipgloss.Place(spacerW+lipgloss.Width(right), 1, lipgloss.Right, lipgloss.Center, right)
	footer := lipgloss.NewStyle().Width(lay.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, rightCol))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

func (m Model) renderBody(lay layout) string {
	var mapView string
	if m.showAttrs {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		title := titleStyle.Render(boundary.DisplayName(m.focusFeature(), m.session.State().HighlightedFeature != nil))
		attrsBox := boxStyle.Width(maxW).Render(title + "\n" + m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, attrsBox)
	} else {
		canvas := m.renderMap(lay.mapW, lay.mapH)
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(canvas)
	}
	if !m.showSidebar {
		return mapView
	}
	sidebar := lipgloss.NewStyle().Width(lay.sidebarW).Render(m.l.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
}

// renderHeader shows the breadcrumb on the left and the level indicator on
// the right.
func (m Model) renderHeader(width int) string {
	left := titleStyle.Render(" drillmap ")
	if m.session == nil {
		return left
	}
	level := m.session.State().Level
	if area := m.loc.area; area != nil {
		name, ok := boundary.ParentNameOf(area)
		if !ok {
			name = fmt.Sprintf("Level %d Area", level)
		}
		left += dimStyle.Render(" Current Location: ") + crumbStyle.Render(name) +
			dimStyle.Render(fmt.Sprintf(" • Level %d", level))
	}

	indicator := titleStyle.Render(fmt.Sprintf("Level %d", level))
	if level < m.session.MaxLevel() {
		indicator += dimStyle.Render("  Click area to drill down")
	}
	if level > 0 {
		indicator += dimStyle.Render("  ← b back")
	}
	indicator += " "
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(indicator))
	return left + strings.Repeat(" ", gap) + indicator
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"click drill",
		"b back",
		"↑↓←→ pan",
		"+/- zoom",
		"Tab areas",
		"Enter select",
		"a attrs",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
