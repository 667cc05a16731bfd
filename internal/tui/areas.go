package tui

import (
	"sort"

	list "github.com/charmbracelet/bubbles/list"

	"drillmap/internal/boundary"
	"drillmap/internal/style"
)

type areaItem struct {
	shape       mapShape
	title       string
	highlighted bool
}

func (a areaItem) Title() string {
	if a.highlighted {
		return "● " + a.title
	}
	return a.title
}
func (a areaItem) Description() string { return a.shape.layer.String() }
func (a areaItem) FilterValue() string { return a.title }

// refreshAreas lists the shapes of the active layer: the children of the
// selected area once drilled, the top level otherwise.
func (m *Model) refreshAreas() {
	if m.session == nil {
		return
	}
	layer, c := style.Parent, m.session.ParentLayer()
	if child := m.session.ChildLayer(); child != nil {
		layer, c = style.Child, child
	}
	hl := m.session.State().HighlightedFeature

	var items []list.Item
	if c != nil {
		for _, f := range c.Features {
			sh := mapShape{f: f, layer: layer}
			items = append(items, areaItem{
				shape:       sh,
				title:       sh.name(),
				highlighted: boundary.IsHighlighted(f, hl),
			})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(areaItem).title < items[j].(areaItem).title })
	m.l.SetItems(items)
	if layer == style.Child {
		m.l.Title = "Cities / Municipalities"
	} else {
		m.l.Title = "Provinces / Regions"
	}
}
