package tui

import (
	"encoding/json"
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"drillmap/internal/boundary"
)

const maxColW = 40

// focusFeature is the feature the attribute table describes: the highlighted
// child, else the selected area.
func (m Model) focusFeature() *boundary.Feature {
	if m.session == nil {
		return nil
	}
	st := m.session.State()
	if st.HighlightedFeature != nil {
		return st.HighlightedFeature
	}
	return st.SelectedArea
}

// refreshAttrs rebuilds the table rows from the focused feature.
func (m *Model) refreshAttrs() {
	f := m.focusFeature()
	if f == nil {
		m.showAttrs = false
		m.status = "no area selected"
		return
	}
	rows := buildAttributes(f)
	// If there are no rows, disable attributes view to avoid rendering panics
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for " + boundary.DisplayName(f, false)
		return
	}
	keyW, valW := len("property")+2, len("value")+2
	for _, r := range rows {
		keyW = max(keyW, min(maxColW, len(r[0])+2))
		valW = max(valW, min(maxColW, len(r[1])+2))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns([]table.Column{
		{Title: "property", Width: keyW},
		{Title: "value", Width: valW},
	})
	m.tbl.SetRows(rows)
}

// buildAttributes lists every raw property of f in key order.
func buildAttributes(f *boundary.Feature) []table.Row {
	rows := make([]table.Row, 0, len(f.Extra))
	for _, k := range f.SortedKeys() {
		rows = append(rows, table.Row{k, formatValue(f.Extra[k])})
	}
	return rows
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	}
	bs, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(bs)
}
