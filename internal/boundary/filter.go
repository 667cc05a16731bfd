package boundary

// FilterChildren narrows children to the shapes that belong to parent.
//
// It returns nil when there is no parent, no child collection, or the parent
// has no usable name. When no child matches, the whole unfiltered collection
// is returned with matched=false: datasets with missing or inconsistent
// parent-link fields still show their children.
func FilterChildren(children *Collection, parent *Feature) (c *Collection, matched bool) {
	if children == nil || parent == nil {
		return nil, false
	}
	name, ok := ParentNameOf(parent)
	if !ok {
		return nil, false
	}
	var out []*Feature
	for _, f := range children.Features {
		if belongsTo(f, name) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return children, false
	}
	return &Collection{Level: children.Level, Features: out}, true
}

func belongsTo(f *Feature, parentName string) bool {
	p := f.Props
	for _, s := range []*string{p.Name1, p.Adm1EN, p.Parent, p.Province} {
		if s != nil && *s == parentName {
			return true
		}
	}
	return false
}
