package boundary

// slot is one identity field: absent fields stay distinct from empty ones.
type slot struct {
	set bool
	val string
}

func slotOf(s *string) slot {
	if s == nil {
		return slot{}
	}
	return slot{set: true, val: *s}
}

// Key identifies a feature. Two features are the same feature iff their Keys
// are equal. Only NAME_1, NAME_2, name, ADM1_EN, ADM2_EN, id and fid take part.
type Key struct {
	name1, name2, name, adm1, adm2, id, fid slot
}

// Identity computes the Key of f. A nil feature has the zero Key.
func Identity(f *Feature) Key {
	if f == nil {
		return Key{}
	}
	p := f.Props
	return Key{
		name1: slotOf(p.Name1),
		name2: slotOf(p.Name2),
		name:  slotOf(p.Name),
		adm1:  slotOf(p.Adm1EN),
		adm2:  slotOf(p.Adm2EN),
		id:    slotOf(p.ID),
		fid:   slotOf(p.FID),
	}
}

// IsHighlighted reports whether f is the highlighted feature.
func IsHighlighted(f, highlighted *Feature) bool {
	if highlighted == nil {
		return false
	}
	return Identity(f) == Identity(highlighted)
}

// first returns the first present, non-empty value.
func first(candidates ...*string) (string, bool) {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c, true
		}
	}
	return "", false
}

// DisplayName resolves the label of a shape. Child and parent chains are
// independent.
func DisplayName(f *Feature, child bool) string {
	if f == nil {
		if child {
			return "City/Municipality"
		}
		return "Province/Region"
	}
	p := f.Props
	if child {
		if s, ok := first(p.Name2, p.Adm2EN, p.Name, p.City, p.Municipality); ok {
			return s
		}
		return "City/Municipality"
	}
	if s, ok := first(p.Name1, p.Adm1EN, p.Name, p.Province); ok {
		return s
	}
	return "Province/Region"
}

// ParentNameOf is the key a selected area filters its children by.
func ParentNameOf(f *Feature) (string, bool) {
	if f == nil {
		return "", false
	}
	return first(f.Props.Name, f.Props.Name1, f.Props.Adm1EN)
}
