package boundary

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Properties holds the candidate name/id fields of a boundary shape.
// A nil field is absent; an empty string is present but empty.
type Properties struct {
	Name1        *string // NAME_1
	Name2        *string // NAME_2
	Name         *string // name
	Adm1EN       *string // ADM1_EN
	Adm2EN       *string // ADM2_EN
	ID           *string // id
	FID          *string // fid
	City         *string // city
	Municipality *string // municipality
	Province     *string // province
	Parent       *string // parent
}

// Feature is one administrative shape.
type Feature struct {
	Props    Properties
	Geometry orb.Geometry
	// Extra keeps every raw property for display, candidate fields included.
	Extra map[string]any
}

// Collection is the full shape set of one administrative level.
type Collection struct {
	Level    int
	Features []*Feature
}

// Len is nil-safe.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Features)
}

// Dataset is the session's boundary data. Level3 may be nil.
type Dataset struct {
	Level1 *Collection
	Level2 *Collection
	Level3 *Collection
}

var errNoGeometry = errors.New("feature has no geometry")

// Bound returns the bounding box of the feature's geometry.
func (f *Feature) Bound() (orb.Bound, error) {
	if f == nil || f.Geometry == nil {
		return orb.Bound{}, errNoGeometry
	}
	b := f.Geometry.Bound()
	if b.IsEmpty() {
		return orb.Bound{}, fmt.Errorf("empty %s geometry", f.Geometry.GeoJSONType())
	}
	return b, nil
}

// Str returns a pointer to s, for building Properties literals.
func Str(s string) *string { return &s }

// ParseCollection decodes a GeoJSON FeatureCollection document.
func ParseCollection(level int, data []byte) (*Collection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("level %d: parse geojson: %w", level, err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("level %d: unsupported geojson type %q", level, fc.Type)
	}
	c := &Collection{Level: level, Features: make([]*Feature, 0, len(fc.Features))}
	for _, gf := range fc.Features {
		c.Features = append(c.Features, FromGeoJSON(gf))
	}
	return c, nil
}

// FromGeoJSON maps a decoded geojson feature onto the typed property set.
func FromGeoJSON(gf *geojson.Feature) *Feature {
	p := gf.Properties
	return &Feature{
		Props: Properties{
			Name1:        propString(p, "NAME_1"),
			Name2:        propString(p, "NAME_2"),
			Name:         propString(p, "name"),
			Adm1EN:       propString(p, "ADM1_EN"),
			Adm2EN:       propString(p, "ADM2_EN"),
			ID:           propString(p, "id"),
			FID:          propString(p, "fid"),
			City:         propString(p, "city"),
			Municipality: propString(p, "municipality"),
			Province:     propString(p, "province"),
			Parent:       propString(p, "parent"),
		},
		Geometry: gf.Geometry,
		Extra:    map[string]any(p),
	}
}

// propString reads a scalar property as text. Numbers keep their shortest
// decimal form so numeric ids stay comparable.
func propString(p geojson.Properties, key string) *string {
	v, ok := p[key]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		return &t
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return &s
	case bool:
		s := strconv.FormatBool(t)
		return &s
	}
	return nil
}

// SortedKeys returns the raw property names in a stable order.
func (f *Feature) SortedKeys() []string {
	keys := make([]string, 0, len(f.Extra))
	for k := range f.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Find returns the first feature whose parent name or display name is name.
func (c *Collection) Find(name string) *Feature {
	if c == nil || name == "" {
		return nil
	}
	for _, f := range c.Features {
		if n, ok := ParentNameOf(f); ok && n == name {
			return f
		}
		if DisplayName(f, c.Level >= 2) == name {
			return f
		}
	}
	return nil
}
