// Package style maps drill-down context to the visual style of a boundary shape.
package style

// Layer tells which level of the drill-down a shape is rendered on.
type Layer int

const (
	// Parent is the top layer users drill into (regions/provinces).
	Parent Layer = iota
	// Child is the filtered layer below the selected area.
	Child
)

func (l Layer) String() string {
	if l == Child {
		return "child"
	}
	return "parent"
}

// Descriptor is what the map surface paints a shape with.
type Descriptor struct {
	FillColor    string
	StrokeColor  string
	StrokeWeight int
	FillOpacity  float64
	DashArray    string
}

var (
	parentDefault = Descriptor{
		FillColor:    "#3388ff",
		StrokeColor:  "#0c4da2",
		StrokeWeight: 1,
		FillOpacity:  0.7,
		DashArray:    "0",
	}
	parentHighlighted = Descriptor{
		FillColor:    "#00b894",
		StrokeColor:  "#00a085",
		StrokeWeight: 4,
		FillOpacity:  0.9,
		DashArray:    "0",
	}
	parentDimmed = Descriptor{
		FillColor:    "#3388ff",
		StrokeColor:  "#0c4da2",
		StrokeWeight: 1,
		FillOpacity:  0.4,
		DashArray:    "0",
	}
	parentDimmedHighlighted = Descriptor{
		FillColor:    "#00b894",
		StrokeColor:  "#00a085",
		StrokeWeight: 4,
		FillOpacity:  0.8,
		DashArray:    "0",
	}
	parentHover = Descriptor{
		FillColor:    "#ff7800",
		StrokeColor:  "#d63031",
		StrokeWeight: 2,
		FillOpacity:  0.9,
		DashArray:    "0",
	}

	childDefault = Descriptor{
		FillColor:    "#ff6b6b",
		StrokeColor:  "#d63031",
		StrokeWeight: 1,
		FillOpacity:  0.8,
		DashArray:    "0",
	}
	childHighlighted = Descriptor{
		FillColor:    "#74b9ff",
		StrokeColor:  "#0984e3",
		StrokeWeight: 4,
		FillOpacity:  0.9,
		DashArray:    "0",
	}
	childHover = Descriptor{
		FillColor:    "#fd79a8",
		StrokeColor:  "#e84393",
		StrokeWeight: 2,
		FillOpacity:  0.9,
		DashArray:    "0",
	}
)

// Resolve returns the resting style of a shape.
func Resolve(layer Layer, highlighted, parentSelected bool) Descriptor {
	if layer == Child {
		if highlighted {
			return childHighlighted
		}
		return childDefault
	}
	switch {
	case parentSelected && highlighted:
		return parentDimmedHighlighted
	case parentSelected:
		return parentDimmed
	case highlighted:
		return parentHighlighted
	}
	return parentDefault
}

// Hover returns the transient style shown while the pointer is over a shape.
func Hover(layer Layer) Descriptor {
	if layer == Child {
		return childHover
	}
	return parentHover
}
