package boundary

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
)

func square(x, y, size float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y},
	}}
}

func withProps(p Properties) *Feature {
	return &Feature{Props: p, Geometry: square(0, 0, 1)}
}

// collectionJSON renders a FeatureCollection whose features carry the given
// property maps over unit squares laid out along the x axis.
func collectionJSON(props ...map[string]any) []byte {
	features := make([]map[string]any, 0, len(props))
	for i, p := range props {
		x := float64(i)
		features = append(features, map[string]any{
			"type":       "Feature",
			"properties": p,
			"geometry": map[string]any{
				"type": "Polygon",
				"coordinates": [][][2]float64{{
					{x, 0}, {x + 1, 0}, {x + 1, 1}, {x, 1}, {x, 0},
				}},
			},
		})
	}
	b, err := json.Marshal(map[string]any{"type": "FeatureCollection", "features": features})
	if err != nil {
		panic(fmt.Sprintf("fixture: %v", err))
	}
	return b
}
