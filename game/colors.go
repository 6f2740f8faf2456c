package game

import (
	"math"

	"golang.org/x/exp/rand"

	"retro-snake/game/types"
)

// uniqueColors generates n vivid, maximally spread colors by walking the hue
// wheel in golden-ratio steps from a random start.
func uniqueColors(n int, rng *rand.Rand) []types.Color {
	const goldenRatio = 0.618033988749895

	colors := make([]types.Color, n)
	hue := rng.Float64()
	for i := range colors {
		saturation := 0.8 + rng.Float64()*0.2
		value := 0.9 + rng.Float64()*0.1
		colors[i] = hsvToRGB(hue, saturation, value)
		hue = math.Mod(hue+goldenRatio, 1.0)
	}
	return colors
}

func hsvToRGB(h, s, v float64) types.Color {
	i := int(h*6) % 6
	f := h*6 - math.Floor(h*6)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return types.Color{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}
