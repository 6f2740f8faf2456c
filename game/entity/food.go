package entity

import (
	"golang.org/x/exp/rand"

	"retro-snake/game/types"
)

// foodPalette is the fixed set of colors food may spawn with.
var foodPalette = [4]types.Color{
	{R: 255, G: 0, B: 0},   // red
	{R: 255, G: 255, B: 0}, // yellow
	{R: 0, G: 255, B: 255}, // cyan
	{R: 255, G: 0, B: 255}, // magenta
}

// Food is a single consumable item. It has no identity beyond its position;
// color and pulse phase exist only for the renderers.
type Food struct {
	Pos   types.Point
	Color types.Color
	Pulse float64
}

// NewFood places a food item at pos with a random palette color.
func NewFood(pos types.Point, rng *rand.Rand) *Food {
	return &Food{
		Pos:   pos,
		Color: foodPalette[rng.Intn(len(foodPalette))],
	}
}

// Tick advances the pulse phase used by the renderers.
func (f *Food) Tick() {
	f.Pulse += 0.15
}
