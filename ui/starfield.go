package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

type star struct {
	x, y       int32
	brightness float64
	speed      float64
	phase      float64
}

// Starfield is the twinkling background used when the screensaver draws over
// a plain black screen.
type Starfield struct {
	stars []star
}

// NewStarfield scatters count stars over a width x height pixel area.
func NewStarfield(count, width, height int, rng *rand.Rand) *Starfield {
	s := &Starfield{stars: make([]star, count)}
	for i := range s.stars {
		s.stars[i] = star{
			x:          int32(rng.Intn(width)),
			y:          int32(rng.Intn(height)),
			brightness: float64(50 + rng.Intn(101)),
			speed:      0.02 + rng.Float64()*0.06,
			phase:      rng.Float64() * 2 * math.Pi,
		}
	}
	return s
}

// Update advances each star's twinkle phase.
func (s *Starfield) Update() {
	for i := range s.stars {
		s.stars[i].phase += s.stars[i].speed
	}
}

// Draw renders the stars as single pixels.
func (s *Starfield) Draw() {
	for _, st := range s.stars {
		b := st.brightness + math.Sin(st.phase)*30
		if b < 30 {
			b = 30
		}
		if b > 180 {
			b = 180
		}
		v := uint8(b)
		rl.DrawPixel(st.x, st.y, rl.Color{R: v, G: v, B: v, A: 255})
	}
}
