package entity

import (
	"golang.org/x/exp/rand"

	"retro-snake/game/types"
)

// deathAnimationMaxFrames caps how long a dissolve may run. A slot is never
// held hostage by a stalled animation.
const deathAnimationMaxFrames = 60

// Particle is one decaying fragment of a dissolving snake, in pixel space.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  types.Color
	Alpha  float64
	Size   float64
	Decay  float64
}

// DeathAnimation is the transient dissolve effect bound to one snake slot.
// When it finishes, the simulation respawns that slot with the same color
// and name.
type DeathAnimation struct {
	Slot      int
	Color     types.Color
	Particles []Particle
	Frame     int
}

// NewDeathAnimation bursts a dying snake's body into particles. cellSize
// converts grid cells to pixel positions for the effect.
func NewDeathAnimation(slot int, body []types.Point, color types.Color, cellSize int, rng *rand.Rand) *DeathAnimation {
	particles := make([]Particle, 0, len(body)*4)
	for i, cell := range body {
		segColor := color
		if i > 0 {
			segColor = darken(color, 40)
		}
		for j := 0; j < 4; j++ {
			particles = append(particles, Particle{
				X:     float64(cell.X*cellSize+cellSize/2) + float64(rng.Intn(11)-5),
				Y:     float64(cell.Y*cellSize+cellSize/2) + float64(rng.Intn(11)-5),
				VX:    rng.Float64()*4 - 2,
				VY:    rng.Float64()*4 - 2,
				Color: segColor,
				Alpha: 255,
				Size:  float64(3 + rng.Intn(6)),
				Decay: 4 + rng.Float64()*4,
			})
		}
	}
	return &DeathAnimation{
		Slot:      slot,
		Color:     color,
		Particles: particles,
	}
}

// Update advances every particle one frame and drops the fully faded ones.
func (a *DeathAnimation) Update() {
	a.Frame++
	live := a.Particles[:0]
	for i := range a.Particles {
		p := &a.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VY += 0.1 // gravity
		p.Alpha -= p.Decay
		if p.Size > 1 {
			p.Size -= 0.1
		}
		if p.Alpha > 0 {
			live = append(live, *p)
		}
	}
	a.Particles = live
}

// Done reports the terminal condition: every particle faded, or the frame
// ceiling passed.
func (a *DeathAnimation) Done() bool {
	return len(a.Particles) == 0 || a.Frame > deathAnimationMaxFrames
}

func darken(c types.Color, by uint8) types.Color {
	sub := func(v, d uint8) uint8 {
		if v < d {
			return 0
		}
		return v - d
	}
	return types.Color{R: sub(c.R, by), G: sub(c.G, by), B: sub(c.B, by)}
}
