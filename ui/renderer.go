// Package ui renders the simulation. renderer.go is the raylib fullscreen
// renderer; tui.go is the terminal preview.
package ui

import (
	"fmt"
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"retro-snake/game"
	"retro-snake/game/entity"
	"retro-snake/game/types"
)

const (
	gridLineSpacing = 5 // draw a faint line every N cells
	leaderboardX    = 10
	leaderboardY    = 10
	leaderboardStep = 30
	fontSize        = 28
)

var gridLineColor = rl.Color{R: 8, G: 8, B: 12, A: 255}

// Renderer draws the whole scene with raylib: starfield, faint grid, food,
// snakes, death particles and the leaderboard.
type Renderer struct {
	cellSize        int32
	showLeaderboard bool
	starfield       *Starfield
}

// NewRenderer sizes the starfield to the current window area.
func NewRenderer(cellSize int, showLeaderboard bool, rng *rand.Rand) *Renderer {
	width := rl.GetScreenWidth()
	height := rl.GetScreenHeight()
	numStars := 150 * width * height / (1920 * 1080)
	return &Renderer{
		cellSize:        int32(cellSize),
		showLeaderboard: showLeaderboard,
		starfield:       NewStarfield(numStars, width, height, rng),
	}
}

// Draw renders one frame. The simulation is read-only here.
func (r *Renderer) Draw(g *game.Game) {
	r.starfield.Update()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.starfield.Draw()
	r.drawGridLines()

	for _, f := range g.Food {
		r.drawFood(f)
	}
	for _, s := range g.Snakes {
		if s.Alive {
			r.drawSnake(s)
		}
	}
	for _, anim := range g.DeathAnimations {
		r.drawParticles(anim)
	}
	if r.showLeaderboard {
		r.drawLeaderboard(g)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawGridLines() {
	width := int32(rl.GetScreenWidth())
	height := int32(rl.GetScreenHeight())
	step := r.cellSize * gridLineSpacing
	for x := int32(0); x < width; x += step {
		rl.DrawLine(x, 0, x, height, gridLineColor)
	}
	for y := int32(0); y < height; y += step {
		rl.DrawLine(0, y, width, y, gridLineColor)
	}
}

func (r *Renderer) drawFood(f *entity.Food) {
	pulse := float32(math.Sin(f.Pulse) * 2)
	radius := float32(r.cellSize-4)/2 + pulse
	center := rl.Vector2{
		X: float32(int32(f.Pos.X)*r.cellSize + r.cellSize/2),
		Y: float32(int32(f.Pos.Y)*r.cellSize + r.cellSize/2),
	}

	// Diamond with a small retro highlight.
	rl.DrawPoly(center, 4, radius, 0, toRaylib(f.Color, 255))
	rl.DrawLineEx(
		rl.Vector2{X: center.X - 2, Y: center.Y - 2},
		rl.Vector2{X: center.X - 4, Y: center.Y - 4},
		2, rl.White)
}

func (r *Renderer) drawSnake(s *entity.Snake) {
	bodyColor := toRaylib(darken(s.Color, 40), 255)
	headColor := toRaylib(s.Color, 255)

	for i, cell := range s.Body {
		px := int32(cell.X) * r.cellSize
		py := int32(cell.Y) * r.cellSize
		if i == 0 {
			rl.DrawRectangle(px, py, r.cellSize-1, r.cellSize-1, headColor)
			r.drawEyes(px, py, s.Direction)
			continue
		}
		// Darker outer square with a bright inset for the retro 3D look.
		rl.DrawRectangle(px, py, r.cellSize-1, r.cellSize-1, bodyColor)
		rl.DrawRectangle(px+2, py+2, r.cellSize-5, r.cellSize-5, headColor)
	}
}

func (r *Renderer) drawEyes(px, py int32, dir types.Direction) {
	eye := r.cellSize / 7
	if eye < 2 {
		eye = 2
	}
	near := r.cellSize / 5
	far := r.cellSize - near - eye

	var a, b rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: float32(px + far), Y: float32(py + near)}
		b = rl.Vector2{X: float32(px + far), Y: float32(py + far)}
	case types.Left:
		a = rl.Vector2{X: float32(px + near), Y: float32(py + near)}
		b = rl.Vector2{X: float32(px + near), Y: float32(py + far)}
	case types.Up:
		a = rl.Vector2{X: float32(px + near), Y: float32(py + near)}
		b = rl.Vector2{X: float32(px + far), Y: float32(py + near)}
	default: // Down
		a = rl.Vector2{X: float32(px + near), Y: float32(py + far)}
		b = rl.Vector2{X: float32(px + far), Y: float32(py + far)}
	}
	rl.DrawRectangle(int32(a.X), int32(a.Y), eye, eye, rl.Black)
	rl.DrawRectangle(int32(b.X), int32(b.Y), eye, eye, rl.Black)
}

func (r *Renderer) drawParticles(anim *entity.DeathAnimation) {
	for _, p := range anim.Particles {
		alpha := p.Alpha
		if alpha > 255 {
			alpha = 255
		}
		rl.DrawRectangle(int32(p.X), int32(p.Y), int32(p.Size), int32(p.Size),
			toRaylib(p.Color, uint8(alpha)))
	}
}

// drawLeaderboard lists snakes by body length, longest first. Sorting is a
// display concern; the simulation only exposes the raw lengths.
func (r *Renderer) drawLeaderboard(g *game.Game) {
	order := make([]int, len(g.Snakes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(g.Snakes[order[a]].Body) > len(g.Snakes[order[b]].Body)
	})

	y := int32(leaderboardY)
	for _, i := range order {
		s := g.Snakes[i]
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Snake %d", i+1)
		}
		text := fmt.Sprintf("%s: %d", name, len(s.Body))
		shadow := toRaylib(types.Color{R: s.Color.R / 2, G: s.Color.G / 2, B: s.Color.B / 2}, 255)
		rl.DrawText(text, leaderboardX+2, y+2, fontSize, shadow)
		rl.DrawText(text, leaderboardX, y, fontSize, toRaylib(s.Color, 255))
		y += leaderboardStep
	}
}

func toRaylib(c types.Color, alpha uint8) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: alpha}
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
