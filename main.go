package main

import (
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"retro-snake/config"
	"retro-snake/game"
	"retro-snake/game/types"
	"retro-snake/ui"
)

// Grid dimensions for the terminal preview, where there is no display
// geometry to derive them from.
const (
	tuiGridWidth  = 70
	tuiGridHeight = 30
)

// exitMouseThreshold is how far the mouse must travel, in pixels on either
// axis, before the screensaver exits.
const exitMouseThreshold = 50

func main() {
	windowed := flag.Bool("windowed", false, "Run in a window instead of fullscreen")
	tui := flag.Bool("tui", false, "Run an ASCII preview in the terminal")
	speed := flag.Int("speed", 0, "Override simulation ticks per second (0 = config value)")
	flag.Parse()

	cfg := config.Load()
	if *speed > 0 {
		cfg.Speed = *speed
		cfg.Normalize()
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	interval := time.Second / time.Duration(cfg.Speed)

	if *tui {
		runTUI(cfg, rng, interval)
		return
	}
	runScreensaver(cfg, rng, interval, *windowed)
}

func runScreensaver(cfg config.Config, rng *rand.Rand, interval time.Duration, windowed bool) {
	if windowed {
		rl.InitWindow(1024, 768, "Retro Snake Screensaver")
	} else {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(0, 0, "Retro Snake Screensaver")
		rl.HideCursor()
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	grid := types.Grid{
		Width:  (rl.GetScreenWidth() + cfg.CellSize - 1) / cfg.CellSize,
		Height: (rl.GetScreenHeight() + cfg.CellSize - 1) / cfg.CellSize,
	}
	g := game.New(cfg, grid, rng)
	renderer := ui.NewRenderer(cfg.CellSize, cfg.ShowLeaderboard, rng)

	initialMouse := rl.GetMousePosition()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if windowed {
			if rl.IsKeyPressed(rl.KeyQ) {
				break
			}
		} else if wakeInput(initialMouse) {
			break
		}

		// Fixed-interval simulation, free-running draw.
		if time.Since(lastUpdate) >= interval {
			g.Update()
			lastUpdate = time.Now()
		}
		renderer.Draw(g)
	}

	saveStats(g)
}

// wakeInput reports whether the user touched anything: any key, any mouse
// button, or moving the mouse past the threshold.
func wakeInput(initialMouse rl.Vector2) bool {
	if rl.GetKeyPressed() != 0 {
		return true
	}
	for _, btn := range []rl.MouseButton{rl.MouseLeftButton, rl.MouseRightButton, rl.MouseMiddleButton} {
		if rl.IsMouseButtonPressed(btn) {
			return true
		}
	}
	pos := rl.GetMousePosition()
	dx := pos.X - initialMouse.X
	dy := pos.Y - initialMouse.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx > exitMouseThreshold || dy > exitMouseThreshold
}

func runTUI(cfg config.Config, rng *rand.Rand, interval time.Duration) {
	g := game.New(cfg, types.Grid{Width: tuiGridWidth, Height: tuiGridHeight}, rng)
	p := tea.NewProgram(ui.NewTUIModel(g, interval))
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
	saveStats(g)
}

func saveStats(g *game.Game) {
	dir, err := config.Dir()
	if err != nil {
		log.Printf("stats: %v", err)
		return
	}
	if err := g.SaveStats(dir); err != nil {
		log.Printf("stats: %v", err)
	}
}
