package game

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"retro-snake/config"
	"retro-snake/game/entity"
	"retro-snake/game/types"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

// testGame wires a Game around hand-built snakes, bypassing random spawns.
func testGame(grid types.Grid, snakes ...*entity.Snake) *Game {
	g := &Game{
		Grid:        grid,
		Snakes:      snakes,
		names:       make([]string, len(snakes)),
		agentStats:  make([]AgentStats, len(snakes)),
		sessionID:   newSessionID(),
		startTime:   time.Now(),
		cellSize:    20,
		dodgeChance: 1.0,
		minLength:   1,
		maxLength:   1,
		rng:         testRand(),
	}
	for i, s := range snakes {
		g.names[i] = s.Name
		g.agentStats[i].Name = s.Name
	}
	return g
}

func testSnake(name string, dir types.Direction, body ...types.Point) *entity.Snake {
	s := entity.NewSnake(body[0], types.Color{R: 200, G: 100, B: 50}, name, 1.0, testRand())
	s.Direction = dir
	s.Body = body
	return s
}

func TestUpdateNoCollisionCourse(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 30}
	a := testSnake("A", types.Right, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5})
	b := testSnake("B", types.Right, types.Point{X: 5, Y: 20}, types.Point{X: 4, Y: 20})
	g := testGame(grid, a, b)

	g.Update()

	if len(g.Snakes) != 2 {
		t.Fatalf("snake count changed: %d", len(g.Snakes))
	}
	for _, s := range g.Snakes {
		if !s.Alive {
			t.Fatalf("%s died without a collision course", s.Name)
		}
		if s.Score != 0 {
			t.Fatalf("%s score changed to %d with no food", s.Name, s.Score)
		}
		if len(s.Body) != 2 {
			t.Fatalf("%s length changed to %d", s.Name, len(s.Body))
		}
	}
	if len(g.DeathAnimations) != 0 {
		t.Fatalf("unexpected death animations: %d", len(g.DeathAnimations))
	}
}

func TestFoodConsumption(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 30}
	a := testSnake("A", types.Right, types.Point{X: 5, Y: 5})
	g := testGame(grid, a)
	g.Food = []*entity.Food{entity.NewFood(types.Point{X: 6, Y: 5}, g.rng)}

	g.Update()

	if a.Score != 10 {
		t.Fatalf("score = %d, want 10", a.Score)
	}
	if a.GrowPending != 3 {
		t.Fatalf("GrowPending = %d, want 3", a.GrowPending)
	}
	if len(g.Food) != 1 {
		t.Fatalf("food count = %d, want 1 (constant total)", len(g.Food))
	}
	if g.agentStats[0].FoodEaten != 1 {
		t.Fatalf("FoodEaten = %d, want 1", g.agentStats[0].FoodEaten)
	}
}

func TestCrossCollisionKillsAndClearsSlot(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 30}
	// A is boxed in: ahead, above and below are all B's body, and the only
	// remaining non-reversing option is blocked too.
	a := testSnake("A", types.Right, types.Point{X: 5, Y: 5})
	b := testSnake("B", types.Right,
		types.Point{X: 6, Y: 5}, types.Point{X: 5, Y: 4}, types.Point{X: 5, Y: 6})
	g := testGame(grid, a, b)
	a.Score = 100

	g.Update()

	if a.Alive {
		t.Fatal("boxed-in snake survived")
	}
	if len(a.Body) != 0 {
		t.Fatalf("dead snake body not cleared: %d cells", len(a.Body))
	}
	if a.Score != 0 {
		t.Fatalf("dead snake score = %d, want 0", a.Score)
	}
	if len(g.DeathAnimations) != 1 || g.DeathAnimations[0].Slot != 0 {
		t.Fatalf("expected one death animation for slot 0, got %+v", g.DeathAnimations)
	}
	if g.agentStats[0].Deaths != 1 {
		t.Fatalf("deaths = %d, want 1", g.agentStats[0].Deaths)
	}
}

func TestRespawnReusesNameAndColor(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 30}
	a := testSnake("A", types.Right, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5})
	g := testGame(grid, a)
	color := a.Color

	g.kill(0)
	if g.Snakes[0].Alive {
		t.Fatal("snake alive after kill")
	}

	// Force the animation terminal condition and run the respawn pass.
	g.DeathAnimations[0].Particles = nil
	g.updateDeathAnimations()

	fresh := g.Snakes[0]
	if fresh == a {
		t.Fatal("slot not replaced with a new snake")
	}
	if !fresh.Alive {
		t.Fatal("respawned snake not alive")
	}
	if fresh.Name != "A" || fresh.Color != color {
		t.Fatalf("respawn lost identity: name=%q color=%v", fresh.Name, fresh.Color)
	}
	if len(g.DeathAnimations) != 0 {
		t.Fatalf("animation not removed after respawn")
	}
}

func TestRevalidateBreaksTiesDeterministically(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	a := testSnake("A", types.Right, types.Point{X: 5, Y: 5})
	b := testSnake("B", types.Up, types.Point{X: 6, Y: 5})
	g := testGame(grid, a, b)

	// Up and down probe equally well; the first maximum must win every time.
	for i := 0; i < 20; i++ {
		a.Direction = types.Right
		g.revalidate(0)
		if a.Direction != types.Up {
			t.Fatalf("iteration %d: override picked %v, want up (first max)", i, a.Direction)
		}
	}
}

func TestSpawnFoodSkipsWhenGridFull(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	a := testSnake("A", types.Right,
		types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0},
		types.Point{X: 0, Y: 1}, types.Point{X: 1, Y: 1})
	g := testGame(grid, a)

	g.SpawnFood()
	if len(g.Food) != 0 {
		t.Fatalf("spawned food on a full grid: %d", len(g.Food))
	}
}

func TestSpawnFoodPicksFreeCell(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 1}
	a := testSnake("A", types.Right, types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0})
	g := testGame(grid, a)

	g.SpawnFood()
	if len(g.Food) != 1 {
		t.Fatalf("food count = %d, want 1", len(g.Food))
	}
	if got := g.Food[0].Pos; got != (types.Point{X: 2, Y: 0}) {
		t.Fatalf("food at %v, want the only free cell (2,0)", got)
	}
}

func TestNewGameHonorsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.NumSnakes = 4
	cfg.NumFood = 6
	cfg.MinStartingLength = 2
	cfg.MaxStartingLength = 5

	g := New(cfg, types.Grid{Width: 40, Height: 30}, testRand())

	if len(g.Snakes) != 4 {
		t.Fatalf("snakes = %d, want 4", len(g.Snakes))
	}
	seen := make(map[string]bool)
	for _, s := range g.Snakes {
		if !s.Alive {
			t.Fatal("snake spawned dead")
		}
		if s.Name == "" || seen[s.Name] {
			t.Fatalf("name %q empty or duplicated", s.Name)
		}
		seen[s.Name] = true
		if s.GrowPending < 2 || s.GrowPending > 5 {
			t.Fatalf("starting length %d outside [2,5]", s.GrowPending)
		}
	}
	if len(g.Food) != 6 {
		t.Fatalf("food = %d, want 6", len(g.Food))
	}
	positions := make(map[types.Point]bool)
	for _, f := range g.Food {
		if positions[f.Pos] {
			t.Fatalf("two food items share cell %v", f.Pos)
		}
		positions[f.Pos] = true
	}
}

func TestInvertedLengthBoundsSwapped(t *testing.T) {
	cfg := config.Default()
	cfg.MinStartingLength = 9
	cfg.MaxStartingLength = 3

	g := New(cfg, types.Grid{Width: 40, Height: 30}, testRand())
	for _, s := range g.Snakes {
		if s.GrowPending < 3 || s.GrowPending > 9 {
			t.Fatalf("starting length %d outside swapped bounds [3,9]", s.GrowPending)
		}
	}
}

func TestSessionStats(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 30}
	a := testSnake("A", types.Right, types.Point{X: 5, Y: 5})
	g := testGame(grid, a)
	a.Score = 40

	stats := g.SessionStats()
	if stats.UUID == "" {
		t.Fatal("missing session uuid")
	}
	if len(stats.Agents) != 1 || stats.Agents[0].Name != "A" {
		t.Fatalf("agents = %+v", stats.Agents)
	}
	if stats.Agents[0].Score != 40 {
		t.Fatalf("live score not captured: %d", stats.Agents[0].Score)
	}
	if stats.EndTime.Before(stats.StartTime) {
		t.Fatal("end time before start time")
	}
}
