// Package game implements the screensaver simulation: a shared toroidal grid
// on which autonomous snakes hunt food, dodge each other and die into
// particle bursts before respawning.
package game

import (
	"time"

	"golang.org/x/exp/rand"

	"retro-snake/config"
	"retro-snake/game/entity"
	"retro-snake/game/types"
	"retro-snake/namegen"
)

const (
	foodGrowth        = 3
	foodScore         = 10
	spawnMargin       = 10
	foodSpawnAttempts = 100
	revalidationDepth = 5
)

// Game owns every snake, food item and death animation. Snakes live in a
// fixed-size arena: a dead snake's slot keeps its color and name, and the
// replacement spawns into the same index.
type Game struct {
	Grid            types.Grid
	Snakes          []*entity.Snake
	Food            []*entity.Food
	DeathAnimations []*entity.DeathAnimation

	names       []string
	colors      []types.Color
	agentStats  []AgentStats
	sessionID   string
	startTime   time.Time
	cellSize    int
	dodgeChance float64
	minLength   int
	maxLength   int
	rng         *rand.Rand
}

// New builds a simulation for the given grid. rng may be nil, in which case
// a time-seeded source is used; tests pass a fixed seed instead.
func New(cfg config.Config, grid types.Grid, rng *rand.Rand) *Game {
	cfg.Normalize()
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	g := &Game{
		Grid:        grid,
		Snakes:      make([]*entity.Snake, cfg.NumSnakes),
		names:       make([]string, cfg.NumSnakes),
		colors:      uniqueColors(cfg.NumSnakes, rng),
		agentStats:  make([]AgentStats, cfg.NumSnakes),
		sessionID:   newSessionID(),
		startTime:   time.Now(),
		cellSize:    cfg.CellSize,
		dodgeChance: cfg.DodgeProbability(),
		minLength:   cfg.MinStartingLength,
		maxLength:   cfg.MaxStartingLength,
		rng:         rng,
	}

	gen := namegen.New(rng)
	for i := range g.Snakes {
		g.names[i] = gen.Generate()
		g.agentStats[i].Name = g.names[i]
		g.Snakes[i] = g.newSnake(g.colors[i], g.names[i])
	}

	for i := 0; i < cfg.NumFood; i++ {
		g.SpawnFood()
	}
	return g
}

// newSnake spawns a snake at a random cell away from the edges, with its
// starting length preloaded as pending growth.
func (g *Game) newSnake(color types.Color, name string) *entity.Snake {
	start := types.Point{
		X: g.randomCoord(g.Grid.Width),
		Y: g.randomCoord(g.Grid.Height),
	}
	s := entity.NewSnake(start, color, name, g.dodgeChance, g.rng)
	length := g.minLength
	if g.maxLength > g.minLength {
		length += g.rng.Intn(g.maxLength - g.minLength + 1)
	}
	s.Grow(length)
	return s
}

// randomCoord keeps spawns spawnMargin cells away from the seam where
// possible; tiny grids fall back to the full range.
func (g *Game) randomCoord(size int) int {
	if size > 2*spawnMargin {
		return spawnMargin + g.rng.Intn(size-2*spawnMargin+1)
	}
	return g.rng.Intn(size)
}

// SpawnFood places one food item on a uniformly random free cell. It gives
// up silently after a bounded number of attempts; a crowded grid skips the
// spawn instead of stalling the tick.
func (g *Game) SpawnFood() {
	occupied := make(map[types.Point]bool)
	for _, s := range g.Snakes {
		if s == nil || !s.Alive {
			continue
		}
		for _, p := range s.Body {
			occupied[p] = true
		}
	}
	for _, f := range g.Food {
		occupied[f.Pos] = true
	}

	for i := 0; i < foodSpawnAttempts; i++ {
		pos := types.Point{X: g.rng.Intn(g.Grid.Width), Y: g.rng.Intn(g.Grid.Height)}
		if !occupied[pos] {
			g.Food = append(g.Food, entity.NewFood(pos, g.rng))
			return
		}
	}
}

// agentSnapshot is the pre-tick view of one living snake. Planning runs
// against these snapshots for every agent, so the per-snake update order
// does not leak into planning.
type agentSnapshot struct {
	slot int
	head types.Point
	dir  types.Direction
	body []types.Point
}

// obstaclesFor builds the obstacle set snake i plans against: its own body,
// every other snapshotted body, and each peer's predicted next head.
func (g *Game) obstaclesFor(i int, snapshot []agentSnapshot) map[types.Point]bool {
	obstacles := g.Snakes[i].BodySet()
	for _, o := range snapshot {
		if o.slot == i {
			continue
		}
		for _, p := range o.body {
			obstacles[p] = true
		}
		obstacles[g.Grid.Wrap(o.head, o.dir)] = true
	}
	return obstacles
}

// currentObstacles is the no-prediction variant used by the re-validation
// pass: only cells actually occupied right now.
func (g *Game) currentObstacles(i int) map[types.Point]bool {
	obstacles := g.Snakes[i].BodySet()
	for j, other := range g.Snakes {
		if j == i || !other.Alive {
			continue
		}
		for _, p := range other.Body {
			obstacles[p] = true
		}
	}
	return obstacles
}

// Update advances the whole simulation one tick. Snakes are processed in
// slot order; a snake later in the order sees earlier snakes' post-move
// bodies during its re-validation step only. That asymmetry is deliberate
// and matches the planning/re-validation split.
func (g *Game) Update() {
	for _, f := range g.Food {
		f.Tick()
	}

	g.updateDeathAnimations()

	// Consistent pre-tick snapshot of every living snake. Move replaces the
	// body slice rather than mutating it, so holding the old headers is a
	// real snapshot.
	snapshot := make([]agentSnapshot, 0, len(g.Snakes))
	for i, s := range g.Snakes {
		if s.Alive {
			snapshot = append(snapshot, agentSnapshot{slot: i, head: s.Head(), dir: s.Direction, body: s.Body})
		}
	}

	for i, snake := range g.Snakes {
		if !snake.Alive {
			continue
		}

		peers := make([]entity.Peer, 0, len(snapshot))
		for _, o := range snapshot {
			if o.slot != i {
				peers = append(peers, entity.Peer{Head: o.head, Direction: o.dir})
			}
		}

		snake.ChooseDirection(g.Grid, g.obstaclesFor(i, snapshot), peers)
		g.revalidate(i)
		snake.Move(g.Grid)

		head := snake.Head()
		for fi, f := range g.Food {
			if f.Pos == head {
				snake.Grow(foodGrowth)
				snake.Score += foodScore
				g.agentStats[i].FoodEaten++
				g.Food[fi] = g.Food[len(g.Food)-1]
				g.Food = g.Food[:len(g.Food)-1]
				g.SpawnFood()
				break
			}
		}

		if len(snake.Body) > g.agentStats[i].BestLength {
			g.agentStats[i].BestLength = len(snake.Body)
		}

		if snake.SelfCollision() {
			g.kill(i)
			continue
		}

		for j, other := range g.Snakes {
			if j == i || !other.Alive {
				continue
			}
			if containsPoint(other.Body, head) {
				g.kill(i)
				break
			}
		}
	}
}

// revalidate re-checks the chosen heading against the bodies as they stand
// right now; other snakes may have committed to moves after this snake
// planned. If the next cell is occupied, the best currently-safe direction
// wins, with ties broken by first maximum. The deterministic tie break here
// is intentional: it keeps an emergency override from thrashing, unlike the
// randomized tie break in the primary decision path.
func (g *Game) revalidate(i int) {
	snake := g.Snakes[i]
	current := g.currentObstacles(i)
	next := g.Grid.Wrap(snake.Head(), snake.Direction)
	if !current[next] {
		return
	}
	bestScore := -1
	bestDir := snake.Direction
	found := false
	for _, d := range snake.SafeDirections(g.Grid, current) {
		if score := snake.LookAhead(g.Grid, d, current, revalidationDepth); score > bestScore {
			bestScore = score
			bestDir = d
			found = true
		}
	}
	if found {
		snake.Direction = bestDir
	}
}

// kill transitions slot i to the dying state: the body and score are cleared
// immediately and a particle burst takes over until respawn.
func (g *Game) kill(i int) {
	snake := g.Snakes[i]
	g.agentStats[i].Deaths++
	anim := entity.NewDeathAnimation(i, snake.Body, snake.Color, g.cellSize, g.rng)
	snake.Alive = false
	snake.Body = nil
	snake.Score = 0
	g.DeathAnimations = append(g.DeathAnimations, anim)
}

// updateDeathAnimations advances every dissolve and respawns the slots whose
// animation finished, reusing the slot's color and name.
func (g *Game) updateDeathAnimations() {
	remaining := g.DeathAnimations[:0]
	for _, anim := range g.DeathAnimations {
		anim.Update()
		if anim.Done() {
			g.Snakes[anim.Slot] = g.newSnake(anim.Color, g.names[anim.Slot])
			continue
		}
		remaining = append(remaining, anim)
	}
	g.DeathAnimations = remaining
}

func containsPoint(body []types.Point, p types.Point) bool {
	for _, b := range body {
		if b == p {
			return true
		}
	}
	return false
}
