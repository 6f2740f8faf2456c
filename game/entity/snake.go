package entity

import (
	"golang.org/x/exp/rand"

	"retro-snake/game/types"
)

// Turn cadence bounds, in ticks. A snake only reconsiders its heading when
// its per-snake timer reaches a randomized interval.
const (
	minTurnInterval     = 15
	maxTurnInterval     = 50
	initialTurnInterval = 40

	// Look-ahead tuning: the depth-5 probe along the current heading flags
	// danger when fewer than 3 cells are clear; candidate directions are
	// scored with a depth-8 probe.
	dangerProbeDepth  = 5
	dangerProbeFloor  = 3
	scoringProbeDepth = 8

	// Chance to take a spontaneous turn when the timer allows one.
	idleTurnChance = 0.3

	// A peer head within this toroidal Chebyshev distance counts as nearby.
	proximityThreshold = 3
)

// Peer is the read-only per-tick snapshot of another snake that the decision
// engine is allowed to see: its head cell and current heading.
type Peer struct {
	Head      types.Point
	Direction types.Direction
}

// Snake is one autonomous agent. The head is Body[0], the tail is the last
// element. All decision state (turn timer, growth debt) lives here; the
// simulation owns cross-snake concerns.
type Snake struct {
	Body        []types.Point
	Direction   types.Direction
	Color       types.Color
	Name        string
	GrowPending int
	Score       int
	Alive       bool

	turnTimer    int
	turnInterval int
	dodgeChance  float64
	rng          *rand.Rand
}

// NewSnake creates a single-cell snake at start with a random heading.
// dodgeChance (0..1) is the probability that a forced direction change is
// actually taken; rng is the shared simulation source.
func NewSnake(start types.Point, color types.Color, name string, dodgeChance float64, rng *rand.Rand) *Snake {
	return &Snake{
		Body:         []types.Point{start},
		Direction:    types.Directions[rng.Intn(len(types.Directions))],
		Color:        color,
		Name:         name,
		Alive:        true,
		turnInterval: minTurnInterval + rng.Intn(initialTurnInterval-minTurnInterval+1),
		dodgeChance:  dodgeChance,
		rng:          rng,
	}
}

// Head returns the leading cell.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// BodySet returns the occupied cells as a set.
func (s *Snake) BodySet() map[types.Point]bool {
	set := make(map[types.Point]bool, len(s.Body))
	for _, p := range s.Body {
		set[p] = true
	}
	return set
}

func (s *Snake) canTurn() bool {
	return s.turnTimer >= s.turnInterval
}

func (s *Snake) resetTurnTimer() {
	s.turnTimer = 0
	s.turnInterval = minTurnInterval + s.rng.Intn(maxTurnInterval-minTurnInterval+1)
}

// PossibleDirections returns every direction except the reversal of the
// current heading.
func (s *Snake) PossibleDirections() []types.Direction {
	opposite := s.Direction.Opposite()
	dirs := make([]types.Direction, 0, 3)
	for _, d := range types.Directions {
		if d != opposite {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// SafeDirections returns the non-reversing directions whose next cell, after
// wraparound, is not an obstacle. May be empty.
func (s *Snake) SafeDirections(grid types.Grid, obstacles map[types.Point]bool) []types.Direction {
	var safe []types.Direction
	for _, d := range s.PossibleDirections() {
		if !obstacles[grid.Wrap(s.Head(), d)] {
			safe = append(safe, d)
		}
	}
	return safe
}

// LookAhead walks up to depth cells in a straight line from the head and
// counts how many are clear of both the obstacle set and the snake's own
// current body, stopping at the first hit. It is a cheap proxy for room to
// maneuver, not a path search.
func (s *Snake) LookAhead(grid types.Grid, dir types.Direction, obstacles map[types.Point]bool, depth int) int {
	body := s.BodySet()
	pos := s.Head()
	clear := 0
	for i := 0; i < depth; i++ {
		pos = grid.Wrap(pos, dir)
		if obstacles[pos] || body[pos] {
			break
		}
		clear++
	}
	return clear
}

// ApproachingSnakes reports whether any peer head is within threshold cells
// (toroidal Chebyshev distance) and closing in: its projected next head is
// strictly closer than its current one.
func (s *Snake) ApproachingSnakes(grid types.Grid, peers []Peer, threshold int) bool {
	head := s.Head()
	for _, peer := range peers {
		dist := grid.Distance(peer.Head, head)
		if dist > threshold {
			continue
		}
		next := grid.Wrap(peer.Head, peer.Direction)
		if grid.Distance(next, head) < dist {
			return true
		}
	}
	return false
}

// bestByLookAhead scores each candidate with a straight-line probe and
// returns the subset achieving the maximum score.
func (s *Snake) bestByLookAhead(grid types.Grid, candidates []types.Direction, obstacles map[types.Point]bool, depth int) []types.Direction {
	var best []types.Direction
	bestScore := -1
	for _, d := range candidates {
		score := s.LookAhead(grid, d, obstacles, depth)
		if score > bestScore {
			bestScore = score
			best = []types.Direction{d}
		} else if score == bestScore {
			best = append(best, d)
		}
	}
	return best
}

// ChooseDirection runs one decision step against the supplied obstacle set
// and peer snapshots. It only ever mutates the snake's heading and turn
// timer; the move itself happens later in the tick.
func (s *Snake) ChooseDirection(grid types.Grid, obstacles map[types.Point]bool, peers []Peer) {
	s.turnTimer++

	safe := s.SafeDirections(grid, obstacles)
	if len(safe) == 0 {
		// Nowhere good to go. Fall back to every non-reversing direction
		// and accept that this snake may crash.
		safe = s.PossibleDirections()
	}

	approachingDanger := s.ApproachingSnakes(grid, peers, proximityThreshold)

	currentSafe := false
	for _, d := range safe {
		if d == s.Direction {
			currentSafe = true
			break
		}
	}

	lookAheadDanger := false
	if currentSafe && s.LookAhead(grid, s.Direction, obstacles, dangerProbeDepth) < dangerProbeFloor {
		lookAheadDanger = true
	}

	if currentSafe {
		switch {
		case (approachingDanger || lookAheadDanger) && s.canTurn():
			// Danger ahead or a neighbor closing in: re-evaluate now.
			s.turnToBest(grid, safe, obstacles)
		case s.canTurn() && s.rng.Float64() < idleTurnChance:
			// Spontaneous wandering turn.
			s.turnToBest(grid, safe, obstacles)
		}
		return
	}

	// Current heading leads straight into an obstacle. Pick the best safe
	// direction, but only commit with the configured dodge probability;
	// otherwise the snake keeps its doomed course.
	best := s.bestByLookAhead(grid, safe, obstacles, scoringProbeDepth)
	if s.rng.Float64() < s.dodgeChance {
		if len(best) > 0 {
			s.Direction = best[s.rng.Intn(len(best))]
		} else {
			s.Direction = safe[s.rng.Intn(len(safe))]
		}
		s.resetTurnTimer()
	}
}

// turnToBest applies the max-score evaluation with uniform tie breaking. The
// timer resets only when the heading actually changes, so a snake that keeps
// confirming its course stays eligible to react.
func (s *Snake) turnToBest(grid types.Grid, candidates []types.Direction, obstacles map[types.Point]bool) {
	best := s.bestByLookAhead(grid, candidates, obstacles, scoringProbeDepth)
	if len(best) == 0 {
		return
	}
	next := best[s.rng.Intn(len(best))]
	if next != s.Direction {
		s.resetTurnTimer()
	}
	s.Direction = next
}

// Move advances the snake one cell. A pending growth unit is consumed to
// keep the tail in place; otherwise the tail cell is dropped.
func (s *Snake) Move(grid types.Grid) {
	newHead := grid.Wrap(s.Head(), s.Direction)
	s.Body = append([]types.Point{newHead}, s.Body...)
	if s.GrowPending > 0 {
		s.GrowPending--
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow schedules n segments of growth, realized one per subsequent move.
func (s *Snake) Grow(n int) {
	s.GrowPending += n
}

// SelfCollision reports whether the head occupies the same cell as any other
// body segment.
func (s *Snake) SelfCollision() bool {
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}
