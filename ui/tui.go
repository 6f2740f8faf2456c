package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"retro-snake/game"
)

// tickMsg drives the simulation clock inside the bubbletea event loop.
type tickMsg time.Time

// TUIModel runs the simulation in a terminal as an ASCII board. It exists
// for previewing settings without taking over the display.
type TUIModel struct {
	game     *game.Game
	interval time.Duration
}

// NewTUIModel wraps a simulation ticking at the given interval.
func NewTUIModel(g *game.Game, interval time.Duration) TUIModel {
	return TUIModel{game: g, interval: interval}
}

func (m TUIModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m TUIModel) Init() tea.Cmd {
	return m.tick()
}

func (m TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		// Screensaver semantics: any key exits.
		return m, tea.Quit
	case tickMsg:
		m.game.Update()
		return m, m.tick()
	}
	return m, nil
}

func (m TUIModel) View() string {
	g := m.game
	grid := make([][]byte, g.Grid.Height)
	for y := range grid {
		grid[y] = make([]byte, g.Grid.Width)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	for _, f := range g.Food {
		grid[f.Pos.Y][f.Pos.X] = '*'
	}
	for i, s := range g.Snakes {
		if !s.Alive {
			continue
		}
		sym := byte('a' + i%26)
		for j, p := range s.Body {
			if j == 0 {
				grid[p.Y][p.X] = sym - 32 // uppercase head
			} else {
				grid[p.Y][p.X] = sym
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	order := make([]int, len(g.Snakes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(g.Snakes[order[a]].Body) > len(g.Snakes[order[b]].Body)
	})
	sb.WriteByte('\n')
	for rank, i := range order {
		if rank >= 10 {
			break
		}
		s := g.Snakes[i]
		fmt.Fprintf(&sb, "%2d. %-12s len %-3d score %d\n", rank+1, s.Name, len(s.Body), s.Score)
	}
	sb.WriteString("\nPress any key to quit.\n")
	return sb.String()
}
