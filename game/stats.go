package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SessionStats is the summary written when the screensaver exits.
type SessionStats struct {
	UUID      string       `json:"uuid"`
	StartTime time.Time    `json:"start_time"`
	EndTime   time.Time    `json:"end_time"`
	Agents    []AgentStats `json:"agents"`
}

// AgentStats accumulates per-slot numbers across deaths and respawns.
type AgentStats struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	BestLength int    `json:"best_length"`
	Deaths     int    `json:"deaths"`
	FoodEaten  int    `json:"food_eaten"`
}

func newSessionID() string {
	return uuid.New().String()
}

// SessionStats snapshots the current session, filling in live scores and the
// end time.
func (g *Game) SessionStats() SessionStats {
	agents := make([]AgentStats, len(g.agentStats))
	copy(agents, g.agentStats)
	for i, s := range g.Snakes {
		if s != nil && s.Alive {
			agents[i].Score = s.Score
		}
	}
	return SessionStats{
		UUID:      g.sessionID,
		StartTime: g.startTime,
		EndTime:   time.Now(),
		Agents:    agents,
	}
}

// SaveStats writes the session summary as indented JSON into dir.
func (g *Game) SaveStats(dir string) error {
	stats := g.SessionStats()
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "stats-"+stats.UUID+".json"), data, 0o644)
}
