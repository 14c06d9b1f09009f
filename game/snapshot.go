package game

import (
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// Snapshot is a read-only copy of everything the renderer needs for one frame
type Snapshot struct {
	State        State
	Grid         types.Grid
	Snake        []types.Point // head first
	Direction    types.Direction
	Food         types.Point
	Score        int
	HighScore    int
	Difficulty   Difficulty
	Difficulties []Difficulty // only set in the difficulty selection screen
	Collision    manager.CollisionType
	Won          bool
	GamesPlayed  int
	AverageScore float64
}

// Head returns the first segment, or false for an empty snake
func (s Snapshot) Head() (types.Point, bool) {
	if len(s.Snake) == 0 {
		return types.Point{}, false
	}
	return s.Snake[0], true
}

func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:        g.state,
		Grid:         g.Grid,
		Snake:        g.snake.Segments(),
		Direction:    g.snake.Direction,
		Food:         g.food,
		Score:        g.score,
		HighScore:    g.stateMgr.GetHighScore(),
		Difficulty:   g.difficulty,
		Collision:    g.collision,
		Won:          g.won,
		GamesPlayed:  g.statsMgr.GamesPlayed(),
		AverageScore: g.statsMgr.AverageScore(),
	}
	if g.state == StateDifficultySelect {
		snap.Difficulties = append([]Difficulty(nil), Difficulties...)
	}
	return snap
}
