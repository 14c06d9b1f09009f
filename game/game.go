package game

import (
	"log"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// State is the active screen of the game
type State int

const (
	StateMenu State = iota
	StateDifficultySelect
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateDifficultySelect:
		return "difficulty_select"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Difficulty is the snake speed in moves per second
type Difficulty int

const (
	Easy   Difficulty = 5
	Medium Difficulty = 10
	Hard   Difficulty = 15
)

// Difficulties lists the selectable speeds in menu order
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "custom"
	}
}

// MovesPerSecond returns the speed as a plain number
func (d Difficulty) MovesPerSecond() int {
	return int(d)
}

// Game owns the snake, the food and the scores. It is driven one frame at a
// time by the host loop and is not safe for concurrent use.
type Game struct {
	Grid       types.Grid
	state      State
	difficulty Difficulty
	snake      *entity.Snake
	food       types.Point
	score      int
	won        bool
	collision  manager.CollisionType
	startTime  time.Time

	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	statsMgr     *manager.StatsManager
	tickMgr      *manager.TickManager

	now func() time.Time
}

// NewGame builds a game in the menu state. The high score is read from store
// once here. stats may be nil, in which case history is kept in memory only.
func NewGame(store manager.ScoreStore, stats *manager.StatsManager, seed uint64) *Game {
	grid := types.NewGrid()
	collisionMgr := manager.NewCollisionManager(grid)
	if stats == nil {
		stats = manager.NewStatsManager("")
	}

	g := &Game{
		Grid:         grid,
		state:        StateMenu,
		difficulty:   Medium,
		collisionMgr: collisionMgr,
		stateMgr:     manager.NewStateManager(grid, collisionMgr, store, seed),
		statsMgr:     stats,
		tickMgr:      manager.NewTickManager(types.FPS),
		now:          time.Now,
	}
	g.reset()
	return g
}

// reset starts a fresh round: new snake, zero score, new food
func (g *Game) reset() {
	g.snake = entity.NewSnake(g.Grid.Center())
	g.score = 0
	g.won = false
	g.collision = manager.NoCollision
	g.tickMgr.Reset()
	g.startTime = g.now()

	food, ok := g.stateMgr.GenerateFood(g.snake)
	if !ok {
		// Only reachable on a board smaller than the starting snake
		g.won = true
	}
	g.food = food
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

// HandleKey applies a key-down event. It returns false when the player asked
// to quit the program.
func (g *Game) HandleKey(key Key) bool {
	return g.Apply(ActionFor(g.state, key))
}

// Apply performs action in the current state. Actions that do not belong to
// the current state are ignored.
func (g *Game) Apply(action Action) bool {
	switch g.state {
	case StateMenu:
		switch action {
		case ActionStart:
			g.state = StateDifficultySelect
		case ActionQuit:
			return false
		}

	case StateDifficultySelect:
		switch action {
		case ActionSelectEasy:
			g.start(Easy)
		case ActionSelectMedium:
			g.start(Medium)
		case ActionSelectHard:
			g.start(Hard)
		case ActionBack:
			g.state = StateMenu
		}

	case StatePlaying:
		switch action {
		case ActionMoveUp:
			g.snake.SetDirection(types.Up)
		case ActionMoveDown:
			g.snake.SetDirection(types.Down)
		case ActionMoveLeft:
			g.snake.SetDirection(types.Left)
		case ActionMoveRight:
			g.snake.SetDirection(types.Right)
		}

	case StateGameOver:
		switch action {
		case ActionRestart:
			g.state = StateDifficultySelect
		case ActionBack:
			g.state = StateMenu
		}
	}
	return true
}

func (g *Game) start(difficulty Difficulty) {
	g.difficulty = difficulty
	g.reset()
	g.state = StatePlaying
	if g.won {
		g.end()
	}
}

// Update advances one frame. The snake only steps on the frames picked by
// the tick scheduler for the chosen difficulty.
func (g *Game) Update() {
	if g.state != StatePlaying {
		return
	}
	if g.tickMgr.Advance(g.difficulty.MovesPerSecond()) {
		g.Step()
	}
}

// Step moves the snake one cell in the buffered direction, handling
// collisions, food and the high score.
func (g *Game) Step() {
	if g.state != StatePlaying {
		return
	}

	newHead := g.snake.CommitDirection()

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != manager.NoCollision {
		g.collision = collision
		g.end()
		return
	}

	g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.score++
		food, ok := g.stateMgr.GenerateFood(g.snake)
		if !ok {
			g.won = true
		} else {
			g.food = food
		}
	} else {
		g.snake.RemoveTail()
	}

	if g.stateMgr.UpdateScore(g.score) {
		log.Printf("New high score: %d", g.score)
	}

	if g.won {
		g.end()
	}
}

// end moves to the game over screen and records the finished game
func (g *Game) end() {
	g.state = StateGameOver
	g.statsMgr.AddGame(g.difficulty.String(), g.score, g.won, g.startTime, g.now())
}
