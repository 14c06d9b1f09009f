package manager

import (
	"errors"
	"io/fs"
	"log"

	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// StateManager owns food placement and the high score
type StateManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
	foodManager  *FoodManager
	store        ScoreStore
	highScore    int
}

func NewStateManager(grid types.Grid, collisionMgr *CollisionManager, store ScoreStore, seed uint64) *StateManager {
	sm := &StateManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		foodManager:  NewFoodManager(grid, collisionMgr, seed),
		store:        store,
	}
	sm.LoadHighScore()
	return sm
}

// LoadHighScore seeds the high score from the store. Any failure leaves it at 0.
func (sm *StateManager) LoadHighScore() {
	sm.highScore = 0
	if sm.store == nil {
		return
	}

	score, err := sm.store.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: ignoring stored high score: %v", err)
		}
		return
	}
	sm.highScore = score
}

func (sm *StateManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	return sm.foodManager.GenerateFood(snake)
}

// UpdateScore raises the high score when score beats it and writes it through
// to the store. A failed save is logged and otherwise ignored.
func (sm *StateManager) UpdateScore(score int) bool {
	if score <= sm.highScore {
		return false
	}

	sm.highScore = score
	if sm.store != nil {
		if err := sm.store.Save(sm.highScore); err != nil {
			log.Printf("Warning: could not save high score %d: %v", sm.highScore, err)
		}
	}
	return true
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}
