package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MaxRecords caps the stored history; the oldest games are dropped first
const MaxRecords = 100

// GameRecord describes one finished game
type GameRecord struct {
	ID         string    `json:"id"`
	Difficulty string    `json:"difficulty"`
	Score      int       `json:"score"`
	Won        bool      `json:"won,omitempty"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// Duration returns how long the game lasted
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps the history of finished games. An empty path keeps it in memory only.
type StatsManager struct {
	path  string
	games []GameRecord
}

func NewStatsManager(path string) *StatsManager {
	sm := &StatsManager{
		path:  path,
		games: make([]GameRecord, 0),
	}
	if err := sm.loadFromFile(); err != nil {
		log.Printf("Warning: starting with empty game history: %v", err)
		sm.games = make([]GameRecord, 0)
	}
	return sm
}

// AddGame records a finished game and writes the history through to disk
func (sm *StatsManager) AddGame(difficulty string, score int, won bool, startTime, endTime time.Time) GameRecord {
	record := GameRecord{
		ID:         uuid.New().String(),
		Difficulty: difficulty,
		Score:      score,
		Won:        won,
		StartTime:  startTime,
		EndTime:    endTime,
	}
	sm.games = append(sm.games, record)
	if len(sm.games) > MaxRecords {
		sm.games = sm.games[len(sm.games)-MaxRecords:]
	}

	if err := sm.SaveToFile(); err != nil {
		log.Printf("Warning: could not save game history: %v", err)
	}
	return record
}

// GetStats returns a copy of the recorded games, oldest first
func (sm *StatsManager) GetStats() []GameRecord {
	games := make([]GameRecord, len(sm.games))
	copy(games, sm.games)
	return games
}

func (sm *StatsManager) GamesPlayed() int {
	return len(sm.games)
}

func (sm *StatsManager) AverageScore() float64 {
	if len(sm.games) == 0 {
		return 0
	}

	total := 0
	for _, game := range sm.games {
		total += game.Score
	}
	return float64(total) / float64(len(sm.games))
}

func (sm *StatsManager) MaxScore() int {
	maxScore := 0
	for _, game := range sm.games {
		if game.Score > maxScore {
			maxScore = game.Score
		}
	}
	return maxScore
}

func (sm *StatsManager) SaveToFile() error {
	if sm.path == "" {
		return nil
	}

	if dir := filepath.Dir(sm.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create stats directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(sm.games, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}

	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	return nil
}

func (sm *StatsManager) loadFromFile() error {
	if sm.path == "" {
		return nil
	}

	data, err := os.ReadFile(sm.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	var games []GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		return fmt.Errorf("failed to parse stats file: %w", err)
	}
	if games == nil {
		games = make([]GameRecord, 0)
	}
	if len(games) > MaxRecords {
		games = games[len(games)-MaxRecords:]
	}
	sm.games = games
	return nil
}
