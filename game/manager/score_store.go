package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ScoreStore persists the best score across runs
type ScoreStore interface {
	Load() (int, error)
	Save(highScore int) error
}

type highScoreRecord struct {
	HighScore int `json:"high_score"`
}

// FileScoreStore keeps the high score in a small JSON document
type FileScoreStore struct {
	path string
}

func NewFileScoreStore(path string) *FileScoreStore {
	return &FileScoreStore{path: path}
}

func (fs *FileScoreStore) Path() string {
	return fs.path
}

func (fs *FileScoreStore) Load() (int, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return 0, err
	}

	var record highScoreRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return 0, fmt.Errorf("failed to parse high score file: %w", err)
	}
	if record.HighScore < 0 {
		return 0, fmt.Errorf("invalid high score %d", record.HighScore)
	}

	return record.HighScore, nil
}

// Save overwrites the whole record
func (fs *FileScoreStore) Save(highScore int) error {
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create high score directory: %w", err)
		}
	}

	data, err := json.Marshal(highScoreRecord{HighScore: highScore})
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}

	return nil
}
