package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/shuriken/components"
	"github.com/quasilyte/gdata"
)

// SavedScore represents the score record stored on disk
type SavedScore struct {
	BestKills int `json:"bestKills"`
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
}

const scoreItem = "best"

var gdataManager *gdata.Manager
var gdataInitialized bool

// bestScore caches the last loaded or saved record for the HUD and menu.
var bestScore SavedScore

// InitPersistence initializes the gdata manager for score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "shuriken",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadBestScore loads the score record from disk. It returns nil if storage is
// unavailable or nothing has been saved yet.
func LoadBestScore() (*SavedScore, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(scoreItem)
	if err != nil {
		log.Printf("Warning: Could not load best score: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var score SavedScore
	if err := json.Unmarshal(data, &score); err != nil {
		log.Printf("Warning: Could not parse saved score: %v", err)
		return nil, err
	}

	bestScore = score
	return &score, nil
}

// SaveBestScore saves the score record to disk
func SaveBestScore(s *SavedScore) error {
	bestScore = *s
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize score: %w", err)
	}

	if err := gdataManager.SaveItem(scoreItem, data); err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

// BestKills returns the best kill count seen so far.
func BestKills() int {
	return bestScore.BestKills
}

// RecordOutcome folds a finished session into the score record and returns it.
func RecordOutcome(score SavedScore, outcome components.Outcome, kills int) SavedScore {
	if kills > score.BestKills {
		score.BestKills = kills
	}
	switch outcome {
	case components.OutcomeWin:
		score.Wins++
	case components.OutcomeLose:
		score.Losses++
	}
	return score
}

// SaveSessionResult records a finished session and persists it. The in-memory
// record is updated even when writing to disk fails.
func SaveSessionResult(stats SessionStats) error {
	updated := RecordOutcome(bestScore, stats.Outcome, stats.Kills)
	return SaveBestScore(&updated)
}
