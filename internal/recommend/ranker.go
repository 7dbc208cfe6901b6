// Package recommend ranks lessons for a user from their question history.
// Scoring is a pure transformation over already-fetched records, so it can
// be tested without a store or a network.
package recommend

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/studyhall/internal/store"
)

// Config bounds the ranking computation.
type Config struct {
	// MaxRecords caps how many of the user's most recent records feed the
	// ranking. Keeps the computation bounded and weights recent interest.
	MaxRecords int

	// HalfLife is the age at which a record's weight halves.
	HalfLife time.Duration
}

// DefaultConfig returns sensible ranking defaults.
func DefaultConfig() Config {
	return Config{
		MaxRecords: 50,
		HalfLife:   7 * 24 * time.Hour,
	}
}

// Score is a computed relevance value for one lesson. Never persisted.
type Score struct {
	LessonID int
	Score    float64
}

// Rank scores lessons from the given records, most relevant first. Each
// record contributes an exponential recency decay weight to its lesson,
// so asking often and asking recently both raise a lesson's score.
// Lessons absent from the records do not appear in the result. Ties
// break by lesson ID ascending.
//
// Records are expected most recent first; only the first cfg.MaxRecords
// are considered.
func Rank(records []store.QARecord, now time.Time, cfg Config) []Score {
	if cfg.MaxRecords <= 0 {
		cfg.MaxRecords = DefaultConfig().MaxRecords
	}
	if cfg.HalfLife <= 0 {
		cfg.HalfLife = DefaultConfig().HalfLife
	}
	if len(records) > cfg.MaxRecords {
		records = records[:cfg.MaxRecords]
	}

	weights := make(map[int]float64, len(records))
	for _, rec := range records {
		age := now.Sub(rec.CreatedAt)
		if age < 0 {
			age = 0
		}
		halfLives := float64(age) / float64(cfg.HalfLife)
		weights[rec.LessonID] += math.Exp2(-halfLives)
	}

	scores := make([]Score, 0, len(weights))
	for lessonID, w := range weights {
		scores = append(scores, Score{LessonID: lessonID, Score: w})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].LessonID < scores[j].LessonID
	})

	return scores
}
