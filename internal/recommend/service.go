package recommend

import (
	"context"
	"time"

	"github.com/abhisek/studyhall/internal/store"
)

// Service produces lesson recommendations from a user's Q&A history.
type Service struct {
	history store.HistoryRepo
	cfg     Config
}

// NewService creates a recommendation service.
func NewService(history store.HistoryRepo, cfg Config) *Service {
	if cfg.MaxRecords <= 0 {
		cfg.MaxRecords = DefaultConfig().MaxRecords
	}
	if cfg.HalfLife <= 0 {
		cfg.HalfLife = DefaultConfig().HalfLife
	}
	return &Service{history: history, cfg: cfg}
}

// Recommend returns ranked lesson scores for the user, most relevant
// first. A user with no history gets an empty slice; that is a normal
// outcome, not an error.
func (s *Service) Recommend(ctx context.Context, userID int) ([]Score, error) {
	records, err := s.history.ByUser(ctx, userID, s.cfg.MaxRecords)
	if err != nil {
		return nil, err
	}
	return Rank(records, time.Now(), s.cfg), nil
}
