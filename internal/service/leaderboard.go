package service

import (
	"context"
	"fmt"

	"github.com/grazingtrail/backend/internal/domain"
	"github.com/grazingtrail/backend/internal/repo"
)

// LeaderboardService exposes the cross-user visit leaderboard.
// The board is recomputed from the ledger on every call; at personal-tool
// scale a single aggregate query beats maintaining incremental counts.
type LeaderboardService struct {
	visits repo.VisitRepo
}

// NewLeaderboardService constructs a LeaderboardService backed by the provided VisitRepo.
func NewLeaderboardService(visits repo.VisitRepo) *LeaderboardService {
	return &LeaderboardService{visits: visits}
}

// Leaderboard returns every registered user with their visit count, ordered
// by count descending with ties broken by username ascending. Users with no
// visits appear with count zero.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LeaderboardService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	entries, err := s.visits.CountsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.LeaderboardService.Leaderboard: %w", err)
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	return entries, nil
}
