package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grazingtrail/backend/internal/domain"
	"github.com/grazingtrail/backend/internal/repo"
)

// VisitService implements business logic for the visit ledger.
// It holds both repos because recording a visit requires resolving the
// username to a registered account first.
type VisitService struct {
	users  repo.UserRepo
	visits repo.VisitRepo

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewVisitService constructs a VisitService backed by the provided repos.
func NewVisitService(users repo.UserRepo, visits repo.VisitRepo) *VisitService {
	return &VisitService{users: users, visits: visits, now: time.Now}
}

// Record appends one confirmed visit to the ledger and returns the persisted
// record. The write is durable before Record returns; if it fails, the caller
// must tell the user the confirmation did not persist.
//
// Returns domain.ErrValidation for an empty place name and domain.ErrNotFound
// for an unregistered username. Repeat visits to the same place are allowed;
// each one is its own ledger row.
func (s *VisitService) Record(ctx context.Context, username, place string, lat, lon *float64) (domain.Visit, error) {
	if strings.TrimSpace(place) == "" {
		return domain.Visit{}, fmt.Errorf("%w: place is required", domain.ErrValidation)
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Record: %w", err)
	}

	visit := domain.Visit{
		UserID:    user.ID,
		Place:     place,
		Lat:       lat,
		Lon:       lon,
		VisitedAt: s.now().UTC(),
	}

	result, err := s.visits.Create(ctx, visit)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Record: %w", err)
	}
	return result, nil
}

// History returns one page of the user's visits, most recent first, plus the
// total count. Returns domain.ErrNotFound for an unregistered username.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VisitService) History(ctx context.Context, username string, p domain.PaginationParams) ([]domain.Visit, int64, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, 0, fmt.Errorf("service.VisitService.History: %w", err)
	}

	visits, total, err := s.visits.ListByUser(ctx, user.ID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.VisitService.History: %w", err)
	}
	if visits == nil {
		visits = []domain.Visit{}
	}
	return visits, total, nil
}
