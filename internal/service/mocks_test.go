package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/grazingtrail/backend/internal/domain"
	"github.com/grazingtrail/backend/internal/repo"
	"github.com/grazingtrail/backend/internal/service"
)

// Hand-written test doubles shared by the service tests. Each method is a
// function field; set only the ones your test needs. This is idiomatic Go:
// no mock generation library required for simple cases.

type mockUserRepo struct {
	create        func(ctx context.Context, username, passwordHash string) (domain.User, error)
	getByUsername func(ctx context.Context, username string) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, username, passwordHash string) (domain.User, error) {
	return m.create(ctx, username, passwordHash)
}
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return m.getByUsername(ctx, username)
}

type mockVisitRepo struct {
	create       func(ctx context.Context, visit domain.Visit) (domain.Visit, error)
	hasVisited   func(ctx context.Context, userID uuid.UUID, place string) (bool, error)
	visitedNames func(ctx context.Context, userID uuid.UUID) ([]string, error)
	listByUser   func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Visit, int64, error)
	countsByUser func(ctx context.Context) ([]domain.LeaderboardEntry, error)
	exportRows   func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockVisitRepo) Create(ctx context.Context, visit domain.Visit) (domain.Visit, error) {
	return m.create(ctx, visit)
}
func (m *mockVisitRepo) HasVisited(ctx context.Context, userID uuid.UUID, place string) (bool, error) {
	return m.hasVisited(ctx, userID, place)
}
func (m *mockVisitRepo) VisitedNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return m.visitedNames(ctx, userID)
}
func (m *mockVisitRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Visit, int64, error) {
	return m.listByUser(ctx, userID, p)
}
func (m *mockVisitRepo) CountsByUser(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return m.countsByUser(ctx)
}
func (m *mockVisitRepo) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	return m.exportRows(ctx)
}

type mockGeocoder struct {
	geocode func(ctx context.Context, postalCode string) (domain.Coordinate, error)
}

func (m *mockGeocoder) Geocode(ctx context.Context, postalCode string) (domain.Coordinate, error) {
	return m.geocode(ctx, postalCode)
}

type mockPlaceFetcher struct {
	fetchNearby func(ctx context.Context, at domain.Coordinate) ([]domain.Candidate, error)
}

func (m *mockPlaceFetcher) FetchNearby(ctx context.Context, at domain.Coordinate) ([]domain.Candidate, error) {
	return m.fetchNearby(ctx, at)
}

// compile-time checks: the doubles must satisfy the interfaces they stand in for.
var (
	_ repo.UserRepo        = (*mockUserRepo)(nil)
	_ repo.VisitRepo       = (*mockVisitRepo)(nil)
	_ service.Geocoder     = (*mockGeocoder)(nil)
	_ service.PlaceFetcher = (*mockPlaceFetcher)(nil)
)
