package handler_test

import (
	"context"

	"github.com/grazingtrail/backend/internal/domain"
	"github.com/grazingtrail/backend/internal/handler"
	"github.com/grazingtrail/backend/internal/service"
)

// Hand-written test doubles for the handler's consumer-side interfaces.
// Each method is a function field; set only the ones your test needs.

type mockAccounts struct {
	register     func(ctx context.Context, username, password string) (domain.User, error)
	authenticate func(ctx context.Context, username, password string) (domain.User, error)
}

func (m *mockAccounts) Register(ctx context.Context, username, password string) (domain.User, error) {
	return m.register(ctx, username, password)
}
func (m *mockAccounts) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	return m.authenticate(ctx, username, password)
}

type mockRecommender struct {
	recommend func(ctx context.Context, req service.RecommendRequest) (domain.Recommendation, error)
}

func (m *mockRecommender) Recommend(ctx context.Context, req service.RecommendRequest) (domain.Recommendation, error) {
	return m.recommend(ctx, req)
}

type mockVisits struct {
	record  func(ctx context.Context, username, place string, lat, lon *float64) (domain.Visit, error)
	history func(ctx context.Context, username string, p domain.PaginationParams) ([]domain.Visit, int64, error)
}

func (m *mockVisits) Record(ctx context.Context, username, place string, lat, lon *float64) (domain.Visit, error) {
	return m.record(ctx, username, place, lat, lon)
}
func (m *mockVisits) History(ctx context.Context, username string, p domain.PaginationParams) ([]domain.Visit, int64, error) {
	return m.history(ctx, username, p)
}

type mockLeaderboard struct {
	leaderboard func(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

func (m *mockLeaderboard) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return m.leaderboard(ctx)
}

type mockExport struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExport) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// compile-time checks: the doubles must satisfy the handler interfaces.
var (
	_ handler.AccountServicer = (*mockAccounts)(nil)
	_ handler.Recommender     = (*mockRecommender)(nil)
	_ handler.VisitServicer   = (*mockVisits)(nil)
	_ handler.Leaderboarder   = (*mockLeaderboard)(nil)
	_ handler.Exporter        = (*mockExport)(nil)
)

// newTestServer wires a Server with the provided doubles; nil doubles are
// fine for endpoints the test never hits.
func newTestServer(accounts *mockAccounts, rec *mockRecommender, visits *mockVisits, lb *mockLeaderboard, exp *mockExport) *handler.Server {
	return handler.NewServer(accounts, rec, visits, lb, exp)
}
