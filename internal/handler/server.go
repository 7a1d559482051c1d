// Package handler implements the HTTP layer for the Grazing Trail API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (auth.go, recommend.go, visit.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grazingtrail/backend/internal/domain"
	"github.com/grazingtrail/backend/internal/service"
	"github.com/grazingtrail/backend/spec"
)

// AccountServicer defines the account operations the handlers depend on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type AccountServicer interface {
	Register(ctx context.Context, username, password string) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
}

// Recommender runs the recommendation pipeline for one request.
type Recommender interface {
	Recommend(ctx context.Context, req service.RecommendRequest) (domain.Recommendation, error)
}

// VisitServicer defines the ledger operations the handlers depend on.
type VisitServicer interface {
	Record(ctx context.Context, username, place string, lat, lon *float64) (domain.Visit, error)
	History(ctx context.Context, username string, p domain.PaginationParams) ([]domain.Visit, int64, error)
}

// Leaderboarder computes the cross-user leaderboard.
type Leaderboarder interface {
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

// Exporter assembles the flat ledger export.
type Exporter interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	accounts    AccountServicer
	recommender Recommender
	visits      VisitServicer
	leaderboard Leaderboarder
	export      Exporter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(accounts AccountServicer, recommender Recommender, visits VisitServicer, leaderboard Leaderboarder, export Exporter) *Server {
	return &Server{
		accounts:    accounts,
		recommender: recommender,
		visits:      visits,
		leaderboard: leaderboard,
		export:      export,
	}
}

// Routes returns the chi router with every endpoint registered.
// Mount it at "/" in main.go after the shared middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Post("/auth/register", s.Register)
	r.Post("/auth/login", s.Login)

	r.Post("/recommendations", s.Recommend)

	r.Post("/visits", s.CreateVisit)
	r.Get("/users/{username}/visits", s.ListVisits)

	r.Get("/leaderboard", s.GetLeaderboard)
	r.Get("/export", s.GetExport)

	return r
}

// serveOpenAPI returns the embedded API specification.
// Serving it from the binary means the spec and the running code are always in sync.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
