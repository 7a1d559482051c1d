package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/grazingtrail/backend/internal/domain"
	"github.com/grazingtrail/backend/internal/match"
	"github.com/grazingtrail/backend/internal/repo"
)

// maxKeywords bounds how many comma-separated keywords one request may
// supply; extras are silently ignored.
const maxKeywords = 3

// Geocoder resolves a postal code to a coordinate.
// Implemented by client.Geocoder; defined here so tests can stub it.
type Geocoder interface {
	Geocode(ctx context.Context, postalCode string) (domain.Coordinate, error)
}

// PlaceFetcher returns raw point-of-interest candidates near a coordinate.
// Implemented by client.Places; defined here so tests can stub it.
type PlaceFetcher interface {
	FetchNearby(ctx context.Context, at domain.Coordinate) ([]domain.Candidate, error)
}

// RecommendRequest is one recommendation query.
// Keywords is the raw comma-separated text the user typed; it may be empty,
// in which case every named, unvisited place nearby is a candidate.
// Username is optional: when set, places the user has already visited are
// excluded (unless IncludeVisited re-enables them).
type RecommendRequest struct {
	PostalCode     string
	Keywords       string
	Username       string
	IncludeVisited bool
}

// RecommendService runs the full recommendation pipeline:
// geocode → fetch candidates → filter → select one at random.
type RecommendService struct {
	geo      Geocoder
	places   PlaceFetcher
	users    repo.UserRepo
	visits   repo.VisitRepo
	selector *match.Selector
}

// NewRecommendService constructs a RecommendService with its collaborators.
func NewRecommendService(geo Geocoder, places PlaceFetcher, users repo.UserRepo, visits repo.VisitRepo, selector *match.Selector) *RecommendService {
	return &RecommendService{geo: geo, places: places, users: users, visits: visits, selector: selector}
}

// Recommend resolves the request to a single recommendation.
//
// Error contract:
//   - domain.ErrValidation; empty postal code;
//   - domain.ErrNotFound; a username was supplied that is not registered;
//   - domain.ErrLookupFailed; the geocoder could not place the postal code;
//   - domain.ErrFetchFailed; the place service was unreachable or malformed.
//
// A nil Match with a nil error is the zero-result outcome: nothing nearby
// satisfied the keywords. That is an expected answer, not a failure.
//
// The visited set is read from the ledger at query time, so a visit confirmed
// a moment ago is already excluded from the very next recommendation.
func (s *RecommendService) Recommend(ctx context.Context, req RecommendRequest) (domain.Recommendation, error) {
	postalCode := strings.TrimSpace(req.PostalCode)
	if postalCode == "" {
		return domain.Recommendation{}, fmt.Errorf("%w: postal_code is required", domain.ErrValidation)
	}

	terms := match.Expand(splitKeywords(req.Keywords))

	visited := map[string]struct{}{}
	opts := match.Options{ExcludeVisited: false}
	if username := strings.TrimSpace(req.Username); username != "" && !req.IncludeVisited {
		user, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			return domain.Recommendation{}, fmt.Errorf("service.RecommendService.Recommend: %w", err)
		}
		names, err := s.visits.VisitedNames(ctx, user.ID)
		if err != nil {
			return domain.Recommendation{}, fmt.Errorf("service.RecommendService.Recommend: %w", err)
		}
		for _, n := range names {
			visited[n] = struct{}{}
		}
		opts.ExcludeVisited = true
	}

	at, err := s.geo.Geocode(ctx, postalCode)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("service.RecommendService.Recommend: %w", err)
	}

	cands, err := s.places.FetchNearby(ctx, at)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("service.RecommendService.Recommend: %w", err)
	}

	matched := match.Filter(cands, terms, visited, opts)
	if len(matched) == 0 {
		return domain.Recommendation{}, nil
	}

	pick := s.selector.Pick(matched)
	return domain.Recommendation{Match: &pick, Considered: len(matched)}, nil
}

// splitKeywords turns the raw comma-separated keyword text into at most
// maxKeywords trimmed tokens. Blank segments are dropped.
func splitKeywords(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
			if len(out) == maxKeywords {
				break
			}
		}
	}
	return out
}
