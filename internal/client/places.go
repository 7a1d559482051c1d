package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/grazingtrail/backend/internal/domain"
)

// searchRadiusMeters is the fixed radius for the nearby-place query.
const searchRadiusMeters = 5000

// amenityFilter restricts the query to eating establishments.
const amenityFilter = `"amenity"~"^(restaurant|bar|pub)$"`

// Places fetches raw point-of-interest candidates from an Overpass API
// endpoint. It returns whatever the service knows about each place; the match
// filter decides what is recommendable.
type Places struct {
	endpoint string
	http     *http.Client
}

// NewPlaces constructs a Places client against an Overpass interpreter
// endpoint (e.g. "https://overpass-api.de/api/interpreter"). Pass nil for hc
// to use a client with a timeout generous enough for Overpass's own 25 s
// query budget.
func NewPlaces(endpoint string, hc *http.Client) *Places {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Places{endpoint: endpoint, http: hc}
}

// overpassElement is the subset of an Overpass element the engine consumes.
// Nodes carry lat/lon directly; ways and relations carry a center centroid
// (when the query asks for "out center"). Either may be absent.
type overpassElement struct {
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// FetchNearby returns the raw candidates within the fixed search radius of
// the given coordinate, in the order the service returned them. Transport
// errors, non-200 statuses, and malformed bodies all wrap
// domain.ErrFetchFailed; the pipeline turns that into a retryable
// zero-candidate outcome rather than a crash.
func (p *Places) FetchNearby(ctx context.Context, at domain.Coordinate) ([]domain.Candidate, error) {
	query := fmt.Sprintf(`[out:json][timeout:25];
(
  node[%[1]s](around:%[2]d,%[3]f,%[4]f);
  way[%[1]s](around:%[2]d,%[3]f,%[4]f);
);
out center tags;`, amenityFilter, searchRadiusMeters, at.Lat, at.Lon)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("client.Places.FetchNearby: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Places.FetchNearby: %v: %w", err, domain.ErrFetchFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("client.Places.FetchNearby: status %d: %w", resp.StatusCode, domain.ErrFetchFailed)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("client.Places.FetchNearby: read body: %w", domain.ErrFetchFailed)
	}

	var decoded overpassResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("client.Places.FetchNearby: decode: %w", domain.ErrFetchFailed)
	}

	cands := make([]domain.Candidate, 0, len(decoded.Elements))
	for _, el := range decoded.Elements {
		cands = append(cands, toCandidate(el))
	}
	return cands, nil
}

// tagSeparators rewrites OSM multi-value separators to spaces so that the
// match filter's whitespace tokenizer sees "mexican;tacos" as two tokens.
var tagSeparators = strings.NewReplacer(";", " ", "_", " ")

// toCandidate maps one Overpass element onto the engine's candidate shape.
// Coordinate preference: the element's own position, then the centroid, then
// none; a candidate without a coordinate is still recommendable, it just
// cannot be mapped.
func toCandidate(el overpassElement) domain.Candidate {
	c := domain.Candidate{
		Name:        el.Tags["name"],
		Cuisine:     tagSeparators.Replace(el.Tags["cuisine"]),
		Description: el.Tags["description"],
		Address:     buildAddress(el.Tags),
	}

	switch {
	case el.Lat != nil && el.Lon != nil:
		c.Coord = &domain.Coordinate{Lat: *el.Lat, Lon: *el.Lon}
	case el.Center != nil:
		c.Coord = &domain.Coordinate{Lat: el.Center.Lat, Lon: el.Center.Lon}
	}
	return c
}

// buildAddress assembles a display address from the OSM addr:* tags.
// Any subset may be present; missing pieces are simply skipped.
func buildAddress(tags map[string]string) string {
	var parts []string
	if hn, st := tags["addr:housenumber"], tags["addr:street"]; st != "" {
		if hn != "" {
			parts = append(parts, hn+" "+st)
		} else {
			parts = append(parts, st)
		}
	}
	if city := tags["addr:city"]; city != "" {
		parts = append(parts, city)
	}
	return strings.Join(parts, ", ")
}
