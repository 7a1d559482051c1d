// Package client wraps the two external collaborators the recommendation
// pipeline depends on: the Nominatim geocoder and the Overpass point-of-interest
// service. Both are thin, synchronous HTTP wrappers; all matching logic lives
// in internal/match, and the service layer sees these only through interfaces
// it defines itself.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/grazingtrail/backend/internal/domain"
)

// userAgent identifies this application to the OSM services, as their usage
// policies require.
const userAgent = "grazing-trail/1.0"

// Geocoder resolves a postal code to a single best-match coordinate using the
// Nominatim search API.
type Geocoder struct {
	baseURL string
	country string
	http    *http.Client
}

// NewGeocoder constructs a Geocoder against baseURL (e.g.
// "https://nominatim.openstreetmap.org"), scoped to the given ISO country
// code. Pass nil for hc to use a client with a sane default timeout.
func NewGeocoder(baseURL, country string, hc *http.Client) *Geocoder {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Geocoder{baseURL: baseURL, country: country, http: hc}
}

// nominatimResult is the subset of a Nominatim search result the engine
// consumes. Nominatim returns lat/lon as JSON strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a postal code to its best-match coordinate.
//
// "Not found" and "unreachable" are deliberately the same error to callers:
// both wrap domain.ErrLookupFailed, which the pipeline surfaces as a
// retryable "try a different postal code" condition.
func (g *Geocoder) Geocode(ctx context.Context, postalCode string) (domain.Coordinate, error) {
	q := url.Values{
		"postalcode": {postalCode},
		"country":    {g.country},
		"format":     {"jsonv2"},
		"limit":      {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("client.Geocoder.Geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.http.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("client.Geocoder.Geocode: %v: %w", err, domain.ErrLookupFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinate{}, fmt.Errorf("client.Geocoder.Geocode: status %d: %w", resp.StatusCode, domain.ErrLookupFailed)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("client.Geocoder.Geocode: read body: %w", domain.ErrLookupFailed)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return domain.Coordinate{}, fmt.Errorf("client.Geocoder.Geocode: decode: %w", domain.ErrLookupFailed)
	}
	if len(results) == 0 {
		return domain.Coordinate{}, fmt.Errorf("client.Geocoder.Geocode: no match for %q: %w", postalCode, domain.ErrLookupFailed)
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return domain.Coordinate{}, fmt.Errorf("client.Geocoder.Geocode: bad coordinates: %w", domain.ErrLookupFailed)
	}

	return domain.Coordinate{Lat: lat, Lon: lon}, nil
}
