// Package domain contains the core data types for the Grazing Trail backend.
// This package has no dependencies on other internal packages and is imported
// by every one of them (match, client, repo, service, handler).
package domain

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Candidate is a raw point-of-interest record as delivered by the place
// fetcher, before filtering. Every field except Name may be empty; records
// without a name are discarded by the filter because an un-named place can
// neither be recommended nor logged.
//
// Coord is the resolved coordinate: the record's own position when it has
// one, otherwise the centroid supplied by the source, otherwise nil.
type Candidate struct {
	Name        string      `json:"name"`
	Cuisine     string      `json:"cuisine,omitempty"`
	Description string      `json:"description,omitempty"`
	Address     string      `json:"address,omitempty"`
	Coord       *Coordinate `json:"coord,omitempty"`
}

// Recommendation is the outcome of one pipeline run. Match is nil when the
// filter produced no candidates; that is the expected "broaden your search"
// outcome, not an error. Considered is the number of candidates that survived
// filtering, so callers can tell a lucky single match from a crowded field.
type Recommendation struct {
	Match      *Candidate `json:"match"`
	Considered int        `json:"candidates_considered"`
}
