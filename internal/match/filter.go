package match

import (
	"strings"

	"github.com/grazingtrail/backend/internal/domain"
)

// Options controls filter policy.
type Options struct {
	// ExcludeVisited drops candidates whose name exactly matches a place the
	// user has already visited. On by default in the service layer; exposed
	// as a toggle because repeat visits are a legitimate preference.
	ExcludeVisited bool
}

// Filter reduces a raw candidate list to the recommendable subset.
//
// Per candidate, in order:
//  1. drop it if it has no name; an un-named place cannot be recommended
//     or logged;
//  2. if opts.ExcludeVisited, drop it if its name is in visited (exact,
//     case-sensitive match on the name string, same semantics the ledger
//     uses);
//  3. if terms is non-empty, keep it only when at least one term appears as
//     an exact token in its searchable surface (name + cuisine + description,
//     lowercased, split on whitespace, each token normalized). An empty term
//     set disables keyword filtering entirely.
//
// Output order equals input order, so identical inputs always produce
// identical output. An empty result is the expected zero-match outcome, not
// an error; callers surface it as "broaden your search".
func Filter(cands []domain.Candidate, terms, visited map[string]struct{}, opts Options) []domain.Candidate {
	kept := make([]domain.Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Name == "" {
			continue
		}
		if opts.ExcludeVisited {
			if _, seen := visited[c.Name]; seen {
				continue
			}
		}
		if len(terms) > 0 && !surfaceMatches(c, terms) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// surfaceMatches reports whether any expanded term appears as an exact token
// in the candidate's searchable text surface. Token match, never substring:
// "ham" must not match "hamburger".
func surfaceMatches(c domain.Candidate, terms map[string]struct{}) bool {
	surface := c.Name + " " + c.Cuisine + " " + c.Description
	for _, raw := range strings.Fields(strings.ToLower(surface)) {
		if _, ok := terms[Normalize(raw)]; ok {
			return true
		}
	}
	return false
}
