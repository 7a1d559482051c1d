// Package match implements the recommendation matching engine: keyword
// normalization, intent expansion, candidate filtering, and random selection.
// Everything in this package is pure computation; no I/O, no clocks, no
// database. The service layer feeds it data and threads the result onward.
package match

import "strings"

// Normalize canonicalizes a single keyword token: trims surrounding
// whitespace, lowercases, and strips one trailing "s" unless the token ends
// in "ss". So "Tacos " becomes "taco" while "grass" stays "grass".
//
// This is a deliberately naive de-pluralizer, not a stemmer; it mangles
// irregular plurals ("fries" becomes "frie") and that is accepted: the same
// rule is applied to both the user's keywords and the candidate text surface,
// so mangled forms still match each other.
//
// An empty or whitespace-only input yields "", which downstream components
// treat as "no term".
func Normalize(tok string) string {
	tok = strings.ToLower(strings.TrimSpace(tok))
	if strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "ss") {
		tok = tok[:len(tok)-1]
	}
	return tok
}
