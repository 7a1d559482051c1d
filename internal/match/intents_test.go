package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grazingtrail/backend/internal/match"
)

func TestExpand_EmptyInputDisablesFiltering(t *testing.T) {
	// An empty expanded term set is the "no keyword constraints" marker.
	assert.Empty(t, match.Expand(nil))
	assert.Empty(t, match.Expand([]string{}))
	assert.Empty(t, match.Expand([]string{"", "  "}))
}

func TestExpand_MappedKeywordIncludesItselfAndSynonyms(t *testing.T) {
	terms := match.Expand([]string{"pizza"})

	for _, want := range []string{"pizza", "pizzeria", "italian"} {
		assert.Contains(t, terms, want)
	}
}

func TestExpand_UnmappedKeywordExpandsToItself(t *testing.T) {
	terms := match.Expand([]string{"xyzzy"})

	assert.Equal(t, map[string]struct{}{"xyzzy": {}}, terms)
}

func TestExpand_NormalizesBeforeLookup(t *testing.T) {
	// "Pizzas " must hit the same table entry as "pizza".
	assert.Equal(t, match.Expand([]string{"pizza"}), match.Expand([]string{" Pizzas "}))
}

func TestExpand_UnionsMultipleKeywords(t *testing.T) {
	terms := match.Expand([]string{"pizza", "taco"})

	assert.Contains(t, terms, "italian")
	assert.Contains(t, terms, "mexican")
}

func TestExpand_Deterministic(t *testing.T) {
	// Same keywords in any order produce the same set.
	a := match.Expand([]string{"pizza", "beer", "curry"})
	b := match.Expand([]string{"curry", "pizza", "beer"})

	assert.Equal(t, a, b)
}
