package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyTagMatchExact(t *testing.T) {
	assert.True(t, FuzzyTagMatch("peanuts", "peanuts"))
	assert.True(t, FuzzyTagMatch("Peanuts", "peanuts"))
	assert.True(t, FuzzyTagMatch("HALAL", "halal"))
}

func TestFuzzyTagMatchSubstringBothDirections(t *testing.T) {
	// "nuts" should match "tree nuts" and the reverse
	assert.True(t, FuzzyTagMatch("nuts", "tree nuts"))
	assert.True(t, FuzzyTagMatch("tree nuts", "nuts"))
	assert.True(t, FuzzyTagMatch("nuts", "peanuts"))
}

func TestFuzzyTagMatchNoMatch(t *testing.T) {
	assert.False(t, FuzzyTagMatch("dairy", "peanuts"))
	assert.False(t, FuzzyTagMatch("shellfish", "gluten"))
}

func TestFuzzyTagMatchEmptyNeverMatches(t *testing.T) {
	assert.False(t, FuzzyTagMatch("", "peanuts"))
	assert.False(t, FuzzyTagMatch("peanuts", ""))
	assert.False(t, FuzzyTagMatch("", ""))
}

func TestMatchesAnyTagEmptyPreferencesNeverMatch(t *testing.T) {
	assert.False(t, matchesAnyTag([]string{"vegan", "halal"}, nil))
	assert.False(t, matchesAnyTag([]string{"vegan", "halal"}, []string{}))
}

func TestMatchesExactTagRejectsSubstrings(t *testing.T) {
	// Religious matching is strict equality, unlike the fuzzy matcher.
	assert.True(t, matchesExactTag([]string{"Halal"}, []string{"halal"}))
	assert.False(t, matchesExactTag([]string{"halal-style"}, []string{"halal"}))
}
