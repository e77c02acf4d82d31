package ats

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap_Scenario(t *testing.T) {
	// Overlap works on raw letter tokens: the stopword list applies only to
	// frequency ranking, so "for" and "a" stay in the missing list.
	overlap := Overlap("Led team of 5 engineers", "Looking for a team leader")

	assert.Equal(t, []string{"team"}, overlap.Matched)
	assert.Equal(t, []string{"a", "for", "leader", "looking"}, overlap.Missing)
}

func TestOverlap_EmptyInputs(t *testing.T) {
	overlap := Overlap("", "")
	assert.Empty(t, overlap.Matched)
	assert.Empty(t, overlap.Missing)
	assert.NotNil(t, overlap.Matched)
	assert.NotNil(t, overlap.Missing)
}

func TestOverlap_MissingCapped(t *testing.T) {
	tokens := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		tokens = append(tokens, fmt.Sprintf("word%c%c", 'a'+i/26, 'a'+i%26))
	}
	overlap := Overlap("nothing shared", strings.Join(tokens, " "))

	assert.Len(t, overlap.Missing, maxMissingKeywords)
}

func TestTopKeywords_RankedByFrequency(t *testing.T) {
	top := TopKeywords("go go go run run fast", 10)

	assert.Equal(t, []KeywordCount{
		{Token: "go", Count: 3},
		{Token: "run", Count: 2},
		{Token: "fast", Count: 1},
	}, top)
}

func TestTopKeywords_TiesKeepFirstEncounteredOrder(t *testing.T) {
	top := TopKeywords("alpha beta alpha beta gamma", 10)

	assert.Equal(t, []KeywordCount{
		{Token: "alpha", Count: 2},
		{Token: "beta", Count: 2},
		{Token: "gamma", Count: 1},
	}, top)
}

func TestTopKeywords_FiltersStopwordsAndShortTokens(t *testing.T) {
	// The stopword list is the minimal function-word set: the, and, a, to,
	// of, in, for, on, with, as, by, is, are, was, were, be, an, at, or,
	// from. Single-character tokens are dropped as well.
	top := TopKeywords("the quick brown fox and a b dog in the yard", 10)

	tokens := make([]string, 0, len(top))
	for _, kw := range top {
		tokens = append(tokens, kw.Token)
	}
	assert.Equal(t, []string{"quick", "brown", "fox", "dog", "yard"}, tokens)
}

func TestTopKeywords_TruncatesToN(t *testing.T) {
	top := TopKeywords("one two three four five", 3)
	assert.Len(t, top, 3)
}

func TestTopKeywords_Empty(t *testing.T) {
	assert.Empty(t, TopKeywords("", 10))
	assert.Empty(t, TopKeywords("the and of", 10))
}
