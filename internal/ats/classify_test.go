package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank(t *testing.T) *Bank {
	t.Helper()
	bank, err := NewBank(map[Category][]string{
		CategoryTechnical: {"python", "kubernetes", "aws", "docker"},
	})
	require.NoError(t, err)
	return bank
}

func TestMarkerClassifier_RequiredAndOptional(t *testing.T) {
	c := NewMarkerClassifier(testBank(t))

	cls := c.Classify("Must have Python and Kubernetes experience; nice to have AWS")

	assert.Equal(t, []string{"kubernetes", "python"}, cls.Required)
	assert.Equal(t, []string{"aws"}, cls.Optional)
}

func TestMarkerClassifier_NeutralClauseIsOptional(t *testing.T) {
	c := NewMarkerClassifier(testBank(t))

	cls := c.Classify("Experience with Docker in production.")

	assert.Empty(t, cls.Required)
	assert.Equal(t, []string{"docker"}, cls.Optional)
}

func TestMarkerClassifier_PhraseInBothSets(t *testing.T) {
	// Per-clause classification is independent, so a phrase mentioned under
	// different markers appears in both sets. The aggregator treats the
	// required membership as authoritative.
	c := NewMarkerClassifier(testBank(t))

	cls := c.Classify("Python is required. Python experience is a plus.")

	assert.Equal(t, []string{"python"}, cls.Required)
	assert.Equal(t, []string{"python"}, cls.Optional)
}

func TestMarkerClassifier_EmptyInput(t *testing.T) {
	c := NewMarkerClassifier(testBank(t))

	for _, jd := range []string{"", "   ", "\n\n", " ; . \n "} {
		cls := c.Classify(jd)
		assert.Empty(t, cls.Required, "input %q", jd)
		assert.Empty(t, cls.Optional, "input %q", jd)
	}
}

func TestMarkerClassifier_RequiredMarkerWinsWithinClause(t *testing.T) {
	c := NewMarkerClassifier(testBank(t))

	// Clause carries both a requirement and a nice-to-have marker; the
	// requirement marker takes precedence for everything in the clause.
	cls := c.Classify("Docker is required and a big plus")

	assert.Equal(t, []string{"docker"}, cls.Required)
	assert.Empty(t, cls.Optional)
}
