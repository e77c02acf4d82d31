package ats

import (
	"regexp"
	"sort"
	"strings"
)

// Classification holds the bank phrases a job description asks for, split
// into required and optional. The sets are not guaranteed disjoint: a phrase
// mentioned in clauses with different markers lands in both, and the score
// aggregator treats required as authoritative.
type Classification struct {
	Required []string
	Optional []string
}

// Classifier decides which bank phrases a job description requires.
// It is a pluggable strategy so a stricter classifier can replace the marker
// heuristic without touching the score aggregator.
type Classifier interface {
	Classify(jobDescription string) Classification
}

// Requirement markers are tested as plain substring containment per clause.
var (
	requirementMarkers = []string{"must", "required", "mandatory", "need to", "have to"}
	niceToHaveMarkers  = []string{"nice to have", "bonus", "plus", "preferred"}
)

// clauseRe splits a job description into clauses on sentence/list boundaries.
var clauseRe = regexp.MustCompile(`[;\n.]`)

// MarkerClassifier classifies phrases by marker words in the surrounding
// clause. Clauses with a requirement marker contribute to required; clauses
// with only a nice-to-have marker, and neutral clauses, contribute to
// optional. Most job descriptions list core skills without explicit
// "required" language, so unmarked mentions are kept rather than discarded.
type MarkerClassifier struct {
	bank      *Bank
	threshold int
}

// NewMarkerClassifier builds a MarkerClassifier over the given bank using
// the stricter clause threshold.
func NewMarkerClassifier(bank *Bank) *MarkerClassifier {
	return &MarkerClassifier{bank: bank, threshold: ThresholdClause}
}

// Classify implements Classifier. An empty or whitespace-only job
// description yields two empty sets.
func (c *MarkerClassifier) Classify(jobDescription string) Classification {
	required := make(map[string]struct{})
	optional := make(map[string]struct{})

	for _, clause := range clauseRe.Split(strings.ToLower(jobDescription), -1) {
		if strings.TrimSpace(clause) == "" {
			continue
		}
		found := FindPresent(clause, c.bank.Universe(), c.threshold)
		if len(found) == 0 {
			continue
		}
		switch {
		case containsAny(clause, requirementMarkers):
			addAll(required, found)
		case containsAny(clause, niceToHaveMarkers):
			addAll(optional, found)
		default:
			// Neutral clause: treat unmarked mentions as soft requirements.
			addAll(optional, found)
		}
	}

	return Classification{
		Required: sortedKeys(required),
		Optional: sortedKeys(optional),
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func addAll(set map[string]struct{}, phrases []string) {
	for _, p := range phrases {
		set[p] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
