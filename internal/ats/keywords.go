package ats

import "sort"

// maxMissingKeywords caps the missing list so a long job description cannot
// bloat the report.
const maxMissingKeywords = 50

// stopwords is the minimal English function-word list excluded from
// frequency ranking. It deliberately covers only the most common glue words;
// the keyword overlap lists are NOT filtered by it.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "to": {}, "of": {}, "in": {}, "for": {},
	"on": {}, "with": {}, "as": {}, "by": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "an": {}, "at": {}, "or": {}, "from": {},
}

// KeywordCount is a token with its occurrence count.
type KeywordCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// KeywordOverlap is the lighter-weight token-set matcher output: tokens both
// texts share and tokens only the job description has.
type KeywordOverlap struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// TopKeywords returns the n most frequent non-stopword tokens of text,
// descending by count, ties broken by first-encountered order. Tokens
// shorter than two characters are dropped.
func TopKeywords(text string, n int) []KeywordCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, tok := range TokenizeWords(text) {
		if len(tok) < 2 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	// Stable sort keeps first-encountered order for equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if n > len(order) {
		n = len(order)
	}
	top := make([]KeywordCount, 0, n)
	for _, tok := range order[:n] {
		top = append(top, KeywordCount{Token: tok, Count: counts[tok]})
	}
	return top
}

// Overlap computes the raw token-set intersection of the two texts and the
// job-side-only remainder (sorted, capped at maxMissingKeywords).
func Overlap(resumeText, jobDescription string) KeywordOverlap {
	resumeSet := tokenSet(resumeText)
	jobSet := tokenSet(jobDescription)

	matched := make([]string, 0)
	missing := make([]string, 0)
	for tok := range jobSet {
		if _, ok := resumeSet[tok]; ok {
			matched = append(matched, tok)
		} else {
			missing = append(missing, tok)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	return KeywordOverlap{Matched: matched, Missing: missing}
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range TokenizeWords(text) {
		set[tok] = struct{}{}
	}
	return set
}
