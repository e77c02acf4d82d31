package ats

import (
	"math"
	"sort"
	"strings"
)

// Matching thresholds on the 0-100 similarity scale.
const (
	// ThresholdGeneral is used when matching the bank against full texts.
	ThresholdGeneral = 85
	// ThresholdClause is used inside individual job-description clauses,
	// which are short and where false positives are costlier.
	ThresholdClause = 88
)

// Ratio returns the indel similarity of a and b on a 0-100 scale:
// 100 * 2*LCS(a,b) / (len(a)+len(b)), rounded to the nearest integer.
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 100
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	common := lcsLength(ra, rb)
	return int(math.Round(200 * float64(common) / float64(len(ra)+len(rb))))
}

// PartialRatio returns the best Ratio between phrase and any same-length
// window of text, so a phrase "present" anywhere in a longer text scores high
// even with minor spelling variation. An exact substring scores 100.
func PartialRatio(phrase, text string) int {
	p := strings.ToLower(phrase)
	t := strings.ToLower(text)
	if p == "" || t == "" {
		return 0
	}

	// The shorter string slides over the longer one.
	if len(p) > len(t) {
		p, t = t, p
	}
	if strings.Contains(t, p) {
		return 100
	}

	needle := []rune(p)
	hay := []rune(t)
	if len(needle) > len(hay) {
		// Rune lengths can invert the byte-length comparison above.
		needle, hay = hay, needle
	}

	best := 0
	n := len(needle)
	for i := 0; i+n <= len(hay); i++ {
		common := lcsLength(needle, hay[i:i+n])
		score := int(math.Round(200 * float64(common) / float64(2*n)))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// FindPresent tests every phrase independently against text and returns the
// sorted subset scoring at or above threshold.
func FindPresent(text string, phrases []string, threshold int) []string {
	present := make([]string, 0)
	for _, phrase := range phrases {
		if PartialRatio(phrase, text) >= threshold {
			present = append(present, phrase)
		}
	}
	sort.Strings(present)
	return present
}

// lcsLength computes the longest-common-subsequence length with a
// single-row DP table.
func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
