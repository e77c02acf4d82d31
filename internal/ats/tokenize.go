package ats

import (
	"regexp"
	"strings"
)

// phraseTokenRe captures runs of alphanumerics plus +, # and . so tokens like
// "c++", "c#" and "node.js" survive, and greedily joins runs separated by
// single spaces so multi-word phrases match in one pass.
var phraseTokenRe = regexp.MustCompile(`[a-z0-9+#.]+(?: [a-z0-9+#.]+)*`)

// wordRe captures runs of ASCII letters only; digits and punctuation are
// discarded. Used for frequency ranking and keyword overlap.
var wordRe = regexp.MustCompile(`[a-zA-Z]+`)

// TokenizePhrases lowercases text and returns phrase-style tokens.
// Empty or whitespace-only input yields an empty slice.
func TokenizePhrases(text string) []string {
	return phraseTokenRe.FindAllString(strings.ToLower(text), -1)
}

// TokenizeWords returns lowercase letter-run tokens.
// Empty or whitespace-only input yields an empty slice.
func TokenizeWords(text string) []string {
	words := wordRe.FindAllString(text, -1)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}
