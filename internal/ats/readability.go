package ats

import (
	"regexp"
	"strings"
)

// Readability label cutoffs on the Flesch reading-ease scale.
const (
	readingEaseEasy   = 60.0
	readingEaseMedium = 30.0
)

// Layout heuristic constants: start from a fixed baseline and subtract a
// fixed penalty per detected issue, never dropping below the floor.
const (
	layoutBaseline = 100
	layoutPenalty  = 20
	layoutFloor    = 40
)

// Readability is the reading-ease estimate for a text.
type Readability struct {
	Score         float64 `json:"score"`
	GradeEstimate float64 `json:"grade_estimate"`
	Label         string  `json:"label"`
}

// LayoutCheck is the crude ATS-friendliness heuristic result.
type LayoutCheck struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
}

var sentenceRe = regexp.MustCompile(`[.!?]+`)

// AnalyzeReadability computes the Flesch reading ease of text and maps it to
// a three-level label (Easy >= 60, Medium >= 30, Hard otherwise), plus a
// Flesch-Kincaid grade estimate. Pure function; empty input scores 0/Hard.
func AnalyzeReadability(text string) Readability {
	words := TokenizeWords(text)
	if len(words) == 0 {
		return Readability{Score: 0, GradeEstimate: 0, Label: "Hard"}
	}

	sentences := 0
	for _, s := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences < 1 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += syllableCount(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	grade := 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59
	if grade < 0 {
		grade = 0
	}

	return Readability{
		Score:         round3(score),
		GradeEstimate: round3(grade),
		Label:         readabilityLabel(score),
	}
}

func readabilityLabel(score float64) string {
	switch {
	case score >= readingEaseEasy:
		return "Easy"
	case score >= readingEaseMedium:
		return "Medium"
	default:
		return "Hard"
	}
}

// syllableCount estimates syllables as vowel groups, with a silent trailing
// "e" discounted. Always at least 1 for a non-empty word.
func syllableCount(word string) int {
	word = strings.ToLower(word)
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

var (
	wideGapRe = regexp.MustCompile(`\S {2,}\S.* {2,}\S`)
	tabColRe  = regexp.MustCompile(`\S\t+\S`)
)

// CheckLayout flags layout patterns that commonly confuse resume parsers:
// lines that look like multi-column text (two or more wide space gaps) and
// tab-separated columns. Deterministic pure function of text only.
func CheckLayout(text string) LayoutCheck {
	issues := make([]string, 0)

	columnish := 0
	tabbed := 0
	for _, line := range strings.Split(text, "\n") {
		if wideGapRe.MatchString(line) {
			columnish++
		}
		if tabColRe.MatchString(line) {
			tabbed++
		}
	}
	if columnish >= 3 {
		issues = append(issues, "suspected multi-column layout: repeated wide spacing")
	}
	if tabbed > 0 {
		issues = append(issues, "tab-separated columns detected")
	}

	score := layoutBaseline - layoutPenalty*len(issues)
	if score < layoutFloor {
		score = layoutFloor
	}
	return LayoutCheck{Score: score, Issues: issues}
}
