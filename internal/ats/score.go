package ats

import (
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Scoring weights and penalty constants. Required skills dominate the match
// decision; each missing required item costs 5 points, capped at 25.
const (
	weightRequired = 0.7
	weightOptional = 0.3

	gapPenaltyStep = 0.05
	gapPenaltyCap  = 0.25

	topKeywordCount = 20
)

// TopKeywordLists holds the frequency-ranked keyword lists for both texts.
// JSON keys mirror the service's historical report shape.
type TopKeywordLists struct {
	Resume []KeywordCount `json:"cv"`
	Job    []KeywordCount `json:"jd"`
}

// Report is the immutable output of one scoring call.
type Report struct {
	ScoreOverall     float64               `json:"score_overall"`
	RequiredCoverage float64               `json:"required_coverage"`
	OptionalCoverage float64               `json:"optional_coverage"`
	ByCategory       map[Category]float64  `json:"by_category"`
	Present          map[Category][]string `json:"present"`
	JDRequired       []string              `json:"jd_required"`
	JDOptional       []string              `json:"jd_optional"`
	GapsRequired     []string              `json:"gaps_required"`
	TopKeywords      TopKeywordLists       `json:"top_keywords"`
	KeywordOverlap   KeywordOverlap        `json:"keyword_overlap"`
}

// Engine scores resumes against job descriptions using an immutable bank and
// a pluggable requirement classifier. It holds no per-call state; a single
// Engine may be shared across goroutines.
type Engine struct {
	bank       *Bank
	classifier Classifier
	threshold  int
}

// NewEngine builds an Engine over bank with the default marker classifier.
func NewEngine(bank *Bank) *Engine {
	return NewEngineWithClassifier(bank, NewMarkerClassifier(bank))
}

// NewEngineWithClassifier builds an Engine with a custom requirement
// classification strategy.
func NewEngineWithClassifier(bank *Bank, classifier Classifier) *Engine {
	return &Engine{
		bank:       bank,
		classifier: classifier,
		threshold:  ThresholdGeneral,
	}
}

// Evaluate produces the full score report for a resume / job description
// pair. It is deterministic and never fails on valid string input; empty
// text degrades to zero coverage rather than an error.
func (e *Engine) Evaluate(resumeText, jobDescription string) *Report {
	present := e.findPresence(resumeText)

	presenceUnion := make(map[string]struct{})
	for _, phrases := range present {
		addAll(presenceUnion, phrases)
	}

	cls := e.classifier.Classify(jobDescription)
	required := toSet(cls.Required)
	optional := toSet(cls.Optional)

	requiredCoverage := coverage(required, presenceUnion)
	optionalCoverage := coverage(optional, presenceUnion)

	needed := make(map[string]struct{}, len(required)+len(optional))
	addAll(needed, cls.Required)
	addAll(needed, cls.Optional)

	byCategory := make(map[Category]float64, len(Categories))
	for _, cat := range Categories {
		byCategory[cat] = e.categoryCoverage(cat, needed, present[cat])
	}

	raw := round3(weightRequired*requiredCoverage + weightOptional*optionalCoverage)

	gaps := make([]string, 0)
	for phrase := range required {
		if _, ok := presenceUnion[phrase]; !ok {
			gaps = append(gaps, phrase)
		}
	}
	sort.Strings(gaps)

	penalty := math.Min(gapPenaltyCap, gapPenaltyStep*float64(len(gaps)))
	overall := math.Max(0.0, round3(raw-penalty))

	return &Report{
		ScoreOverall:     overall,
		RequiredCoverage: round3(requiredCoverage),
		OptionalCoverage: round3(optionalCoverage),
		ByCategory:       byCategory,
		Present:          present,
		JDRequired:       cls.Required,
		JDOptional:       cls.Optional,
		GapsRequired:     gaps,
		TopKeywords: TopKeywordLists{
			Resume: TopKeywords(resumeText, topKeywordCount),
			Job:    TopKeywords(jobDescription, topKeywordCount),
		},
		KeywordOverlap: Overlap(resumeText, jobDescription),
	}
}

// findPresence runs the fuzzy pass for each category. The passes are
// independent, so they run as a parallel map over the bank.
func (e *Engine) findPresence(resumeText string) map[Category][]string {
	present := make(map[Category][]string, len(Categories))
	var mu sync.Mutex

	g := new(errgroup.Group)
	for _, cat := range Categories {
		g.Go(func() error {
			found := FindPresent(resumeText, e.bank.Phrases(cat), e.threshold)
			mu.Lock()
			present[cat] = found
			mu.Unlock()
			return nil
		})
	}
	// The passes are pure and never error.
	_ = g.Wait()

	return present
}

// categoryCoverage reports the fraction of job-needed phrases from cat that
// the resume covers. A category the job never asks about is vacuously 1.0.
func (e *Engine) categoryCoverage(cat Category, needed map[string]struct{}, present []string) float64 {
	pool := e.bank.Phrases(cat)
	neededHere := 0
	covered := 0
	presentSet := toSet(present)
	for _, phrase := range pool {
		if _, ok := needed[phrase]; !ok {
			continue
		}
		neededHere++
		if _, ok := presentSet[phrase]; ok {
			covered++
		}
	}
	if neededHere == 0 {
		return 1.0
	}
	return round3(float64(covered) / float64(neededHere))
}

// coverage returns |want ∩ have| / max(1, |want|). The max guard keeps an
// empty requirement set at coverage 0 instead of dividing by zero.
func coverage(want, have map[string]struct{}) float64 {
	hits := 0
	for phrase := range want {
		if _, ok := have[phrase]; ok {
			hits++
		}
	}
	total := len(want)
	if total < 1 {
		total = 1
	}
	return float64(hits) / float64(total)
}

func toSet(phrases []string) map[string]struct{} {
	set := make(map[string]struct{}, len(phrases))
	addAll(set, phrases)
	return set
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
