// Package ats implements the deterministic resume scoring engine: a fuzzy
// keyword/requirement matcher that compares resume text against a job
// description and produces a weighted match score with category breakdowns.
package ats

import (
	"sort"
	"strings"
)

// Category identifies a group of related bank phrases.
type Category string

// Category constants define the fixed set of phrase categories.
const (
	CategoryTechnical     Category = "technical"
	CategorySoft          Category = "soft"
	CategoryBusiness      Category = "business"
	CategoryEducation     Category = "education"
	CategoryCertification Category = "certification"
	CategoryCondition     Category = "condition"
)

// Categories lists all valid categories in stable order.
var Categories = []Category{
	CategoryTechnical,
	CategorySoft,
	CategoryBusiness,
	CategoryEducation,
	CategoryCertification,
	CategoryCondition,
}

// Bank is an immutable catalog of recognized skill/attribute phrases grouped
// by category. It is built once at startup and is safe for unsynchronized
// concurrent reads.
type Bank struct {
	phrases  map[Category][]string
	universe []string
}

// NewBank builds a Bank from category -> phrase lists. Phrases are lowercased
// and trimmed; empty entries are dropped. A phrase registered under more than
// one category (or twice in the same one) is a configuration bug and returns
// ErrDuplicatePhrase. An unknown category returns ErrUnknownCategory.
func NewBank(phrases map[Category][]string) (*Bank, error) {
	for cat := range phrases {
		if !validCategory(cat) {
			return nil, &ErrUnknownCategory{Category: cat}
		}
	}

	owner := make(map[string]Category)
	b := &Bank{phrases: make(map[Category][]string, len(Categories))}

	for _, cat := range Categories {
		cleaned := make([]string, 0, len(phrases[cat]))
		for _, raw := range phrases[cat] {
			p := strings.ToLower(strings.TrimSpace(raw))
			if p == "" {
				continue
			}
			if prev, exists := owner[p]; exists {
				return nil, &ErrDuplicatePhrase{Phrase: p, First: prev, Second: cat}
			}
			owner[p] = cat
			cleaned = append(cleaned, p)
		}
		sort.Strings(cleaned)
		b.phrases[cat] = cleaned
	}

	b.universe = make([]string, 0, len(owner))
	for p := range owner {
		b.universe = append(b.universe, p)
	}
	sort.Strings(b.universe)

	return b, nil
}

// Phrases returns the phrases registered under a category, sorted.
// The returned slice must not be modified.
func (b *Bank) Phrases(cat Category) []string {
	return b.phrases[cat]
}

// Universe returns the union of all categories, sorted.
// The returned slice must not be modified.
func (b *Bank) Universe() []string {
	return b.universe
}

// Size returns the total number of phrases across all categories.
func (b *Bank) Size() int {
	return len(b.universe)
}

// Category returns the category a phrase belongs to, or "" if unknown.
func (b *Bank) Category(phrase string) Category {
	p := strings.ToLower(strings.TrimSpace(phrase))
	for _, cat := range Categories {
		idx := sort.SearchStrings(b.phrases[cat], p)
		if idx < len(b.phrases[cat]) && b.phrases[cat][idx] == p {
			return cat
		}
	}
	return ""
}

func validCategory(cat Category) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// DefaultBank returns the production phrase catalog. The data is static and
// validated at startup; a duplicate here is a programming error.
func DefaultBank() *Bank {
	b, err := NewBank(defaultPhrases)
	if err != nil {
		panic(err)
	}
	return b
}

var defaultPhrases = map[Category][]string{
	CategoryTechnical: {
		"python", "java", "javascript", "typescript", "c#", "c++", "go", "sql",
		"matlab", "scala", "kotlin", "swift", "react", "vue", "angular", "node",
		"express", "django", "flask", "fastapi", "spring", ".net", "laravel",
		"rails", "pandas", "numpy", "scikit-learn", "pytorch", "tensorflow",
		"keras", "nlp", "llm", "prompt engineering", "postgres", "mysql",
		"mongodb", "redis", "docker", "kubernetes", "k8s", "aws", "gcp",
		"azure", "ci/cd", "terraform", "ansible", "git", "linux",
	},
	CategorySoft: {
		"communication", "leadership", "teamwork", "collaboration",
		"problem solving", "critical thinking", "time management",
		"stakeholder management", "presentation", "negotiation", "mentoring",
		"ownership", "adaptability", "creativity", "initiative",
		"attention to detail", "empathy",
	},
	CategoryBusiness: {
		"kpi", "okr", "roadmap", "requirements", "user stories", "backlog",
		"sprint", "agile", "scrum", "stakeholder", "deadline", "budget",
		"roi", "compliance", "regulatory",
	},
	CategoryEducation: {
		"bachelor", "master", "phd", "msc", "bsc", "ba", "ma", "degree",
		"diploma", "certificate", "certification",
	},
	CategoryCertification: {
		"aws certified", "azure certified", "gcp certified", "pmp",
		"scrum master", "csm", "itil", "security+", "ccna", "salesforce",
	},
	CategoryCondition: {
		"full-time", "part-time", "contract", "internship", "remote",
		"hybrid", "on-site", "visa", "relocation", "travel", "shift",
		"weekend", "overtime", "salary", "benefits",
	},
}
