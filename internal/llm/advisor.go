// Package llm - advisor.go produces CV improvement suggestions and rewrites.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Advisor generates tailored suggestions and rewrites for a CV against a job
// description. When no client is configured (or a call fails) it falls back
// to deterministic canned output so the API endpoints keep working offline.
type Advisor struct {
	client Client
	tier   ModelTier
}

// NewAdvisor creates an Advisor. client may be nil for offline mode.
func NewAdvisor(client Client, tier ModelTier) *Advisor {
	return &Advisor{client: client, tier: tier}
}

// suggestionsPrompt asks for a JSON array so the response parses reliably.
const suggestionsPrompt = `You are an expert CV reviewer for applicant tracking systems.
Given the CV and job description below, produce 3-5 short, concrete suggestions
to improve the CV's match. Focus on the missing requirements listed.

Missing requirements: %s

CV:
%s

Job description:
%s

Respond with JSON: {"suggestions": ["...", "..."]}`

const rewritePrompt = `You are an expert CV writer. Rewrite the CV below so it better
targets the job description while staying truthful to the original content.
Keep the structure and approximate length. Do not invent employers or dates.

CV:
%s

Job description:
%s

Respond with the rewritten CV text only.`

// Suggestions returns improvement suggestions for the CV. gaps lists the
// requirements the scoring engine found missing.
func (a *Advisor) Suggestions(ctx context.Context, resumeText, jobDescription string, gaps []string) ([]string, error) {
	if a.client == nil {
		return fallbackSuggestions(gaps), nil
	}

	prompt := fmt.Sprintf(suggestionsPrompt, strings.Join(gaps, ", "), resumeText, jobDescription)
	raw, err := a.client.GenerateJSON(ctx, prompt, a.tier)
	if err != nil {
		return fallbackSuggestions(gaps), nil
	}

	var parsed struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || len(parsed.Suggestions) == 0 {
		return fallbackSuggestions(gaps), nil
	}
	return parsed.Suggestions, nil
}

// Rewrite returns a rewritten CV targeted at the job description.
func (a *Advisor) Rewrite(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if a.client == nil {
		return fallbackRewrite(resumeText, jobDescription), nil
	}

	text, err := a.client.GenerateContent(ctx, fmt.Sprintf(rewritePrompt, resumeText, jobDescription), a.tier)
	if err != nil || strings.TrimSpace(text) == "" {
		return fallbackRewrite(resumeText, jobDescription), nil
	}
	return strings.TrimSpace(text), nil
}

// fallbackSuggestions builds deterministic advice from the gap list.
func fallbackSuggestions(gaps []string) []string {
	sorted := make([]string, len(gaps))
	copy(sorted, gaps)
	sort.Strings(sorted)

	suggestions := []string{
		"Mirror the job description's exact wording for skills you already have.",
		"Lead each bullet with a strong verb and a measurable outcome.",
	}
	for _, gap := range sorted {
		suggestions = append(suggestions,
			fmt.Sprintf("Add evidence of %q if you have it; this requirement is currently missing.", gap))
		if len(suggestions) >= 5 {
			break
		}
	}
	return suggestions
}

// fallbackRewrite keeps the original text but surfaces the job's top terms
// in a skills line so the result is still useful without a model.
func fallbackRewrite(resumeText, jobDescription string) string {
	terms := topTerms(jobDescription, 8)
	if len(terms) == 0 {
		return strings.TrimSpace(resumeText)
	}
	return strings.TrimSpace(resumeText) + "\n\nTarget keywords: " + strings.Join(terms, ", ")
}

// topTerms extracts the most frequent non-trivial words from text.
func topTerms(text string, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,;:()[]\"'")
		if len(w) < 4 {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}
