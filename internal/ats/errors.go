package ats

import "fmt"

// ErrDuplicatePhrase indicates a phrase was registered under two categories
// (or twice in the same category) at bank construction time.
type ErrDuplicatePhrase struct {
	Phrase string
	First  Category
	Second Category
}

func (e *ErrDuplicatePhrase) Error() string {
	return fmt.Sprintf("duplicate bank phrase %q: registered under %s and %s", e.Phrase, e.First, e.Second)
}

// ErrUnknownCategory indicates a bank was constructed with a category outside
// the fixed enumeration.
type ErrUnknownCategory struct {
	Category Category
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("unknown bank category: %q", e.Category)
}
