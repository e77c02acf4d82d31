package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBank_LowercasesAndSorts(t *testing.T) {
	bank, err := NewBank(map[Category][]string{
		CategoryTechnical: {"  Python ", "go", "Docker"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"docker", "go", "python"}, bank.Phrases(CategoryTechnical))
	assert.Equal(t, []string{"docker", "go", "python"}, bank.Universe())
	assert.Equal(t, 3, bank.Size())
}

func TestNewBank_DropsEmptyEntries(t *testing.T) {
	bank, err := NewBank(map[Category][]string{
		CategorySoft: {"", "   ", "teamwork"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"teamwork"}, bank.Phrases(CategorySoft))
}

func TestNewBank_DuplicateAcrossCategories(t *testing.T) {
	_, err := NewBank(map[Category][]string{
		CategoryTechnical: {"python"},
		CategorySoft:      {"Python"},
	})
	require.Error(t, err)

	var dupErr *ErrDuplicatePhrase
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "python", dupErr.Phrase)
}

func TestNewBank_DuplicateWithinCategory(t *testing.T) {
	_, err := NewBank(map[Category][]string{
		CategoryTechnical: {"docker", "Docker"},
	})
	var dupErr *ErrDuplicatePhrase
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, CategoryTechnical, dupErr.First)
	assert.Equal(t, CategoryTechnical, dupErr.Second)
}

func TestNewBank_UnknownCategory(t *testing.T) {
	_, err := NewBank(map[Category][]string{
		Category("hobbies"): {"chess"},
	})
	var catErr *ErrUnknownCategory
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, Category("hobbies"), catErr.Category)
}

func TestBank_Category(t *testing.T) {
	bank, err := NewBank(map[Category][]string{
		CategoryTechnical: {"python"},
		CategoryEducation: {"bachelor"},
	})
	require.NoError(t, err)

	assert.Equal(t, CategoryTechnical, bank.Category("Python"))
	assert.Equal(t, CategoryEducation, bank.Category("bachelor"))
	assert.Equal(t, Category(""), bank.Category("basketweaving"))
}

func TestDefaultBank_Valid(t *testing.T) {
	bank := DefaultBank()
	assert.Greater(t, bank.Size(), 100)
	assert.Equal(t, CategoryTechnical, bank.Category("kubernetes"))
	assert.Equal(t, CategoryCertification, bank.Category("aws certified"))

	// Every category carries data.
	for _, cat := range Categories {
		assert.NotEmpty(t, bank.Phrases(cat), "category %s is empty", cat)
	}
}
