package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizePhrases_PreservesSymbolTokens(t *testing.T) {
	// Single spaces join runs greedily, so a fully single-spaced string is
	// one token; punctuation like commas breaks runs apart.
	assert.Equal(t,
		[]string{"c++ and c# plus node.js"},
		TokenizePhrases("C++ and C# plus Node.js"))

	assert.Equal(t,
		[]string{"python", "docker", "node.js"},
		TokenizePhrases("Python, Docker, Node.js"))
}

func TestTokenizePhrases_Empty(t *testing.T) {
	assert.Empty(t, TokenizePhrases(""))
	assert.Empty(t, TokenizePhrases("   \n\t  "))
}

func TestTokenizeWords_LettersOnly(t *testing.T) {
	assert.Equal(t,
		[]string{"led", "team", "of", "engineers"},
		TokenizeWords("Led team of 5 engineers!"))
}

func TestTokenizeWords_Empty(t *testing.T) {
	assert.Empty(t, TokenizeWords(""))
	assert.Empty(t, TokenizeWords("  123 ... 456 "))
}
