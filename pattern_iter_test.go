package main

import (
	"fmt"
	"testing"

	"github.com/regginator/crank/charclass"
	"github.com/stretchr/testify/assert"
)

func TestPatternIter_DigitPlaceholders(t *testing.T) {
	iter := NewPatternIter("test%%")

	words := collectWords(iter)

	assert.Equal(t, uint64(100), iter.GetWordCount())
	assert.Len(t, words, 100)

	for i, word := range words {
		assert.Equal(t, fmt.Sprintf("test%02d", i), word)
	}
}

func TestPatternIter_MixedRadixOrder(t *testing.T) {
	iter := NewPatternIter("%@")

	words := collectWords(iter)

	// Rightmost position ticks fastest
	assert.Equal(t, "0a", words[0])
	assert.Equal(t, "0b", words[1])
	assert.Equal(t, "0z", words[25])
	assert.Equal(t, "1a", words[26])
	assert.Len(t, words, 260)
}

func TestPatternIter_UnrecognizedTokenIsLiteral(t *testing.T) {
	iter := NewPatternIter("?%")

	words := collectWords(iter)

	assert.Len(t, words, 10)
	assert.Equal(t, "?0", words[0])
	assert.Equal(t, "?9", words[9])
}

func TestPatternIter_Count(t *testing.T) {
	iter := NewPatternIter("@%^")

	want := uint64(26) * 10 * uint64(len(charclass.Symbols))
	assert.Equal(t, want, iter.GetWordCount())
}
