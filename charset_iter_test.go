package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectWords(provider WordProvider) []string {
	words := []string{}
	for word := range provider.IterWords() {
		words = append(words, word)
	}

	return words
}

func TestCharsetIter_Order(t *testing.T) {
	iter := NewCharsetIter(3, 3, "ab")

	want := []string{"aaa", "aab", "aba", "abb", "baa", "bab", "bba", "bbb"}
	assert.Equal(t, want, collectWords(iter))
	assert.Equal(t, uint64(8), iter.GetWordCount())
}

func TestCharsetIter_LengthRange(t *testing.T) {
	iter := NewCharsetIter(1, 3, "abc")

	words := collectWords(iter)

	// 3 + 9 + 27
	assert.Equal(t, uint64(39), iter.GetWordCount())
	assert.Len(t, words, 39)

	assert.Equal(t, "a", words[0])
	assert.Equal(t, "aa", words[3])
	assert.Equal(t, "aaa", words[12])
	assert.Equal(t, "ccc", words[38])
}

func TestCharsetIter_DedupeKeepsGivenOrder(t *testing.T) {
	iter := NewCharsetIter(1, 1, "bab")

	assert.Equal(t, []string{"b", "a"}, collectWords(iter))
	assert.Equal(t, uint64(2), iter.GetWordCount())
}

func TestCharsetIter_NoDuplicates(t *testing.T) {
	iter := NewCharsetIter(1, 2, "xyz")

	seen := map[string]bool{}
	for _, word := range collectWords(iter) {
		assert.False(t, seen[word], "word %q emitted twice", word)
		seen[word] = true
	}

	assert.Len(t, seen, 12)
}

func TestCharsetIter_EarlyStop(t *testing.T) {
	iter := NewCharsetIter(1, 2, "ab")

	words := []string{}
	for word := range iter.IterWords() {
		words = append(words, word)
		if len(words) == 3 {
			break
		}
	}

	assert.Equal(t, []string{"a", "b", "aa"}, words)
}
