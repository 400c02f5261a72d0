package main

// WordProvider for charset mode

import (
	"strings"

	"github.com/regginator/crank/charclass"
	"github.com/regginator/crank/util"
)

type CharsetIter struct {
	MinLen int
	MaxLen int

	symbols []string
}

// Repeated symbols in the charset are dropped up front, keeping the caller's
// order, so enumeration order always tracks the order the charset was given in
func NewCharsetIter(minLen int, maxLen int, charset string) *CharsetIter {
	return &CharsetIter{
		MinLen:  minLen,
		MaxLen:  maxLen,
		symbols: charclass.Dedupe(charset),
	}
}

func (iter *CharsetIter) GetWordCount() uint64 {
	numChars := uint64(len(iter.symbols))

	var totalWordCount uint64 = 0
	for wordLen := iter.MinLen; wordLen <= iter.MaxLen; wordLen++ {
		var lenWordCount uint64 = 1
		for i := 0; i < wordLen; i++ {
			lenWordCount = util.SatMul(lenWordCount, numChars)
		}

		totalWordCount = util.SatAdd(totalWordCount, lenWordCount)
	}

	return totalWordCount
}

func (iter *CharsetIter) IterWords() func(func(string) bool) {
	symbols := iter.symbols
	numChars := len(symbols)

	return func(yield func(string) bool) {
		if numChars == 0 {
			return
		}

		for wordLen := iter.MinLen; wordLen <= iter.MaxLen; wordLen++ {
			indices := make([]int, wordLen)

			for {
				var word strings.Builder
				for _, i := range indices {
					word.WriteString(symbols[i])
				}

				if !yield(word.String()) {
					return
				}

				// Odometer increment, rightmost position ticks fastest
				i := wordLen - 1
				for i >= 0 && indices[i] == numChars-1 {
					i--
				}
				if i < 0 {
					break
				}

				indices[i]++
				for j := i + 1; j < wordLen; j++ {
					indices[j] = 0
				}
			}
		}
	}
}
