package main

// WordProvider for pattern mode

import (
	"strings"

	"github.com/regginator/crank/charclass"
	"github.com/regginator/crank/util"
)

type PatternIter struct {
	// One ordered alphabet per output position, resolved once at construction
	positions [][]string
}

func NewPatternIter(pattern string) *PatternIter {
	return &PatternIter{
		positions: charclass.CompilePattern(pattern),
	}
}

func (iter *PatternIter) GetWordCount() uint64 {
	var count uint64 = 1
	for _, alphabet := range iter.positions {
		count = util.SatMul(count, uint64(len(alphabet)))
	}

	return count
}

func (iter *PatternIter) IterWords() func(func(string) bool) {
	positions := iter.positions
	patternLen := len(positions)

	return func(yield func(string) bool) {
		indices := make([]int, patternLen)

		for {
			var word strings.Builder
			for pos, i := range indices {
				word.WriteString(positions[pos][i])
			}

			if !yield(word.String()) {
				return
			}

			// Same odometer as charset mode, except every position carries
			// its own base (mixed-radix counting)
			i := patternLen - 1
			for i >= 0 && indices[i] == len(positions[i])-1 {
				i--
			}
			if i < 0 {
				break
			}

			indices[i]++
			for j := i + 1; j < patternLen; j++ {
				indices[j] = 0
			}
		}
	}
}
