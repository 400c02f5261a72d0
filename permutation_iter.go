package main

// WordProvider for permutations mode

import (
	"slices"
	"strings"

	"github.com/regginator/crank/util"
)

type PermutationIter struct {
	symbols []string
}

func NewPermutationIter(input string) *PermutationIter {
	return &PermutationIter{
		symbols: strings.Split(input, ""),
	}
}

// n! orderings. A repeated input symbol still counts its full share, the
// orderings just aren't all distinct strings
func (iter *PermutationIter) GetWordCount() uint64 {
	var count uint64 = 1
	for n := uint64(2); n <= uint64(len(iter.symbols)); n++ {
		count = util.SatMul(count, n)
	}

	return count
}

func (iter *PermutationIter) IterWords() func(func(string) bool) {
	symbols := iter.symbols
	numSyms := len(symbols)

	return func(yield func(string) bool) {
		// Permuting indices rather than symbols keeps repeated symbols
		// distinct, and starting from 0..n-1 makes the walk lexicographic
		// over index tuples
		indices := make([]int, numSyms)
		for i := range indices {
			indices[i] = i
		}

		for {
			var word strings.Builder
			for _, i := range indices {
				word.WriteString(symbols[i])
			}

			if !yield(word.String()) {
				return
			}

			// Standard next-permutation step
			i := numSyms - 2
			for i >= 0 && indices[i] > indices[i+1] {
				i--
			}
			if i < 0 {
				break
			}

			j := numSyms - 1
			for indices[j] < indices[i] {
				j--
			}
			indices[i], indices[j] = indices[j], indices[i]
			slices.Reverse(indices[i+1:])
		}
	}
}
