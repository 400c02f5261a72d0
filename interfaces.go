package main

// Interface that different generation modes (charset, pattern, permutations) must implement
type WordProvider interface {
	GetWordCount() uint64 // Used primarily to size the progress bar and the startup banner

	IterWords() func(func(string) bool) // Actual iterator function
}
