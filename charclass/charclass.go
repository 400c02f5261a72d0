package charclass

// Placeholder token -> ordered symbol class lookups for pattern generation

import "strings"

const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;':\",./<>?`~"
)

// Placeholder tokens usable in a pattern. Anything not in here is a literal
var classes = map[rune]string{
	'@': Lowercase,
	'%': Digits,
	'^': Symbols,
}

// Lookup returns the symbol class for a placeholder token, or ok=false if the
// token has no class and should pass through as a literal
func Lookup(token rune) (string, bool) {
	class, ok := classes[token]
	return class, ok
}

// CompilePattern resolves a pattern into one ordered alphabet per output
// position. Placeholder tokens expand to their full class, everything else
// becomes a single-symbol alphabet
func CompilePattern(pattern string) [][]string {
	positions := make([][]string, 0, len(pattern))

	for _, token := range pattern {
		if class, ok := Lookup(token); ok {
			positions = append(positions, strings.Split(class, ""))
		} else {
			positions = append(positions, []string{string(token)})
		}
	}

	return positions
}

// Dedupe splits a charset into symbols and drops repeats, keeping the first
// occurrence of each so the caller's symbol order is preserved
func Dedupe(charset string) []string {
	symbols := []string{}
	seen := map[string]bool{}

	for _, r := range charset {
		s := string(r)
		if seen[s] {
			continue
		}

		seen[s] = true
		symbols = append(symbols, s)
	}

	return symbols
}
