package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	class, ok := Lookup('@')
	assert.True(t, ok)
	assert.Equal(t, Lowercase, class)

	class, ok = Lookup('%')
	assert.True(t, ok)
	assert.Equal(t, Digits, class)

	class, ok = Lookup('^')
	assert.True(t, ok)
	assert.Equal(t, Symbols, class)

	_, ok = Lookup('z')
	assert.False(t, ok)
}

func TestCompilePattern(t *testing.T) {
	positions := CompilePattern("a%")

	assert.Len(t, positions, 2)
	assert.Equal(t, []string{"a"}, positions[0])
	assert.Len(t, positions[1], 10)
	assert.Equal(t, "0", positions[1][0])
	assert.Equal(t, "9", positions[1][9])
}

func TestCompilePattern_Empty(t *testing.T) {
	assert.Empty(t, CompilePattern(""))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, Dedupe("bab"))
	assert.Equal(t, []string{"0", "1"}, Dedupe("01"))
	assert.Empty(t, Dedupe(""))
}

func TestDedupe_MultibyteSymbols(t *testing.T) {
	assert.Equal(t, []string{"h", "é"}, Dedupe("héh"))
}
