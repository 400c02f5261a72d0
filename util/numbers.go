package util

import (
	"fmt"
	"math"
	"strconv"
)

// ParseWordLen parses a positional word-length argument
func ParseWordLen(arg string) (int, error) {
	n, err := strconv.ParseInt(arg, 0, 64)
	if err != nil {
		return 0, err
	} else if n <= 0 {
		return 0, fmt.Errorf("word length must be a positive integer, got (%d)", n)
	}

	return int(n), nil
}

// Combination space totals can blow straight past uint64, so all of the count
// math saturates at math.MaxUint64 instead of wrapping

func SatAdd(a uint64, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}

func SatMul(a uint64, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	} else if a > math.MaxUint64/b {
		return math.MaxUint64
	}

	return a * b
}

// Clamps for handing saturated counts to APIs that take signed totals
// (humanize.Comma, the pterm progress bar)

func ClampInt64(n uint64) int64 {
	if n > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(n)
}

func ClampInt(n uint64) int {
	if n > uint64(math.MaxInt) {
		return math.MaxInt
	}

	return int(n)
}
