// Package pagination bounds in-memory lists to a limit/offset window.
package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Slice returns the window of items starting at offset and holding at most
// limit elements. An offset past the last index yields an empty slice.
//
// The start index is clamped to len(items)-1, so an offset pointing at the
// last element always returns exactly that element, whatever the limit.
func Slice[T any](items []T, limit, offset int) []T {
	n := len(items)
	if n == 0 || offset > n-1 {
		return []T{}
	}
	if offset < 0 {
		offset = 0
	}

	start := min(n-1, offset)
	end := min(n, offset+limit)
	if end <= start {
		return []T{}
	}
	return items[start:end]
}

// ParseOffset turns a raw query value into an offset the way a loose numeric
// conversion would: decimal and exponent forms, 0x/0o/0b integers, and the
// literal "Infinity". Fractions are truncated and results are capped at
// MaxInt32, so "Infinity" lands past any list. Blank, non-numeric, NaN and
// negative input become 0.
func ParseOffset(raw string) int {
	s := strings.TrimSpace(raw)
	if n, ok := parsePrefixedInt(s); ok {
		return clampOffset(float64(n))
	}

	switch strings.TrimPrefix(s, "+") {
	case "Infinity":
		return math.MaxInt32
	case "-Infinity":
		return 0
	}

	// Signed or fractional hex is not a number here.
	if unsigned := strings.TrimLeft(s, "+-"); len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return clampOffset(f)
}

// parsePrefixedInt reads unsigned 0x, 0o and 0b literals.
func parsePrefixedInt(s string) (uint64, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, false
	}
	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}
	n, err := strconv.ParseUint(s[2:], base, 64)
	if err != nil {
		// Out of range still names a huge number.
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxUint64, true
		}
		return 0, false
	}
	return n, true
}

func clampOffset(f float64) int {
	if f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
