package matchers

import (
	"github.com/katalvlaran/entropass/conf"
)

// Defaults returns the built-in matchers in canonical order. The order
// sets the candidate-gathering sequence; it affects the final cover only
// when competing candidates tie exactly, where the earlier one wins.
func Defaults() []conf.Matcher {
	return []conf.Matcher{
		DictionaryMatcher{},
		RepeatMatcher{},
		SequenceMatcher{},
		SpatialMatcher{},
		DateMatcher{},
		YearMatcher{},
		SeparatorMatcher{},
	}
}

// byteToRune maps every byte offset that starts a rune (plus len(s)) to
// its rune index, so regexp byte positions convert to rune coordinates.
func byteToRune(s string) map[int]int {
	m := make(map[int]int, len(s)+1)
	ri := 0
	for bi := range s {
		m[bi] = ri
		ri++
	}
	m[len(s)] = ri

	return m
}

// binomial returns C(n, k) as a float64; 0 when k is out of range.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	out := 1.0
	for i := 0; i < k; i++ {
		out *= float64(n-i) / float64(i+1)
	}

	return out
}
