package matchers

import (
	"math"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

// separatorOrder fixes both the recognized separator set and the tie-break
// order when several candidates appear equally often.
var separatorOrder = []rune{' ', '-', '_', '.', ',', ';', ':', '|', '/', '\\'}

// SeparatorMatcher finds the password's dominant separator rune — the most
// frequent of the conventional delimiters — and reports each occurrence as
// a one-rune match. Phrase-style passwords ("correct horse battery
// staple") then pay for their delimiters once per use instead of at
// brute-force rates.
//
// Entropy: log2 of the recognized separator set size.
type SeparatorMatcher struct{}

// Match implements conf.Matcher.
func (SeparatorMatcher) Match(_ *conf.Configuration, password string) ([]match.Match, error) {
	counts := make(map[rune]int, len(separatorOrder))
	for _, r := range password {
		counts[r]++
	}

	var dominant rune
	best := 0
	for _, sep := range separatorOrder {
		if counts[sep] > best {
			dominant = sep
			best = counts[sep]
		}
	}
	if best == 0 {
		return nil, nil
	}

	entropy := math.Log2(float64(len(separatorOrder)))
	var out []match.Match
	idx := 0
	for _, r := range password {
		if r == dominant {
			out = append(out, match.Match{
				Kind:    match.KindSeparator,
				Start:   idx,
				End:     idx,
				Token:   string(r),
				Entropy: entropy,
			})
		}
		idx++
	}

	return out, nil
}
