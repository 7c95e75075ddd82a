package matchers

import (
	"math"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

// RepeatMatcher finds a unit of one or more runes repeated back to back:
// "zzzz", "abcabc", "pa$pa$". Single-rune units need at least three
// repetitions, longer units at least two. Each repeated region is reported
// once, anchored at its leftmost occurrence, with the maximal repetition
// count for its unit length; regions that are repeats under several unit
// lengths yield one candidate per unit length.
//
// Entropy: brute-forcing the unit once plus choosing the repetition count,
// log2(cardinality(unit)) · len(unit) + log2(repetitions).
//
// Time: O(L²) comparisons for a password of L runes.
type RepeatMatcher struct{}

// Match implements conf.Matcher.
func (RepeatMatcher) Match(_ *conf.Configuration, password string) ([]match.Match, error) {
	runes := []rune(password)
	length := len(runes)

	var out []match.Match
	for i := 0; i < length; i++ {
		for unit := 1; unit <= (length-i)/2; unit++ {
			// Leftmost anchor only: skip if the unit also precedes i.
			if i >= unit && runesEqual(runes[i-unit:i], runes[i:i+unit]) {
				continue
			}
			reps := 1
			for i+(reps+1)*unit <= length && runesEqual(runes[i+reps*unit:i+(reps+1)*unit], runes[i:i+unit]) {
				reps++
			}
			minReps := 2
			if unit == 1 {
				minReps = 3
			}
			if reps < minReps {
				continue
			}

			unitToken := string(runes[i : i+unit])
			entropy := math.Log2(float64(match.TokenCardinality(unitToken)))*float64(unit) + math.Log2(float64(reps))
			out = append(out, match.Match{
				Kind:    match.KindRepeat,
				Start:   i,
				End:     i + reps*unit - 1,
				Token:   string(runes[i : i+reps*unit]),
				Entropy: entropy,
				Detail:  "unit " + unitToken,
			})
		}
	}

	return out, nil
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
