package matchers

import (
	"math"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

// SequenceMatcher finds runs of three or more consecutive code points
// within one character class, ascending or descending: "1234", "edcba",
// "XYZ".
//
// Entropy: one bit when the run starts at a conventional anchor ('a', 'A',
// '0', '1' ascending), otherwise the log of the class size; one extra bit
// for descending; plus log2(run length) for the length choice.
type SequenceMatcher struct{}

// Match implements conf.Matcher.
func (SequenceMatcher) Match(_ *conf.Configuration, password string) ([]match.Match, error) {
	runes := []rune(password)
	length := len(runes)

	var out []match.Match
	for i := 0; i < length-1; {
		delta := runes[i+1] - runes[i]
		if (delta != 1 && delta != -1) || runeClass(runes[i]) == classOther || runeClass(runes[i]) != runeClass(runes[i+1]) {
			i++

			continue
		}
		j := i + 1
		for j < length-1 && runes[j+1]-runes[j] == delta && runeClass(runes[j+1]) == runeClass(runes[i]) {
			j++
		}
		if j-i+1 >= 3 {
			out = append(out, sequenceMatch(runes, i, j, delta > 0))
		}
		i = j
	}

	return out, nil
}

const (
	classLower = iota
	classUpper
	classDigit
	classOther
)

func runeClass(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return classLower
	case r >= 'A' && r <= 'Z':
		return classUpper
	case r >= '0' && r <= '9':
		return classDigit
	default:
		return classOther
	}
}

func sequenceMatch(runes []rune, start, end int, ascending bool) match.Match {
	token := string(runes[start : end+1])
	first := runes[start]

	var base float64
	switch {
	case ascending && (first == 'a' || first == 'A' || first == '0' || first == '1'):
		base = 1
	case runeClass(first) == classDigit:
		base = math.Log2(10)
	default:
		base = math.Log2(26)
	}
	if !ascending {
		base++
	}

	detail := "ascending"
	if !ascending {
		detail = "descending"
	}

	return match.Match{
		Kind:    match.KindSequence,
		Start:   start,
		End:     end,
		Token:   token,
		Entropy: base + math.Log2(float64(end-start+1)),
		Detail:  detail,
	}
}
