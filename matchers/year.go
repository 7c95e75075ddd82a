package matchers

import (
	"math"
	"regexp"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

var yearPattern = regexp.MustCompile(`19\d\d|20\d\d`)

// YearMatcher finds standalone four-digit years in the recognized window.
// Entropy: log2 of the window size — an attacker just enumerates years.
type YearMatcher struct{}

// Match implements conf.Matcher.
func (YearMatcher) Match(_ *conf.Configuration, password string) ([]match.Match, error) {
	toRune := byteToRune(password)

	var out []match.Match
	for _, loc := range yearPattern.FindAllStringIndex(password, -1) {
		token := password[loc[0]:loc[1]]
		if y := atoi(token); y < minYear || y > maxYear {
			continue
		}
		out = append(out, match.Match{
			Kind:    match.KindYear,
			Start:   toRune[loc[0]],
			End:     toRune[loc[1]] - 1,
			Token:   token,
			Entropy: math.Log2(yearSpan),
		})
	}

	return out, nil
}
