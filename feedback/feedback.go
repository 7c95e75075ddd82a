// Package feedback turns an estimate into human-readable advice: a
// warning naming the longest recognized pattern and a short list of
// suggestions. Text is English; the estimate itself is language-neutral.
package feedback

import (
	"github.com/katalvlaran/entropass/estimator"
	"github.com/katalvlaran/entropass/match"
)

// Feedback is advice derived from one estimate. Both fields are empty
// when the password already meets the configured minimum entropy.
type Feedback struct {
	Warning     string
	Suggestions []string
}

// For derives feedback from res. The warning is driven by the longest
// recognized match — the pattern that explains most of the password.
func For(res *estimator.Result) Feedback {
	if res.MinimumEntropyMet() {
		return Feedback{}
	}

	driver, found := longestRecognized(res.Matches)
	if !found {
		return Feedback{
			Warning: "This is a very weak password.",
			Suggestions: []string{
				"Use a longer password.",
				"Consider a passphrase of several unrelated words.",
			},
		}
	}

	fb := Feedback{Suggestions: []string{
		"Add more characters that don't follow a pattern.",
		"Consider a passphrase of several unrelated words.",
	}}
	switch driver.Kind {
	case match.KindDictionary:
		fb.Warning = "This password contains a common word or name."
		fb.Suggestions = append(fb.Suggestions,
			"Avoid dictionary words, even disguised with @, 0 or 3.")
	case match.KindRepeat:
		fb.Warning = "Repeating a pattern adds almost no strength."
		fb.Suggestions = append(fb.Suggestions,
			"Avoid repeated characters or words.")
	case match.KindSequence:
		fb.Warning = "Sequences like abc or 6543 are easy to guess."
	case match.KindSpatial:
		fb.Warning = "Short keyboard patterns are easy to guess."
		fb.Suggestions = append(fb.Suggestions,
			"Use a longer keyboard pattern with more turns, or none at all.")
	case match.KindDate, match.KindYear:
		fb.Warning = "Dates and years are easy to guess."
		fb.Suggestions = append(fb.Suggestions,
			"Avoid dates and years that are associated with you.")
	default:
		fb.Warning = "This password is too predictable."
	}

	return fb
}

// longestRecognized returns the longest non-brute-force match; stable on
// ties (first in cover order wins).
func longestRecognized(ms []match.Match) (match.Match, bool) {
	var best match.Match
	found := false
	for _, m := range ms {
		if m.IsBruteForce() {
			continue
		}
		if !found || m.Length() > best.Length() {
			best = m
			found = true
		}
	}

	return best, found
}
