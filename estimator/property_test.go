package estimator_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entropass/estimator"
	"github.com/katalvlaran/entropass/match"
)

// alphabets for the randomized corpus: mixed character classes plus a few
// non-ASCII runes.
var corpusAlphabets = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"0123456789",
	"!@#$%^&*()-_=+[]{};:,./?\\|'\"`~ ",
	"éüßжш漢あ",
}

// randomPassword draws up to maxLen runes, mixing alphabets per rune.
func randomPassword(r *rand.Rand, maxLen int) string {
	n := r.Intn(maxLen + 1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		alpha := []rune(corpusAlphabets[r.Intn(len(corpusAlphabets))])
		b.WriteRune(alpha[r.Intn(len(alpha))])
	}

	return b.String()
}

// TestEstimate_RandomizedCorpus checks the universal cover invariants —
// reconstruction, non-overlap, coverage, canonical order — on 10 000
// random passwords of up to 40 runes under the default configuration.
func TestEstimate_RandomizedCorpus(t *testing.T) {
	if testing.Short() {
		t.Skip("randomized corpus is slow")
	}

	est := estimator.New(nil)
	r := rand.New(rand.NewSource(42)) // deterministic corpus

	for i := 0; i < 10000; i++ {
		pw := randomPassword(r, 40)
		res, err := est.Estimate(pw)
		require.NoError(t, err, "password %q", pw)

		var rebuilt strings.Builder
		covered := 0
		for j, m := range res.Matches {
			rebuilt.WriteString(m.Token)
			covered += m.Length()
			if j > 0 {
				prev := res.Matches[j-1]
				require.Greater(t, m.Start, prev.End, "overlap in %q", pw)
				require.False(t, match.Less(m, prev), "order in %q", pw)
			}
		}
		require.Equal(t, pw, rebuilt.String(), "reconstruction of %q", pw)
		require.Equal(t, len([]rune(pw)), covered, "coverage of %q", pw)
	}
}
