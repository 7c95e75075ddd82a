package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

// staticMatcher returns a fixed candidate pool; used to drive the engine
// with hand-built scenarios.
type staticMatcher struct {
	out []match.Match
	err error
}

func (s staticMatcher) Match(*conf.Configuration, string) ([]match.Match, error) {
	return s.out, s.err
}

func mk(kind match.Kind, start, end int, token string, entropy float64) match.Match {
	return match.Match{Kind: kind, Start: start, End: end, Token: token, Entropy: entropy}
}

// TestKeepCheapest: identical coordinates keep only the cheapest per-rune
// candidate; average-entropy ties all survive.
func TestKeepCheapest(t *testing.T) {
	cheap := mk(match.KindDictionary, 0, 3, "pass", 2)
	pricey := mk(match.KindSpatial, 0, 3, "pass", 8)
	other := mk(match.KindDictionary, 4, 7, "word", 5)

	kept := keepCheapest([]match.Match{pricey, cheap, other})
	require.Len(t, kept, 2)
	assert.Contains(t, kept, cheap)
	assert.Contains(t, kept, other)

	// Tied averages: no strict domination, both stay.
	tiedA := mk(match.KindDictionary, 0, 1, "ab", 3)
	tiedB := mk(match.KindSequence, 0, 1, "ab", 3)
	kept = keepCheapest([]match.Match{tiedA, tiedB})
	assert.Len(t, kept, 2)

	assert.Empty(t, keepCheapest(nil))
}

// TestQuickCover: candidates where they exist, fallbacks elsewhere,
// ascending output.
func TestQuickCover(t *testing.T) {
	table := bruteForceTable([]rune("abcdef"))

	full := []match.Match{
		mk(match.KindDictionary, 0, 2, "abc", 3),
		mk(match.KindDictionary, 3, 5, "def", 3),
	}
	cover := quickCover(6, full, table)
	require.Len(t, cover, 2)
	assert.Equal(t, 0, cover[0].Start)
	assert.Equal(t, 3, cover[1].Start)

	tail := []match.Match{mk(match.KindDictionary, 3, 5, "def", 3)}
	cover = quickCover(6, tail, table)
	require.Len(t, cover, 4)
	for i := 0; i < 3; i++ {
		assert.True(t, cover[i].IsBruteForce())
		assert.Equal(t, i, cover[i].Start)
	}
	assert.Equal(t, "def", cover[3].Token)
}

// TestQuickCover_PrefersCheaperEnd: among candidates ending at the same
// index the cheaper per-rune one is chosen.
func TestQuickCover_PrefersCheaperEnd(t *testing.T) {
	table := bruteForceTable([]rune("abcd"))
	pool := []match.Match{
		mk(match.KindSpatial, 0, 3, "abcd", 12),
		mk(match.KindDictionary, 2, 3, "cd", 1),
	}
	cover := quickCover(4, pool, table)
	require.Len(t, cover, 3)
	assert.Equal(t, "cd", cover[2].Token)
}

// TestLooksRandom exercises both thresholds of the gate.
func TestLooksRandom(t *testing.T) {
	nb := func(start, end int) match.Match {
		return mk(match.KindDictionary, start, end, "", 1)
	}

	// Recognized 4 of 10 — below one half.
	assert.True(t, looksRandom(10, []match.Match{nb(0, 3)}))
	// Recognized 6 of 10 with a 6-rune run — structured.
	assert.False(t, looksRandom(10, []match.Match{nb(0, 5)}))
	// Recognized 7 of 10 but fragmented (max run 2 < 2.5) — random.
	assert.True(t, looksRandom(10, []match.Match{
		nb(0, 1), nb(2, 3), nb(4, 5), nb(6, 6),
	}))
	// Recognized 7 of 10 with a 3-rune run — structured.
	assert.False(t, looksRandom(10, []match.Match{
		nb(0, 2), nb(3, 4), nb(5, 6),
	}))
	// All brute force — random by construction.
	assert.True(t, looksRandom(4, bruteForceTable([]rune("abcd"))))
}

// TestBackfillBruteForce: exactly one fallback per uncovered index, no
// duplicates.
func TestBackfillBruteForce(t *testing.T) {
	table := bruteForceTable([]rune("abcdef"))

	out := backfillBruteForce(table, []match.Match{mk(match.KindDictionary, 2, 3, "cd", 1)})
	require.Len(t, out, 5)
	match.Sort(out)
	starts := make([]int, 0, len(out))
	for _, m := range out {
		starts = append(starts, m.Start)
	}
	assert.Equal(t, []int{0, 1, 2, 4, 5}, starts)

	// Empty partial cover: the whole table.
	out = backfillBruteForce(table, nil)
	assert.Len(t, out, 6)

	// Full cover: nothing added.
	out = backfillBruteForce(table, []match.Match{mk(match.KindDictionary, 0, 5, "abcdef", 1)})
	assert.Len(t, out, 1)
}

// TestSearchBestChain_PrefersCoverage: a chain explaining more runes
// beats a single pricier-but-shorter alternative; gaps are backfilled.
func TestSearchBestChain_PrefersCoverage(t *testing.T) {
	table := bruteForceTable([]rune("aaaaaa"))
	pool := []match.Match{
		mk(match.KindDictionary, 0, 1, "aa", 1),
		mk(match.KindSpatial, 0, 3, "aaaa", 4),
		mk(match.KindRepeat, 2, 5, "aaaa", 2),
	}
	match.Sort(pool)

	cover := searchBestChain(pool, table, zap.NewNop())
	require.Len(t, cover, 2)
	assert.Equal(t, match.KindDictionary, cover[0].Kind)
	assert.Equal(t, match.KindRepeat, cover[1].Kind)
}

// TestSearchBestChain_EqualCoverageTieBreak: among equally-covering
// chains, the lowest recognized entropy per rune wins, even when the
// pricier chain is found first.
func TestSearchBestChain_EqualCoverageTieBreak(t *testing.T) {
	table := bruteForceTable([]rune("abcdef"))
	pool := []match.Match{
		mk(match.KindDictionary, 0, 2, "abc", 9),
		mk(match.KindSequence, 0, 2, "abc", 3),
		mk(match.KindDictionary, 3, 5, "def", 3),
	}
	match.Sort(pool)

	cover := searchBestChain(pool, table, zap.NewNop())
	require.Len(t, cover, 2)
	assert.Equal(t, match.KindSequence, cover[0].Kind)
	assert.Equal(t, match.KindDictionary, cover[1].Kind)
}

// TestBestCover_MatcherFailure: a matcher error aborts the estimate.
func TestBestCover_MatcherFailure(t *testing.T) {
	cfg := conf.New(conf.WithMatchers(staticMatcher{err: assert.AnError}))

	_, err := bestCover(cfg, "whatever")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMatcher)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBestCover_NilLogger: a configuration built by hand without a logger
// must not panic.
func TestBestCover_NilLogger(t *testing.T) {
	cfg := &conf.Configuration{}

	cover, err := bestCover(cfg, "abc")
	require.NoError(t, err)
	assert.Len(t, cover, 3)
}
