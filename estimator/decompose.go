package estimator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

// bestCover selects the final decomposition of password under cfg: every
// rune covered exactly once, recognized patterns preferred over brute
// force, cheapest among equally-covering alternatives.
func bestCover(cfg *conf.Configuration, password string) ([]match.Match, error) {
	runes := []rune(password)
	length := len(runes)

	pool, err := gatherCandidates(cfg, password)
	if err != nil {
		return nil, err
	}
	table := bruteForceTable(runes)

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("candidate pool assembled",
		zap.Int("password_runes", length),
		zap.Int("candidates", len(pool)))

	// Random passwords skip the exhaustive search: when even the greedy
	// cover explains too little, the search would land on all-brute-force
	// anyway.
	if len(pool) == 0 || looksRandom(length, quickCover(length, pool, table)) {
		log.Debug("password classified as random")
		cover := backfillBruteForce(table, nil)
		match.Sort(cover)

		return cover, nil
	}

	match.Sort(pool)
	cover := searchBestChain(pool, table, log)

	return cover, nil
}

// gatherCandidates concatenates every matcher's output, unfiltered except
// for domination pruning. A matcher error aborts the whole estimate.
func gatherCandidates(cfg *conf.Configuration, password string) ([]match.Match, error) {
	var pool []match.Match
	for _, m := range cfg.Matchers {
		found, err := m.Match(cfg, password)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMatcher, err)
		}
		pool = append(pool, found...)
	}

	return keepCheapest(pool), nil
}

// keepCheapest drops every candidate strictly dominated by another with
// identical (start, end) and lower entropy per rune. Candidates tied on
// average entropy all survive; there is no strict domination between them.
//
// Time: O(|pool|²).
func keepCheapest(pool []match.Match) []match.Match {
	if len(pool) == 0 {
		return pool
	}
	drop := make([]bool, len(pool))
	for i := range pool {
		for j := range pool {
			if pool[i].Start == pool[j].Start && pool[i].End == pool[j].End &&
				pool[i].AverageEntropy() > pool[j].AverageEntropy() {
				drop[i] = true

				break
			}
		}
	}

	kept := make([]match.Match, 0, len(pool))
	for i, m := range pool {
		if !drop[i] {
			kept = append(kept, m)
		}
	}

	return kept
}

// bruteForceTable precomputes the single-rune fallback for every index.
func bruteForceTable(runes []rune) []match.Match {
	table := make([]match.Match, len(runes))
	for i, r := range runes {
		table[i] = match.NewBruteForce(r, i)
	}

	return table
}

// quickCover assembles a plausible (not necessarily optimal) cover in one
// forward pass and one backward pass: per index keep the cheapest
// candidate ending there, then walk backwards emitting candidates where
// they exist and fallbacks where they do not. Feeds the randomness gate
// only.
//
// Time: O(L + |pool|). Memory: O(L).
func quickCover(length int, pool, table []match.Match) []match.Match {
	endingAt := make([]int, length)
	for i := range endingAt {
		endingAt[i] = -1
	}
	for i, m := range pool {
		if at := endingAt[m.End]; at < 0 || pool[at].AverageEntropy() > m.AverageEntropy() {
			endingAt[m.End] = i
		}
	}

	var cover []match.Match
	for k := length - 1; k >= 0; {
		if endingAt[k] < 0 {
			cover = append(cover, table[k])
			k--

			continue
		}
		m := pool[endingAt[k]]
		cover = append(cover, m)
		k = m.Start - 1
	}

	// Emitted back to front; restore ascending order.
	for l, r := 0, len(cover)-1; l < r; l, r = l+1, r-1 {
		cover[l], cover[r] = cover[r], cover[l]
	}

	return cover
}

// looksRandom classifies a password from its quick cover: random when
// recognized matches explain less than half of it, or less than 80% with
// no single recognized run reaching a quarter of its length. The
// thresholds are fixed; resist tuning them.
func looksRandom(length int, cover []match.Match) bool {
	var matched, longest int
	for _, m := range cover {
		if m.IsBruteForce() {
			continue
		}
		matched += m.Length()
		if m.Length() > longest {
			longest = m.Length()
		}
	}

	total := float64(length)
	if float64(matched) < 0.5*total {
		return true
	}

	return float64(matched) < 0.8*total && float64(longest) < 0.25*total
}

// searchBestChain enumerates every maximal chain of non-intersecting
// candidates and keeps the best cover found. pool must be sorted by
// match.Less.
//
// The successor list of a candidate is thinned: a later candidate is kept
// only if it is not reachable through an earlier kept successor; the DFS
// then re-expands those transitive chains itself, without duplication.
// Seeds — candidates on nobody's successor list — root the search.
//
// Worst-case exponential in |pool|; the randomness gate and domination
// pruning keep realistic pools small.
func searchBestChain(pool, table []match.Match, log *zap.Logger) []match.Match {
	succ := make([][]int, len(pool))
	for i := range pool {
		var forward []int
		for n := i + 1; n < len(pool); n++ {
			if pool[n].Start <= pool[i].End {
				continue
			}
			reachable := false
			for _, p := range forward {
				if pool[n].Start > pool[p].End {
					reachable = true

					break
				}
			}
			if !reachable {
				forward = append(forward, n)
			}
		}
		// Ascending indices into a sorted pool are already in comparator
		// order.
		succ[i] = forward
	}

	isSuccessor := make([]bool, len(pool))
	for _, forward := range succ {
		for _, n := range forward {
			isSuccessor[n] = true
		}
	}

	s := &chainSearch{pool: pool, table: table, succ: succ}
	seeds := 0
	for i := range pool {
		if !isSuccessor[i] {
			seeds++
			s.extend(i, nil)
		}
	}
	log.Debug("chain search finished",
		zap.Int("seeds", seeds),
		zap.Int("cover_size", len(s.best)))

	match.Sort(s.best)

	return s.best
}

// chainSearch holds the DFS state for one searchBestChain run.
type chainSearch struct {
	pool  []match.Match
	table []match.Match
	succ  [][]int

	best        []match.Match // best backfilled cover so far
	bestLength  int           // recognized runes in best's chain
	bestEntropy float64       // recognized entropy in best's chain
}

// extend appends candidate idx to prefix and forks on every successor
// that does not intersect the chain. A chain that cannot be extended is a
// leaf; it replaces the best so far only when it recognizes at least as
// many runes and has a strictly lower recognized entropy per rune.
func (s *chainSearch) extend(idx int, prefix []int) {
	chain := make([]int, len(prefix), len(prefix)+1)
	copy(chain, prefix)
	chain = append(chain, idx)

	extended := false
	for _, n := range s.succ[idx] {
		if s.intersectsChain(n, chain) {
			continue
		}
		s.extend(n, chain)
		extended = true
	}
	if extended {
		return
	}

	var chainLength int
	var chainEntropy float64
	for _, i := range chain {
		chainLength += s.pool[i].Length()
		chainEntropy += s.pool[i].Entropy
	}
	if s.best != nil &&
		!(chainLength >= s.bestLength &&
			chainEntropy/float64(chainLength) < s.bestEntropy/float64(s.bestLength)) {
		return
	}

	cover := make([]match.Match, 0, len(chain))
	for _, i := range chain {
		cover = append(cover, s.pool[i])
	}
	s.best = backfillBruteForce(s.table, cover)
	s.bestLength = chainLength
	s.bestEntropy = chainEntropy
}

// intersectsChain reports whether candidate overlaps any chain member,
// comparing half-open rune intervals.
func (s *chainSearch) intersectsChain(candidate int, chain []int) bool {
	c := s.pool[candidate]
	for _, i := range chain {
		m := s.pool[i]
		if c.Start <= m.End && m.Start <= c.End {
			return true
		}
	}

	return false
}

// backfillBruteForce adds one fallback from table for every index not
// covered by cover. Insertion order is unspecified; callers sort.
func backfillBruteForce(table, cover []match.Match) []match.Match {
	covered := make([]bool, len(table))
	for _, m := range cover {
		for i := m.Start; i <= m.End; i++ {
			covered[i] = true
		}
	}
	for i, done := range covered {
		if !done {
			cover = append(cover, table[i])
		}
	}

	return cover
}
