package matchers

import (
	"math"
	"sort"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

// SpatialMatcher finds keyboard walks of three or more keys over every
// configured adjacency graph: "qwerty", "zxcvbn", "74123" on a keypad.
// Shifted faces ("QwErTy", "!@#$") walk the same keys.
//
// Entropy counts the walks an attacker must try: for each possible length
// and number of turns, starting keys × average-degree^turns, plus a
// surcharge for shifted/unshifted mixing.
type SpatialMatcher struct{}

// Match implements conf.Matcher.
func (SpatialMatcher) Match(cfg *conf.Configuration, password string) ([]match.Match, error) {
	runes := []rune(password)
	length := len(runes)

	// Deterministic keyboard order regardless of map iteration.
	names := make([]string, 0, len(cfg.Keyboards))
	for name := range cfg.Keyboards {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []match.Match
	for _, name := range names {
		g := cfg.Keyboards[name]
		for i := 0; i < length-1; {
			j := i
			turns := 1
			var prevDR, prevDC int
			havePrev := false
			shifted := 0
			if g.IsShifted(runes[i]) {
				shifted++
			}
			for j < length-1 && g.Adjacent(runes[j], runes[j+1]) {
				dr, dc, _ := g.Direction(runes[j], runes[j+1])
				if havePrev && (dr != prevDR || dc != prevDC) {
					turns++
				}
				prevDR, prevDC = dr, dc
				havePrev = true
				j++
				if g.IsShifted(runes[j]) {
					shifted++
				}
			}
			if walk := j - i + 1; walk >= 3 {
				out = append(out, match.Match{
					Kind:    match.KindSpatial,
					Start:   i,
					End:     j,
					Token:   string(runes[i : j+1]),
					Entropy: spatialEntropy(g, walk, turns, shifted),
					Detail:  g.Name,
				})
			}
			if j > i {
				i = j
			} else {
				i++
			}
		}
	}

	return out, nil
}

// spatialEntropy implements the walk-counting estimate for a walk of
// `length` keys with `turns` direction segments, `shifted` of the keys
// typed on their shifted face.
func spatialEntropy(g *conf.AdjacencyGraph, length, turns, shifted int) float64 {
	starts := float64(g.StartCount())
	degree := g.AverageDegree()

	var possibilities float64
	for i := 2; i <= length; i++ {
		maxTurns := turns
		if i-1 < maxTurns {
			maxTurns = i - 1
		}
		for j := 1; j <= maxTurns; j++ {
			possibilities += binomial(i-1, j-1) * starts * math.Pow(degree, float64(j))
		}
	}
	entropy := math.Log2(possibilities)

	if shifted > 0 {
		unshifted := length - shifted
		limit := shifted
		if unshifted < limit {
			limit = unshifted
		}
		var variations float64
		for i := 1; i <= limit; i++ {
			variations += binomial(shifted+unshifted, i)
		}
		if variations < 2 {
			entropy++ // all keys shifted: caps-lock style, one extra bit
		} else {
			entropy += math.Log2(variations)
		}
	}

	return entropy
}
