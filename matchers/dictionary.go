package matchers

import (
	"fmt"
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

// maxLeetVariants bounds the substitution expansion per token; beyond it,
// further substitution positions keep their literal rune.
const maxLeetVariants = 64

// DictionaryMatcher finds ranked-wordlist words in a password: every rune
// substring of length ≥ 2 is folded (NFKC + Unicode case fold) and looked
// up in every configured dictionary, in plain form, reversed, and with
// leet substitutions decoded.
//
// Entropy: log2(rank) + uppercase-variation bits + 1 bit when reversed +
// substitution bits when leet-decoded. Exclusion-dictionary hits carry
// zero entropy.
//
// Time: O(L² · (dictionaries + leet variants)) for a password of L runes.
type DictionaryMatcher struct{}

// Match implements conf.Matcher.
func (DictionaryMatcher) Match(cfg *conf.Configuration, password string) ([]match.Match, error) {
	runes := []rune(password)
	length := len(runes)
	folder := cases.Fold()

	var out []match.Match
	for i := 0; i < length; i++ {
		for j := i + 1; j < length; j++ {
			token := string(runes[i : j+1])
			folded := folder.String(norm.NFKC.String(token))
			upBits := uppercaseBits(token)

			// Plain lookup.
			for _, d := range cfg.Dictionaries {
				if rank := d.Rank(folded); rank > 0 {
					out = append(out, dictionaryMatch(d, token, i, j, rank, upBits, 0, ""))
				}
			}

			// Reversed lookup costs the attacker one extra bit.
			if rev := reverseRunes(folded); rev != folded {
				for _, d := range cfg.Dictionaries {
					if rank := d.Rank(rev); rank > 0 {
						out = append(out, dictionaryMatch(d, token, i, j, rank, upBits, 1, "reversed"))
					}
				}
			}

			// Leet-decoded lookups.
			variants, leetBits := unleetVariants(folded, cfg.LeetTable)
			for _, v := range variants {
				if v == folded {
					continue
				}
				for _, d := range cfg.Dictionaries {
					if rank := d.Rank(v); rank > 0 {
						out = append(out, dictionaryMatch(d, token, i, j, rank, upBits, leetBits, "l33t of "+v))
					}
				}
			}
		}
	}

	return out, nil
}

// dictionaryMatch assembles one dictionary hit. Exclusion dictionaries
// force zero entropy so the estimate bottoms out.
func dictionaryMatch(d conf.Dictionary, token string, start, end, rank int, upBits, extraBits float64, note string) match.Match {
	entropy := math.Log2(float64(rank)) + upBits + extraBits
	if d.Exclusion {
		entropy = 0
	}
	detail := fmt.Sprintf("%s#%d", d.Name, rank)
	if note != "" {
		detail += " " + note
	}

	return match.Match{
		Kind:    match.KindDictionary,
		Start:   start,
		End:     end,
		Token:   token,
		Entropy: entropy,
		Detail:  detail,
	}
}

// uppercaseBits charges for capitalization variety: the three common
// shapes (leading, trailing, all caps) cost one bit; anything else costs
// the log of the number of same-or-fewer-caps arrangements.
func uppercaseBits(token string) float64 {
	runes := []rune(token)
	var upper, lower int
	for _, r := range runes {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		}
	}
	if upper == 0 {
		return 0
	}
	first := runes[0] >= 'A' && runes[0] <= 'Z'
	last := runes[len(runes)-1] >= 'A' && runes[len(runes)-1] <= 'Z'
	if upper == len(runes) || (upper == 1 && (first || last)) {
		return 1
	}

	limit := upper
	if lower < limit {
		limit = lower
	}
	var possibilities float64
	for i := 1; i <= limit; i++ {
		possibilities += binomial(upper+lower, i)
	}
	if possibilities < 2 {
		return 1
	}

	return math.Log2(possibilities)
}

// unleetVariants expands folded through the substitution table. It returns
// every decoding (the literal token included, at index 0 when unchanged)
// and the surcharge in bits, log2 of the number of decodings.
func unleetVariants(folded string, table map[rune][]rune) ([]string, float64) {
	variants := []string{""}
	for _, r := range folded {
		choices := []rune{r}
		if subs, ok := table[r]; ok && len(variants)*(len(subs)+1) <= maxLeetVariants {
			choices = append(choices, subs...)
		}
		next := make([]string, 0, len(variants)*len(choices))
		for _, v := range variants {
			for _, c := range choices {
				next = append(next, v+string(c))
			}
		}
		variants = next
	}
	if len(variants) == 1 {
		return variants, 0
	}

	return variants, math.Log2(float64(len(variants)))
}

// reverseRunes returns s with its runes in reverse order.
func reverseRunes(s string) string {
	runes := []rune(s)
	for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
		runes[l], runes[r] = runes[r], runes[l]
	}

	return string(runes)
}
