package match

import "math"

// Kind discriminates the pattern family that produced a Match.
type Kind int

const (
	// KindBruteForce marks the single-character fallback covering positions
	// no pattern matcher claims.
	KindBruteForce Kind = iota
	// KindDictionary marks a dictionary word, possibly leet-encoded or reversed.
	KindDictionary
	// KindRepeat marks a repeated unit, e.g. "aaa" or "abcabc".
	KindRepeat
	// KindSequence marks a run of consecutive code points, e.g. "1234" or "edcba".
	KindSequence
	// KindSpatial marks a keyboard walk, e.g. "qwerty".
	KindSpatial
	// KindDate marks a calendar date with or without separators.
	KindDate
	// KindYear marks a standalone four-digit year.
	KindYear
	// KindSeparator marks a single occurrence of the password's dominant
	// separator rune.
	KindSeparator
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBruteForce:
		return "bruteforce"
	case KindDictionary:
		return "dictionary"
	case KindRepeat:
		return "repeat"
	case KindSequence:
		return "sequence"
	case KindSpatial:
		return "spatial"
	case KindDate:
		return "date"
	case KindYear:
		return "year"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Match is one contiguous region of a password explained by a pattern.
// Start and End are inclusive rune indices into the password; Token is the
// covered rune substring; Entropy is the matcher-assigned cost in bits.
// Detail optionally carries human-readable specifics (dictionary name,
// rank, keyboard name, …) for presentation; the engine never reads it.
type Match struct {
	Kind    Kind
	Start   int
	End     int
	Token   string
	Entropy float64
	Detail  string
}

// Length returns the number of runes the match covers: End − Start + 1.
func (m Match) Length() int { return m.End - m.Start + 1 }

// AverageEntropy returns Entropy per covered rune, the per-position cost
// used to compare competing explanations of the same region.
func (m Match) AverageEntropy() float64 { return m.Entropy / float64(m.Length()) }

// IsBruteForce reports whether the match is the single-character fallback.
func (m Match) IsBruteForce() bool { return m.Kind == KindBruteForce }

// NewBruteForce builds the single-character fallback match for rune r at
// the given index. Its entropy is log2 of the cardinality of the smallest
// conventional character class containing r.
func NewBruteForce(r rune, index int) Match {
	return Match{
		Kind:    KindBruteForce,
		Start:   index,
		End:     index,
		Token:   string(r),
		Entropy: math.Log2(float64(Cardinality(r))),
	}
}

// Character-class cardinalities used for brute-force entropy. ASCII
// printable symbols count as one class; anything beyond ASCII is charged
// a flat catch-all alphabet.
const (
	cardLower   = 26
	cardUpper   = 26
	cardDigit   = 10
	cardSymbol  = 33
	cardUnicode = 100
)

// Cardinality returns the size of the smallest conventional character
// class containing r.
func Cardinality(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return cardLower
	case r >= 'A' && r <= 'Z':
		return cardUpper
	case r >= '0' && r <= '9':
		return cardDigit
	case r < 128:
		return cardSymbol
	default:
		return cardUnicode
	}
}

// TokenCardinality returns the summed cardinality of the character classes
// present in token — the alphabet an attacker must cover to brute-force it.
func TokenCardinality(token string) int {
	var lower, upper, digit, symbol, unicode bool
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r < 128:
			symbol = true
		default:
			unicode = true
		}
	}
	card := 0
	if lower {
		card += cardLower
	}
	if upper {
		card += cardUpper
	}
	if digit {
		card += cardDigit
	}
	if symbol {
		card += cardSymbol
	}
	if unicode {
		card += cardUnicode
	}
	if card == 0 {
		card = 1 // empty token; callers never ask, but keep log2 finite
	}
	return card
}
