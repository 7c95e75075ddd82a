package conf

import (
	"bufio"
	"embed"
	"strings"
	"sync"
)

// Dictionary is a named, frequency-ranked wordlist. Ranks maps a lowercase
// word to its 1-based frequency rank (1 = most common). An Exclusion
// dictionary contains words that must never be accepted at all; matches
// against it carry zero entropy so the estimate bottoms out.
type Dictionary struct {
	Name      string
	Ranks     map[string]int
	Exclusion bool
}

// NewDictionary builds a Dictionary from words in frequency order.
// Duplicate words keep their first (best) rank.
func NewDictionary(name string, words []string, exclusion bool) Dictionary {
	ranks := make(map[string]int, len(words))
	for i, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, seen := ranks[w]; !seen {
			ranks[w] = i + 1
		}
	}

	return Dictionary{Name: name, Ranks: ranks, Exclusion: exclusion}
}

// Rank returns the 1-based rank of word, or 0 if absent. The word must
// already be folded to lowercase.
func (d Dictionary) Rank(word string) int { return d.Ranks[word] }

//go:embed data/passwords.txt data/english.txt data/names.txt
var wordlistFS embed.FS

var (
	defaultDictOnce sync.Once
	defaultDicts    []Dictionary
)

// DefaultDictionaries returns the embedded wordlists: common passwords,
// frequent English words, and given names. The backing rank maps are built
// once and shared; treat them as read-only.
func DefaultDictionaries() []Dictionary {
	defaultDictOnce.Do(func() {
		defaultDicts = []Dictionary{
			NewDictionary("passwords", mustWordlist("data/passwords.txt"), false),
			NewDictionary("english", mustWordlist("data/english.txt"), false),
			NewDictionary("names", mustWordlist("data/names.txt"), false),
		}
	})

	out := make([]Dictionary, len(defaultDicts))
	copy(out, defaultDicts)

	return out
}

// mustWordlist reads one embedded list, one word per line, skipping blank
// lines and # comments. Embedded files cannot fail to open at run time.
func mustWordlist(path string) []string {
	f, err := wordlistFS.Open(path)
	if err != nil {
		panic("conf: missing embedded wordlist " + path)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}

	return words
}
