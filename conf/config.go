package conf

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/entropass/match"
)

// Matcher locates occurrences of one pattern family in a password.
//
// Implementations must be deterministic for a given (cfg, password), must
// not mutate cfg, and may return any number of matches in any order,
// including overlapping and redundant ones. A non-nil error is treated as
// fatal and aborts the whole estimate.
type Matcher interface {
	Match(cfg *Configuration, password string) ([]match.Match, error)
}

// DefaultMinimumEntropy is the policy threshold (in bits) below which a
// password is reported as too weak.
const DefaultMinimumEntropy = 35.0

// Guess-rate profile names for the default attack table.
const (
	RateOnlineThrottled   = "online_throttled"
	RateOnlineUnthrottled = "online_unthrottled"
	RateOfflineSlowHash   = "offline_slow_hash"
	RateOfflineFastHash   = "offline_fast_hash"
)

// Configuration parameterizes a password estimate. It is read-only during
// an estimate; build one with New and the With… options.
type Configuration struct {
	// Matchers are consulted in order; their outputs are concatenated.
	Matchers []Matcher
	// Dictionaries are the ranked wordlists available to dictionary matching.
	Dictionaries []Dictionary
	// Keyboards maps layout name to its adjacency graph.
	Keyboards map[string]*AdjacencyGraph
	// LeetTable maps a substitution rune to the letters it may stand for.
	LeetTable map[rune][]rune
	// GuessRates maps attack-profile name to guesses per second.
	GuessRates map[string]float64
	// MinimumEntropy is the policy threshold in bits.
	MinimumEntropy float64
	// Locale is the BCP 47 tag for presentation text. Only "en" ships.
	Locale string
	// Logger receives engine diagnostics; defaults to a no-op logger.
	Logger *zap.Logger
}

// Option mutates a Configuration during New.
type Option func(*Configuration)

// WithMatchers replaces the matcher list.
func WithMatchers(ms ...Matcher) Option {
	return func(c *Configuration) { c.Matchers = ms }
}

// WithDictionaries replaces the dictionary list.
func WithDictionaries(ds ...Dictionary) Option {
	return func(c *Configuration) { c.Dictionaries = ds }
}

// WithKeyboards replaces the keyboard adjacency graphs.
func WithKeyboards(ks map[string]*AdjacencyGraph) Option {
	return func(c *Configuration) { c.Keyboards = ks }
}

// WithLeetTable replaces the leet substitution table.
func WithLeetTable(t map[rune][]rune) Option {
	return func(c *Configuration) { c.LeetTable = t }
}

// WithGuessRates replaces the attack-profile guess-rate table.
func WithGuessRates(rates map[string]float64) Option {
	return func(c *Configuration) { c.GuessRates = rates }
}

// WithMinimumEntropy sets the policy threshold in bits.
func WithMinimumEntropy(bits float64) Option {
	return func(c *Configuration) { c.MinimumEntropy = bits }
}

// WithLocale sets the presentation locale tag.
func WithLocale(tag string) Option {
	return func(c *Configuration) { c.Locale = tag }
}

// WithLogger attaches a diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Configuration) { c.Logger = l }
}

// New builds a Configuration with embedded dictionaries, the default
// keyboards, leet table, guess rates and policy threshold, then applies
// opts. The matcher list starts empty; wire matchers.Defaults() (or your
// own) with WithMatchers.
func New(opts ...Option) *Configuration {
	cfg := &Configuration{
		Dictionaries:   DefaultDictionaries(),
		Keyboards:      DefaultKeyboards(),
		LeetTable:      DefaultLeetTable(),
		GuessRates:     DefaultGuessRates(),
		MinimumEntropy: DefaultMinimumEntropy,
		Locale:         "en",
		Logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// DefaultGuessRates returns the default attack table, in guesses per second.
func DefaultGuessRates() map[string]float64 {
	return map[string]float64{
		RateOnlineThrottled:   100.0 / 3600.0,
		RateOnlineUnthrottled: 10,
		RateOfflineSlowHash:   1e4,
		RateOfflineFastHash:   1e10,
	}
}
