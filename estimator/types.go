package estimator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

// Sentinel errors for estimator operations.
var (
	// ErrMatcher indicates a pattern matcher signaled an unrecoverable error.
	ErrMatcher = errors.New("estimator: pattern matcher failed")
	// ErrReconstruction indicates the assembled cover does not rebuild the
	// input password — a bug in the engine or a matcher, never a normal
	// outcome.
	ErrReconstruction = errors.New("estimator: cover does not reconstruct the password")
	// ErrUnknownProfile indicates a guess-rate profile name absent from the
	// configuration.
	ErrUnknownProfile = errors.New("estimator: unknown guess-rate profile")
)

// Result is the outcome of one estimate: the input password, its chosen
// cover sorted by start index, and the summed entropy in bits.
type Result struct {
	// Password is the input, verbatim.
	Password string
	// Matches cover the password exactly, sorted by (start, length).
	Matches []match.Match
	// Entropy is the sum of per-match entropies, brute force included.
	Entropy float64
	// Elapsed is the wall time the estimate took.
	Elapsed time.Duration
	// Config is the configuration the estimate ran under.
	Config *conf.Configuration
}

// MinimumEntropyMet reports whether the estimate reaches the configured
// policy threshold.
func (r *Result) MinimumEntropyMet() bool {
	return r.Entropy >= r.Config.MinimumEntropy
}

// newResult assembles and verifies a Result. The cover must already be
// sorted; its concatenated tokens must rebuild password exactly.
func newResult(cfg *conf.Configuration, password string, cover []match.Match, elapsed time.Duration) (*Result, error) {
	var rebuilt strings.Builder
	total := 0.0
	for _, m := range cover {
		rebuilt.WriteString(m.Token)
		total += m.Entropy
	}
	if rebuilt.String() != password {
		return nil, fmt.Errorf("%w: rebuilt %q from %d matches", ErrReconstruction, rebuilt.String(), len(cover))
	}

	return &Result{
		Password: password,
		Matches:  cover,
		Entropy:  total,
		Elapsed:  elapsed,
		Config:   cfg,
	}, nil
}
