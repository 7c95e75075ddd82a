package estimator

import (
	"time"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/matchers"
)

// Estimator runs password estimates under one Configuration. Create it
// once and reuse it; it holds no per-estimate state, so a single instance
// may serve concurrent Estimate calls as long as the configuration is not
// mutated underneath it.
type Estimator struct {
	cfg *conf.Configuration
}

// New returns an Estimator using cfg, or DefaultConfig() when cfg is nil.
func New(cfg *conf.Configuration) *Estimator {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Estimator{cfg: cfg}
}

// DefaultConfig assembles the stock configuration: embedded dictionaries,
// built-in keyboards, and every built-in matcher.
func DefaultConfig() *conf.Configuration {
	return conf.New(conf.WithMatchers(matchers.Defaults()...))
}

// Config returns the current configuration.
func (e *Estimator) Config() *conf.Configuration { return e.cfg }

// SetConfig replaces the configuration for subsequent estimates; nil
// restores the default. In-flight estimates keep the configuration they
// started with.
func (e *Estimator) SetConfig(cfg *conf.Configuration) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e.cfg = cfg
}

// Estimate decomposes password into its cheapest recognized-pattern cover
// and returns the summed entropy. Every rune is accounted for exactly
// once; positions no matcher claims cost brute-force entropy.
func (e *Estimator) Estimate(password string) (*Result, error) {
	cfg := e.cfg // snapshot against concurrent SetConfig
	start := time.Now()

	cover, err := bestCover(cfg, password)
	if err != nil {
		return nil, err
	}

	return newResult(cfg, password, cover, time.Since(start))
}
