// Package conf holds everything an estimate is parameterized by: the
// ordered set of pattern matchers, ranked dictionaries, keyboard adjacency
// graphs, the leet substitution table, attack-profile guess rates, and the
// minimum-entropy policy threshold.
//
// A Configuration is assembled once with functional options and treated as
// read-only afterwards:
//
//	cfg := conf.New(
//	    conf.WithMatchers(matchers.Defaults()...),
//	    conf.WithMinimumEntropy(40),
//	)
//
// Matchers must not mutate the Configuration they receive; under that
// contract a single Configuration may serve concurrent estimates without
// coordination.
//
// Dictionaries embed three curated wordlists (common passwords, frequent
// English words, given names) ranked by frequency; callers may replace or
// extend them with WithDictionaries.
package conf
