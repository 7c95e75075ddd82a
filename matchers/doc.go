// Package matchers provides the built-in pattern matchers of entropass.
//
// Every matcher implements conf.Matcher: given a configuration and a
// password it returns all occurrences of its pattern family, each with an
// entropy estimate in bits. Matchers are stateless values; they perform no
// filtering against each other — overlapping and redundant candidates are
// expected and resolved later by the decomposition engine.
//
// The families:
//
//   - Dictionary — ranked-wordlist lookups over every substring, in plain,
//     reversed, and leet-decoded form. Entropy: log2(rank) plus uppercase
//     and substitution surcharges.
//   - Repeat — a unit of one or more runes repeated back to back.
//   - Sequence — runs of consecutive code points ("1234", "edcba").
//   - Spatial — keyboard walks over the configured adjacency graphs.
//   - Date — calendar-date shapes with or without separators.
//   - Year — standalone four-digit years.
//   - Separator — occurrences of the password's dominant separator rune.
//
// Defaults returns all of them in the canonical order.
//
// Entropy formulas are intentionally per-family conventions (an attacker
// enumerates each family differently); the engine treats them as opaque.
package matchers
