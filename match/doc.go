// Package match defines the core value type of entropass: a Match, one
// contiguous region of a password explained by a recognized pattern.
//
// A Match is a tagged variant — its Kind discriminates the pattern family
// (dictionary word, repeat, sequence, keyboard walk, date, year, separator,
// or the degenerate single-character brute-force fallback). All kinds share
// the same attribute set: inclusive rune coordinates [Start, End], the
// covered Token, and an entropy estimate in bits assigned by the matcher
// that produced it.
//
// The package also fixes the canonical ordering of matches — by start
// index, then by token length — used both while searching for a cover and
// when presenting the final decomposition. Two matches may share both keys;
// sorting is therefore always performed stably (see Sort).
package match
