package estimator

import (
	"math"
	"math/big"
)

// EntropyFromGuesses converts an expected guess count to bits of entropy.
// Guess counts beyond float64 range saturate at the largest finite double
// rather than overflowing to infinity.
func EntropyFromGuesses(guesses *big.Float) float64 {
	g, _ := guesses.Float64()
	if math.IsInf(g, 1) {
		g = math.MaxFloat64
	}

	return math.Log2(g)
}

// GuessesFromEntropy converts bits of entropy to an integer guess count,
// rounded half-up. Entropies beyond float64 range saturate at the largest
// finite double before rounding.
func GuessesFromEntropy(entropy float64) *big.Int {
	guesses := math.Pow(2, entropy)
	if math.IsInf(guesses, 1) {
		guesses = math.MaxFloat64
	}

	// Half-up: +0.5 then truncate toward zero (guesses is non-negative).
	f := new(big.Float).SetFloat64(guesses)
	f.Add(f, big.NewFloat(0.5))
	n, _ := f.Int(nil)

	return n
}
