package estimator_test

import (
	"testing"

	"github.com/katalvlaran/entropass/estimator"
)

// benchmarkEstimate runs the default estimator over one password.
func benchmarkEstimate(b *testing.B, password string) {
	est := estimator.New(nil)

	b.ResetTimer() // ignore configuration assembly
	for i := 0; i < b.N; i++ {
		if _, err := est.Estimate(password); err != nil {
			b.Fatalf("Estimate failed: %v", err)
		}
	}
}

// BenchmarkEstimate_Structured exercises the exhaustive chain search.
func BenchmarkEstimate_Structured(b *testing.B) {
	benchmarkEstimate(b, "password1")
}

// BenchmarkEstimate_Phrase exercises a long multi-pattern decomposition.
func BenchmarkEstimate_Phrase(b *testing.B) {
	benchmarkEstimate(b, "correct horse battery staple")
}

// BenchmarkEstimate_Random exercises the short-circuit gate path.
func BenchmarkEstimate_Random(b *testing.B) {
	benchmarkEstimate(b, "Xk7#pQ9!zR2m")
}
