// Command entropass is an interactive password-strength console: type a
// password, read its entropy, decomposition, crack-time estimates and
// advice. Type \quit to exit. The -v flag wires a development logger into
// the engine for decomposition diagnostics.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/estimator"
	"github.com/katalvlaran/entropass/feedback"
	"github.com/katalvlaran/entropass/matchers"
)

const quitCommand = `\quit`

func main() {
	verbose := flag.Bool("v", false, "log engine diagnostics")
	minEntropy := flag.Float64("min-entropy", conf.DefaultMinimumEntropy, "policy threshold in bits")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintln(os.Stderr, "logger:", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
	}

	cfg := conf.New(
		conf.WithMatchers(matchers.Defaults()...),
		conf.WithMinimumEntropy(*minEntropy),
		conf.WithLogger(logger),
	)
	est := estimator.New(cfg)

	fmt.Printf("Type a password to estimate it, or %s to exit.\n", quitCommand)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("password> ")
		if !scanner.Scan() {
			break
		}
		password := scanner.Text()
		if password == quitCommand {
			break
		}
		report(est, password)
	}
	fmt.Println("Bye.")
}

// report runs one estimate and prints the full breakdown.
func report(est *estimator.Estimator, password string) {
	res, err := est.Estimate(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "estimate failed:", err)

		return
	}

	fmt.Println("----------------------------------------------------------")
	fmt.Printf("password:   %s\n", res.Password)
	fmt.Printf("entropy:    %.2f bits\n", res.Entropy)
	fmt.Printf("guesses:    %s\n", estimator.GuessesFromEntropy(res.Entropy))
	fmt.Printf("elapsed:    %s\n", res.Elapsed)
	fmt.Printf("meets %.0f-bit minimum: %v\n", res.Config.MinimumEntropy, res.MinimumEntropyMet())

	if fb := feedback.For(res); fb.Warning != "" {
		fmt.Printf("warning:    %s\n", fb.Warning)
		for _, s := range fb.Suggestions {
			fmt.Printf("suggestion: %s\n", s)
		}
	}

	for _, profile := range profilesByRate(res.Config.GuessRates) {
		seconds, err := estimator.TimeToCrack(res, profile)
		if err != nil {
			continue
		}
		fmt.Printf("time to crack (%s): %s\n", profile, estimator.FormatSeconds(seconds))
	}

	for _, m := range res.Matches {
		detail := ""
		if m.Detail != "" {
			detail = " (" + m.Detail + ")"
		}
		fmt.Printf("  %-10s %q [%d,%d] %.2f bits%s\n", m.Kind, m.Token, m.Start, m.End, m.Entropy, detail)
	}
	fmt.Println("----------------------------------------------------------")
}

// profilesByRate orders profile names slowest attack first.
func profilesByRate(rates map[string]float64) []string {
	names := make([]string, 0, len(rates))
	for name := range rates {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if rates[names[i]] != rates[names[j]] {
			return rates[names[i]] < rates[names[j]]
		}

		return names[i] < names[j]
	})

	return names
}
