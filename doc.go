// Package entropass estimates password strength by decomposing a password
// into recognizable patterns and summing their information entropy.
//
// 🚀 What is entropass?
//
//	A pure-Go password-strength estimator built around a combinatorial
//	decomposition engine:
//		• Pattern matchers: dictionary (+ leet, + reversed), repeat,
//		  sequence, keyboard walks, dates, years, separators
//		• A candidate pruner that keeps only the cheapest explanation
//		  per password region
//		• A randomness gate that short-circuits exhaustive search for
//		  passwords no matcher can explain
//		• An exhaustive chain search that covers as much of the password
//		  as possible with recognized patterns, at the lowest entropy
//		• Brute-force backfill so every character is always accounted for
//
// ✨ Why choose entropass?
//
//   - Deterministic – same password, same configuration, same answer
//   - Honest scoring – entropy comes from what an attacker would try,
//     not from character-class checklists
//   - Extensible – plug in your own matchers, dictionaries and keyboards
//   - Library-first – no files, no sockets, no persisted state
//
// Everything is organized under flat subpackages:
//
//	match/     — the Match variant type, pattern kinds, ordering
//	conf/      — Configuration, dictionaries, keyboard adjacency, options
//	matchers/  — the built-in pattern matchers
//	estimator/ — the decomposition engine, Result, time-to-crack helpers
//	feedback/  — human-readable warnings and suggestions
//	cmd/entropass — interactive console front end
//
// Quick start:
//
//	est := estimator.New(nil) // default configuration
//	res, err := est.Estimate("correct horse battery staple")
//	if err != nil { ... }
//	fmt.Println(res.Entropy)
//
// See estimator/doc.go for the decomposition algorithm in depth.
package entropass
