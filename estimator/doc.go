// Package estimator implements the decomposition engine of entropass: it
// explains a password as a cover of non-overlapping pattern matches whose
// summed entropy is as small as possible, preferring covers that attribute
// as much of the password as possible to recognized patterns.
/*
Decomposition — minimum-entropy cover of a password

Description:
  Every configured matcher proposes candidate matches (possibly
  overlapping, possibly redundant). The engine selects a subset that
  covers every rune exactly once, filling unclaimed positions with
  single-character brute-force matches.

Steps:
  1. Gather:
     - Run every matcher; concatenate outputs.
     - Prune: per (start, end) coordinate pair keep only candidates with
       the lowest entropy per rune.
  2. Brute-force table:
     - One fallback match per rune index.
  3. Quick cover (greedy, O(L + |pool|)):
     - For each index keep the cheapest candidate ending there, then walk
       the password backwards emitting candidates or fallbacks.
  4. Randomness gate:
     - If the quick cover explains < 50% of the runes — or < 80% with no
       single run reaching 25% — the password is random: return the
       all-brute-force cover and skip the exhaustive search.
  5. Exhaustive chain search:
     - Sort candidates by (start, length).
     - Thin a forward-successor list per candidate: keep only successors
       not transitively reachable through an earlier one.
     - From every seed (a candidate that is nobody's successor) extend
       chains depth-first through successor lists, forking on every
       non-intersecting extension.
     - At each leaf, the chain replaces the best so far only when it has
       at least as great a recognized length and a strictly lower
       recognized entropy per rune; a longer but per-rune pricier chain
       does not displace an earlier, cheaper best.
  6. Backfill + assemble:
     - Fill gaps from the brute-force table, sort, sum entropies, and
       verify the cover reconstructs the password exactly.

Complexity:
  Gather/prune O(|pool|²); quick cover O(L + |pool|); the chain search is
  exponential in |pool| in the worst case — the gate exists precisely to
  keep it off random passwords, and realistic pools stay small.

Errors:
  - ErrMatcher        — a matcher failed; the estimate is aborted.
  - ErrReconstruction — the chosen cover does not rebuild the password
    (a bug in a matcher or the engine, surfaced loudly).
  - ErrUnknownProfile — TimeToCrack was asked for an unconfigured rate.
*/
package estimator
