package match

import "sort"

// Less reports whether a orders before b: by start index ascending, then
// by covered length ascending. The two keys do not distinguish matches
// that share both; Sort is therefore stable, and relative input order
// decides the degenerate case.
func Less(a, b Match) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}

	return a.Length() < b.Length()
}

// Sort orders ms in place by Less, stably.
func Sort(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool { return Less(ms[i], ms[j]) })
}
