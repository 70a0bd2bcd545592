package game

import (
	"sort"
	"strings"
)

// Normalize trims, lower-cases, deduplicates and sorts a word list. Two
// submissions that differ only in casing, padding or duplicates normalize
// to the same sequence.
func Normalize(words []string) []string {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// Match reports whether target and claimed name exactly the same
// normalized word set.
func Match(target, claimed []string) bool {
	a := Normalize(target)
	b := Normalize(claimed)
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
