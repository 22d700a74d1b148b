package ui

import (
	"sort"
	"strings"
)

const (
	maxSuggestDistance = 3
	maxSuggestions     = 3
)

// Suggest returns up to three known entity names close to the misspelled
// target, nearest first. Matching is case-insensitive.
func Suggest(target string, known []string) []string {
	type match struct {
		name string
		dist int
	}

	lower := strings.ToLower(target)
	var matches []match
	for _, name := range known {
		d := editDistance(lower, strings.ToLower(name))
		if d <= maxSuggestDistance {
			matches = append(matches, match{name: name, dist: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	out := make([]string, 0, maxSuggestions)
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		out = append(out, matches[i].name)
	}
	return out
}

// editDistance is the Levenshtein distance between two strings, computed with
// a two-row rolling table.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = prev[j] + 1
			if curr[j-1]+1 < curr[j] {
				curr[j] = curr[j-1] + 1
			}
			if prev[j-1]+cost < curr[j] {
				curr[j] = prev[j-1] + cost
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
