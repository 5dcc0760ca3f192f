package chart

import (
	"slices"
	"strings"
)

// Match is a series found by [Search].
type Match struct {
	Key   string
	Label string
	Score int
}

// Search ranks series whose label contains the runes of query in order,
// ignoring case. Tighter and earlier matches rank first; ties keep series
// order. An empty query matches nothing.
func Search(series []Series, query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []Match
	for _, s := range series {
		score, ok := subsequence(strings.ToLower(s.Label), query)
		if !ok {
			continue
		}
		out = append(out, Match{Key: s.Key, Label: s.Label, Score: score})
	}
	slices.SortStableFunc(out, func(a, b Match) int { return b.Score - a.Score })
	return out
}

// subsequence scores how well query matches label as an ordered subsequence.
// Each matched rune scores; consecutive runs and a match at the start of
// the label or a word score extra. Runes skipped inside the match cost a
// point each.
func subsequence(label, query string) (int, bool) {
	var (
		score int
		prev  = -2
		qi    int
		pos   int
		last  rune = ' '
	)
	q := []rune(query)
	for _, r := range label {
		if qi < len(q) && r == q[qi] {
			score += 10
			if prev == pos-1 {
				score += 5
			}
			if last == ' ' || last == '-' {
				score += 8
			}
			prev = pos
			qi++
		} else if qi > 0 && qi < len(q) {
			score--
		}
		last = r
		pos++
	}
	if qi < len(q) {
		return 0, false
	}
	return score, true
}
