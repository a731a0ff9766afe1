// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"cmp"
	"slices"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// match is one name that passed the filter, with the rune positions that
// matched the query (nil for an empty query).
type match struct {
	name      string
	score     int
	positions []int
}

// rank filters names by query with fzf's V2 algorithm (smart case) and
// orders the survivors by score, best first. Ties keep the input order.
// An empty query keeps every name in input order.
func rank(names []string, query []rune, slab *util.Slab) []match {
	out := make([]match, 0, len(names))
	if len(query) == 0 {
		for _, name := range names {
			out = append(out, match{name: name})
		}
		return out
	}

	caseSensitive := hasUpper(query)
	pattern := query
	if !caseSensitive {
		pattern = toLower(query)
	}

	for _, name := range names {
		chars := util.ToChars([]byte(name))
		res, pos := algo.FuzzyMatchV2(caseSensitive, false, true, &chars, pattern, true, slab)
		if res.Start < 0 {
			continue
		}
		m := match{name: name, score: res.Score}
		if pos != nil {
			m.positions = slices.Clone(*pos)
			slices.Sort(m.positions)
		}
		out = append(out, m)
	}

	slices.SortStableFunc(out, func(a, b match) int {
		return cmp.Compare(b.score, a.score)
	})
	return out
}

func hasUpper(rs []rune) bool {
	for _, r := range rs {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func toLower(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out[i] = r
	}
	return out
}
