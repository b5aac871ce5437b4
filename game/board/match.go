package board

import (
	"sort"
)

// Match is a pair of tiles that can be removed together.
// The tile indexes are unordered: NewMatch stores the lower index first.
type Match struct {
	A int `json:"a"`
	B int `json:"b"`
}

// NewMatch creates a match for the tiles at the indexes, in either order.
func NewMatch(i, j int) Match {
	if j < i {
		i, j = j, i
	}
	m := Match{
		A: i,
		B: j,
	}
	return m
}

// Equal determines if the matches refer to the same two tiles.
func (m Match) Equal(other Match) bool {
	return NewMatch(m.A, m.B) == NewMatch(other.A, other.B)
}

// Has determines if the tile at the index is part of the match.
func (m Match) Has(i int) bool {
	return m.A == i || m.B == i
}

// Matches determines if the tiles at the indexes belong to the same group.
// Removed tiles still have a group, so this is not a check that the tiles can be removed.
func (b Board) Matches(i, j int) bool {
	if !b.has(i) || !b.has(j) || i == j {
		return false
	}
	return b.tiles[i].Matches(b.tiles[j])
}

// TilesMatching returns the indexes of the other exposed tiles in the same group as the tile at the index.
// The tile at the index does not need to be exposed.
func (b Board) TilesMatching(i int) []int {
	if !b.has(i) {
		return nil
	}
	return b.partners(i, b.exposed())
}

// CurrentMatches returns each pair of exposed tiles that match, once.
// The matches are sorted by their lower index, then by their higher index.
func (b Board) CurrentMatches() []Match {
	exposed := b.exposed()
	set := make(map[Match]struct{})
	for i, ok := range exposed {
		if !ok {
			continue
		}
		for _, j := range b.partners(i, exposed) {
			m := NewMatch(i, j)
			set[m] = struct{}{}
		}
	}
	matches := make([]Match, 0, len(set))
	for m := range set {
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.A != b.A {
			return a.A < b.A
		}
		return a.B < b.B
	})
	return matches
}

// partners returns the indexes of the exposed tiles other than the tile at the index that are in its group.
func (b Board) partners(i int, exposed []bool) []int {
	var partners []int
	for j, ok := range exposed {
		if ok && j != i && b.tiles[i].Matches(b.tiles[j]) {
			partners = append(partners, j)
		}
	}
	return partners
}
