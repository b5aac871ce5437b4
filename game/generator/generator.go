// Package generator assigns tile identities to boards so that every board it creates can be cleared.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
)

type (
	// Generator fills boards with a solvable arrangement of tiles.
	Generator struct {
		rand *rand.Rand
		Config
	}

	// Config contains the properties to create generators.
	Config struct {
		// Rand is the source of randomness used to order pairs and candidate matches.
		Rand *rand.Rand
		// MaxSteps is the most pairs the search will try to place before giving up.  Zero does not limit the search.
		MaxSteps int
	}

	// Solution is the result of a successful generation.
	Solution struct {
		// Removals is an order to remove every tile from the full board.
		Removals []board.Match `json:"removals"`
		Stats    Stats         `json:"stats"`
	}

	// Stats describes the work done to find a solution.
	Stats struct {
		// Steps is the number of pairs that were tentatively placed.
		Steps int `json:"steps"`
		// Backtracks is the number of placed pairs that were undone.
		Backtracks int `json:"backtracks"`
	}

	// frame holds the shuffled candidate matches for one depth of the search.
	frame struct {
		candidates []board.Match
		next       int
	}
)

// numPairValues is the number of distinct pairs in a standard set.
// Each pair value p is placed as the sibling ids 2p and 2p+1.
const numPairValues = tile.SetSize / 2

var (
	// ErrUnsolvable is returned when every arrangement of the board was tried without a solution.
	ErrUnsolvable = errors.New("no solvable configuration")
	// ErrSearchLimit is returned when the search takes more steps than allowed.
	ErrSearchLimit = errors.New("search step limit reached")
)

// NewGenerator creates a generator from the config.
func (cfg Config) NewGenerator() (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating generator: validation: %w", err)
	}
	g := Generator{
		rand:   cfg.Rand,
		Config: cfg,
	}
	return &g, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	switch {
	case cfg.Rand == nil:
		return fmt.Errorf("random source required")
	case cfg.MaxSteps < 0:
		return fmt.Errorf("non-negative max steps required")
	}
	return nil
}

// Generate assigns identities to all tiles on the board.
// The search works backwards from the full board, removing exposed pairs and giving each removed pair the
// next pair of ids.  The order the pairs were removed in is returned as a witness that the board can be cleared.
// All tiles on the board are visible when Generate returns.  If an error is returned, no tile has an identity.
func (g *Generator) Generate(b *board.Board) (*Solution, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("generating board: %w", err)
	}
	pairs := g.pairValues(b.Len() / 2)
	removals := make([]board.Match, 0, len(pairs))
	stack := []frame{g.newFrame(b)}
	var stats Stats
	for len(removals) < len(pairs) {
		f := &stack[len(stack)-1]
		if f.next == len(f.candidates) {
			stack = stack[:len(stack)-1]
			if len(removals) == 0 {
				b.Reset()
				return nil, ErrUnsolvable
			}
			removals = undo(b, removals)
			stats.Backtracks++
			continue
		}
		if g.MaxSteps > 0 && stats.Steps >= g.MaxSteps {
			for len(removals) > 0 {
				removals = undo(b, removals)
			}
			b.Reset()
			return nil, fmt.Errorf("%w after %v steps and %v backtracks", ErrSearchLimit, stats.Steps, stats.Backtracks)
		}
		m := f.candidates[f.next]
		f.next++
		stats.Steps++
		p := pairs[len(removals)]
		b.SetID(m.A, tile.ID(2*p))
		b.SetID(m.B, tile.ID(2*p+1))
		b.Remove(m)
		removals = append(removals, m)
		if len(removals) < len(pairs) {
			stack = append(stack, g.newFrame(b))
		}
	}
	b.Reset()
	s := Solution{
		Removals: removals,
		Stats:    stats,
	}
	return &s, nil
}

// pairValues creates the sequence of pair values to place, one for each pair on the board.
// Boards larger than a standard set cycle through the values, shuffling them again for each cycle.
func (g *Generator) pairValues(n int) []int {
	values := make([]int, 0, n+numPairValues)
	for len(values) < n {
		values = append(values, g.rand.Perm(numPairValues)...)
	}
	return values[:n]
}

// newFrame creates a frame for the matches currently on the board, in a random order.
func (g *Generator) newFrame(b *board.Board) frame {
	candidates := b.CurrentMatches()
	g.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return frame{
		candidates: candidates,
	}
}

// undo puts the last removed pair back on the board without an identity.
func undo(b *board.Board, removals []board.Match) []board.Match {
	last := len(removals) - 1
	m := removals[last]
	b.SetID(m.A, 0)
	b.SetID(m.B, 0)
	b.Restore(m)
	return removals[:last]
}
