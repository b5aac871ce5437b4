// Package controller handles the logic to play a dealt board.
package controller

import (
	"github.com/jacobpatterson1549/selene-mahjongg/game"
	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
)

type (
	// Game tracks the selected tile and the removed pairs while a player clears a board.
	Game struct {
		board    *board.Board
		selected int
		history  []board.Match
	}

	// Outcome is the effect of selecting a tile.
	Outcome int
)

const (
	_ Outcome = iota
	// Selected is the outcome when a tile is selected without a previous selection.
	Selected
	// Cancelled is the outcome when the selected tile is selected again.
	Cancelled
	// Removed is the outcome when a tile matching the selected tile is selected.  Both tiles are removed.
	Removed
	// Reselected is the outcome when a tile that does not match the selected tile is selected instead of it.
	Reselected
)

// noSelection is the selected index when no tile is selected.
const noSelection = -1

// New creates a game to play the board.
func New(b *board.Board) *Game {
	g := Game{
		board:    b,
		selected: noSelection,
	}
	return &g
}

// Board is the board being played.
func (g *Game) Board() *board.Board {
	return g.board
}

// Selected returns the index of the selected tile.
func (g *Game) Selected() (int, bool) {
	return g.selected, g.selected != noSelection
}

// History returns the pairs that have been removed, in order.
func (g *Game) History() []board.Match {
	history := make([]board.Match, len(g.history))
	copy(history, g.history)
	return history
}

// Select handles the player choosing the tile at the index.
// Only exposed tiles can be selected.
func (g *Game) Select(i int) (Outcome, error) {
	if _, ok := g.board.Tile(i); !ok {
		return 0, warningNoTile
	}
	if !g.board.IsExposed(i) {
		return 0, warningNotExposed
	}
	prev, ok := g.Selected()
	switch {
	case !ok:
		g.selected = i
		return Selected, nil
	case prev == i:
		g.selected = noSelection
		return Cancelled, nil
	case g.board.Matches(prev, i):
		m := board.NewMatch(prev, i)
		g.board.Remove(m)
		g.history = append(g.history, m)
		g.selected = noSelection
		return Removed, nil
	}
	g.selected = i
	return Reselected, nil
}

// Undo puts the last removed pair back on the board and clears the selection.
func (g *Game) Undo() (*board.Match, error) {
	if len(g.history) == 0 {
		return nil, warningNoHistory
	}
	last := len(g.history) - 1
	m := g.history[last]
	g.history = g.history[:last]
	g.board.Restore(m)
	g.selected = noSelection
	return &m, nil
}

// Hint returns a pair of tiles that can currently be removed.
func (g *Game) Hint() (*board.Match, error) {
	matches := g.board.CurrentMatches()
	if len(matches) == 0 {
		return nil, warningNoMatches
	}
	return &matches[0], nil
}

// Candidates returns the tiles that can be removed with the selected tile.
func (g *Game) Candidates() ([]int, error) {
	i, ok := g.Selected()
	if !ok {
		return nil, warningNoSelection
	}
	return g.board.TilesMatching(i), nil
}

// Status determines if the board has been cleared or if no more pairs can be removed.
func (g *Game) Status() game.Status {
	switch {
	case g.board.Empty():
		return game.Finished
	case len(g.board.CurrentMatches()) == 0:
		return game.Stuck
	}
	return game.InProgress
}

// Info summarizes the state of the game.
func (g *Game) Info() game.Info {
	i := game.Info{
		Status:    g.Status(),
		TilesLeft: g.board.NumVisible(),
		Moves:     len(g.history),
	}
	return i
}
