// Package board stores the tiles for a game and answers which tiles can be removed.
package board

import (
	"errors"

	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
)

// Board is an ordered arena of tiles.
// Tiles are addressed by their index, which is stable for the life of the board.
type Board struct {
	tiles []tile.Tile
}

// ErrOddTileCount is returned when a board cannot be paired because it has an odd number of tiles.
var ErrOddTileCount = errors.New("board has an odd number of tiles")

// New creates a board with a visible tile without an identity at each position.
func New(positions []tile.Position) *Board {
	tiles := make([]tile.Tile, len(positions))
	for i, p := range positions {
		tiles[i] = tile.New(0, p)
	}
	b := Board{
		tiles: tiles,
	}
	return &b
}

// FromTiles creates a board from a copy of the tiles.
func FromTiles(tiles []tile.Tile) *Board {
	tiles2 := make([]tile.Tile, len(tiles))
	copy(tiles2, tiles)
	b := Board{
		tiles: tiles2,
	}
	return &b
}

// Validate returns ErrOddTileCount if the tiles on the board cannot all be paired.
func (b Board) Validate() error {
	if len(b.tiles)%2 != 0 {
		return ErrOddTileCount
	}
	return nil
}

// Len is the number of tiles on the board, including removed ones.
func (b Board) Len() int {
	return len(b.tiles)
}

// Tile returns the tile at the index.
// False is returned if the index is not on the board.
func (b Board) Tile(i int) (tile.Tile, bool) {
	if !b.has(i) {
		return tile.Tile{}, false
	}
	return b.tiles[i], true
}

// Tiles returns a copy of the tiles on the board.
func (b Board) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return tiles
}

// NumVisible is the number of tiles that have not been removed.
func (b Board) NumVisible() int {
	n := 0
	for _, t := range b.tiles {
		if t.Visible {
			n++
		}
	}
	return n
}

// Empty determines if all tiles have been removed.
func (b Board) Empty() bool {
	return b.NumVisible() == 0
}

// SetID changes the identity of the tile at the index.
func (b *Board) SetID(i int, id tile.ID) {
	b.tiles[i].ID = id
}

// Remove hides both tiles of the match.
func (b *Board) Remove(m Match) {
	b.tiles[m.A].Visible = false
	b.tiles[m.B].Visible = false
}

// Restore shows both tiles of the match.
func (b *Board) Restore(m Match) {
	b.tiles[m.A].Visible = true
	b.tiles[m.B].Visible = true
}

// Reset makes all tiles visible.
func (b *Board) Reset() {
	for i := range b.tiles {
		b.tiles[i].Visible = true
	}
}

// has determines if the index addresses a tile on the board.
func (b Board) has(i int) bool {
	return i >= 0 && i < len(b.tiles)
}
