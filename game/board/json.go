package board

import (
	"encoding/json"

	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
)

// jsonBoard is used for serialization with the json/encoding package
type jsonBoard struct {
	Tiles []tile.Tile `json:"tiles"`
}

// MarshalJSON implements the encoding/json.Marshaler interface.
// Returns an object containing the array of tiles in index order.
func (b Board) MarshalJSON() ([]byte, error) {
	jb := jsonBoard{
		Tiles: b.tiles,
	}
	if jb.Tiles == nil {
		jb.Tiles = []tile.Tile{}
	}
	return json.Marshal(jb)
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface.
func (b *Board) UnmarshalJSON(d []byte) error {
	var jb jsonBoard
	if err := json.Unmarshal(d, &jb); err != nil {
		return err
	}
	b.tiles = jb.Tiles
	return nil
}
