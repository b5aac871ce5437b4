// Package tile contains the pieces placed on solitaire boards and the slots they occupy.
package tile

type (
	// Tile is a piece in the game.
	Tile struct {
		ID       ID       `json:"id"`
		Position Position `json:"position"`
		Visible  bool     `json:"visible"`
	}

	// Position is the fixed slot a tile occupies.
	// X and Y are measured in half cells, so a tile spans two units in each direction.
	// Z is the stacking layer, starting at zero on the table.
	Position struct {
		X X `json:"x" yaml:"x" bson:"x" firestore:"x"`
		Y Y `json:"y" yaml:"y" bson:"y" firestore:"y"`
		Z Z `json:"z" yaml:"z" bson:"z" firestore:"z"`
	}

	// ID is the identity of a tile.
	ID int
	// Group is the class of ids that match each other.
	Group int
	// X is the horizontal position of a tile, in half cells.
	X int
	// Y is the vertical position of a tile, in half cells.
	Y int
	// Z is the layer of a tile.
	Z int
)

const (
	// NumGroups is the number of groups in a standard set.
	NumGroups = 36
	// GroupSize is the number of tiles in each group.
	GroupSize = 4
	// SetSize is the number of tiles in a standard set.
	SetSize = NumGroups * GroupSize
)

// New creates a visible tile at the position.
func New(id ID, p Position) Tile {
	t := Tile{
		ID:       id,
		Position: p,
		Visible:  true,
	}
	return t
}

// Group is the group the id belongs to.
func (id ID) Group() Group {
	return Group(id / GroupSize)
}

// Matches determines if the tile can be removed together with the other tile.
// Tiles in the same group match, including the bonus groups, which have a different face for each tile.
func (t Tile) Matches(other Tile) bool {
	return t.ID.Group() == other.ID.Group()
}
