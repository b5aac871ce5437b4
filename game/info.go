package game

// Info contains information about a game.
type Info struct {
	// Layout is the name of the layout the board was dealt from.
	Layout string `json:"layout,omitempty"`
	// Seed is the random seed that dealt the board.
	Seed int64 `json:"seed,omitempty"`
	// Status is the state of the game.
	Status Status `json:"status,omitempty"`
	// TilesLeft is the number of tiles that have not been removed.
	TilesLeft int `json:"tilesLeft"`
	// Moves is the number of pairs that have been removed and not undone.
	Moves int `json:"moves"`
}
