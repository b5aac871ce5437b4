// Package layout reads the shapes that boards are dealt onto.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
)

// Layout is a named list of positions for tiles.
// Positions use half cell coordinates for x and y.
type Layout struct {
	Name      string          `json:"name" yaml:"name" bson:"name" firestore:"name"`
	Positions []tile.Position `json:"positions" yaml:"positions" bson:"positions" firestore:"positions"`
}

var (
	// ErrEmpty is returned by Validate for layouts without any positions.
	ErrEmpty = errors.New("layout has no positions")
	// ErrUnknownFormat is returned when layout data is not in a supported format.
	ErrUnknownFormat = errors.New("unknown layout format")
)

// Validate returns an error if the layout cannot be used to deal a board.
func (l Layout) Validate() error {
	switch {
	case len(l.Name) == 0:
		return fmt.Errorf("name required")
	case strings.ContainsAny(l.Name, "/\\"):
		return fmt.Errorf("name must not contain slashes: %q", l.Name)
	case len(l.Positions) == 0:
		return ErrEmpty
	case len(l.Positions)%2 != 0:
		return board.ErrOddTileCount
	}
	seen := make(map[tile.Position]struct{}, len(l.Positions))
	for _, p := range l.Positions {
		if p.X < 0 || p.Y < 0 || p.Z < 0 {
			return fmt.Errorf("negative position: %v", p)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("multiple tiles at %v", p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Size is the width and height needed to draw the layout, in half cells.
func (l Layout) Size() (width, height int) {
	for _, p := range l.Positions {
		if int(p.X) > width {
			width = int(p.X)
		}
		if int(p.Y) > height {
			height = int(p.Y)
		}
	}
	return width + 2, height + 2
}

// Board creates a board for the layout without any tile identities.
func (l Layout) Board() *board.Board {
	return board.New(l.Positions)
}
