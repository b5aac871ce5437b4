package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
)

type (
	// DealConfig contains the properties for dealing seeded boards.
	DealConfig struct {
		// MaxSteps limits the search for each seed.  Zero does not limit the search.
		MaxSteps int
		// Retries is the number of following seeds to try if the search for a seed fails.
		Retries int
	}

	// Deal is a generated board and the seed that created it.
	// Generating the same positions with the seed and the MaxSteps of the deal config creates the same board.
	Deal struct {
		Seed     int64
		Board    *board.Board
		Solution Solution
	}
)

// Validate ensures the configuration has no errors.
func (cfg DealConfig) Validate() error {
	switch {
	case cfg.MaxSteps < 0:
		return fmt.Errorf("non-negative max steps required")
	case cfg.Retries < 0:
		return fmt.Errorf("non-negative retries required")
	}
	return nil
}

// Deal creates a board with a solvable arrangement of tiles at the positions.
// When the search for a seed fails, the next seed is tried, up to the number of retries.
func (cfg DealConfig) Deal(positions []tile.Position, seed int64) (*Deal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dealing: validation: %w", err)
	}
	var err error
	for attempt := 0; attempt <= cfg.Retries; attempt++ {
		d, err2 := cfg.deal(positions, seed+int64(attempt))
		if err2 == nil {
			return d, nil
		}
		err = err2
		if errors.Is(err, board.ErrOddTileCount) {
			break
		}
	}
	return nil, fmt.Errorf("dealing board from seed %v: %w", seed, err)
}

// deal generates a board for the positions using a single seed.
func (cfg DealConfig) deal(positions []tile.Position, seed int64) (*Deal, error) {
	gCfg := Config{
		Rand:     rand.New(rand.NewSource(seed)),
		MaxSteps: cfg.MaxSteps,
	}
	g, err := gCfg.NewGenerator()
	if err != nil {
		return nil, err
	}
	b := board.New(positions)
	s, err := g.Generate(b)
	if err != nil {
		return nil, err
	}
	d := Deal{
		Seed:     seed,
		Board:    b,
		Solution: *s,
	}
	return &d, nil
}
