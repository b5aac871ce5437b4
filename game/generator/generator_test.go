package generator

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
)

func TestNewGenerator(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	newGeneratorTests := []struct {
		Config
		wantOk bool
	}{
		{}, // no rand
		{ // negative max steps
			Config: Config{
				Rand:     r,
				MaxSteps: -1,
			},
		},
		{
			Config: Config{
				Rand: r,
			},
			wantOk: true,
		},
		{
			Config: Config{
				Rand:     r,
				MaxSteps: 100,
			},
			wantOk: true,
		},
	}
	for i, test := range newGeneratorTests {
		got, err := test.Config.NewGenerator()
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case got.rand != r, got.MaxSteps != test.MaxSteps:
			t.Errorf("Test %v: generator not configured: %v", i, got)
		}
	}
}

func newTestGenerator(t *testing.T, seed int64, maxSteps int) *Generator {
	t.Helper()
	cfg := Config{
		Rand:     rand.New(rand.NewSource(seed)),
		MaxSteps: maxSteps,
	}
	g, err := cfg.NewGenerator()
	if err != nil {
		t.Fatalf("creating generator: %v", err)
	}
	return g
}

// rowPositions creates positions for rows of tiles on the table.
// Stacked rows have a layer of tiles on all but the end tiles of each row.
func rowPositions(rows, cols int, stacked bool) []tile.Position {
	var positions []tile.Position
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			positions = append(positions, tile.Position{X: tile.X(2 * x), Y: tile.Y(2 * y)})
		}
	}
	for y := 0; stacked && y < rows; y++ {
		for x := 1; x < cols-1; x++ {
			positions = append(positions, tile.Position{X: tile.X(2 * x), Y: tile.Y(2 * y), Z: 1})
		}
	}
	return positions
}

// checkSolution removes the tiles from the full board in the order of the solution.
func checkSolution(t *testing.T, b *board.Board, s *Solution) {
	t.Helper()
	if want, got := b.Len()/2, len(s.Removals); want != got {
		t.Fatalf("wanted %v removals, got %v", want, got)
	}
	b2 := board.FromTiles(b.Tiles())
	for i, m := range s.Removals {
		switch {
		case !b2.IsExposed(m.A), !b2.IsExposed(m.B):
			t.Fatalf("removal %v: wanted both tiles of %v to be exposed", i, m)
		case !b2.Matches(m.A, m.B):
			t.Fatalf("removal %v: wanted tiles of %v to match", i, m)
		}
		b2.Remove(m)
	}
	if !b2.Empty() {
		t.Errorf("wanted board to be empty after all removals, %v tiles remain", b2.NumVisible())
	}
}

func TestGenerateOddTileCount(t *testing.T) {
	g := newTestGenerator(t, 1, 0)
	b := board.New(make([]tile.Position, 3))
	want := b.Tiles()
	s, err := g.Generate(b)
	switch {
	case !errors.Is(err, board.ErrOddTileCount):
		t.Errorf("wanted ErrOddTileCount, got %v", err)
	case s != nil:
		t.Errorf("wanted no solution, got %v", s)
	case !reflect.DeepEqual(want, b.Tiles()):
		t.Errorf("board changed: wanted %v, got %v", want, b.Tiles())
	}
}

func TestGenerateEmptyBoard(t *testing.T) {
	g := newTestGenerator(t, 1, 0)
	b := board.New(nil)
	s, err := g.Generate(b)
	switch {
	case err != nil:
		t.Errorf("unwanted error: %v", err)
	case len(s.Removals) != 0, s.Stats.Steps != 0:
		t.Errorf("wanted no work for empty board, got %v", s)
	}
}

func TestGenerateTwoTiles(t *testing.T) {
	g := newTestGenerator(t, 7, 0)
	b := board.New([]tile.Position{{X: 0}, {X: 4}})
	s, err := g.Generate(b)
	if err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	want := Stats{Steps: 1}
	if want != s.Stats {
		t.Errorf("wanted stats %v, got %v", want, s.Stats)
	}
	if want := []board.Match{{A: 0, B: 1}}; !reflect.DeepEqual(want, s.Removals) {
		t.Errorf("wanted removals %v, got %v", want, s.Removals)
	}
	t0, _ := b.Tile(0)
	t1, _ := b.Tile(1)
	switch {
	case !t0.Visible, !t1.Visible:
		t.Errorf("wanted both tiles visible, got %v", b.Tiles())
	case !t0.Matches(t1):
		t.Errorf("wanted tiles to match, got %v", b.Tiles())
	case t0.ID%2 != 0, t1.ID != t0.ID+1:
		t.Errorf("wanted sibling ids, got %v and %v", t0.ID, t1.ID)
	}
	checkSolution(t, b, s)
}

func TestGenerateSolvable(t *testing.T) {
	generateTests := []struct {
		positions []tile.Position
	}{
		{ // covering tile
			positions: []tile.Position{
				{X: 2, Y: 2, Z: 0},
				{X: 4, Y: 2, Z: 0},
				{X: 3, Y: 2, Z: 1},
				{X: 10, Y: 2, Z: 0},
			},
		},
		{
			positions: rowPositions(3, 4, true),
		},
		{ // larger than a standard set
			positions: rowPositions(10, 16, false),
		},
	}
	for i, test := range generateTests {
		g := newTestGenerator(t, int64(i), 0)
		b := board.New(test.positions)
		s, err := g.Generate(b)
		if err != nil {
			t.Errorf("Test %v: unwanted error: %v", i, err)
			continue
		}
		if want, got := b.Len(), b.NumVisible(); want != got {
			t.Errorf("Test %v: wanted all %v tiles visible, got %v", i, want, got)
		}
		for j, tl := range b.Tiles() {
			if grp := int(tl.ID.Group()); grp < 0 || grp >= tile.NumGroups {
				t.Errorf("Test %v: tile %v has group %v outside the standard set", i, j, grp)
			}
		}
		checkSolution(t, b, s)
	}
}

func TestGenerateUnsolvable(t *testing.T) {
	generateUnsolvableTests := [][]tile.Position{
		{ // stacked tiles
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		{ // tower
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 0, Y: 0, Z: 2},
			{X: 0, Y: 0, Z: 3},
		},
		{ // tower next to a single tile
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 0, Y: 0, Z: 2},
			{X: 10, Y: 0, Z: 0},
		},
	}
	for i, positions := range generateUnsolvableTests {
		g := newTestGenerator(t, 3, 0)
		b := board.New(positions)
		want := b.Tiles()
		s, err := g.Generate(b)
		switch {
		case !errors.Is(err, ErrUnsolvable):
			t.Errorf("Test %v: wanted ErrUnsolvable, got %v", i, err)
		case s != nil:
			t.Errorf("Test %v: wanted no solution, got %v", i, s)
		case !reflect.DeepEqual(want, b.Tiles()):
			t.Errorf("Test %v: board not restored:\nwanted %v\ngot    %v", i, want, b.Tiles())
		}
	}
}

func TestGenerateSearchLimit(t *testing.T) {
	g := newTestGenerator(t, 3, 1)
	b := board.New([]tile.Position{{X: 0}, {X: 4}, {X: 8}, {X: 12}})
	want := b.Tiles()
	_, err := g.Generate(b)
	switch {
	case !errors.Is(err, ErrSearchLimit):
		t.Errorf("wanted ErrSearchLimit, got %v", err)
	case !reflect.DeepEqual(want, b.Tiles()):
		t.Errorf("board not restored:\nwanted %v\ngot    %v", want, b.Tiles())
	}
}

func TestGenerateSeeds(t *testing.T) {
	positions := rowPositions(4, 8, false)
	ids := func(seed int64) []tile.ID {
		g := newTestGenerator(t, seed, 0)
		b := board.New(positions)
		if _, err := g.Generate(b); err != nil {
			t.Fatalf("seed %v: unwanted error: %v", seed, err)
		}
		tiles := b.Tiles()
		ids := make([]tile.ID, len(tiles))
		for i, tl := range tiles {
			ids[i] = tl.ID
		}
		return ids
	}
	a1, a2, b := ids(5), ids(5), ids(6)
	if !reflect.DeepEqual(a1, a2) {
		t.Errorf("wanted same ids for same seed:\n%v\n%v", a1, a2)
	}
	if reflect.DeepEqual(a1, b) {
		t.Errorf("wanted different ids for different seeds, got %v", a1)
	}
}

func TestPairValues(t *testing.T) {
	g := newTestGenerator(t, 9, 0)
	n := 2*numPairValues + 5
	pairs := g.pairValues(n)
	if len(pairs) != n {
		t.Fatalf("wanted %v pair values, got %v", n, len(pairs))
	}
	for c := 0; c < 2; c++ {
		cycle := append([]int{}, pairs[c*numPairValues:(c+1)*numPairValues]...)
		sort.Ints(cycle)
		for i, p := range cycle {
			if i != p {
				t.Errorf("cycle %v is not a permutation of all pair values: %v", c, cycle)
				break
			}
		}
	}
	seen := make(map[int]bool)
	for _, p := range pairs[2*numPairValues:] {
		if seen[p] {
			t.Errorf("repeated pair value %v in partial cycle", p)
		}
		seen[p] = true
	}
}
