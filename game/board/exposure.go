package board

// IsExposed determines if the tile at the index can currently be removed.
// Removed tiles are never exposed.  A visible tile is exposed when no visible tile on the layer above
// is within one unit of it and it is not blocked on both its left and right sides in its layer.
func (b Board) IsExposed(i int) bool {
	if !b.has(i) || !b.tiles[i].Visible {
		return false
	}
	p := b.tiles[i].Position
	var blockedLeft, blockedRight bool
	for j, t := range b.tiles {
		if j == i || !t.Visible {
			continue
		}
		q := t.Position
		if q.Y < p.Y-1 || q.Y > p.Y+1 {
			continue
		}
		switch {
		case q.Z == p.Z+1:
			if q.X >= p.X-1 && q.X <= p.X+1 {
				return false // covered
			}
		case q.Z == p.Z:
			switch q.X {
			case p.X - 2:
				blockedLeft = true
			case p.X + 2:
				blockedRight = true
			}
		}
	}
	return !(blockedLeft && blockedRight)
}

// exposed reports which tiles are currently exposed, by index.
func (b Board) exposed() []bool {
	exposed := make([]bool, len(b.tiles))
	for i := range b.tiles {
		exposed[i] = b.IsExposed(i)
	}
	return exposed
}
