package searcher

import "domineering/game"

// Opening returns a fixed placement for the first moves of a game. Vertical takes the
// top of the second column from the right, else the bottom of the second column;
// Horizontal takes the second row from the bottom at the right edge, else the second row
// at the left edge. ok is false when neither placement is free.
func Opening(b *game.Board, p game.Player) (move game.Coordinate, ok bool) {
	w, h := b.Width(), b.Height()
	if w < 2 || h < 2 {
		return game.Coordinate{}, false
	}

	var book []game.Coordinate
	if p == game.Vertical {
		book = []game.Coordinate{{X: w - 2, Y: 0}, {X: 1, Y: h - 2}}
	} else {
		book = []game.Coordinate{{X: w - 2, Y: h - 2}, {X: 0, Y: 1}}
	}
	for _, c := range book {
		if b.Legal(c, p) {
			return c, true
		}
	}
	return game.Coordinate{}, false
}
