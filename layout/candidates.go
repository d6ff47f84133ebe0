package layout

import "domineering/game"

// Candidates lists moves for the layout's player in priority order: protect spots,
// type-2 then type-1 vulnerable areas, and the option placements of safe areas. The
// exhaustive form also lists the other half of every protective area and the safe areas
// themselves, so it is never empty while the player has a legal move.
func Candidates(l *Layout, exhaustive bool) []game.Coordinate {
	moves := make([]game.Coordinate, 0, 2*len(l.Protective)+l.Vulnerable()+3*len(l.Safe))
	for _, r := range l.Protective {
		moves = append(moves, r.Spot.UL)
	}
	for _, r := range l.VulnTwo {
		moves = append(moves, r.UL)
	}
	for _, r := range l.VulnOne {
		moves = append(moves, r.UL)
	}
	if exhaustive {
		for _, r := range l.Protective {
			_, rest := r.halves(l.Player)
			moves = append(moves, rest.UL)
		}
	}
	for _, r := range l.Safe {
		if r.Lower != nil {
			moves = append(moves, *r.Lower)
		}
		if r.Higher != nil {
			moves = append(moves, *r.Higher)
		}
		if exhaustive {
			moves = append(moves, r.UL)
		}
	}
	return moves
}
