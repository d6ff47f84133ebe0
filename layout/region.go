// Package layout partitions the free squares of a Domineering board into regions with
// known game-theoretic properties and derives move-count bounds from them.
//
// The region model and the bounds follow N. Bullock, "Domineering: Solving Large
// Combinatorial Search Spaces" (theorem 3.5.1).
package layout

import "domineering/game"

type Kind uint8

const (
	// Safe is a domino-sized area the owner can always claim.
	Safe Kind = iota
	// Protective is a 2x2 block that becomes a Safe area once its spot is claimed.
	Protective
	// Vulnerable is any other free domino-sized pair.
	Vulnerable
	// Option is a single square next to a Safe area.
	Option
)

func (k Kind) String() string {
	switch k {
	case Safe:
		return "safe"
	case Protective:
		return "protective"
	case Vulnerable:
		return "vulnerable"
	case Option:
		return "option"
	}
	return "unknown"
}

// Region is one classified area. Which of the optional fields are meaningful depends on
// Kind.
type Region struct {
	Kind Kind
	game.Rect
	// Spot is the half of a Protective area to claim first.
	Spot game.Rect
	// Weight is the type (1-4) of a Vulnerable area or the weight (1-3) of an Option area.
	Weight int
	// Lower and Higher are the option placements extending a Safe area past its far and
	// near end. Nil when the corresponding Option area does not exist.
	Lower  *game.Coordinate
	Higher *game.Coordinate
}

// halves splits a Protective area into its protect spot and the remaining half.
func (r Region) halves(p game.Player) (spot, rest game.Rect) {
	low := p.Domino(r.UL)
	high := p.Domino(r.UL.Add(p.Across()))
	if r.Spot == low {
		return low, high
	}
	return r.Spot, low
}

// Layout holds every region of one orientation together with the derived counts.
type Layout struct {
	Player game.Player

	Safe             []Region
	Protective       []Region
	VulnOne          []Region
	VulnTwo          []Region
	VulnProtectedOne []Region
	VulnProtectedTwo []Region
	Options          []Region

	LowerBound int
	UpperBound int
	// Unavailable counts free squares the player can never cover and the opponent has
	// not claimed.
	Unavailable int
	// Unplayable discounts squares the opponent can still take away through its option
	// and vulnerable-remainder moves.
	Unplayable     int
	StartAvailable int
}

func newLayout(p game.Player) *Layout {
	return &Layout{
		Player:           p,
		Safe:             make([]Region, 0, 15),
		Protective:       make([]Region, 0, 20),
		VulnOne:          make([]Region, 0, 15),
		VulnTwo:          make([]Region, 0, 50),
		VulnProtectedOne: make([]Region, 0, 10),
		VulnProtectedTwo: make([]Region, 0, 10),
		Options:          make([]Region, 0, 15),
	}
}

// Vulnerable is the number of vulnerable areas of both types.
func (l *Layout) Vulnerable() int {
	return len(l.VulnOne) + len(l.VulnTwo)
}

// Regions returns the Safe, Protective and Vulnerable areas, which never share a square.
func (l *Layout) Regions() []Region {
	regions := make([]Region, 0, len(l.Safe)+len(l.Protective)+l.Vulnerable())
	regions = append(regions, l.Safe...)
	regions = append(regions, l.Protective...)
	regions = append(regions, l.VulnTwo...)
	regions = append(regions, l.VulnOne...)
	return regions
}

// Analysis is the pair of layouts computed for one board.
type Analysis struct {
	Vertical   *Layout
	Horizontal *Layout
}

func (a *Analysis) Layout(p game.Player) *Layout {
	if p == game.Vertical {
		return a.Vertical
	}
	return a.Horizontal
}
