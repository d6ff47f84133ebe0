package game

import "errors"

// Player identifies one of the two sides. Vertical always moves first in a game.
type Player int

const (
	Vertical Player = iota
	Horizontal
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

func (p Player) Other() Player {
	if p == Vertical {
		return Horizontal
	}
	return Vertical
}

// Step is the unit vector from the first to the second cell of the player's domino.
func (p Player) Step() Coordinate {
	if p == Vertical {
		return Coordinate{X: 0, Y: 1}
	}
	return Coordinate{X: 1, Y: 0}
}

// Across is the unit vector perpendicular to Step.
func (p Player) Across() Coordinate {
	if p == Vertical {
		return Coordinate{X: 1, Y: 0}
	}
	return Coordinate{X: 0, Y: 1}
}

// Domino returns the two cells covered by the player's domino placed at c.
func (p Player) Domino(c Coordinate) Rect {
	end := c.Add(p.Step())
	return NewRect(c.X, c.Y, end.X, end.Y)
}

// Cell returns the owned cell state the player leaves on the board.
func (p Player) Cell() Cell {
	if p == Vertical {
		return CellVertical
	}
	return CellHorizontal
}

func (p Player) String() string {
	if p == Vertical {
		return "V"
	}
	return "H"
}

// ParsePlayer accepts "V" or "H".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "V", "v":
		return Vertical, nil
	case "H", "h":
		return Horizontal, nil
	}
	return Vertical, errors.New("unknown player " + s)
}

// Cell is the state of one board square. CellOccupied is the anonymized state used by
// the search, which only cares whether a square is still free.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellVertical
	CellHorizontal
	CellOccupied
)

func (c Cell) rune() rune {
	switch c {
	case CellVertical:
		return 'V'
	case CellHorizontal:
		return 'H'
	case CellOccupied:
		return '#'
	}
	return '.'
}
