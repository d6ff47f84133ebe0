package game

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Board is a width×height grid of cells addressed by (x, y) = (column, row).
type Board struct {
	width  int
	height int
	cells  []Cell
}

func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}
	return &Board{width: width, height: height, cells: make([]Cell, width*height)}
}

func NewSquareBoard(size int) *Board {
	return NewBoard(size, size)
}

// ParseBoard builds a board from rows of text, one string per row: '.' is empty, 'V' and
// 'H' are owned squares and '#' is an anonymous occupied square.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty board")
	}
	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), b.width)
		}
		for x, r := range row {
			switch r {
			case '.':
			case 'V':
				b.Set(x, y, CellVertical)
			case 'H':
				b.Set(x, y, CellHorizontal)
			case '#', 'X':
				b.Set(x, y, CellOccupied)
			default:
				return nil, fmt.Errorf("unknown cell %q at (%d,%d)", r, x, y)
			}
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed layouts; it panics on malformed input.
func MustParseBoard(rows ...string) *Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) At(x, y int) Cell {
	return b.cells[x*b.height+y]
}

func (b *Board) Set(x, y int, c Cell) {
	b.cells[x*b.height+y] = c
}

func (b *Board) IsEmpty(c Coordinate) bool {
	return b.InBounds(c.X, c.Y) && b.At(c.X, c.Y) == CellEmpty
}

func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

// Anonymize returns a copy in which every owned square is CellOccupied.
func (b *Board) Anonymize() *Board {
	a := b.Clone()
	for i, c := range a.cells {
		if c != CellEmpty {
			a.cells[i] = CellOccupied
		}
	}
	return a
}

// Occupied counts the squares that are not empty.
func (b *Board) Occupied() int {
	n := 0
	for _, c := range b.cells {
		if c != CellEmpty {
			n++
		}
	}
	return n
}

// Key is a canonical encoding of the occupancy pattern: two boards with the same
// dimensions share a key exactly when the same squares are free.
func (b *Board) Key() string {
	packed := binary.AppendUvarint(nil, uint64(b.width))
	packed = binary.AppendUvarint(packed, uint64(b.height))
	header := len(packed)
	packed = append(packed, make([]byte, (len(b.cells)+7)/8)...)
	for i, c := range b.cells {
		if c != CellEmpty {
			packed[header+i/8] |= 1 << (i % 8)
		}
	}
	return string(packed)
}

// Legal reports whether p may place a domino at c.
func (b *Board) Legal(c Coordinate, p Player) bool {
	return b.IsEmpty(c) && b.IsEmpty(c.Add(p.Step()))
}

// Place covers both squares of p's domino at c without any legality check.
func (b *Board) Place(c Coordinate, p Player, cell Cell) {
	end := c.Add(p.Step())
	b.Set(c.X, c.Y, cell)
	b.Set(end.X, end.Y, cell)
}

// Remove clears both squares of p's domino at c.
func (b *Board) Remove(c Coordinate, p Player) {
	b.Place(c, p, CellEmpty)
}

// Play places p's domino at c after checking that the placement is legal.
func (b *Board) Play(c Coordinate, p Player) error {
	if !b.InBounds(c.X, c.Y) {
		return fmt.Errorf("%s plays %s: %w", p, c, ErrOutOfBounds)
	}
	if !b.Legal(c, p) {
		return fmt.Errorf("%s plays %s: %w", p, c, ErrIllegalMove)
	}
	b.Place(c, p, p.Cell())
	return nil
}

// CanPlay reports whether p has at least one legal placement.
func (b *Board) CanPlay(p Player) bool {
	step := p.Step()
	for x := 0; x+step.X < b.width; x++ {
		for y := 0; y+step.Y < b.height; y++ {
			if b.At(x, y) == CellEmpty && b.At(x+step.X, y+step.Y) == CellEmpty {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every legal placement for p in raster order.
func (b *Board) LegalMoves(p Player) []Coordinate {
	step := p.Step()
	var moves []Coordinate
	for x := 0; x+step.X < b.width; x++ {
		for y := 0; y+step.Y < b.height; y++ {
			if b.At(x, y) == CellEmpty && b.At(x+step.X, y+step.Y) == CellEmpty {
				moves = append(moves, Coordinate{X: x, Y: y})
			}
		}
	}
	return moves
}

// Rows renders the board in the ParseBoard notation.
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		var sb strings.Builder
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.At(x, y).rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
