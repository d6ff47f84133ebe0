package game

import "fmt"

// Coordinate addresses a cell by column and row. As a move it names the upper-left cell
// of the placed domino.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c Coordinate) Scale(k int) Coordinate {
	return Coordinate{X: c.X * k, Y: c.Y * k}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Rect is an axis-aligned region bounded by an upper-left and a lower-right corner,
// both inclusive.
type Rect struct {
	UL Coordinate
	LR Coordinate
}

func NewRect(x1, y1, x2, y2 int) Rect {
	return Rect{UL: Coordinate{X: x1, Y: y1}, LR: Coordinate{X: x2, Y: y2}}
}

func (r Rect) Contains(c Coordinate) bool {
	return c.X >= r.UL.X && c.X <= r.LR.X && c.Y >= r.UL.Y && c.Y <= r.LR.Y
}

// Cells lists the covered cells in column-major order.
func (r Rect) Cells() []Coordinate {
	cells := make([]Coordinate, 0, (r.LR.X-r.UL.X+1)*(r.LR.Y-r.UL.Y+1))
	for x := r.UL.X; x <= r.LR.X; x++ {
		for y := r.UL.Y; y <= r.LR.Y; y++ {
			cells = append(cells, Coordinate{X: x, Y: y})
		}
	}
	return cells
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s-%s]", r.UL, r.LR)
}
