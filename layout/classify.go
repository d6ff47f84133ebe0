package layout

import "domineering/game"

type mark uint8

const (
	markEmpty mark = iota
	markOccupied
	markSafe
	markProtective
	markVuln
)

// grid is the private working copy one orientation marks its claimed squares on.
type grid struct {
	width  int
	height int
	marks  []mark
}

func newGrid(b *game.Board) *grid {
	g := &grid{width: b.Width(), height: b.Height(), marks: make([]mark, b.Width()*b.Height())}
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if b.At(x, y) != game.CellEmpty {
				g.marks[x*g.height+y] = markOccupied
			}
		}
	}
	return g
}

func (g *grid) in(c game.Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *grid) at(c game.Coordinate) mark {
	return g.marks[c.X*g.height+c.Y]
}

func (g *grid) is(c game.Coordinate, m mark) bool {
	return g.in(c) && g.at(c) == m
}

// closed reports whether c is off the board or occupied by a tile.
func (g *grid) closed(c game.Coordinate) bool {
	return !g.in(c) || g.at(c) == markOccupied
}

func (g *grid) claimed(c game.Coordinate) bool {
	if !g.in(c) {
		return false
	}
	m := g.at(c)
	return m == markSafe || m == markProtective || m == markVuln
}

func (g *grid) mark(r game.Rect, m mark) {
	for _, c := range r.Cells() {
		g.marks[c.X*g.height+c.Y] = m
	}
}

// flankClosed reports whether the pair o, o+along is bounded on the side given by the
// offset: the board edge, or tiles on both squares.
func (g *grid) flankClosed(o, along, side game.Coordinate) bool {
	s := o.Add(side)
	if !g.in(s) {
		return true
	}
	return g.at(s) == markOccupied && g.at(s.Add(along)) == markOccupied
}

// Classify scans the board once per orientation and returns both layouts without
// bounds. The board is not modified.
func Classify(b *game.Board) *Analysis {
	a := &Analysis{}
	vertical, vg := classify(b, game.Vertical)
	horizontal, hg := classify(b, game.Horizontal)
	a.Vertical, a.Horizontal = vertical, horizontal

	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			if b.At(x, y) != game.CellEmpty {
				continue
			}
			c := game.Coordinate{X: x, Y: y}
			vertical.StartAvailable++
			horizontal.StartAvailable++

			// a square the opponent left unclaimed is lost when it has no free
			// neighbour along the player's own axis
			if hg.at(c) == markEmpty && isolated(b, c, game.Vertical) {
				vertical.Unavailable++
			}
			if vg.at(c) == markEmpty && isolated(b, c, game.Horizontal) {
				horizontal.Unavailable++
			}
		}
	}
	return a
}

func isolated(b *game.Board, c game.Coordinate, p game.Player) bool {
	step := p.Step()
	return !b.IsEmpty(c.Sub(step)) && !b.IsEmpty(c.Add(step))
}

func classify(b *game.Board, p game.Player) (*Layout, *grid) {
	l := newLayout(p)
	g := newGrid(b)
	along, across := p.Step(), p.Across()

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			o := game.Coordinate{X: x, Y: y}
			if !g.in(o.Add(along)) {
				continue
			}
			if g.isSafe(o, along, across) {
				r := Region{Kind: Safe, Rect: p.Domino(o)}
				l.Safe = append(l.Safe, r)
				g.mark(r.Rect, markSafe)
			}
			if g.isProtective(o, along, across, l.Protective) {
				r := Region{
					Kind: Protective,
					Rect: game.NewRect(x, y, x+1, y+1),
					Spot: protectSpot(b, o, p),
				}
				l.Protective = append(l.Protective, r)
				g.mark(r.Rect, markProtective)
			}
		}
	}

	for i := range l.Safe {
		o := l.Safe[i].UL
		if q := o.Add(along.Scale(2)); g.in(q) {
			if w := g.optionWeight(q, across); w > 0 {
				l.Options = append(l.Options, Region{Kind: Option, Rect: game.NewRect(q.X, q.Y, q.X, q.Y), Weight: w})
				lower := o.Add(along)
				l.Safe[i].Lower = &lower
			}
		}
		if q := o.Sub(along); g.in(q) {
			if w := g.optionWeight(q, across); w > 0 {
				l.Options = append(l.Options, Region{Kind: Option, Rect: game.NewRect(q.X, q.Y, q.X, q.Y), Weight: w})
				l.Safe[i].Higher = &q
			}
		}
	}

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			o := game.Coordinate{X: x, Y: y}
			if !g.in(o.Add(along)) {
				continue
			}
			t := g.vulnType(o, along, across)
			if t == 0 {
				continue
			}
			r := Region{Kind: Vulnerable, Rect: p.Domino(o), Weight: t}
			switch t {
			case 1:
				l.VulnOne = append(l.VulnOne, r)
			case 2:
				l.VulnTwo = append(l.VulnTwo, r)
			case 3:
				// end-capped areas are counted with their base type as well
				l.VulnOne = append(l.VulnOne, r)
				l.VulnProtectedOne = append(l.VulnProtectedOne, r)
			case 4:
				l.VulnTwo = append(l.VulnTwo, r)
				l.VulnProtectedTwo = append(l.VulnProtectedTwo, r)
			}
			g.mark(r.Rect, markVuln)
		}
	}
	return l, g
}

func (g *grid) isSafe(o, along, across game.Coordinate) bool {
	return g.is(o, markEmpty) && g.is(o.Add(along), markEmpty) &&
		g.flankClosed(o, along, across.Scale(-1)) &&
		g.flankClosed(o, along, across)
}

// isProtective tests the 2x2 block at o. One short side has to be closed and the block
// must not be adjacent to an accepted protective area, since a single opposing tile could
// then break both.
func (g *grid) isProtective(o, along, across game.Coordinate, accepted []Region) bool {
	block := []game.Coordinate{
		o,
		o.Add(game.Coordinate{X: 1}),
		o.Add(game.Coordinate{Y: 1}),
		o.Add(game.Coordinate{X: 1, Y: 1}),
	}
	for _, c := range block {
		if !g.is(c, markEmpty) {
			return false
		}
	}
	if !adjacentFree(o, along, across, accepted) {
		return false
	}
	return g.flankClosed(o, along, across.Scale(-1)) || g.flankClosed(o, along, across.Scale(2))
}

func dot(a, b game.Coordinate) int {
	return a.X*b.X + a.Y*b.Y
}

func adjacentFree(o, along, across game.Coordinate, accepted []Region) bool {
	for _, r := range accepted {
		if dot(r.UL, along) >= dot(o, along)-1 && dot(r.LR, along) <= dot(o, along)+2 {
			if dot(o, across)-1 == dot(r.LR, across) || dot(o, across)+2 == dot(r.UL, across) {
				return false
			}
		}
	}
	return true
}

// protectSpot picks the half of the block at o lying against the open side. It looks at
// the caller's board, not at the marks.
func protectSpot(b *game.Board, o game.Coordinate, p game.Player) game.Rect {
	along, across := p.Step(), p.Across()
	far := o.Add(across.Scale(2))
	if !b.InBounds(far.X, far.Y) || (!b.IsEmpty(far) && !b.IsEmpty(far.Add(along))) {
		return p.Domino(o)
	}
	return p.Domino(o.Add(across))
}

// optionWeight returns 0 when q is not an option square. Otherwise the weight is one
// plus one for every side on which the opponent would be left a single dead square.
func (g *grid) optionWeight(q, across game.Coordinate) int {
	lo, hi := q.Sub(across), q.Add(across)
	if !g.is(q, markEmpty) || (!g.is(lo, markEmpty) && !g.is(hi, markEmpty)) {
		return 0
	}
	weight := 1
	if g.closed(q.Sub(across.Scale(2))) && g.is(lo, markEmpty) {
		weight++
	}
	if g.closed(q.Add(across.Scale(2))) && g.is(hi, markEmpty) {
		weight++
	}
	return weight
}

// vulnType returns 0 unless o, o+along is a free pair. Otherwise it is 2 when any of the
// four flank squares is already claimed and 1 when none is, both orientations alike,
// plus 2 when either end is boxed in across.
func (g *grid) vulnType(o, along, across game.Coordinate) int {
	end := o.Add(along)
	if !g.is(o, markEmpty) || !g.is(end, markEmpty) {
		return 0
	}
	t := 1
	for _, c := range []game.Coordinate{o.Sub(across), o.Add(across), end.Sub(across), end.Add(across)} {
		if g.claimed(c) {
			t = 2
			break
		}
	}
	if (g.closed(o.Sub(across)) && g.closed(o.Add(across))) ||
		(g.closed(end.Sub(across)) && g.closed(end.Add(across))) {
		t += 2
	}
	return t
}
