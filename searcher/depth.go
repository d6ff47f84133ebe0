package searcher

import "math"

// DepthCurve maps the number of occupied squares to a search depth along a logistic
// curve: shallow while the board is open, deep once few placements remain.
type DepthCurve struct {
	Max      float64
	Base     float64
	Midpoint float64
}

var DefaultDepthCurve = DepthCurve{Max: 20, Base: 1.035, Midpoint: 95}

func (c DepthCurve) Depth(occupied int) int {
	return int(c.Max/(1+math.Pow(c.Base, c.Midpoint-float64(occupied)))) + 1
}
