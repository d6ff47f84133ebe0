package searcher

import (
	"fmt"
	"strconv"
	"strings"

	"domineering/layout"
)

// Weights scale the features of a pair of layouts, root player's feature first:
// lower bound, upper bound, safe areas, vulnerable areas, protective areas, unavailable
// squares and unplayable squares.
type Weights [14]float64

// DefaultWeights were tuned by self-play.
var DefaultWeights = Weights{
	6.141892, 3.323705,
	1.5304062, 2.5675583,
	10.425653, -15.922241,
	2.0729046, -3.497818,
	-3.3107972, -11.012934,
	-0.85778457, 5.7875576,
	0.80485183, 1.9488539,
}

// Score is positive when the position favours root. Both layouts must carry bounds.
func (w Weights) Score(root, opponent *layout.Layout) float64 {
	features := [14]int{
		root.LowerBound, opponent.LowerBound,
		root.UpperBound, opponent.UpperBound,
		len(root.Safe), len(opponent.Safe),
		root.Vulnerable(), opponent.Vulnerable(),
		len(root.Protective), len(opponent.Protective),
		root.Unavailable, opponent.Unavailable,
		root.Unplayable, opponent.Unplayable,
	}
	score := 0.0
	for i, f := range features {
		score += w[i] * float64(f)
	}
	return score
}

// ParseWeights reads 14 comma separated numbers.
func ParseWeights(s string) (Weights, error) {
	var w Weights
	fields := strings.Split(s, ",")
	if len(fields) != len(w) {
		return w, fmt.Errorf("want %d weights, got %d", len(w), len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return w, fmt.Errorf("weight %d: %w", i, err)
		}
		w[i] = v
	}
	return w, nil
}

func (w Weights) String() string {
	parts := make([]string, len(w))
	for i, v := range w {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
