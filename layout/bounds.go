package layout

import "domineering/game"

// Picker chooses an index in [0, n). *rand.Rand from golang.org/x/exp/rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Analyse classifies the board and estimates the bounds of both players.
func Analyse(b *game.Board, picker Picker) *Analysis {
	a := Classify(b)
	EstimateBounds(a, picker)
	return a
}

// EstimateBounds fills in the unplayable squares, the lower bounds and the upper bounds of
// both layouts, in that order. A layout with an odd number of protective areas loses one
// of them, chosen by picker, to two type-2 vulnerable areas.
func EstimateBounds(a *Analysis, picker Picker) {
	a.Vertical.Unplayable = unplayable(a.Horizontal)
	a.Horizontal.Unplayable = unplayable(a.Vertical)

	a.Vertical.LowerBound = lowerBound(a.Vertical, picker)
	a.Horizontal.LowerBound = lowerBound(a.Horizontal, picker)

	a.Vertical.UpperBound = upperBound(a.Vertical, a.Horizontal)
	a.Horizontal.UpperBound = upperBound(a.Horizontal, a.Vertical)
}

func lowerBound(l *Layout, picker Picker) int {
	if len(l.Protective)%2 != 0 {
		i := picker.Intn(len(l.Protective))
		spot, rest := l.Protective[i].halves(l.Player)
		l.Protective = append(l.Protective[:i:i], l.Protective[i+1:]...)
		l.VulnTwo = append(l.VulnTwo,
			Region{Kind: Vulnerable, Rect: spot, Weight: 2},
			Region{Kind: Vulnerable, Rect: rest, Weight: 2},
		)
	}

	extra := 0
	if len(l.VulnTwo)%3 != 0 && len(l.VulnOne)%2 != 0 {
		extra = 1
	}
	return len(l.Protective) + len(l.VulnTwo)/3 + len(l.VulnOne)/2 + len(l.Safe) + extra
}

// upperBound assumes the opponent plays its guaranteed moves first.
func upperBound(l, opponent *Layout) int {
	squares := l.StartAvailable - 2*opponent.LowerBound
	return (squares - l.Unavailable - l.Unplayable) / 2
}

// unplayable is computed from the opponent's layout. The case analysis is empirical and
// kept exactly as tuned.
func unplayable(opponent *Layout) int {
	var o1, o2, o3 int
	for _, o := range opponent.Options {
		switch o.Weight {
		case 1:
			o1++
		case 2:
			o2++
		case 3:
			o3++
		}
	}

	two, one := len(opponent.VulnTwo), len(opponent.VulnOne)
	protectedTwo, protectedOne := len(opponent.VulnProtectedTwo), len(opponent.VulnProtectedOne)
	twoLeft, oneLeft := two%3 != 0, one%2 != 0

	first := 0
	if twoLeft && oneLeft && (protectedTwo > 0 || protectedOne > 0) {
		first = -1
	}

	second := 0
	if twoLeft != oneLeft {
		switch {
		case o3%2 == 1:
			second = 3
		case o2%2 == 1:
			second = 2
		case o1%2 == 1:
			second = 1
		}
	}

	return (protectedTwo - (two/3 - (two-protectedTwo)/3)) +
		(protectedOne - (one/2 - (one-protectedOne)/2)) +
		3*(o3/2) + 2*(o2/2) + o1/2 + first + second
}
