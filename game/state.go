package game

import "fmt"

// State is a game in progress: the shared board, the side to move and the number of
// dominoes placed so far.
type State struct {
	Board  *Board
	ToMove Player
	Moves  int
}

// NewState returns an empty square board with Vertical to move.
func NewState(size int) *State {
	return &State{Board: NewSquareBoard(size), ToMove: Vertical}
}

func (s *State) Copy() *State {
	return &State{Board: s.Board.Clone(), ToMove: s.ToMove, Moves: s.Moves}
}

// Play places the side to move's domino at c and passes the turn.
func (s *State) Play(c Coordinate) error {
	if err := s.Board.Play(c, s.ToMove); err != nil {
		return fmt.Errorf("move %d: %w", s.Moves+1, err)
	}
	s.Moves++
	s.ToMove = s.ToMove.Other()
	return nil
}

// Winner reports the winner once the side to move has no legal placement left.
func (s *State) Winner() (Player, bool) {
	if s.Board.CanPlay(s.ToMove) {
		return s.ToMove, false
	}
	return s.ToMove.Other(), true
}
