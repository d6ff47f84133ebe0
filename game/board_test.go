package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("reading rows", func(t *testing.T) {
		b, err := ParseBoard(
			"V.H",
			"VHH",
		)
		require.NoError(t, err)
		require.Equal(t, 3, b.Width())
		require.Equal(t, 2, b.Height())
		require.Equal(t, CellVertical, b.At(0, 1))
		require.Equal(t, CellHorizontal, b.At(2, 0))
		require.Equal(t, CellEmpty, b.At(1, 0))
		require.Equal(t, []string{"V.H", "VHH"}, b.Rows(), "Rows should render in the parsed notation")
	})

	t.Run("rejecting ragged rows", func(t *testing.T) {
		_, err := ParseBoard("...", "..")
		require.Error(t, err)
	})

	t.Run("rejecting unknown cells", func(t *testing.T) {
		_, err := ParseBoard("..?")
		require.Error(t, err)
	})
}

func TestBoardPlay(t *testing.T) {
	t.Run("legal placements", func(t *testing.T) {
		b := NewSquareBoard(3)

		require.NoError(t, b.Play(Coordinate{X: 0, Y: 0}, Vertical))
		require.Equal(t, CellVertical, b.At(0, 0))
		require.Equal(t, CellVertical, b.At(0, 1))

		require.NoError(t, b.Play(Coordinate{X: 1, Y: 2}, Horizontal))
		require.Equal(t, CellHorizontal, b.At(1, 2))
		require.Equal(t, CellHorizontal, b.At(2, 2))
		require.Equal(t, 4, b.Occupied())
	})

	t.Run("overlapping placement", func(t *testing.T) {
		b := MustParseBoard(
			"V..",
			"V..",
			"...",
		)
		err := b.Play(Coordinate{X: 0, Y: 1}, Vertical)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("placement leaving the board", func(t *testing.T) {
		b := NewSquareBoard(3)
		require.ErrorIs(t, b.Play(Coordinate{X: 2, Y: 0}, Horizontal), ErrIllegalMove)
		require.ErrorIs(t, b.Play(Coordinate{X: 0, Y: 2}, Vertical), ErrIllegalMove)
		require.ErrorIs(t, b.Play(Coordinate{X: -1, Y: 0}, Vertical), ErrOutOfBounds)
	})

	t.Run("remove restores the board", func(t *testing.T) {
		b := NewSquareBoard(3)
		before := b.Clone()
		c := Coordinate{X: 1, Y: 1}

		b.Place(c, Horizontal, CellOccupied)
		require.NotEqual(t, before, b)
		b.Remove(c, Horizontal)
		require.Equal(t, before, b)
	})
}

func TestLegalityScan(t *testing.T) {
	t.Run("full board", func(t *testing.T) {
		b := MustParseBoard(
			"VVH",
			"VVH",
			"HHH",
		)
		require.False(t, b.CanPlay(Vertical))
		require.False(t, b.CanPlay(Horizontal))
		require.Empty(t, b.LegalMoves(Vertical))
		require.Empty(t, b.LegalMoves(Horizontal))
	})

	t.Run("single free column", func(t *testing.T) {
		b := MustParseBoard(
			"#.#",
			"#.#",
			"#.#",
		)
		require.True(t, b.CanPlay(Vertical))
		require.False(t, b.CanPlay(Horizontal))
		require.Equal(t, []Coordinate{{X: 1, Y: 0}, {X: 1, Y: 1}}, b.LegalMoves(Vertical))
	})
}

func TestAnonymizeAndKey(t *testing.T) {
	owned := MustParseBoard(
		"V.",
		"VH",
	)
	anonymous := MustParseBoard(
		"#.",
		"##",
	)

	require.Equal(t, anonymous, owned.Anonymize(), "Owners should collapse to occupied")
	require.Equal(t, anonymous.Key(), owned.Key(), "Keys should ignore who placed a tile")
	require.Equal(t, CellVertical, owned.At(0, 0), "Anonymize should leave the receiver unchanged")

	other := MustParseBoard(
		"..",
		"##",
	)
	require.NotEqual(t, anonymous.Key(), other.Key())
	require.NotEqual(t, NewBoard(2, 3).Key(), NewBoard(3, 2).Key(), "Keys should include the dimensions")
	require.NotEqual(t, NewBoard(257, 1).Key(), NewBoard(1, 257).Key(), "Dimensions above 255 should not collide")
	require.NotEqual(t, NewBoard(300, 2).Key(), NewBoard(44, 2).Key())
}

func TestStatePlay(t *testing.T) {
	s := NewState(2)

	_, over := s.Winner()
	require.False(t, over)

	require.NoError(t, s.Play(Coordinate{X: 0, Y: 0}))
	require.Equal(t, Horizontal, s.ToMove)
	require.Equal(t, 1, s.Moves)

	// the remaining column is vertical only
	winner, over := s.Winner()
	require.True(t, over, "Horizontal has no placement left")
	require.Equal(t, Vertical, winner)

	err := s.Play(Coordinate{X: 1, Y: 0})
	require.ErrorIs(t, err, ErrIllegalMove)
	require.Equal(t, 1, s.Moves, "A rejected move should not advance the game")
}
