package engine

import (
	"context"
	"errors"
	"testing"

	"domineering/experiments/metrics"
	"domineering/game"
	"domineering/searcher"
	"domineering/searcher/agent"

	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	moves []game.Coordinate
	err   error
}

func (a *scriptedAgent) FindMove(ctx context.Context, board *game.Board, player game.Player) (game.Coordinate, metrics.SearchMetric, error) {
	if a.err != nil {
		return game.Coordinate{}, metrics.SearchMetric{}, a.err
	}
	move := a.moves[0]
	a.moves = a.moves[1:]
	return move, metrics.SearchMetric{Depth: 1}, nil
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("player without a placement loses", func(t *testing.T) {
		e := LocalEngine(2,
			&scriptedAgent{moves: []game.Coordinate{{X: 0, Y: 0}}},
			&scriptedAgent{},
		)

		winner, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, game.Vertical, winner, "Horizontal cannot play next to a vertical domino on 2x2")
		require.Equal(t, "V", gameMetric.Winner)
		require.False(t, gameMetric.Forfeit)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Equal(t, []metrics.MoveMetric{
			{Step: 1, Player: "V", X: 0, Y: 0, SearchMetric: metrics.SearchMetric{Depth: 1}},
		}, moveMetrics)
		require.Equal(t, e.ID, gameMetric.ID)
	})

	t.Run("illegal move forfeits", func(t *testing.T) {
		e := LocalEngine(3,
			&scriptedAgent{moves: []game.Coordinate{{X: 0, Y: 0}}},
			&scriptedAgent{moves: []game.Coordinate{{X: 0, Y: 1}}},
		)

		winner, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, game.Vertical, winner, "Horizontal overlaps the vertical domino")
		require.True(t, gameMetric.Forfeit)
		require.Equal(t, 1, gameMetric.TotalMoves, "The illegal move should not count")
		require.Len(t, moveMetrics, 2, "The illegal move should still be recorded")
	})

	t.Run("agent failure aborts", func(t *testing.T) {
		boom := errors.New("boom")
		e := LocalEngine(3, &scriptedAgent{err: boom}, &scriptedAgent{})

		_, _, _, err := e.Run(context.Background())

		require.ErrorIs(t, err, boom)
	})

	t.Run("search against random", func(t *testing.T) {
		e := LocalEngine(6,
			agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(2), searcher.WithSeed(1))),
			agent.NewRandomAgent(1),
		)

		winner, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.False(t, gameMetric.Forfeit, "Both agents should only play legal moves")
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, winner.Other(), e.State.ToMove, "Loser should be the side left to move")
		require.False(t, e.State.Board.CanPlay(e.State.ToMove))
	})
}

func TestLocalEngineCancelled(t *testing.T) {
	e := LocalEngine(4, agent.NewRandomAgent(1), agent.NewRandomAgent(2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, moveMetrics, err := e.Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, moveMetrics)
}
