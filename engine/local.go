package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"domineering/experiments/metrics"
	"domineering/game"
	"domineering/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Local struct {
	ID     string
	State  *game.State
	Agents [2]agent.Agent // Indexed by game.Player
}

// LocalEngine sets up a game on an empty size×size board. vertical moves first.
func LocalEngine(size int, vertical, horizontal agent.Agent) *Local {
	if vertical == nil || horizontal == nil {
		panic("need an agent for each player")
	}
	return &Local{
		ID:     uuid.NewString(),
		State:  game.NewState(size),
		Agents: [2]agent.Agent{vertical, horizontal},
	}
}

// Run executes the game loop until a winner is found. An agent returning an illegal move
// forfeits the game. Cancellation and other agent errors abort it.
func (e *Local) Run(ctx context.Context) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{ID: e.ID, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s is starting", e.ID, e.State.ToMove)

	winner, over := e.State.Winner()
	for !over {
		mover := e.State.ToMove
		if err := ctx.Err(); err != nil {
			return mover, gameMetric, moveMetrics, fmt.Errorf("game %s stopped: %w", e.ID, err)
		}
		move, searchMetric, err := e.Agents[mover].FindMove(ctx, e.State.Board.Clone(), mover)
		if err != nil && !errors.Is(err, game.ErrIllegalMove) {
			return mover, gameMetric, moveMetrics, fmt.Errorf("game %s move %d: %w", e.ID, e.State.Moves+1, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.State.Moves + 1,
			Player:       mover.String(),
			X:            move.X,
			Y:            move.Y,
			SearchMetric: searchMetric,
		})

		if err == nil {
			err = e.State.Play(move)
		}
		if err != nil {
			log.Warn().Err(err).Msgf("game %s: %s forfeits", e.ID, mover)
			winner, over = mover.Other(), true
			gameMetric.Forfeit = true
			break
		}
		winner, over = e.State.Winner()
	}

	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Moves

	log.Info().Msgf("game %s: %s wins after %d moves", e.ID, winner, e.State.Moves)
	return winner, gameMetric, moveMetrics, nil
}
