package agent

import (
	"context"
	"fmt"
	"time"

	"domineering/experiments/metrics"
	"domineering/game"
	"domineering/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, board *game.Board, player game.Player) (game.Coordinate, metrics.SearchMetric, error) {
	start := time.Now()
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Coordinate{}, metrics.SearchMetric{}, fmt.Errorf("%s on %dx%d board: %w", player, board.Width(), board.Height(), searcher.ErrNoMove)
	}
	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Duration: time.Since(start)}, nil
}
