package agent

import (
	"context"

	"domineering/experiments/metrics"
	"domineering/game"
)

type Agent interface {
	// FindMove returns the move for player on board and search metrics (if collected).
	// The board must not be modified.
	FindMove(ctx context.Context, board *game.Board, player game.Player) (game.Coordinate, metrics.SearchMetric, error)
}
