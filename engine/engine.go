package engine

import (
	"context"

	"domineering/experiments/metrics"
	"domineering/game"
)

type Engine interface {
	// Run plays a game till the side to move has no legal placement or returns an illegal one
	Run(ctx context.Context) (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
