package agent

import (
	"context"

	"domineering/experiments/metrics"
	"domineering/game"
	"domineering/searcher"
)

type searchAgent struct {
	search *searcher.AlphaBeta
}

// NewSearchAgent returns an agent playing the moves found by alpha-beta search.
func NewSearchAgent(search *searcher.AlphaBeta) Agent {
	return searchAgent{search: search}
}

func (a searchAgent) FindMove(ctx context.Context, board *game.Board, player game.Player) (game.Coordinate, metrics.SearchMetric, error) {
	return a.search.PlayMove(ctx, board, player)
}
