package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"domineering/experiments/metrics"
	"domineering/game"
	"domineering/searcher"
)

type remoteAgent struct {
	url    string
	client *http.Client
}

// NewRemoteAgent returns an agent that asks the agent server at baseURL for its moves.
func NewRemoteAgent(baseURL string) Agent {
	return &remoteAgent{url: baseURL + "/findmove", client: &http.Client{}}
}

// FindMove posts the board to the server. Metrics are not transferred, only the round
// trip time is reported.
func (a *remoteAgent) FindMove(ctx context.Context, board *game.Board, player game.Player) (game.Coordinate, metrics.SearchMetric, error) {
	start := time.Now()
	body, err := json.Marshal(FindMoveRequest{Board: board.Rows(), Player: player.String()})
	if err != nil {
		return game.Coordinate{}, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return game.Coordinate{}, metrics.SearchMetric{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return game.Coordinate{}, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return game.Coordinate{}, metrics.SearchMetric{}, fmt.Errorf("remote %s: %w", player, searcher.ErrNoMove)
	}
	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.Coordinate{}, metrics.SearchMetric{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var move game.Coordinate
	if err := json.NewDecoder(resp.Body).Decode(&move); err != nil {
		return game.Coordinate{}, metrics.SearchMetric{}, fmt.Errorf("failed to decode move: %w", err)
	}
	return move, metrics.SearchMetric{Duration: time.Since(start)}, nil
}
