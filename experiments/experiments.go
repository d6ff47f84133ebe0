package experiments

import (
	"context"
	"fmt"
	"sync"

	"domineering/engine"
	"domineering/experiments/metrics"
	"domineering/meta"
	"domineering/searcher"
	"domineering/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Experiment plays every matchup Games times. The first config of a matchup plays
// Vertical.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int // Per match up
	Size     int // Board side length
	Parallel int // Games played at once
}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1, Cache: true, Openings: true, Seed: 1},
	{ID: 2, Depth: 2, Cache: true, Openings: true, Seed: 2},
	{ID: 3, Depth: 3, Cache: true, Openings: true, Seed: 3},
	{ID: 4, Cache: true, Openings: true, Seed: 4}, // Depth curve
}

// DepthExperiment pairs each fixed depth against the depth curve, from both sides.
func DepthExperiment() Experiment {
	curve := depthConfigs[len(depthConfigs)-1]
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs[:len(depthConfigs)-1] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, curve}, [2]metrics.AgentConfig{curve, config})
	}
	return Experiment{Name: "depth", Configs: depthConfigs, MatchUps: matchUps}
}

// CacheExperiment measures the node savings of the position cache under a time budget.
func CacheExperiment() Experiment {
	configs := []metrics.AgentConfig{
		{ID: 1, Duration: meta.TimeBudget, Cache: false, Openings: true, Seed: 1},
		{ID: 2, Duration: meta.TimeBudget, Cache: true, Openings: true, Seed: 2},
	}
	matchUps := [][2]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[1], configs[0]},
	}
	return Experiment{Name: "cache", Configs: configs, MatchUps: matchUps}
}

// BaselineExperiment plays the default search against random play.
func BaselineExperiment() Experiment {
	configs := []metrics.AgentConfig{
		{ID: 0, Random: true, Seed: 1},
		{ID: 1, Cache: true, Openings: true, Seed: 2},
	}
	matchUps := [][2]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[1], configs[0]},
	}
	return Experiment{Name: "baseline", Configs: configs, MatchUps: matchUps}
}

// Run plays the experiment and stores configs, game records and move records with w.
func Run(ctx context.Context, e Experiment, w *metrics.Writer) ([]metrics.GameRecord, error) {
	if e.Games <= 0 {
		e.Games = meta.NumGames
	}
	if e.Size <= 0 {
		e.Size = meta.BoardLength
	}
	if e.Parallel <= 0 {
		e.Parallel = meta.Parallel
	}

	total := len(e.MatchUps) * e.Games
	gameRecords := make([]metrics.GameRecord, total)
	moveRecords := make([][]metrics.MoveRecord, total)

	log.Info().Msgf("starting %s experiment with %d games...", e.Name, total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.Parallel)
	var mu sync.Mutex
	completed := 0
	for mi, matchup := range e.MatchUps {
		mi, matchup := mi, matchup
		for i := 0; i < e.Games; i++ {
			i := i
			slot := mi*e.Games + i
			g.Go(func() error {
				winner, gameMetric, moveMetrics, err := runGame(ctx, e.Size, matchup[0], matchup[1], uint64(slot))
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				gameRecords[slot] = metrics.GameRecord{
					Agent1:     matchup[0].ID,
					Agent2:     matchup[1].ID,
					GameMetric: gameMetric,
				}
				records := make([]metrics.MoveRecord, len(moveMetrics))
				for j, mm := range moveMetrics {
					records[j] = metrics.MoveRecord{Game: gameMetric.ID, MoveMetric: mm}
				}
				moveRecords[slot] = records

				mu.Lock()
				completed++
				log.Info().Msgf("completed game %d of %d (matchup %d) with winner: %s", completed, total, mi+1, winner)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", e.Name)

	// Store experiment metadata
	if err := w.WriteAgentConfigs(e.Configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	if err := w.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	var flat []metrics.MoveRecord
	for _, records := range moveRecords {
		flat = append(flat, records...)
	}
	if err := w.WriteMoveRecords(flat); err != nil {
		return nil, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return gameRecords, nil
}

// runGame executes a single game between two freshly created agents
func runGame(ctx context.Context, size int, config1, config2 metrics.AgentConfig, game uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.LocalEngine(size, createAgent(config1, game), createAgent(config2, game))
	winner, gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return "", gameMetric, moveMetrics, err
	}
	return winner.String(), gameMetric, moveMetrics, nil
}

// createAgent seeds each game differently so repeated games of a matchup diverge.
func createAgent(config metrics.AgentConfig, game uint64) agent.Agent {
	seed := config.Seed*1_000_003 + game
	if config.Random {
		return agent.NewRandomAgent(seed)
	}

	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if !config.Cache {
		options = append(options, searcher.WithoutCache())
	}
	if !config.Openings {
		options = append(options, searcher.WithoutOpenings())
	}
	return agent.NewSearchAgent(searcher.NewAlphaBeta(options...))
}
