package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"domineering/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 0, Random: true, Seed: 1},
		{ID: 1, Depth: 1, Cache: true, Seed: 2},
	}
	e := Experiment{
		Name:     "test",
		Configs:  configs,
		MatchUps: [][2]metrics.AgentConfig{{configs[0], configs[1]}, {configs[1], configs[0]}},
		Games:    2,
		Size:     5,
		Parallel: 3,
	}
	w, err := metrics.NewWriter(t.TempDir(), e.Name, metrics.WithCompression())
	require.NoError(t, err)

	records, err := Run(context.Background(), e, w)

	require.NoError(t, err)
	require.Len(t, records, 4)
	ids := map[string]bool{}
	for i, record := range records {
		require.Contains(t, []string{"V", "H"}, record.Winner, "game %d should have a winner", i)
		require.False(t, record.Forfeit, "game %d", i)
		require.NotEmpty(t, record.ID)
		ids[record.ID] = true
	}
	require.Len(t, ids, 4, "Game IDs should be unique")
	require.Equal(t, 0, records[0].Agent1, "Records should keep matchup order")
	require.Equal(t, 1, records[3].Agent1)

	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv.zst"} {
		_, err := os.Stat(filepath.Join(w.Dir(), name))
		require.NoError(t, err, name)
	}
}

func TestRunCancelled(t *testing.T) {
	e := BaselineExperiment()
	e.Games, e.Size = 1, 5
	w, err := metrics.NewWriter(t.TempDir(), e.Name)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, e, w)

	require.ErrorIs(t, err, context.Canceled)
}

func TestCreateAgent(t *testing.T) {
	for _, e := range []Experiment{DepthExperiment(), CacheExperiment(), BaselineExperiment()} {
		for _, matchup := range e.MatchUps {
			require.NotNil(t, createAgent(matchup[0], 0), e.Name)
			require.NotNil(t, createAgent(matchup[1], 0), e.Name)
		}
	}
}
