package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting a search", func(t *testing.T) {
		c := NewCollector()
		c.Start(4)
		c.AddNode()
		c.AddNode()
		c.AddCacheHit()
		c.AddCutoff()
		c.AddEvaluation()
		c.SetFallback()

		m := c.Complete()

		require.Equal(t, 4, m.Depth)
		require.Equal(t, 2, m.Nodes)
		require.Equal(t, 1, m.CacheHits)
		require.Equal(t, 1, m.Cutoffs)
		require.Equal(t, 1, m.Evaluations)
		require.True(t, m.Fallback)
		require.False(t, m.Opening)
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(2)
		c.AddNode()
		c.SetOpening()

		c.Start(3)
		m := c.Complete()

		require.Equal(t, SearchMetric{Depth: 3, Duration: m.Duration}, m)
	})

	t.Run("dummy collector", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(5)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string, compressed bool) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	if !compressed {
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}
	decoder, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer decoder.Close()
	rows, err := csv.NewReader(decoder).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	games := []GameRecord{{
		Agent1: 1,
		Agent2: 2,
		GameMetric: GameMetric{
			ID:         "g1",
			Winner:     "H",
			StartTime:  start,
			EndTime:    start.Add(time.Second),
			Duration:   time.Second,
			TotalMoves: 9,
		},
	}}
	moves := []MoveRecord{{
		Game: "g1",
		MoveMetric: MoveMetric{
			Step:   1,
			Player: "V",
			X:      11,
			Y:      0,
			SearchMetric: SearchMetric{
				Duration: time.Millisecond,
				Opening:  true,
			},
		},
	}}

	t.Run("plain csv", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "plain")
		require.NoError(t, err)

		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Depth: 3, Cache: true, Seed: 42}}))
		require.NoError(t, w.WriteGameRecords(games))
		require.NoError(t, w.WriteMoveRecords(moves))

		configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"), false)
		require.Equal(t, [][]string{
			{"id", "depth", "duration", "cache", "openings", "random", "seed"},
			{"1", "3", "0s", "true", "false", "false", "42"},
		}, configs)

		records := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"), false)
		require.Len(t, records, 2)
		require.Equal(t, []string{"g1", "1", "2", "H", "false", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "9"}, records[1])

		moveRows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"), false)
		require.Equal(t, []string{"g1", "1", "V", "11", "0", "0", "1ms", "0", "0", "0", "0", "true", "false"}, moveRows[1])
	})

	t.Run("compressed move records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "compressed", WithCompression())
		require.NoError(t, err)

		require.NoError(t, w.WriteMoveRecords(moves))

		_, err = os.Stat(filepath.Join(w.Dir(), "move_records.csv"))
		require.True(t, os.IsNotExist(err), "Only the compressed file should be written")
		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv.zst"), true)
		require.Len(t, rows, 2)
		require.Equal(t, "g1", rows[1][0])
	})
}
