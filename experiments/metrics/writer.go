package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/klauspost/compress/zstd"
)

// AgentConfig describes one search agent taking part in an experiment. Zero values keep
// the searcher defaults.
type AgentConfig struct {
	ID       int
	Depth    int           // Fixed search depth, 0 follows the depth curve
	Duration time.Duration // Time budget per move, 0 for none
	Cache    bool
	Openings bool
	Random   bool // Plays uniformly random legal moves instead of searching
	Seed     uint64
}

type GameRecord struct {
	Agent1 int // AgentConfig.ID, plays Vertical
	Agent2 int // AgentConfig.ID, plays Horizontal
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

type Writer struct {
	baseDir  string
	compress bool
}

type WriterOption func(w *Writer)

// WithCompression writes the move records, the largest file, zstd compressed.
func WithCompression() WriterOption {
	return func(w *Writer) {
		w.compress = true
	}
}

// NewWriter creates a subfolder of root named after the experiment and the current time.
func NewWriter(root, name string, options ...WriterOption) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	w := &Writer{baseDir: baseDir}
	for _, option := range options {
		option(w)
	}
	return w, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "depth", "duration", "cache", "openings", "random", "seed"}
	return w.writeCSV("agent_configs.csv", false, header, len(configs), func(i int) []string {
		config := configs[i]
		return []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
			config.Duration.String(),
			strconv.FormatBool(config.Cache),
			strconv.FormatBool(config.Openings),
			strconv.FormatBool(config.Random),
			strconv.FormatUint(config.Seed, 10),
		}
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "winner", "forfeit", "start_time", "end_time", "duration", "total_moves"}
	return w.writeCSV("game_records.csv", false, header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			record.ID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Winner,
			strconv.FormatBool(record.Forfeit),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "x", "y", "depth", "duration", "nodes", "cache_hits", "cutoffs", "evaluations", "opening", "fallback"}
	return w.writeCSV("move_records.csv", w.compress, header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.X),
			strconv.Itoa(record.Y),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.CacheHits),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.Evaluations),
			strconv.FormatBool(record.Opening),
			strconv.FormatBool(record.Fallback),
		}
	})
}

func (w *Writer) writeCSV(name string, compress bool, header []string, rows int, row func(i int) []string) (err error) {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	if compress {
		path += ".zst"
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	var out io.Writer = f
	if compress {
		encoder, zerr := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zerr != nil {
			return fmt.Errorf("failed to create encoder for %s: %w", name, zerr)
		}
		defer func() {
			if cerr := encoder.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to compress %s: %w", name, cerr)
			}
		}()
		out = encoder
	}

	writer := csv.NewWriter(out)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	writer.Flush()
	if ferr := writer.Error(); ferr != nil {
		return fmt.Errorf("failed to flush %s: %w", name, ferr)
	}
	return nil
}
