package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"domineering/engine"
	"domineering/experiments"
	"domineering/experiments/metrics"
	"domineering/meta"
	"domineering/searcher"
	"domineering/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "One of play, serve or experiment")
	name := flag.String("experiment", "baseline", "Experiment to run: depth, cache or baseline")
	games := flag.Int("games", meta.NumGames, "Games per experiment matchup")
	size := flag.Int("size", meta.BoardLength, "Board side length")
	parallel := flag.Int("parallel", meta.Parallel, "Games played at once")
	compress := flag.Bool("compress", false, "Write move records zstd compressed")
	addr := flag.String("addr", ":8080", "Agent server listen address")
	depth := flag.Int("depth", 0, "Fixed search depth, 0 follows the depth curve")
	duration := flag.Duration("duration", 0, "Search time per move, 0 for none")
	weights := flag.String("weights", "", "14 comma separated heuristic weights")
	debug := flag.Bool("debug", false, "Log every search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	options := []searcher.Option{searcher.WithDepth(*depth), searcher.WithDuration(*duration), searcher.WithMetrics()}
	if *weights != "" {
		w, err := searcher.ParseWeights(*weights)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid weights")
		}
		options = append(options, searcher.WithWeights(w))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		e := engine.LocalEngine(*size,
			agent.NewSearchAgent(searcher.NewAlphaBeta(options...)),
			agent.NewRandomAgent(uint64(time.Now().UnixNano())),
		)
		winner, gameMetric, _, err := e.Run(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
		fmt.Println(e.State.Board)
		fmt.Printf("winner: %s after %d moves in %s\n", winner, gameMetric.TotalMoves, gameMetric.Duration)

	case "serve":
		a := agent.NewSearchAgent(searcher.NewAlphaBeta(options...))
		if err := agent.StartAgentServer(*addr, a); err != nil {
			log.Fatal().Err(err).Msg("agent server stopped")
		}

	case "experiment":
		var e experiments.Experiment
		switch *name {
		case "depth":
			e = experiments.DepthExperiment()
		case "cache":
			e = experiments.CacheExperiment()
		case "baseline":
			e = experiments.BaselineExperiment()
		default:
			log.Fatal().Msgf("unknown experiment %q", *name)
		}
		e.Games, e.Size, e.Parallel = *games, *size, *parallel

		var writerOptions []metrics.WriterOption
		if *compress {
			writerOptions = append(writerOptions, metrics.WithCompression())
		}
		w, err := metrics.NewWriter(meta.OutputDir, e.Name, writerOptions...)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create experiment writer")
		}
		if _, err := experiments.Run(ctx, e, w); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Msgf("records written to %s", w.Dir())

	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}
