package searcher

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"domineering/experiments/metrics"
	"domineering/game"
	"domineering/layout"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrNoMove is returned when the player has no free domino-sized area at all.
var ErrNoMove = errors.New("no move available")

// DefaultOpeningCells is how many occupied squares still count as the opening: the first
// two moves of each side. The book entries are placements for an otherwise-empty board,
// so they are only consulted while the board is close to empty, and never later in the
// game even when the book squares happen to still be free.
const DefaultOpeningCells = 6

type Option func(a *AlphaBeta)

// AlphaBeta is a depth-limited alpha-beta search over the candidates produced by the
// region classifier. Calls to PlayMove are serialized, so one AlphaBeta can serve
// concurrent callers; concurrent games that should not wait on each other each own one.
type AlphaBeta struct {
	mu sync.Mutex // serializes PlayMove; picker and metrics hold per-search state

	weights      Weights
	depth        int // fixed depth, 0 follows curve
	curve        DepthCurve
	cache        *Cache
	picker       layout.Picker
	openingCells int // -1 disables the opening book
	duration     time.Duration
	metrics      metrics.Collector
}

func WithWeights(weights Weights) Option {
	return func(a *AlphaBeta) {
		a.weights = weights
	}
}

func WithDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

func WithDepthCurve(curve DepthCurve) Option {
	return func(a *AlphaBeta) {
		if curve.Max > 0 && curve.Base > 0 {
			a.curve = curve
		}
	}
}

// WithCache shares a cache between searches, for example both sides of a game played by
// the same process.
func WithCache(cache *Cache) Option {
	return func(a *AlphaBeta) {
		if cache != nil {
			a.cache = cache
		}
	}
}

func WithoutCache() Option {
	return func(a *AlphaBeta) {
		a.cache = nil
	}
}

// WithPicker sets how an odd protective area is chosen for splitting in the bounds.
func WithPicker(picker layout.Picker) Option {
	return func(a *AlphaBeta) {
		if picker != nil {
			a.picker = picker
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(a *AlphaBeta) {
		a.picker = rand.New(rand.NewSource(seed))
	}
}

// WithOpenings plays the opening book while at most cells squares are occupied.
func WithOpenings(cells int) Option {
	return func(a *AlphaBeta) {
		if cells >= 0 {
			a.openingCells = cells
		}
	}
}

func WithoutOpenings() Option {
	return func(a *AlphaBeta) {
		a.openingCells = -1
	}
}

// WithDuration bounds every search. The best move found so far is played when it expires.
func WithDuration(duration time.Duration) Option {
	return func(a *AlphaBeta) {
		if duration > 0 {
			a.duration = duration
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		weights:      DefaultWeights,
		curve:        DefaultDepthCurve,
		cache:        NewCache(),
		picker:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		openingCells: DefaultOpeningCells,
		metrics:      metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Cache returns the position cache, nil when caching is disabled.
func (a *AlphaBeta) Cache() *Cache {
	return a.cache
}

// PlayMove returns the upper-left square of the domino p should place next. The board is
// not modified. It fails with ErrNoMove when p cannot place a domino anywhere.
func (a *AlphaBeta) PlayMove(ctx context.Context, b *game.Board, p game.Player) (game.Coordinate, metrics.SearchMetric, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	occupied := b.Occupied()
	if a.openingCells >= 0 && occupied <= a.openingCells {
		if move, ok := Opening(b, p); ok {
			a.metrics.Start(0)
			a.metrics.SetOpening()
			log.Debug().Str("player", p.String()).Stringer("move", move).Msg("played opening")
			return move, a.metrics.Complete(), nil
		}
	}

	depth := a.depth
	if depth <= 0 {
		depth = a.curve.Depth(occupied)
	}
	if a.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.duration)
		defer cancel()
	}

	a.metrics.Start(depth)
	s := &search{
		ctx:     ctx,
		board:   b.Anonymize(),
		root:    p,
		weights: a.weights,
		cache:   a.cache,
		picker:  a.picker,
		metrics: a.metrics,
	}
	move, score, err := s.best(depth)
	metric := a.metrics.Complete()
	if err != nil {
		return game.Coordinate{}, metric, err
	}

	log.Debug().
		Str("player", p.String()).
		Stringer("move", move).
		Float64("score", score).
		Int("depth", depth).
		Int("nodes", metric.Nodes).
		Bool("aborted", s.aborted).
		Dur("duration", metric.Duration).
		Msg("search complete")
	return move, metric, nil
}

// search is the state of one PlayMove call. board is a private buffer that moves are
// applied to and undone on.
type search struct {
	ctx     context.Context
	board   *game.Board
	root    game.Player
	weights Weights
	cache   *Cache
	picker  layout.Picker
	metrics metrics.Collector
	aborted bool
}

func (s *search) cancelled() bool {
	if !s.aborted && s.ctx.Err() != nil {
		s.aborted = true
	}
	return s.aborted
}

// best tries every ranked candidate of the root player with the window (best, +Inf) and
// keeps the first one with the strictly highest score.
func (s *search) best(depth int) (game.Coordinate, float64, error) {
	analysis := layout.Classify(s.board)
	candidates := layout.Candidates(analysis.Layout(s.root), false)

	var move game.Coordinate
	found := false
	best := math.Inf(-1)
	for _, c := range candidates {
		if s.cancelled() {
			break
		}
		s.board.Place(c, s.root, game.CellOccupied)
		score := s.node(s.root.Other(), depth-1, best, math.Inf(1))
		s.board.Remove(c, s.root)
		if s.aborted {
			break
		}
		if score > best {
			best, move, found = score, c, true
		}
	}
	if found {
		return move, best, nil
	}

	s.metrics.SetFallback()
	all := layout.Candidates(analysis.Layout(s.root), true)
	if len(all) == 0 {
		return game.Coordinate{}, best, ErrNoMove
	}
	return all[0], best, nil
}

// node scores the buffer with toMove to play, from the root player's point of view.
func (s *search) node(toMove game.Player, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	oldAlpha, oldBeta := alpha, beta

	if s.cache != nil {
		if e, ok := s.cache.Load(s.board, s.root); ok && e.Depth >= depth {
			s.metrics.AddCacheHit()
			score, lo, hi, done := probe(e, depth, alpha, beta)
			if done {
				return score
			}
			alpha, beta = lo, hi
		}
	}

	analysis := layout.Analyse(s.board, s.picker)
	own, opp := analysis.Layout(s.root), analysis.Layout(s.root.Other())
	if terminal(depth, own, opp) {
		return s.evaluate(own, opp)
	}
	candidates := layout.Candidates(analysis.Layout(toMove), false)
	if len(candidates) == 0 {
		return s.evaluate(own, opp)
	}

	maximizing := toMove == s.root
	best := beta
	if maximizing {
		best = alpha
	}
	for _, c := range candidates {
		if s.cancelled() {
			return best
		}
		s.board.Place(c, toMove, game.CellOccupied)
		var score float64
		if maximizing {
			score = s.node(toMove.Other(), depth-1, best, beta)
		} else {
			score = s.node(toMove.Other(), depth-1, alpha, best)
		}
		s.board.Remove(c, toMove)
		if s.aborted {
			return best
		}

		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
		}
		if (maximizing && best >= beta) || (!maximizing && best <= alpha) {
			s.metrics.AddCutoff()
			break
		}
	}

	if s.cache != nil {
		s.cache.Store(s.board, s.root, Entry{Score: best, Bound: classifyBound(best, oldAlpha, oldBeta), Depth: depth})
	}
	return best
}

// terminal reports whether the search stops here: the depth is spent, a player has no
// guaranteed move left, or the bounds already decide the game.
func terminal(depth int, own, opp *layout.Layout) bool {
	return depth <= 0 ||
		own.LowerBound <= 0 ||
		opp.LowerBound <= 0 ||
		own.LowerBound > opp.UpperBound ||
		opp.LowerBound >= own.UpperBound
}

func (s *search) evaluate(own, opp *layout.Layout) float64 {
	s.metrics.AddEvaluation()
	return s.weights.Score(own, opp)
}
