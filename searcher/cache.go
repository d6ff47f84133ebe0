package searcher

import (
	"sync"
	"sync/atomic"

	"domineering/game"
)

// Bound tells how a cached score relates to the true value of the position.
type Bound uint8

const (
	Exact Bound = iota
	Lower       // true value is at least Score
	Upper       // true value is at most Score
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	}
	return "unknown"
}

type Entry struct {
	Score float64
	Bound Bound
	Depth int
}

// Scores are relative to the player the search was started for, so the root player is
// part of the key.
type stateKey struct {
	board string
	root  game.Player
}

// Cache memoizes search results across moves. It is safe for concurrent use and never
// evicts; callers that play many games should Reset between them.
type Cache struct {
	mu      sync.RWMutex
	entries map[stateKey]Entry
	hits    atomic.Int64
	misses  atomic.Int64
}

func NewCache() *Cache {
	return &Cache{entries: make(map[stateKey]Entry)}
}

// Load returns the entry for the board searched on behalf of root, if any.
func (c *Cache) Load(b *game.Board, root game.Player) (Entry, bool) {
	c.mu.RLock()
	e, ok := c.entries[stateKey{board: b.Key(), root: root}]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return e, ok
}

// Store overwrites any previous entry for the same key.
func (c *Cache) Store(b *game.Board, root game.Player, e Entry) {
	c.mu.Lock()
	c.entries[stateKey{board: b.Key(), root: root}] = e
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[stateKey]Entry)
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns the number of lookups that found and missed an entry.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// probe applies a usable entry to the window. It reports whether the entry settles the
// node outright, in which case score is its value.
func probe(e Entry, depth int, alpha, beta float64) (score, newAlpha, newBeta float64, done bool) {
	if e.Depth < depth {
		return 0, alpha, beta, false
	}
	switch e.Bound {
	case Exact:
		return e.Score, alpha, beta, true
	case Lower:
		alpha = max(alpha, e.Score)
	case Upper:
		beta = min(beta, e.Score)
	}
	if alpha >= beta {
		return e.Score, alpha, beta, true
	}
	return 0, alpha, beta, false
}

func classifyBound(score, alpha, beta float64) Bound {
	switch {
	case score <= alpha:
		return Upper
	case score >= beta:
		return Lower
	}
	return Exact
}
