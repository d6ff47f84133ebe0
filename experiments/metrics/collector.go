package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth       int
	Duration    time.Duration
	Nodes       int
	CacheHits   int
	Cutoffs     int
	Evaluations int
	Opening     bool // Move came from the opening book
	Fallback    bool // No ranked candidate improved on the initial score
}

type MoveMetric struct {
	Step   int
	Player string // "V" or "H"
	X      int
	Y      int
	SearchMetric
}

type GameMetric struct {
	ID         string
	Winner     string // "V" or "H"
	Forfeit    bool   // Loser returned an illegal move
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCacheHit()
	AddCutoff()
	AddEvaluation()
	SetOpening()
	SetFallback()
	Complete() SearchMetric
}

type collector struct {
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	cacheHits   atomic.Int64
	cutoffs     atomic.Int64
	evaluations atomic.Int64
	opening     atomic.Bool
	fallback    atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.cacheHits.Store(0)
	m.cutoffs.Store(0)
	m.evaluations.Store(0)
	m.opening.Store(false)
	m.fallback.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) SetOpening() {
	m.opening.Store(true)
}

func (m *collector) SetFallback() {
	m.fallback.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		CacheHits:   int(m.cacheHits.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Evaluations: int(m.evaluations.Load()),
		Opening:     m.opening.Load(),
		Fallback:    m.fallback.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddCacheHit()           {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) SetOpening()            {}
func (m *dummyCollector) SetFallback()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
