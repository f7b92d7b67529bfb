package metrics

import (
	"sync/atomic"
	"time"

	"takeiteasy/game"
)

type SearchMetric struct {
	Goroutines     int
	Depth          int // Requested search depth
	CompletedDepth int // Deepest ranking finished within the time budget
	Duration       time.Duration
	Candidates     int // Root placements ranked
	Nodes          int // Positions expanded below the root
	Leaves         int // Positions scored by the leaf heuristic
	CacheHits      int
}

type MoveMetric struct {
	Step     int
	Tile     game.Tile
	Field    game.Field
	Estimate float64
	SearchMetric
}

type GameMetric struct {
	Seed       uint64
	Score      int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(goroutines, depth int)
	SetCompletedDepth(depth int)
	AddCandidates(n int)
	AddNode()
	AddLeaf()
	AddCacheHit()
	Complete() SearchMetric
}

type collector struct {
	goroutines     int
	depth          int
	startTime      time.Time
	completedDepth atomic.Int32
	candidates     atomic.Int64
	nodes          atomic.Int64
	leaves         atomic.Int64
	cacheHits      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.completedDepth.Store(0)
	m.candidates.Store(0)
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cacheHits.Store(0)
}

func (m *collector) SetCompletedDepth(depth int) {
	m.completedDepth.Store(int32(depth))
}

func (m *collector) AddCandidates(n int) {
	m.candidates.Add(int64(n))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:     m.goroutines,
		Depth:          m.depth,
		CompletedDepth: int(m.completedDepth.Load()),
		Duration:       time.Since(m.startTime),
		Candidates:     int(m.candidates.Load()),
		Nodes:          int(m.nodes.Load()),
		Leaves:         int(m.leaves.Load()),
		CacheHits:      int(m.cacheHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int) {}
func (m *dummyCollector) SetCompletedDepth(depth int) {}
func (m *dummyCollector) AddCandidates(n int)         {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddLeaf()                    {}
func (m *dummyCollector) AddCacheHit()                {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
