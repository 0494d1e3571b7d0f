package metrics

import (
	"reversi/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy   string
	Depth      int
	Goroutines int
	Duration   time.Duration
	Candidates int // Legal moves at the root
	Nodes      int // Positions expanded
	Leaves     int // Static evaluations
	Value      int // Value of the chosen move
}

type MoveMetric struct {
	Step     int
	Side     game.Side
	Move     game.Coord
	Captures int
	Hash     game.StateHash
	SearchMetric
}

type GameMetric struct {
	StartingSide game.Side
	Winner       game.Side // Empty on a tie
	Score        game.Score
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Passes       int
}

type Collector interface {
	Start(strategy string, depth, goroutines int)
	AddNode()
	AddLeaf()
	Complete(candidates, value int) SearchMetric
}

type collector struct {
	strategy   string
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, depth, goroutines int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.leaves.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) Complete(candidates, value int) SearchMetric {
	return SearchMetric{
		Strategy:   m.strategy,
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Candidates: candidates,
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Value:      value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth, goroutines int) {}
func (m *dummyCollector) AddNode()                                     {}
func (m *dummyCollector) AddLeaf()                                     {}
func (m *dummyCollector) Complete(candidates, value int) SearchMetric  { return SearchMetric{} }
