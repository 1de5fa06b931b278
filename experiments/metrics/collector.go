package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Samples      int
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	Cutoff       int
	Mode         string
	Playout      string
	FullPlayouts int
	Nodes        int
}

type MoveMetric struct {
	Trick  int
	Player int // Seat
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Seat that led the first trick
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	RawScores      [4]int
	Scores         [4]int
}

// Reporter is implemented by actors that search for their moves
type Reporter interface {
	LastMetric() (SearchMetric, bool)
}

type Collector interface {
	Start(samples, goroutines, cutoff int, mode, playout string)
	AddFullPlayout()
	AddEpisode()
	AddNodes(n int)
	Complete() SearchMetric
}

type collector struct {
	samples      int
	goroutines   int
	cutoff       int
	mode         string
	playout      string
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	nodes        atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(samples, goroutines, cutoff int, mode, playout string) {
	m.startTime = time.Now()
	m.samples = samples
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.mode = mode
	m.playout = playout
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.nodes.Store(0)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Samples:      m.samples,
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoff:       m.cutoff,
		Mode:         m.mode,
		Playout:      m.playout,
		Nodes:        int(m.nodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(samples, goroutines, cutoff int, mode, playout string) {}
func (m *dummyCollector) AddFullPlayout()                                           {}
func (m *dummyCollector) AddEpisode()                                               {}
func (m *dummyCollector) AddNodes(n int)                                            {}
func (m *dummyCollector) Complete() SearchMetric                                    { return SearchMetric{} }
