package searcher

import (
	"time"

	"hearts/belief"
	"hearts/experiments/metrics"
	"hearts/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Option func(mcts *MCTS)

// Mode selects how a search spends its samples
type Mode int

const (
	TreeMode Mode = iota // One full tree per determinized world
	FlatMode             // One tree over own cards, redealt every iteration
)

func (m Mode) String() string {
	if m == FlatMode {
		return "flat"
	}
	return "tree"
}

func ModeByName(name string) (Mode, bool) {
	switch name {
	case TreeMode.String():
		return TreeMode, true
	case FlatMode.String():
		return FlatMode, true
	default:
		return TreeMode, false
	}
}

// CardStat is the summed root statistics of one legal card
type CardStat struct {
	Card   game.Card
	Value  float64
	Visits float64
}

func (c CardStat) Mean() float64 {
	if c.Visits == 0 {
		return 0
	}
	return c.Value / c.Visits
}

// Policy lists the statistics of every legal card in legal order
type Policy []CardStat

// Best returns the card with the highest mean reward, the first one on ties
func (p Policy) Best() game.Card {
	if len(p) == 0 {
		panic("policy has no cards")
	}
	best := 0
	for i := range p {
		if p[i].Mean() > p[best].Mean() {
			best = i
		}
	}
	return p[best].Card
}

type MCTS struct {
	goroutines int
	samples    int
	duration   time.Duration
	episodes   int
	cutoff     int
	mode       Mode
	playout    Playout
	rng        *rand.Rand
	metrics    metrics.Collector
}

// WithDuration bounds every sample's search by wall-clock time. Combined with
// WithEpisodes, a sample stops at whichever limit it reaches first.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes bounds every sample's search by a number of iterations. Combined
// with WithDuration, a sample stops at whichever limit it reaches first.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithSamples sets the number of determinized worlds searched per decision
func WithSamples(samples int) Option {
	return func(m *MCTS) {
		if samples > 0 {
			m.samples = samples
		}
	}
}

func WithMode(mode Mode) Option {
	return func(m *MCTS) {
		m.mode = mode
	}
}

func WithPlayout(playout Playout) Option {
	return func(m *MCTS) {
		if playout != nil {
			m.playout = playout
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	if goroutines <= 0 {
		panic("need at least one goroutine")
	}
	m := &MCTS{ // Default values
		goroutines: goroutines,
		samples:    goroutines,
		cutoff:     MaxCutoff,
		mode:       TreeMode,
		playout:    RandomPlayout{},
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches the decision of own.Player facing trick and returns the
// statistics of each legal card summed over all samples
func (m *MCTS) Simulate(own *belief.State, trick []game.Move) (Policy, metrics.SearchMetric) {
	legal := own.LegalCards(trick)
	if len(legal) == 0 {
		panic("no legal cards to search")
	}

	m.metrics.Start(m.samples, m.goroutines, m.cutoff, m.mode.String(), m.playout.Name())

	// Seeds are drawn up front so results do not depend on scheduling
	seeds := make([]uint64, m.samples)
	for i := range seeds {
		seeds[i] = m.rng.Uint64()
	}

	policies := make([]Policy, m.samples)
	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i := range seeds {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seeds[i]))
			policies[i] = m.sample(own, trick, legal, rng)
			return nil
		})
	}
	_ = g.Wait()

	policy := merge(legal, policies)
	metric := m.metrics.Complete()
	log.Debug().Msgf("player %d searched %d samples in %s with %d episodes", own.Player, m.samples, metric.Duration, metric.Episodes)
	return policy, metric
}

func (m *MCTS) sample(own *belief.State, trick []game.Move, legal []game.Card, rng *rand.Rand) Policy {
	var iterate func()
	var t *tree
	switch m.mode {
	case FlatMode:
		search := newFlatSearch(own, trick, m.playout, m.cutoff, rng, m.metrics)
		iterate, t = search.iterate, search.tree
	default:
		state, _ := Determinize(own, trick, rng)
		search := newTreeSearch(state, m.playout, m.cutoff, rng, m.metrics)
		iterate, t = search.iterate, search.tree
	}

	m.run(iterate)
	m.metrics.AddNodes(t.size())
	return t.policy(legal)
}

// run iterates until the episode cap is reached or the duration elapses,
// whichever comes first when both are set. At least one iteration always
// completes.
func (m *MCTS) run(iterate func()) {
	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}
	for i := 1; ; i++ {
		iterate()
		m.metrics.AddEpisode()
		if m.episodes > 0 && i >= m.episodes {
			return
		}
		if m.duration > 0 && !time.Now().Before(deadline) {
			return
		}
	}
}

func merge(legal []game.Card, policies []Policy) Policy {
	merged := make(Policy, len(legal))
	for i, card := range legal {
		merged[i].Card = card
	}
	for _, policy := range policies {
		for _, stat := range policy {
			for i := range merged {
				if merged[i].Card == stat.Card {
					merged[i].Value += stat.Value
					merged[i].Visits += stat.Visits
					break
				}
			}
		}
	}
	return merged
}
