package agent

import (
	"hearts/experiments/metrics"
	"hearts/game"
	"hearts/heuristic"
	"hearts/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type mctsActor struct {
	tracker
	mcts   *searcher.MCTS
	rng    *rand.Rand
	metric metrics.SearchMetric
	found  bool
}

// NewMCTSActor searches every decision with mcts and passes like the greedy actor
func NewMCTSActor(mcts *searcher.MCTS, seed uint64) Actor {
	return &mctsActor{mcts: mcts, rng: rand.New(rand.NewSource(seed))}
}

func (a *mctsActor) GetPass(direction game.PassDirection) []game.Card {
	if direction == game.PassNone {
		return nil
	}
	return a.pass(heuristic.ChoosePass(a.belief, a.rng))
}

func (a *mctsActor) PlayCard(trick []game.Move) game.Card {
	a.observe(trick)
	a.found = false

	legal := a.belief.LegalCards(trick)
	if len(legal) == 1 { // Forced
		return a.play(legal[0], trick)
	}

	policy, metric := a.mcts.Simulate(a.belief, trick)
	a.metric, a.found = metric, true
	card := policy.Best()
	log.Debug().Msgf("player %d chose %s from %v", a.belief.Player, card, policy)
	return a.play(card, trick)
}

// LastMetric returns the search metric of the last decision, if it was searched
func (a *mctsActor) LastMetric() (metrics.SearchMetric, bool) {
	return a.metric, a.found
}
