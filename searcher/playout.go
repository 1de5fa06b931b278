package searcher

import (
	"math"

	"hearts/experiments/metrics"
	"hearts/game"
	"hearts/heuristic"

	"golang.org/x/exp/rand"
)

// Playout picks the card for the player to move outside the tree
type Playout interface {
	Choose(state *State, rng *rand.Rand) game.Card
	Name() string
}

type RandomPlayout struct{}

func (RandomPlayout) Choose(state *State, rng *rand.Rand) game.Card {
	legal := state.LegalCards()
	if len(legal) == 0 {
		panic("no legal cards in playout")
	}
	return legal[rng.Intn(len(legal))]
}

func (RandomPlayout) Name() string {
	return "random"
}

// HeuristicPlayout plays every seat greedily from its own view of the round
type HeuristicPlayout struct{}

func (HeuristicPlayout) Choose(state *State, rng *rand.Rand) game.Card {
	b := state.Belief(state.Player())
	return heuristic.ChooseCard(b, state.Round().Trick(), rng)
}

func (HeuristicPlayout) Name() string {
	return "heuristic"
}

func PlayoutByName(name string) (Playout, bool) {
	switch name {
	case RandomPlayout{}.Name():
		return RandomPlayout{}, true
	case HeuristicPlayout{}.Name():
		return HeuristicPlayout{}, true
	default:
		return nil, false
	}
}

func rollout(state *State, playout Playout, cutoff int, rng *rand.Rand, metrics metrics.Collector) Scores {
	depth := 0
	// Rollout till the round is over or for cutoff number of cards
	for !state.Done() && depth < cutoff {
		state.Play(playout.Choose(state, rng))
		depth++
	}

	if state.Done() {
		metrics.AddFullPlayout()
		return state.Result()
	}
	return estimate(state, rng)
}

// estimate projects final scores at a cutoff: points taken so far plus the
// heuristic cost of each remaining hand
func estimate(state *State, rng *rand.Rand) Scores {
	var scores Scores
	raw := state.Round().RawScores()
	for p := range scores {
		b := state.Belief(p)
		projected := float64(raw[p]) + heuristic.EvaluateHand(b, game.BySuit(b.Hand.Cards()), rng)
		scores[p] = math.Max(BestScore, math.Min(WorstScore, projected))
	}
	return scores
}
