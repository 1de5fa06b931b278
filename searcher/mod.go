package searcher

import (
	"hearts/belief"
	"hearts/experiments/metrics"
	"hearts/game"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// flatSearch keeps one tree over the searching player's own cards only. The
// hidden hands are dealt again on every iteration and the opponents are played
// by the playout policy between the player's turns.
type flatSearch struct {
	tree    *tree
	own     *belief.State
	trick   []game.Move
	playout Playout
	cutoff  int
	rng     *rand.Rand
	metrics metrics.Collector
}

func newFlatSearch(own *belief.State, trick []game.Move, playout Playout, cutoff int, rng *rand.Rand, metrics metrics.Collector) *flatSearch {
	return &flatSearch{
		tree:    newTree(own.Player),
		own:     own,
		trick:   trick,
		playout: playout,
		cutoff:  cutoff,
		rng:     rng,
		metrics: metrics,
	}
}

func (s *flatSearch) iterate() {
	state, _ := Determinize(s.own, s.trick, s.rng)
	path, result := s.descend(state)
	s.tree.backup(path, result)
}

func (s *flatSearch) descend(state *State) ([]nodeID, Scores) {
	t := s.tree
	player := s.own.Player
	id := rootID
	path := []nodeID{id}
	for {
		legal := state.LegalCards()
		child, fresh := s.pick(id, legal)
		state.Play(t.nodes[child].card)
		path = append(path, child)

		if fresh {
			return path, rollout(state, s.playout, s.cutoff, s.rng, s.metrics)
		}

		for !state.Done() && state.Player() != player {
			state.Play(s.playout.Choose(state, s.rng))
		}
		if state.Done() {
			s.metrics.AddFullPlayout()
			return path, state.Result()
		}
		id = child
	}
}

// pick adds a child for the first legal card not tried from this node, or
// selects among the legal children by UCT once all have been tried
func (s *flatSearch) pick(parent nodeID, legal []game.Card) (nodeID, bool) {
	t := s.tree
	for _, card := range legal {
		if _, ok := t.child(parent, card); !ok {
			return t.add(parent, node{card: card, mover: s.own.Player}), true
		}
	}
	return t.best(parent, func(card game.Card) bool {
		return slices.Contains(legal, card)
	}), false
}
