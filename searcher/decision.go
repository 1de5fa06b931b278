package searcher

import (
	"hearts/experiments/metrics"

	"golang.org/x/exp/rand"
)

// treeSearch runs UCT over a single determinized world. Every node is a card
// played by whichever seat was to move, so the tree spans all four players.
type treeSearch struct {
	tree    *tree
	root    *State
	playout Playout
	cutoff  int
	rng     *rand.Rand
	metrics metrics.Collector
}

func newTreeSearch(root *State, playout Playout, cutoff int, rng *rand.Rand, metrics metrics.Collector) *treeSearch {
	return &treeSearch{
		tree:    newTree(root.Player()),
		root:    root,
		playout: playout,
		cutoff:  cutoff,
		rng:     rng,
		metrics: metrics,
	}
}

func (s *treeSearch) iterate() {
	state := s.root.Clone()
	path, result := s.selectThenExpand(state)
	s.tree.backup(path, result)
}

// selectThenExpand descends through fully expanded nodes, adds one child and
// plays out from it. A terminal node returns its cached result instead.
func (s *treeSearch) selectThenExpand(state *State) ([]nodeID, Scores) {
	t := s.tree
	id := rootID
	path := []nodeID{id}
	for {
		n := &t.nodes[id]
		if n.terminal {
			return path, n.result
		}
		if !n.expanded {
			n.untried = state.LegalCards()
			n.expanded = true
			if len(n.untried) == 0 {
				panic("non-terminal node has no legal cards")
			}
		}

		if !n.fullyExpanded() {
			card := n.untried[0]
			n.untried = n.untried[1:]

			child := node{card: card, mover: state.Player()}
			state.Play(card)
			var result Scores
			if state.Done() {
				child.terminal = true
				child.result = state.Result()
				result = child.result
			} else {
				result = rollout(state, s.playout, s.cutoff, s.rng, s.metrics)
			}
			return append(path, t.add(id, child)), result
		}

		id = t.best(id, nil)
		state.Play(t.nodes[id].card)
		path = append(path, id)
	}
}
