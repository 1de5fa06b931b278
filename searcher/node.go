package searcher

import (
	"hearts/game"
)

type nodeID int32

const rootID nodeID = 0

// node lives in a tree's arena and refers to its children by index
type node struct {
	card     game.Card // Card that led here from the parent
	mover    int       // Seat credited with this node's rewards
	visits   float64
	value    float64
	children []nodeID
	untried  []game.Card // Legal cards without a child yet, filled on the first visit
	expanded bool
	terminal bool
	result   Scores // Cached outcome of a terminal node
}

func (n *node) update(result Scores) {
	n.visits++
	n.value += normalize(result[n.mover])
}

func (n *node) fullyExpanded() bool {
	return n.expanded && len(n.untried) == 0
}

type tree struct {
	nodes []node
}

func newTree(player int) *tree {
	return &tree{nodes: []node{{mover: player}}}
}

func (t *tree) size() int {
	return len(t.nodes)
}

// add appends a child of parent. Pointers into the arena are invalid afterwards.
func (t *tree) add(parent nodeID, child node) nodeID {
	t.nodes = append(t.nodes, child)
	id := nodeID(len(t.nodes) - 1)
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

func (t *tree) child(parent nodeID, card game.Card) (nodeID, bool) {
	for _, id := range t.nodes[parent].children {
		if t.nodes[id].card == card {
			return id, true
		}
	}
	return 0, false
}

// best picks the child with the highest UCT weight, the first one on ties
func (t *tree) best(parent nodeID, allowed func(game.Card) bool) nodeID {
	p := &t.nodes[parent]
	if len(p.children) == 0 {
		panic("node has no children")
	}
	policy := newUCT(CSquared, p.visits)

	best, bestWeight := nodeID(-1), -1.0
	for _, id := range p.children {
		c := &t.nodes[id]
		if allowed != nil && !allowed(c.card) {
			continue
		}
		w := policy.weight(c.value, c.visits)
		if w > bestWeight {
			best, bestWeight = id, w
		}
	}
	if best < 0 {
		panic("node has no selectable children")
	}
	return best
}

// backup credits result to every node on the path
func (t *tree) backup(path []nodeID, result Scores) {
	for _, id := range path {
		t.nodes[id].update(result)
	}
}

// policy reports root statistics for every legal card, 0/0 for cards never tried
func (t *tree) policy(legal []game.Card) Policy {
	policy := make(Policy, len(legal))
	for i, card := range legal {
		policy[i].Card = card
		if id, ok := t.child(rootID, card); ok {
			policy[i].Value = t.nodes[id].value
			policy[i].Visits = t.nodes[id].visits
		}
	}
	return policy
}
