package agent

import (
	"hearts/game"
	"hearts/heuristic"

	"golang.org/x/exp/rand"
)

type greedyActor struct {
	tracker
	rng *rand.Rand
}

// NewGreedyActor plays the card with the lowest heuristic cost
func NewGreedyActor(seed uint64) Actor {
	return &greedyActor{rng: rand.New(rand.NewSource(seed))}
}

func (a *greedyActor) GetPass(direction game.PassDirection) []game.Card {
	if direction == game.PassNone {
		return nil
	}
	return a.pass(heuristic.ChoosePass(a.belief, a.rng))
}

func (a *greedyActor) PlayCard(trick []game.Move) game.Card {
	a.observe(trick)
	return a.play(heuristic.ChooseCard(a.belief, trick, a.rng), trick)
}
