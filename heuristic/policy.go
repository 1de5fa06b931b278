package heuristic

import (
	"math"

	"hearts/belief"
	"hearts/game"

	"golang.org/x/exp/rand"
)

// ChooseCard picks the legal card minimizing the points expected from this
// trick plus the cost of the hand left behind
func ChooseCard(b *belief.State, trick []game.Move, rng *rand.Rand) game.Card {
	legal := b.LegalCards(trick)
	if len(legal) == 0 {
		panic("no legal cards to choose from")
	}
	if len(legal) == 1 {
		return legal[0]
	}

	hand := b.Hand.Cards()
	best, bestCost := legal[0], math.Inf(1)
	for _, card := range legal {
		var rest [game.NumSuits][]game.Card
		for _, c := range hand {
			if c != card {
				rest[c.Suit.Index()] = append(rest[c.Suit.Index()], c)
			}
		}
		cost := EvaluateTrick(b, trick, card) + EvaluateHand(b, rest, rng)
		if cost < bestCost {
			best, bestCost = card, cost
		}
	}
	return best
}
