package agent

import (
	"hearts/game"

	"golang.org/x/exp/rand"
)

type randomActor struct {
	tracker
	rng *rand.Rand
}

// NewRandomActor plays a uniformly random legal card and passes random cards
func NewRandomActor(seed uint64) Actor {
	return &randomActor{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomActor) GetPass(direction game.PassDirection) []game.Card {
	if direction == game.PassNone {
		return nil
	}
	hand := a.belief.Hand.Cards()
	cards := make([]game.Card, 0, game.PassSize)
	for _, i := range a.rng.Perm(len(hand))[:game.PassSize] {
		cards = append(cards, hand[i])
	}
	return a.pass(cards)
}

func (a *randomActor) PlayCard(trick []game.Move) game.Card {
	a.observe(trick)
	legal := a.belief.LegalCards(trick)
	return a.play(legal[a.rng.Intn(len(legal))], trick)
}
