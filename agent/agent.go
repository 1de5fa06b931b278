package agent

import (
	"hearts/belief"
	"hearts/game"
)

// Actor is a seat at the table. The engine calls Initialize once per deal,
// GetPass and EndPass around the passing phase, PlayCard on every turn,
// EndTrick after every trick and EndGame when the deal is scored.
type Actor interface {
	Initialize(player int, hand []game.Card)
	GetPass(direction game.PassDirection) []game.Card
	EndPass(received []game.Card)
	PlayCard(trick []game.Move) game.Card
	EndTrick(winner int, trick []game.Move)
	EndGame(scores [game.NumPlayers]int)
}

// tracker keeps an actor's belief state in step with the engine's callbacks
type tracker struct {
	belief *belief.State
}

func (t *tracker) Initialize(player int, hand []game.Card) {
	t.belief = belief.New(player, hand)
}

func (t *tracker) EndPass(received []game.Card) {
	t.belief.Receive(received)
}

func (t *tracker) EndTrick(winner int, trick []game.Move) {
	t.belief.EndTrick(winner, trick)
}

func (t *tracker) EndGame(scores [game.NumPlayers]int) {}

func (t *tracker) pass(cards []game.Card) []game.Card {
	t.belief.Pass(cards)
	return cards
}

func (t *tracker) observe(trick []game.Move) {
	t.belief.ObserveTrick(trick)
}

func (t *tracker) play(card game.Card, trick []game.Move) game.Card {
	t.belief.Play(card, trick)
	return card
}
