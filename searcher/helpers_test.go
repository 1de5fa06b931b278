package searcher

import (
	"testing"

	"hearts/belief"
	"hearts/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// midRound plays cards random cards of a seeded deal and returns the full
// information state along with a copy of the mover's belief
func midRound(t *testing.T, seed uint64, cards int) (*State, *belief.State) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	hands := game.Deal(rng)

	var beliefs [game.NumPlayers]*belief.State
	for p := range beliefs {
		beliefs[p] = belief.New(p, hands[p])
	}
	state := NewState(game.NewRound(hands), beliefs)
	for i := 0; i < cards; i++ {
		legal := state.LegalCards()
		require.NotEmpty(t, legal)
		state.Play(legal[rng.Intn(len(legal))])
	}
	return state, state.Belief(state.Player()).Clone()
}

// queenDuel is player 0 holding the ace and three of spades on the twelfth
// trick after the queen of spades has been played into it
func queenDuel() (*belief.State, []game.Move) {
	hand := []game.Card{{Rank: game.Ace, Suit: game.Spades}, {Rank: 3, Suit: game.Spades}}
	trick := []game.Move{
		{Player: 1, Card: game.Card{Rank: 5, Suit: game.Spades}},
		{Player: 2, Card: game.QueenOfSpades},
		{Player: 3, Card: game.Card{Rank: 7, Suit: game.Spades}},
	}
	left := append(append([]game.Card{}, hand...),
		trick[0].Card, trick[1].Card, trick[2].Card,
		game.Card{Rank: 2, Suit: game.Hearts},
		game.Card{Rank: 3, Suit: game.Hearts},
		game.Card{Rank: 4, Suit: game.Hearts},
	)
	keep := game.NewHand(left)

	b := belief.New(0, hand)
	for _, c := range game.AllCards() {
		if !keep.Contains(c) {
			b.ObserveMove(game.Move{Player: 1, Card: c}, c.Suit)
		}
	}
	b.FirstTrick = false
	b.Scores = [game.NumPlayers]int{0, 4, 3, -2}
	b.Scored = [game.NumPlayers]bool{false, true, true, true}
	return b, trick
}
