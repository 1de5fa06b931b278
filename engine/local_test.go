package engine

import (
	"errors"
	"testing"

	"hearts/agent"
	"hearts/game"
	"hearts/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// carelessActor passes and plays the lowest-indexed cards of its hand, ignoring the rules
type carelessActor struct {
	hand *game.Hand
	pass int
}

func (a *carelessActor) Initialize(player int, hand []game.Card) {
	cards := append([]game.Card{}, hand...)
	game.SortCards(cards)
	a.hand = game.NewHand(cards)
}

func (a *carelessActor) GetPass(direction game.PassDirection) []game.Card {
	if direction == game.PassNone {
		return nil
	}
	cards := a.hand.Cards()[:a.pass]
	for _, c := range cards {
		a.hand.Remove(c)
	}
	return cards
}

func (a *carelessActor) EndPass(received []game.Card) { a.hand.Add(received...) }

func (a *carelessActor) PlayCard(trick []game.Move) game.Card {
	card := a.hand.Cards()[0]
	a.hand.Remove(card)
	return card
}

func (a *carelessActor) EndTrick(winner int, trick []game.Move) {}
func (a *carelessActor) EndGame(scores [game.NumPlayers]int)    {}

func greedyTable(seed uint64) [game.NumPlayers]agent.Actor {
	var actors [game.NumPlayers]agent.Actor
	for p := range actors {
		actors[p] = agent.NewGreedyActor(seed + uint64(p))
	}
	return actors
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("greedy table after passing left", func(t *testing.T) {
		hands := game.Deal(rand.New(rand.NewSource(2024)))
		record, err := NewLocalEngine(greedyTable(1)).Run(hands, game.PassLeft)
		require.NoError(t, err)

		total := 0
		for _, s := range record.RawScores {
			total += s
		}
		require.Equal(t, game.RoundPoints, total, "Raw scores should always sum to the round total")
		require.Len(t, record.Tricks, game.NumTricks)

		// Rebuild the hands after passing to find the two of clubs
		holder := -1
		for p := range hands {
			after := game.NewHand(hands[p])
			for _, c := range record.Passes[p] {
				after.Remove(c)
			}
			giver := (p + game.NumPlayers - game.PassLeft.Shift()) % game.NumPlayers
			after.Add(record.Passes[giver]...)
			if after.Contains(game.TwoOfClubs) {
				holder = p
			}
		}
		require.Equal(t, holder, record.FirstLeader)
		require.Equal(t, game.Move{Player: holder, Card: game.TwoOfClubs}, record.Tricks[0].Moves[0])
	})

	t.Run("winner of each trick leads the next", func(t *testing.T) {
		record, err := NewLocalEngine(greedyTable(5)).Run(game.Deal(rand.New(rand.NewSource(5))), game.PassNone)
		require.NoError(t, err)
		for i := 1; i < len(record.Tricks); i++ {
			require.Equal(t, record.Tricks[i-1].Winner, record.Tricks[i].Moves[0].Player)
		}
	})

	t.Run("an illegal card ends the deal", func(t *testing.T) {
		actors := greedyTable(3)
		for p := range actors {
			actors[p] = &carelessActor{pass: game.PassSize}
		}
		// Player 0 holds the two of clubs among spades and leads a spade
		deck := game.AllCards()
		var hands [game.NumPlayers][]game.Card
		for p := range hands {
			hands[p] = append([]game.Card{}, deck[p*game.HandSize:(p+1)*game.HandSize]...)
		}
		hands[0][0], hands[1][0] = hands[1][0], hands[0][0]

		_, err := NewLocalEngine(actors).Run(hands, game.PassNone)
		require.Error(t, err)
		require.True(t, errors.Is(err, game.ErrInvalidCard))

		var invalid *game.InvalidCardError
		require.True(t, errors.As(err, &invalid))
		require.Equal(t, game.ReasonTwoOfClubsLead, invalid.Reason)
		require.Equal(t, 0, invalid.Player)
	})

	t.Run("a short pass is rejected before any card moves", func(t *testing.T) {
		actors := greedyTable(4)
		actors[2] = &carelessActor{pass: 2}
		_, err := NewLocalEngine(actors).Run(game.Deal(rand.New(rand.NewSource(9))), game.PassCross)

		var invalid *game.InvalidCardError
		require.True(t, errors.As(err, &invalid))
		require.Equal(t, game.ReasonPassCount, invalid.Reason)
		require.Equal(t, 2, invalid.Player)
	})

	t.Run("searching actors report their move metrics", func(t *testing.T) {
		actors := greedyTable(6)
		actors[0] = agent.NewMCTSActor(searcher.NewMCTS(1, searcher.WithEpisodes(10), searcher.WithSamples(1), searcher.WithSeed(6), searcher.WithMetrics()), 6)

		record, err := NewLocalEngine(actors).Run(game.Deal(rand.New(rand.NewSource(6))), game.PassRight)
		require.NoError(t, err)
		require.NotEmpty(t, record.MoveMetrics)
		for _, m := range record.MoveMetrics {
			require.Equal(t, 0, m.Player)
			require.Equal(t, 10, m.Episodes)
		}
		require.Equal(t, record.Scores, record.GameMetric.Scores)
	})

	t.Run("panics on an empty seat", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocalEngine([game.NumPlayers]agent.Actor{})
		})
	})
}
