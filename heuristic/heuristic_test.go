package heuristic

import (
	"hearts/belief"
	"hearts/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func ranks(rs ...int) []game.Rank {
	out := make([]game.Rank, len(rs))
	for i, r := range rs {
		out[i] = game.Rank(r)
	}
	return out
}

func allRanks() []game.Rank {
	return ranks(2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14)
}

func TestWins(t *testing.T) {
	t.Run("holding every remaining card wins nothing", func(t *testing.T) {
		require.Zero(t, wins(ranks(3, 9), ranks(3, 9)))
	})

	t.Run("a lone ace takes a trick", func(t *testing.T) {
		require.Equal(t, 1.0, wins(ranks(14), allRanks()))
	})

	t.Run("a lone two ducks", func(t *testing.T) {
		require.Zero(t, wins(ranks(2), allRanks()))
	})
}

func TestSpadesCost(t *testing.T) {
	t.Run("unguarded queen is the most expensive holding", func(t *testing.T) {
		cost, empties := spadesCost(ranks(12))
		require.Equal(t, 9.0, cost)
		require.Equal(t, []float64{-9}, empties)
	})

	t.Run("queen with three guards", func(t *testing.T) {
		cost, empties := spadesCost(ranks(3, 5, 12, 13))
		require.Equal(t, 2.0, cost)
		require.Equal(t, []float64{-1}, empties)
	})

	t.Run("ace and king without guards", func(t *testing.T) {
		cost, empties := spadesCost(ranks(13, 14))
		require.Equal(t, 7.0, cost)
		require.Equal(t, []float64{-3.5, -3.5}, empties)
	})

	t.Run("low spades cost nothing", func(t *testing.T) {
		cost, empties := spadesCost(ranks(2, 6, 9))
		require.Zero(t, cost)
		require.Empty(t, empties)
	})
}

func TestJackOfDiamondsCost(t *testing.T) {
	t.Run("jack with enough small guards is a sure bonus", func(t *testing.T) {
		require.Equal(t, -8.0, jackOfDiamondsCost(ranks(2, 3, 4, 11), allRanks()))
	})

	t.Run("no jack and no big diamonds is worth nothing", func(t *testing.T) {
		require.Zero(t, jackOfDiamondsCost(ranks(2, 3), allRanks()))
	})

	t.Run("jack already played is worth nothing", func(t *testing.T) {
		require.Zero(t, jackOfDiamondsCost(ranks(14), ranks(2, 3, 12, 13, 14)))
	})

	t.Run("one big diamond without the jack", func(t *testing.T) {
		require.Equal(t, -1.0, jackOfDiamondsCost(ranks(14), allRanks()))
	})
}

func TestEvaluateTrick(t *testing.T) {
	t.Run("a card that cannot win costs nothing", func(t *testing.T) {
		b := belief.New(0, []game.Card{{Rank: 3, Suit: game.Spades}})
		trick := []game.Move{{Player: 3, Card: game.Card{Rank: 5, Suit: game.Spades}}}
		require.Zero(t, EvaluateTrick(b, trick, game.Card{Rank: 3, Suit: game.Spades}))
	})

	t.Run("the last card takes the whole trick", func(t *testing.T) {
		b := belief.New(0, []game.Card{{Rank: 14, Suit: game.Spades}})
		trick := []game.Move{
			{Player: 1, Card: game.Card{Rank: 5, Suit: game.Spades}},
			{Player: 2, Card: game.QueenOfSpades},
			{Player: 3, Card: game.Card{Rank: 4, Suit: game.Hearts}},
		}
		require.Equal(t, 14.0, EvaluateTrick(b, trick, game.Card{Rank: 14, Suit: game.Spades}))
	})
}

func TestOvertakeOdds(t *testing.T) {
	t.Run("nobody left to play", func(t *testing.T) {
		require.Zero(t, overtakeOdds(3, 0, 4, 4))
	})

	t.Run("a single holder with every overtaking card", func(t *testing.T) {
		require.InDelta(t, 1.0, overtakeOdds(1, 1, 0, 2), 1e-9)
	})

	t.Run("odds stay within bounds", func(t *testing.T) {
		for n := 1; n <= 3; n++ {
			for a := 0; a <= n; a++ {
				for g := 0; g <= 6; g++ {
					for b := 0; b <= 6; b++ {
						odds := overtakeOdds(float64(n), float64(a), float64(g), float64(b))
						require.GreaterOrEqual(t, odds, -1e-9)
						require.LessOrEqual(t, odds, 1+1e-9)
					}
				}
			}
		}
	})
}

func TestChooseCard(t *testing.T) {
	t.Run("ducks under the queen of spades", func(t *testing.T) {
		hand := []game.Card{{Rank: 14, Suit: game.Spades}, {Rank: 3, Suit: game.Spades}}
		b := belief.New(0, hand)
		b.FirstTrick = false
		trick := []game.Move{
			{Player: 1, Card: game.Card{Rank: 5, Suit: game.Spades}},
			{Player: 2, Card: game.QueenOfSpades},
			{Player: 3, Card: game.Card{Rank: 7, Suit: game.Spades}},
		}
		b.ObserveTrick(trick)

		got := ChooseCard(b, trick, rand.New(rand.NewSource(1)))
		require.Equal(t, game.Card{Rank: 3, Suit: game.Spades}, got)
	})

	t.Run("always returns a legal card", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		r := game.NewRound(game.Deal(rng))
		b := belief.New(r.Current(), r.Hand(r.Current()))
		got := ChooseCard(b, nil, rng)
		require.Equal(t, game.TwoOfClubs, got)
	})
}

func TestChoosePass(t *testing.T) {
	t.Run("passes three distinct cards from the hand", func(t *testing.T) {
		for seed := uint64(0); seed < 10; seed++ {
			rng := rand.New(rand.NewSource(seed))
			hand := game.Deal(rng)[0]
			b := belief.New(0, hand)

			passed := ChoosePass(b, rng)
			require.Len(t, passed, game.PassSize)
			held := game.NewHand(hand)
			seen := map[game.Card]bool{}
			for _, c := range passed {
				require.True(t, held.Contains(c))
				require.False(t, seen[c])
				seen[c] = true
			}
		}
	})

	t.Run("a single-suit hand passes its three highest cards", func(t *testing.T) {
		var hand []game.Card
		for r := game.Two; r <= game.Ace; r++ {
			hand = append(hand, game.Card{Rank: r, Suit: game.Hearts})
		}
		passed := ChoosePass(belief.New(0, hand), rand.New(rand.NewSource(3)))
		require.ElementsMatch(t, []game.Card{
			{Rank: game.Queen, Suit: game.Hearts},
			{Rank: game.King, Suit: game.Hearts},
			{Rank: game.Ace, Suit: game.Hearts},
		}, passed)
	})
}

func TestDivisions(t *testing.T) {
	t.Run("every split passes three cards", func(t *testing.T) {
		all := divisions()
		require.Len(t, all, 16)
		for _, d := range all {
			require.Equal(t, game.PassSize, d[0]+d[1]+d[2]+d[3])
		}
	})
}
