package searcher

import (
	"testing"

	"hearts/belief"
	"hearts/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestDeterminize(t *testing.T) {
	t.Run("every opponent gets as many cards as they hold", func(t *testing.T) {
		for _, played := range []int{0, 1, 2, 3, 5, 17, 30, 46} {
			truth, own := midRound(t, uint64(played), played)
			trick := truth.Round().Trick()

			world, hands := Determinize(own, trick, rand.New(rand.NewSource(9)))

			var sampled, actual []game.Card
			for p := range hands {
				require.Len(t, hands[p], len(truth.Round().Hand(p)), "player %d after %d cards", p, played)
				require.ElementsMatch(t, hands[p], world.Round().Hand(p))
				sampled = append(sampled, hands[p]...)
				actual = append(actual, truth.Round().Hand(p)...)
			}
			require.ElementsMatch(t, actual, sampled, "Sampled hands should cover exactly the unplayed cards")
			require.ElementsMatch(t, own.Hand.Cards(), hands[own.Player], "Own hand is never resampled")
			require.Equal(t, own.Player, world.Player())
			require.Equal(t, trick, world.Round().Trick())
		}
	})

	t.Run("voids are respected when enough other cards are unseen", func(t *testing.T) {
		hands := game.Deal(rand.New(rand.NewSource(11)))
		own := belief.New(0, hands[0])
		own.StillHas[game.Clubs.Index()][1] = false
		own.StillHas[game.Hearts.Index()][1] = false

		for seed := uint64(0); seed < 20; seed++ {
			_, sampled := Determinize(own, nil, rand.New(rand.NewSource(seed)))
			for _, c := range sampled[1] {
				require.NotEqual(t, game.Clubs, c.Suit)
				require.NotEqual(t, game.Hearts, c.Suit)
			}
		}
	})

	t.Run("same seed gives the same world", func(t *testing.T) {
		_, own := midRound(t, 5, 8)
		_, first := Determinize(own, nil, rand.New(rand.NewSource(3)))
		_, second := Determinize(own, nil, rand.New(rand.NewSource(3)))
		require.Equal(t, first, second)
	})

	t.Run("each seat sees its own sampled hand", func(t *testing.T) {
		_, own := midRound(t, 8, 12)
		world, hands := Determinize(own, nil, rand.New(rand.NewSource(4)))
		for p := range hands {
			b := world.Belief(p)
			require.Equal(t, p, b.Player)
			require.ElementsMatch(t, hands[p], b.Hand.Cards())
		}
	})

	t.Run("opponents who already played get one card fewer", func(t *testing.T) {
		own, trick := queenDuel()
		_, hands := Determinize(own, trick, rand.New(rand.NewSource(1)))
		require.Len(t, hands[0], 2)
		for p := 1; p < game.NumPlayers; p++ {
			require.Len(t, hands[p], 1)
			require.Equal(t, game.Hearts, hands[p][0].Suit)
		}
	})
}
