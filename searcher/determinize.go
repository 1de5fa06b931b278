package searcher

import (
	"fmt"

	"hearts/belief"
	"hearts/game"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Determinize deals the unseen cards to the opponents of own.Player, who must
// be the player to move. Each opponent gets exactly as many cards as they
// still hold. Cards of suits an opponent is known to be void in are dealt to
// them only when nothing else is left, which is a preference and not a
// guarantee: a late opponent can still receive a suit they are void in.
func Determinize(own *belief.State, trick []game.Move, rng *rand.Rand) (*State, [game.NumPlayers][]game.Card) {
	view := own.Clone()
	view.ObserveTrick(trick)
	player := view.Player

	var played [game.NumPlayers]bool
	for _, m := range trick {
		if m.Player == player {
			panic("the determinizing player has already played in this trick")
		}
		played[m.Player] = true
	}

	pool := view.Unseen()
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	opponents := game.NumPlayers - 1
	floor := len(pool) / opponents
	ceil := (len(pool) + opponents - 1) / opponents

	var hands [game.NumPlayers][]game.Card
	hands[player] = view.Hand.Cards()
	for p := 0; p < game.NumPlayers; p++ {
		if p == player {
			continue
		}
		size := ceil
		if played[p] {
			size = floor
		}
		if size > len(pool) {
			panic(fmt.Sprintf("player %d needs %d cards but only %d are unseen", p, size, len(pool)))
		}

		voids := view.Voids(p)
		slices.SortStableFunc(pool, func(a, b game.Card) int {
			return voidRank(voids, a) - voidRank(voids, b)
		})
		hands[p] = slices.Clone(pool[:size])
		pool = pool[size:]
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}
	if len(pool) != 0 {
		panic(fmt.Sprintf("%d unseen cards were not dealt", len(pool)))
	}

	round := game.Resume(game.Snapshot{
		Hands:        hands,
		Trick:        trick,
		Current:      player,
		Tricks:       game.NumTricks - len(hands[player]),
		HeartsPlayed: view.HeartsPlayed,
		Scores:       view.Scores,
		Scored:       view.Scored,
	})

	var beliefs [game.NumPlayers]*belief.State
	for p := range beliefs {
		beliefs[p] = view.WithHand(p, hands[p])
	}
	return NewState(round, beliefs), hands
}

// voidRank orders cards of suits the player may still hold first
func voidRank(voids []game.Suit, card game.Card) int {
	if slices.Contains(voids, card.Suit) {
		return 1
	}
	return 0
}
