package heuristic

import (
	"math"

	"hearts/belief"
	"hearts/game"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Blend between the hand with projected incoming cards and the hand as kept

const (
	GhostWeight = 0.2
	KeptWeight  = 1 - GhostWeight
)

// ChoosePass returns the three cards to pass. Within a suit the highest cards
// go first, except the two of clubs which is always the first club to go.
func ChoosePass(b *belief.State, rng *rand.Rand) []game.Card {
	hand := b.Hand.Cards()
	if len(hand) < game.PassSize {
		panic("not enough cards to pass")
	}

	bySuit := passOrder(hand)
	ghosts := ghostCards(hand)

	var best [game.NumSuits][]game.Card
	bestCost := math.Inf(1)
	found := false
	for _, division := range divisions() {
		var kept [game.NumSuits][]game.Card
		feasible := true
		for i, d := range division {
			if d > len(bySuit[i]) {
				feasible = false
				break
			}
			kept[i] = bySuit[i][:len(bySuit[i])-d]
		}
		if !feasible {
			continue
		}

		withGhosts := kept
		for _, ghost := range ghosts {
			i := ghost.Suit.Index()
			withGhosts[i] = append(slices.Clone(kept[i]), ghost)
		}
		cost := GhostWeight*EvaluateHand(b, withGhosts, rng) + KeptWeight*EvaluateHand(b, kept, rng)
		if cost < bestCost {
			best, bestCost, found = kept, cost, true
		}
	}
	if !found { // Single-suit hand
		for i := range bySuit {
			best[i] = bySuit[i]
			if len(bySuit[i]) >= game.PassSize {
				best[i] = bySuit[i][:len(bySuit[i])-game.PassSize]
			}
		}
	}

	passed := make([]game.Card, 0, game.PassSize)
	for _, c := range hand {
		if !slices.Contains(best[c.Suit.Index()], c) {
			passed = append(passed, c)
		}
	}
	return passed
}

// passOrder sorts each suit ascending with the two of clubs moved to the end
func passOrder(hand []game.Card) [game.NumSuits][]game.Card {
	bySuit := game.BySuit(hand)
	clubs := bySuit[game.Clubs.Index()]
	if len(clubs) > 0 && clubs[0] == game.TwoOfClubs {
		bySuit[game.Clubs.Index()] = append(slices.Clone(clubs[1:]), game.TwoOfClubs)
	}
	return bySuit
}

// ghostCards projects the dangerous cards likely to be passed in: the queen of
// spades (or the highest spade missing from the top when holding her), and the
// highest club and heart missing from the top
func ghostCards(hand []game.Card) []game.Card {
	held := game.NewHand(hand)
	highestMissing := func(suit game.Suit) (game.Card, bool) {
		for r := game.Ace; r >= game.Two; r-- {
			c := game.Card{Rank: r, Suit: suit}
			if !held.Contains(c) {
				return c, true
			}
		}
		return game.Card{}, false
	}

	var ghosts []game.Card
	if !held.Contains(game.QueenOfSpades) {
		ghosts = append(ghosts, game.QueenOfSpades)
	} else if c, ok := highestMissing(game.Spades); ok {
		ghosts = append(ghosts, c)
	}
	for _, suit := range []game.Suit{game.Clubs, game.Hearts} {
		if c, ok := highestMissing(suit); ok {
			ghosts = append(ghosts, c)
		}
	}
	return ghosts
}

// divisions lists every way to split the passed cards over the four suits,
// at most two from one suit
func divisions() [][game.NumSuits]int {
	var all [][game.NumSuits]int
	for s := 0; s < 3; s++ {
		for c := 0; c < 3; c++ {
			for d := 0; d < 3; d++ {
				for h := 0; h < 3; h++ {
					if s+c+d+h == game.PassSize {
						all = append(all, [game.NumSuits]int{s, c, d, h})
					}
				}
			}
		}
	}
	return all
}
