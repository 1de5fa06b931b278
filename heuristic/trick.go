package heuristic

import (
	"math"

	"hearts/belief"
	"hearts/game"
)

// Expected extra points per remaining opponent in the trick

const (
	FollowerHeartPoints = 1.0
	FollowerPoints      = 0.2
	DiscardPoints       = 0.8
	QueenThreat         = 3.0 // Added to a discard while the queen of spades is still out
)

// EvaluateTrick estimates the points the player takes by adding card to trick.
// A card that cannot win the trick is worth 0.
func EvaluateTrick(b *belief.State, trick []game.Move, card game.Card) float64 {
	if len(trick) > 0 {
		first := trick[0].Card
		if card.Suit != first.Suit || card.Rank < first.Rank {
			return 0
		}
	}

	partial := float64(game.TrickScore(trick) + card.Score())
	if len(trick) == game.NumPlayers-1 {
		return partial
	}

	togo := game.NumPlayers - 1 - len(trick)
	suit := card.Suit.Index()
	n, a := 0, 0
	for i := 1; i < game.NumPlayers; i++ {
		if b.StillHas[suit][(b.Player+i)%game.NumPlayers] {
			n++
			if i <= togo {
				a++
			}
		}
	}

	total := b.OpponentCount(card.Suit)
	g := b.OpponentCountBelow(card.Suit, card.Rank)
	if partial < 0 {
		g = total - g
	}
	bb := total - g

	odds := overtakeOdds(float64(n), float64(a), float64(g), float64(bb))

	follow := FollowerPoints
	if card.Suit == game.Hearts {
		follow = FollowerHeartPoints
	}
	discard := DiscardPoints
	if b.OpponentInGame(game.QueenOfSpades) {
		discard += QueenThreat
	}

	return (1 - odds) * (partial + float64(a)*follow + float64(togo-a)*discard)
}

// overtakeOdds is the chance that one of the a players still to play, among n
// opponents holding the suit, receives one of b overtaking cards when g other
// cards of the suit are spread uniformly among the n
func overtakeOdds(n, a, g, b float64) float64 {
	pow := math.Pow
	single := pow(n-1, g) * (pow(n, b) - pow(n-1, b))
	double := pow(n-2, g) * (pow(n, b) - 2*pow(n-1, b) + pow(n-2, b))

	var odds float64
	switch a {
	case 0:
		return 0
	case 1:
		odds = single
	case 2:
		odds = 2*single - double
	default:
		odds = 3*single - 3*double
	}
	if n == 0 {
		return odds
	}
	return odds / pow(n, b+g)
}
