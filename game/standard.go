package game

// Standard scoring: every heart is worth one point, the Queen of Spades
// thirteen and the Jack of Diamonds takes ten points off.

const (
	HeartPoints         = 1
	QueenOfSpadesPoints = 13
	JackOfDiamondsBonus = -10
	MoonPoints          = 36 // Awarded to everyone else when one player takes every scoring card

	// RoundPoints is the sum of raw scores over the four players for any complete round
	RoundPoints = NumRanks*HeartPoints + QueenOfSpadesPoints + JackOfDiamondsBonus
)

func (c Card) Score() int {
	switch {
	case c.Suit == Hearts:
		return HeartPoints
	case c == QueenOfSpades:
		return QueenOfSpadesPoints
	case c == JackOfDiamonds:
		return JackOfDiamondsBonus
	default:
		return 0
	}
}

// HasScore reports whether the card changes the score of whoever takes it
func (c Card) HasScore() bool {
	return c.Score() != 0
}

func TrickScore(moves []Move) int {
	score := 0
	for _, move := range moves {
		score += move.Card.Score()
	}
	return score
}

// ShootTheMoon adjusts raw round scores when exactly one player took scoring
// cards: that player ends on 0 and the other three on MoonPoints.
func ShootTheMoon(scores [NumPlayers]int, scored [NumPlayers]bool) [NumPlayers]int {
	shooter := -1
	for p := 0; p < NumPlayers; p++ {
		if !scored[p] {
			continue
		}
		if shooter >= 0 {
			return scores
		}
		shooter = p
	}
	if shooter < 0 {
		return scores
	}

	var adjusted [NumPlayers]int
	for p := range adjusted {
		if p != shooter {
			adjusted[p] = MoonPoints
		}
	}
	return adjusted
}
