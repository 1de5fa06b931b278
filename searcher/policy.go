package searcher

import (
	"math"

	"hearts/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// Rewards map a seat's score onto [0, 1]: the best possible round (taking
// only the jack of diamonds) is 1 and the worst (everyone else shot the
// moon) is 0
const (
	BestScore  = game.JackOfDiamondsBonus
	WorstScore = game.MoonPoints
)

func normalize(score float64) float64 {
	return (WorstScore - score) / (WorstScore - BestScore)
}

type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// weight is the selection score of a child; unvisited children score 0
func (u uct) weight(q float64, n float64) float64 {
	if n == 0 {
		return 0
	}
	return u.evaluate(q, n)
}
