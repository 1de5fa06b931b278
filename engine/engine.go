package engine

import (
	"hearts/experiments/metrics"
	"hearts/game"
)

// Record is everything observed while playing one deal
type Record struct {
	Direction   game.PassDirection
	Passes      [game.NumPlayers][]game.Card
	FirstLeader int // Holder of the two of clubs after passing
	Tricks      []game.Trick
	RawScores   [game.NumPlayers]int
	Scores      [game.NumPlayers]int
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

type Engine interface {
	// Run plays one deal from passing to the last trick. A rule violation by
	// any actor ends the deal with an error wrapping game.ErrInvalidCard.
	Run(hands [game.NumPlayers][]game.Card, direction game.PassDirection) (Record, error)
}
