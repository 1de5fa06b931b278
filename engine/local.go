package engine

import (
	"fmt"
	"time"

	"hearts/agent"
	"hearts/experiments/metrics"
	"hearts/game"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	actors [game.NumPlayers]agent.Actor
}

// NewLocalEngine seats the actors in order; actor i plays seat i
func NewLocalEngine(actors [game.NumPlayers]agent.Actor) Engine {
	for _, a := range actors {
		if a == nil {
			panic("every seat needs an actor")
		}
	}
	return &localEngine{actors: actors}
}

func (e *localEngine) Run(hands [game.NumPlayers][]game.Card, direction game.PassDirection) (Record, error) {
	record := Record{Direction: direction}
	record.GameMetric.StartTime = time.Now()

	round := game.NewRound(hands)
	for p, a := range e.actors {
		a.Initialize(p, round.Hand(p))
	}

	// Passing
	for p, a := range e.actors {
		record.Passes[p] = a.GetPass(direction)
	}
	err := round.Pass(direction, record.Passes)
	if err != nil {
		return record, fmt.Errorf("failed to pass %s: %w", direction, err)
	}
	if direction != game.PassNone {
		for p, cards := range record.Passes {
			e.actors[direction.Receiver(p)].EndPass(cards)
		}
	}
	record.FirstLeader = round.Current()
	record.GameMetric.StartingPlayer = round.Current()
	log.Debug().Msgf("passed %s, player %d leads", direction, round.Current())

	// Tricks
	for !round.Done() {
		player := round.Current()
		a := e.actors[player]
		card := a.PlayCard(round.Trick())

		if reporter, ok := a.(metrics.Reporter); ok {
			if metric, found := reporter.LastMetric(); found {
				record.MoveMetrics = append(record.MoveMetrics, metrics.MoveMetric{
					Trick:        round.TricksPlayed(),
					Player:       player,
					SearchMetric: metric,
				})
			}
		}

		err = round.Validate(game.Move{Player: player, Card: card})
		if err != nil {
			return record, fmt.Errorf("trick %d: %w", round.TricksPlayed()+1, err)
		}

		trick := round.Play(card)
		if trick == nil {
			continue
		}
		record.Tricks = append(record.Tricks, *trick)
		log.Debug().Msgf("trick %d %v taken by player %d", len(record.Tricks), trick.Moves, trick.Winner)
		for _, actor := range e.actors {
			actor.EndTrick(trick.Winner, trick.Moves)
		}
	}

	scores, _ := round.Result()
	for _, a := range e.actors {
		a.EndGame(scores)
	}

	record.RawScores = round.RawScores()
	record.Scores = scores
	record.GameMetric.RawScores = record.RawScores
	record.GameMetric.Scores = scores
	record.GameMetric.EndTime = time.Now()
	record.GameMetric.Duration = record.GameMetric.EndTime.Sub(record.GameMetric.StartTime)
	return record, nil
}
