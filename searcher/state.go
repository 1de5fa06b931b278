package searcher

import (
	"hearts/belief"
	"hearts/game"
)

// Scores are final or projected round scores per seat
type Scores [game.NumPlayers]float64

// State is one fully observable world: the round with every hand known and
// each seat's own view of it, used by the heuristic playout
type State struct {
	round   *game.Round
	beliefs [game.NumPlayers]*belief.State
}

func NewState(round *game.Round, beliefs [game.NumPlayers]*belief.State) *State {
	for p, b := range beliefs {
		if b == nil || b.Player != p {
			panic("every seat needs its own belief state")
		}
	}
	return &State{round: round, beliefs: beliefs}
}

func (s *State) Clone() *State {
	c := &State{round: s.round.Clone()}
	for p, b := range s.beliefs {
		c.beliefs[p] = b.Clone()
	}
	return c
}

func (s *State) Player() int {
	return s.round.Current()
}

func (s *State) Round() *game.Round {
	return s.round
}

func (s *State) Belief(player int) *belief.State {
	return s.beliefs[player]
}

func (s *State) LegalCards() []game.Card {
	return s.round.LegalCards()
}

func (s *State) Done() bool {
	return s.round.Done()
}

func (s *State) Result() Scores {
	result, done := s.round.Result()
	if !done {
		panic("round is not complete")
	}
	var scores Scores
	for p, r := range result {
		scores[p] = float64(r)
	}
	return scores
}

// Play applies the current player's card and lets every seat observe it
func (s *State) Play(card game.Card) *game.Trick {
	player := s.round.Current()
	trick := s.round.Trick()
	led := card.Suit
	if len(trick) > 0 {
		led = trick[0].Card.Suit
	}

	move := game.Move{Player: player, Card: card}
	for p, b := range s.beliefs {
		if p == player {
			b.Play(card, trick)
		} else {
			b.ObserveMove(move, led)
		}
	}

	done := s.round.Play(card)
	if done != nil {
		for _, b := range s.beliefs {
			b.EndTrick(done.Winner, done.Moves)
		}
	}
	return done
}
