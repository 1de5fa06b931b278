package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Round is the full-information state of one deal: passing followed by 13 tricks.
// It is mutable; search code clones it before branching.
type Round struct {
	hands        [NumPlayers]*Hand
	trick        []Move
	current      int
	tricks       int // Completed tricks
	heartsPlayed bool
	passed       bool
	scores       [NumPlayers]int // Raw scores, before the moon adjustment
	scored       [NumPlayers]bool
}

// Snapshot describes a round in progress, used to rebuild a Round from a
// player's knowledge plus sampled opponent hands
type Snapshot struct {
	Hands        [NumPlayers][]Card
	Trick        []Move
	Current      int
	Tricks       int
	HeartsPlayed bool
	Scores       [NumPlayers]int
	Scored       [NumPlayers]bool
}

func NewRound(hands [NumPlayers][]Card) *Round {
	r := &Round{}
	for p := range hands {
		r.hands[p] = NewHand(hands[p])
	}
	r.current = r.twoOfClubsHolder()
	return r
}

func Resume(s Snapshot) *Round {
	if s.Current < 0 || s.Current >= NumPlayers {
		panic(fmt.Sprintf("current player %d out of range", s.Current))
	}
	r := &Round{
		trick:        slices.Clone(s.Trick),
		current:      s.Current,
		tricks:       s.Tricks,
		heartsPlayed: s.HeartsPlayed,
		passed:       true,
		scores:       s.Scores,
		scored:       s.Scored,
	}
	for p := range s.Hands {
		r.hands[p] = NewHand(s.Hands[p])
	}
	return r
}

func (r *Round) twoOfClubsHolder() int {
	for p, hand := range r.hands {
		if hand.Contains(TwoOfClubs) {
			return p
		}
	}
	panic("no player holds the two of clubs")
}

func (r *Round) Clone() *Round {
	c := *r
	c.trick = slices.Clone(r.trick)
	for p := range r.hands {
		c.hands[p] = r.hands[p].Clone()
	}
	return &c
}

// Pass validates all four selections before moving any card, then hands the
// lead to whoever holds the two of clubs afterwards
func (r *Round) Pass(direction PassDirection, passes [NumPlayers][]Card) error {
	if r.passed || r.tricks > 0 || len(r.trick) > 0 {
		panic("cards can only be passed once before the first trick")
	}
	for p := range passes {
		err := ValidatePass(p, r.hands[p], direction, passes[p])
		if err != nil {
			return err
		}
	}

	r.passed = true
	if direction == PassNone {
		return nil
	}
	for p := range passes {
		for _, card := range passes[p] {
			r.hands[p].Remove(card)
		}
	}
	for p := range passes {
		r.hands[direction.Receiver(p)].Add(passes[p]...)
	}
	r.current = r.twoOfClubsHolder()
	return nil
}

func (r *Round) Current() int {
	return r.current
}

func (r *Round) Hand(player int) []Card {
	return r.hands[player].Cards()
}

func (r *Round) Trick() []Move {
	return slices.Clone(r.trick)
}

func (r *Round) FirstTrick() bool {
	return r.tricks == 0
}

func (r *Round) TricksPlayed() int {
	return r.tricks
}

func (r *Round) HeartsPlayed() bool {
	return r.heartsPlayed
}

func (r *Round) RawScores() [NumPlayers]int {
	return r.scores
}

func (r *Round) Scored() [NumPlayers]bool {
	return r.scored
}

func (r *Round) Done() bool {
	return r.tricks == NumTricks
}

// Result returns the final scores once all tricks are played
func (r *Round) Result() ([NumPlayers]int, bool) {
	if !r.Done() {
		return r.scores, false
	}
	return ShootTheMoon(r.scores, r.scored), true
}

func (r *Round) LegalCards() []Card {
	if r.Done() {
		return nil
	}
	return LegalCards(r.hands[r.current], r.trick, r.FirstTrick(), r.heartsPlayed)
}

func (r *Round) Validate(move Move) error {
	if move.Player != r.current {
		return &InvalidCardError{Player: move.Player, Cards: []Card{move.Card}, Reason: ReasonNotYourTurn}
	}
	return ValidateCard(move.Player, r.hands[move.Player], r.trick, move.Card, r.FirstTrick(), r.heartsPlayed)
}

// Play applies the current player's card without checking the rules.
// It returns the trick once its fourth card is played and nil otherwise.
func (r *Round) Play(card Card) *Trick {
	if r.Done() {
		panic("round is already complete")
	}
	if !r.hands[r.current].Remove(card) {
		panic(fmt.Sprintf("player %d does not hold %s", r.current, card))
	}
	r.trick = append(r.trick, Move{Player: r.current, Card: card})
	if card.Suit == Hearts {
		r.heartsPlayed = true
	}

	if len(r.trick) < NumPlayers {
		r.current = (r.current + 1) % NumPlayers
		return nil
	}

	winner := TrickWinner(r.trick)
	r.scores[winner] += TrickScore(r.trick)
	for _, m := range r.trick {
		if m.Card.HasScore() {
			r.scored[winner] = true
			break
		}
	}
	trick := &Trick{Moves: r.trick, Winner: winner}
	r.trick = nil
	r.tricks++
	r.current = winner
	return trick
}
