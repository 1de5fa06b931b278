package game

import (
	"errors"
	"fmt"
)

var ErrInvalidCard = errors.New("invalid card")

// InvalidCardError is returned when an actor plays or passes a card the rules forbid
type InvalidCardError struct {
	Player int
	Cards  []Card
	Reason string
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("player %d played %v: %s", e.Player, e.Cards, e.Reason)
}

func (e *InvalidCardError) Unwrap() error {
	return ErrInvalidCard
}

const (
	ReasonNotInHand       = "a player can only play one of their cards"
	ReasonNotYourTurn     = "a player can only play on their turn"
	ReasonFollowSuit      = "when possible, the suit of the first card should be followed"
	ReasonTwoOfClubsLead  = "the first trick should be led with the two of clubs"
	ReasonHeartsLead      = "when possible, the first card should not be hearts if no hearts have been played yet"
	ReasonFirstTrickScore = "when possible, cards in the first trick should not carry points"
	ReasonNoPass          = "no cards should be passed this round"
	ReasonPassCount       = "exactly three cards should be passed this round"
	ReasonPassNotInHand   = "only cards from your hand can be passed"
	ReasonPassDuplicate   = "the same card cannot be passed twice"
)

// LegalCards returns the cards of hand that may be played into trick, in hand order
func LegalCards(hand *Hand, trick []Move, firstTrick, heartsPlayed bool) []Card {
	cards := hand.cards
	if len(trick) > 0 {
		led := trick[0].Card.Suit
		if hand.AnyOfSuit(led) {
			return filter(cards, func(c Card) bool { return c.Suit == led })
		}
		if firstTrick && !hand.AllHaveScore() {
			return filter(cards, func(c Card) bool { return !c.HasScore() })
		}
		return filter(cards, func(Card) bool { return true })
	}

	if firstTrick && hand.Contains(TwoOfClubs) {
		return []Card{TwoOfClubs}
	}
	if !heartsPlayed && !hand.AllHearts() {
		return filter(cards, func(c Card) bool { return c.Suit != Hearts })
	}
	return filter(cards, func(Card) bool { return true })
}

// ValidateCard checks a card against the trick so far and the player's hand
func ValidateCard(player int, hand *Hand, trick []Move, card Card, firstTrick, heartsPlayed bool) error {
	invalid := func(reason string) error {
		return &InvalidCardError{Player: player, Cards: []Card{card}, Reason: reason}
	}

	if !hand.Contains(card) {
		return invalid(ReasonNotInHand)
	}
	if len(trick) > 0 {
		led := trick[0].Card.Suit
		if card.Suit != led && hand.AnyOfSuit(led) {
			return invalid(ReasonFollowSuit)
		}
	} else {
		if firstTrick && hand.Contains(TwoOfClubs) && card != TwoOfClubs {
			return invalid(ReasonTwoOfClubsLead)
		}
		if card.Suit == Hearts && !heartsPlayed && !hand.AllHearts() {
			return invalid(ReasonHeartsLead)
		}
	}
	if firstTrick && card.HasScore() && !hand.AllHaveScore() {
		return invalid(ReasonFirstTrickScore)
	}
	return nil
}

// ValidatePass checks one player's pass selection for the given direction
func ValidatePass(player int, hand *Hand, direction PassDirection, cards []Card) error {
	invalid := func(reason string) error {
		return &InvalidCardError{Player: player, Cards: cards, Reason: reason}
	}

	if direction == PassNone {
		if len(cards) != 0 {
			return invalid(ReasonNoPass)
		}
		return nil
	}
	if len(cards) != PassSize {
		return invalid(ReasonPassCount)
	}
	for i, card := range cards {
		if !hand.Contains(card) {
			return invalid(ReasonPassNotInHand)
		}
		for _, other := range cards[:i] {
			if other == card {
				return invalid(ReasonPassDuplicate)
			}
		}
	}
	return nil
}

func filter(cards []Card, keep func(Card) bool) []Card {
	kept := make([]Card, 0, len(cards))
	for _, c := range cards {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	return kept
}
