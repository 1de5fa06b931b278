package game

import "golang.org/x/exp/slices"

// Hand is the mutable set of cards a player holds
type Hand struct {
	cards []Card
}

func NewHand(cards []Card) *Hand {
	return &Hand{cards: slices.Clone(cards)}
}

func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Clone() *Hand {
	return NewHand(h.cards)
}

func (h *Hand) Contains(card Card) bool {
	return slices.Contains(h.cards, card)
}

func (h *Hand) Add(cards ...Card) {
	h.cards = append(h.cards, cards...)
}

// Remove drops the card from the hand and reports whether it was held
func (h *Hand) Remove(card Card) bool {
	i := slices.Index(h.cards, card)
	if i < 0 {
		return false
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	return true
}

func (h *Hand) AnyOfSuit(suit Suit) bool {
	return slices.ContainsFunc(h.cards, func(c Card) bool { return c.Suit == suit })
}

func (h *Hand) AllHearts() bool {
	for _, c := range h.cards {
		if c.Suit != Hearts {
			return false
		}
	}
	return true
}

func (h *Hand) AllHaveScore() bool {
	for _, c := range h.cards {
		if !c.HasScore() {
			return false
		}
	}
	return true
}
