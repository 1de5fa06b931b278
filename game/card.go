package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Suit int

const (
	Spades   Suit = iota + 1 // 1
	Clubs                    // 2
	Diamonds                 // 3
	Hearts                   // 4
)

var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

// Index maps the suit to 0..3
func (s Suit) Index() int {
	return int(s) - 1
}

func SuitFromIndex(i int) Suit {
	if i < 0 || i >= NumSuits {
		panic(fmt.Sprintf("suit index %d out of range", i))
	}
	return Suit(i + 1)
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

type Rank int

const (
	Two   Rank = 2
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Index maps the rank to 0..12
func (r Rank) Index() int {
	return int(r) - int(Two)
}

func RankFromIndex(i int) Rank {
	if i < 0 || i >= NumRanks {
		panic(fmt.Sprintf("rank index %d out of range", i))
	}
	return Rank(i) + Two
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

type Card struct {
	Rank Rank
	Suit Suit
}

var (
	TwoOfClubs     = Card{Rank: Two, Suit: Clubs}
	QueenOfSpades  = Card{Rank: Queen, Suit: Spades}
	JackOfDiamonds = Card{Rank: Jack, Suit: Diamonds}
)

// Index gives a dense id in 0..51, suit-major
func (c Card) Index() int {
	return c.Suit.Index()*NumRanks + c.Rank.Index()
}

func CardFromIndex(i int) Card {
	return Card{Rank: RankFromIndex(i % NumRanks), Suit: SuitFromIndex(i / NumRanks)}
}

func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit >= Spades && c.Suit <= Hearts
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// AllCards lists the full deck ordered by suit then rank
func AllCards() []Card {
	cards := make([]Card, NumSuits*NumRanks)
	for i := range cards {
		cards[i] = CardFromIndex(i)
	}
	return cards
}

// SortCards orders cards by suit then rank in place
func SortCards(cards []Card) {
	slices.SortFunc(cards, func(a, b Card) int {
		return a.Index() - b.Index()
	})
}

// BySuit splits cards into per-suit slices indexed by Suit.Index, ranks ascending
func BySuit(cards []Card) [NumSuits][]Card {
	var bySuit [NumSuits][]Card
	for _, card := range cards {
		bySuit[card.Suit.Index()] = append(bySuit[card.Suit.Index()], card)
	}
	for i := range bySuit {
		SortCards(bySuit[i])
	}
	return bySuit
}
