package belief

import (
	"hearts/game"

	"golang.org/x/exp/slices"
)

// State is what one player knows about a round: their own hand, which cards
// are still unplayed, who is known to be void in which suit and the scores
// taken so far. The derived counters are kept in step with every observation.
type State struct {
	Player       int
	Hand         *game.Hand
	CardsInGame  [game.NumSuits][game.NumRanks]bool
	StillHas     [game.NumSuits][game.NumPlayers]bool // Indexed by suit then player; false once a player failed to follow that suit
	Scores       [game.NumPlayers]int
	Scored       [game.NumPlayers]bool
	FirstTrick   bool
	HeartsPlayed bool

	derived
}

type derived struct {
	cardsInGameBySuit         [game.NumSuits]int
	opponentCardsInGame       [game.NumSuits][game.NumRanks]bool
	opponentCardsInGameBySuit [game.NumSuits]int
}

func New(player int, hand []game.Card) *State {
	s := &State{
		Player:     player,
		Hand:       game.NewHand(hand),
		FirstTrick: true,
	}
	for suit := range s.CardsInGame {
		for rank := range s.CardsInGame[suit] {
			s.CardsInGame[suit][rank] = true
		}
		for p := range s.StillHas[suit] {
			s.StillHas[suit][p] = true
		}
	}
	s.rebuild()
	return s
}

func (s *State) Clone() *State {
	c := *s
	c.Hand = s.Hand.Clone()
	return &c
}

// WithHand copies the shared knowledge for another seat holding hand
func (s *State) WithHand(player int, hand []game.Card) *State {
	c := *s
	c.Player = player
	c.Hand = game.NewHand(hand)
	c.rebuild()
	return &c
}

func (s *State) rebuild() {
	s.derived = derived{}
	for suit := range s.CardsInGame {
		for rank, inGame := range s.CardsInGame[suit] {
			if !inGame {
				continue
			}
			s.cardsInGameBySuit[suit]++
			card := game.CardFromIndex(suit*game.NumRanks + rank)
			if !s.Hand.Contains(card) {
				s.opponentCardsInGame[suit][rank] = true
				s.opponentCardsInGameBySuit[suit]++
			}
		}
	}
}

func (s *State) InGame(card game.Card) bool {
	return s.CardsInGame[card.Suit.Index()][card.Rank.Index()]
}

// OpponentInGame reports whether card is unplayed and not in the own hand
func (s *State) OpponentInGame(card game.Card) bool {
	return s.opponentCardsInGame[card.Suit.Index()][card.Rank.Index()]
}

func (s *State) CountInGame(suit game.Suit) int {
	return s.cardsInGameBySuit[suit.Index()]
}

func (s *State) OpponentCount(suit game.Suit) int {
	return s.opponentCardsInGameBySuit[suit.Index()]
}

// RanksInGame lists the unplayed ranks of suit in ascending order
func (s *State) RanksInGame(suit game.Suit) []game.Rank {
	ranks := make([]game.Rank, 0, s.CountInGame(suit))
	for i, inGame := range s.CardsInGame[suit.Index()] {
		if inGame {
			ranks = append(ranks, game.RankFromIndex(i))
		}
	}
	return ranks
}

// OpponentCountBelow counts unplayed opponent cards of suit ranked strictly below rank
func (s *State) OpponentCountBelow(suit game.Suit, rank game.Rank) int {
	count := 0
	for i := 0; i < rank.Index() && i < game.NumRanks; i++ {
		if s.opponentCardsInGame[suit.Index()][i] {
			count++
		}
	}
	return count
}

func (s *State) Voids(player int) []game.Suit {
	var voids []game.Suit
	for _, suit := range game.Suits {
		if !s.StillHas[suit.Index()][player] {
			voids = append(voids, suit)
		}
	}
	return voids
}

// Unseen lists the cards still in game that are not in the own hand
func (s *State) Unseen() []game.Card {
	var cards []game.Card
	for suit := range s.opponentCardsInGame {
		for rank, has := range s.opponentCardsInGame[suit] {
			if has {
				cards = append(cards, game.CardFromIndex(suit*game.NumRanks+rank))
			}
		}
	}
	return cards
}

func (s *State) LegalCards(trick []game.Move) []game.Card {
	return game.LegalCards(s.Hand, trick, s.FirstTrick, s.HeartsPlayed)
}

// ObserveMove records a card seen on the table. Observing the same move twice is harmless.
func (s *State) ObserveMove(move game.Move, led game.Suit) {
	suit, rank := move.Card.Suit.Index(), move.Card.Rank.Index()
	if s.CardsInGame[suit][rank] {
		s.CardsInGame[suit][rank] = false
		s.cardsInGameBySuit[suit]--
	}
	if s.opponentCardsInGame[suit][rank] {
		s.opponentCardsInGame[suit][rank] = false
		s.opponentCardsInGameBySuit[suit]--
	}
	if move.Card.Suit != led {
		s.StillHas[led.Index()][move.Player] = false
	}
	if move.Card.Suit == game.Hearts {
		s.HeartsPlayed = true
	}
}

func (s *State) ObserveTrick(moves []game.Move) {
	if len(moves) == 0 {
		return
	}
	led := moves[0].Card.Suit
	for _, m := range moves {
		s.ObserveMove(m, led)
	}
}

// Play removes the own card from the hand and records it on the table
func (s *State) Play(card game.Card, trick []game.Move) {
	if !s.Hand.Remove(card) {
		panic("belief state does not hold the played card")
	}
	led := card.Suit
	if len(trick) > 0 {
		led = trick[0].Card.Suit
	}
	s.ObserveMove(game.Move{Player: s.Player, Card: card}, led)
}

// Pass hands cards to an opponent; they stay in game
func (s *State) Pass(cards []game.Card) {
	for _, c := range cards {
		if !s.Hand.Remove(c) {
			panic("belief state does not hold the passed card")
		}
		if s.InGame(c) && !s.OpponentInGame(c) {
			s.opponentCardsInGame[c.Suit.Index()][c.Rank.Index()] = true
			s.opponentCardsInGameBySuit[c.Suit.Index()]++
		}
	}
}

func (s *State) Receive(cards []game.Card) {
	s.Hand.Add(cards...)
	for _, c := range cards {
		if s.OpponentInGame(c) {
			s.opponentCardsInGame[c.Suit.Index()][c.Rank.Index()] = false
			s.opponentCardsInGameBySuit[c.Suit.Index()]--
		}
	}
}

func (s *State) EndTrick(winner int, moves []game.Move) {
	s.ObserveTrick(moves)
	s.FirstTrick = false
	s.Scores[winner] += game.TrickScore(moves)
	if slices.ContainsFunc(moves, func(m game.Move) bool { return m.Card.HasScore() }) {
		s.Scored[winner] = true
	}
}
