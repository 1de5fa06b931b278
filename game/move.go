package game

import "fmt"

// Move is a card played by a player into the current trick
type Move struct {
	Player int
	Card   Card
}

func (m Move) String() string {
	return fmt.Sprintf("p%d:%s", m.Player, m.Card)
}

// Trick is a completed set of four moves and the player who took it
type Trick struct {
	Moves  []Move
	Winner int
}

// TrickWinner returns the player of the highest card of the led suit
func TrickWinner(moves []Move) int {
	if len(moves) == 0 {
		panic("trick has no moves")
	}
	led := moves[0].Card.Suit
	best := moves[0]
	for _, m := range moves[1:] {
		if m.Card.Suit == led && m.Card.Rank > best.Card.Rank {
			best = m
		}
	}
	return best.Player
}

type PassDirection int

const (
	PassLeft PassDirection = iota
	PassRight
	PassCross
	PassNone
)

// PassDirectionFromRound cycles left, right, cross, none
func PassDirectionFromRound(round int) PassDirection {
	return PassDirection(round % 4)
}

// Shift is the seat offset from the passer to the receiver
func (d PassDirection) Shift() int {
	switch d {
	case PassLeft:
		return 1
	case PassCross:
		return 2
	case PassRight:
		return 3
	default:
		return 0
	}
}

// Receiver is the seat that receives the cards passed by player
func (d PassDirection) Receiver(player int) int {
	return (player + d.Shift()) % NumPlayers
}

func (d PassDirection) String() string {
	switch d {
	case PassLeft:
		return "left"
	case PassRight:
		return "right"
	case PassCross:
		return "cross"
	case PassNone:
		return "none"
	default:
		return "unknown"
	}
}
