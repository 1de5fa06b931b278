package agent

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"

	"hearts/game"

	"github.com/rs/zerolog/log"
)

// Wire format: one JSON value per line in each direction. Cards are
// [rank, suit] and moves [player, rank, suit], suits numbered 1..4 from spades.
// Only play_card and get_pass replies are read; any other reply is an
// acknowledgement and only has to be valid JSON.
type message struct {
	Message     string    `json:"message"`
	Player      *int      `json:"pidx,omitempty"`
	Cards       [][2]int  `json:"cards,omitempty"`
	Direction   string    `json:"direction,omitempty"`
	PlayedMoves *[][3]int `json:"played_moves,omitempty"` // Present, possibly empty, on play_card and end_round
	Winner      *int      `json:"winner_pidx,omitempty"`
	Scores      []int     `json:"scores,omitempty"`
}

type reply struct {
	Card  []int   `json:"card,omitempty"`
	Cards [][]int `json:"cards,omitempty"`
}

type jsonActor struct {
	w   io.Writer
	r   *bufio.Scanner
	cmd *exec.Cmd
}

// NewJSONActor speaks the line protocol over r and w. Protocol errors panic
// since the Actor contract has no error path.
func NewJSONActor(r io.Reader, w io.Writer) Actor {
	return &jsonActor{w: w, r: bufio.NewScanner(r)}
}

// NewSubprocessActor starts name and speaks the line protocol over its stdin and stdout
func NewSubprocessActor(name string, args ...string) (Actor, error) {
	cmd := exec.Command(name, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdin of %s: %w", name, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout of %s: %w", name, err)
	}
	err = cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}
	return &jsonActor{w: stdin, r: bufio.NewScanner(stdout), cmd: cmd}, nil
}

func (a *jsonActor) Initialize(player int, hand []game.Card) {
	a.tell(message{Message: "initialize", Player: &player, Cards: encodeCards(hand)})
}

func (a *jsonActor) GetPass(direction game.PassDirection) []game.Card {
	r := a.ask(message{Message: "get_pass", Direction: direction.String()})
	cards := make([]game.Card, len(r.Cards))
	for i, c := range r.Cards {
		cards[i] = decodeCard(c)
	}
	return cards
}

func (a *jsonActor) EndPass(received []game.Card) {
	a.tell(message{Message: "end_pass", Cards: encodeCards(received)})
}

func (a *jsonActor) PlayCard(trick []game.Move) game.Card {
	r := a.ask(message{Message: "play_card", PlayedMoves: encodeMoves(trick)})
	return decodeCard(r.Card)
}

func (a *jsonActor) EndTrick(winner int, trick []game.Move) {
	a.tell(message{Message: "end_round", Winner: &winner, PlayedMoves: encodeMoves(trick)})
}

func (a *jsonActor) EndGame(scores [game.NumPlayers]int) {
	a.tell(message{Message: "end_game", Scores: scores[:]})
	if a.cmd == nil {
		return
	}
	if closer, ok := a.w.(io.Closer); ok {
		err := closer.Close()
		if err != nil {
			log.Warn().Err(err).Msgf("failed to close stdin of %s", a.cmd.Path)
		}
	}
	err := a.cmd.Wait()
	if err != nil {
		log.Warn().Err(err).Msgf("%s did not exit cleanly", a.cmd.Path)
	}
}

// ask sends m and decodes the reply
func (a *jsonActor) ask(m message) reply {
	var r reply
	err := json.Unmarshal(a.exchange(m), &r)
	if err != nil {
		panic(fmt.Sprintf("failed to decode reply to %s message: %v", m.Message, err))
	}
	return r
}

// tell sends m and discards the acknowledgement
func (a *jsonActor) tell(m message) {
	a.exchange(m)
}

func (a *jsonActor) exchange(m message) json.RawMessage {
	line, err := json.Marshal(m)
	if err != nil {
		panic(fmt.Sprintf("failed to encode %s message: %v", m.Message, err))
	}
	_, err = a.w.Write(append(line, '\n'))
	if err != nil {
		panic(fmt.Sprintf("failed to send %s message: %v", m.Message, err))
	}

	if !a.r.Scan() {
		panic(fmt.Sprintf("no reply to %s message: %v", m.Message, a.r.Err()))
	}
	raw := json.RawMessage(append([]byte{}, a.r.Bytes()...))
	if !json.Valid(raw) {
		panic(fmt.Sprintf("reply to %s message is not JSON: %q", m.Message, raw))
	}
	return raw
}

func encodeCards(cards []game.Card) [][2]int {
	encoded := make([][2]int, len(cards))
	for i, c := range cards {
		encoded[i] = [2]int{int(c.Rank), int(c.Suit)}
	}
	return encoded
}

// encodeMoves never returns nil so an empty trick is sent as []
func encodeMoves(moves []game.Move) *[][3]int {
	encoded := make([][3]int, len(moves))
	for i, m := range moves {
		encoded[i] = [3]int{m.Player, int(m.Card.Rank), int(m.Card.Suit)}
	}
	return &encoded
}

func decodeCard(raw []int) game.Card {
	if len(raw) != 2 {
		panic(fmt.Sprintf("card should be [rank, suit], got %v", raw))
	}
	c := game.Card{Rank: game.Rank(raw[0]), Suit: game.Suit(raw[1])}
	if !c.Valid() {
		panic(fmt.Sprintf("invalid card %v", raw))
	}
	return c
}
