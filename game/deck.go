package game

import "golang.org/x/exp/rand"

// Deal shuffles a full deck with rng and splits it into four hands
func Deal(rng *rand.Rand) [NumPlayers][]Card {
	deck := AllCards()
	if len(deck)%NumPlayers != 0 {
		panic("deck does not split evenly between players")
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	var hands [NumPlayers][]Card
	size := len(deck) / NumPlayers
	for p := range hands {
		hands[p] = deck[p*size : (p+1)*size : (p+1)*size]
	}
	return hands
}

// RotateHands moves every hand shift seats to the left
func RotateHands(hands [NumPlayers][]Card, shift int) [NumPlayers][]Card {
	var rotated [NumPlayers][]Card
	for p := range hands {
		rotated[(p+shift)%NumPlayers] = hands[p]
	}
	return rotated
}
