package heuristic

import (
	"hearts/belief"
	"hearts/game"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Weights of the hand evaluation

const (
	DiscardWeight = 0.8 // Credit for an exhausted suit turned into a discard
	HandWeight    = 0.8 // Overall scale of the hand cost
	HeartWinCost  = 4.0 // Expected points per heart trick likely to be won
	DiscardRounds = game.HandSize
)

type emptyCost struct {
	cost float64
	suit int
}

// EvaluateHand estimates the points a player will still take with the cards in
// bySuit, given what is left in game. Lower is better. The discard simulation
// draws from rng, so the result varies slightly between calls.
func EvaluateHand(b *belief.State, bySuit [game.NumSuits][]game.Card, rng *rand.Rand) float64 {
	var total float64
	var empties []emptyCost
	add := func(suit game.Suit, cost float64, costs []float64) {
		total += cost
		for _, c := range costs {
			empties = append(empties, emptyCost{cost: c, suit: suit.Index()})
		}
	}

	spades := sortedRanks(bySuit[game.Spades.Index()])
	cost, costs := spadesCost(spades)
	add(game.Spades, cost, costs)

	clubs := sortedRanks(bySuit[game.Clubs.Index()])
	cost, costs = clubsCost(clubs, b.RanksInGame(game.Clubs))
	add(game.Clubs, cost, costs)

	diamonds := sortedRanks(bySuit[game.Diamonds.Index()])
	cost, costs = diamondsCost(diamonds, b.RanksInGame(game.Diamonds))
	add(game.Diamonds, cost, costs)

	hearts := sortedRanks(bySuit[game.Hearts.Index()])
	cost, costs = heartsCost(hearts, b.RanksInGame(game.Hearts))
	add(game.Hearts, cost, costs)

	// Most expensive discards are spent first
	slices.SortStableFunc(empties, func(a, b emptyCost) int {
		switch {
		case a.cost > b.cost:
			return -1
		case a.cost < b.cost:
			return 1
		default:
			return 0
		}
	})

	var left [game.NumSuits]int
	for i := range bySuit {
		left[i] = len(bySuit[i])
	}
	for i := 0; i < DiscardRounds; i++ {
		suit := rng.Intn(game.NumSuits)
		if left[suit] > 0 {
			left[suit]--
			continue
		}
		if len(empties) == 0 {
			continue
		}
		e := empties[len(empties)-1]
		empties = empties[:len(empties)-1]
		if left[e.suit] > 0 {
			left[e.suit]--
		}
		total += DiscardWeight * e.cost
	}

	return HandWeight * total
}

func sortedRanks(cards []game.Card) []game.Rank {
	ranks := make([]game.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	slices.Sort(ranks)
	return ranks
}

func count(ranks []game.Rank, keep func(game.Rank) bool) int {
	n := 0
	for _, r := range ranks {
		if keep(r) {
			n++
		}
	}
	return n
}

func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// wins counts the tricks a holding of ranks is likely to take when the other
// players spend their lowest cards under it and their highest over it.
// Both slices are ascending; all includes ranks.
func wins(ranks, all []game.Rank) float64 {
	if len(ranks) == len(all) {
		return 0
	}
	ranks = slices.Clone(ranks)
	all = slices.Clone(all)

	won := 0.0
	for len(ranks) > 0 && len(all) >= len(ranks)+3 {
		if ranks[0] >= all[3] {
			won++
			ranks = ranks[1:]
			all = all[4:]
		} else {
			ranks = ranks[1:]
			all = all[1 : len(all)-2]
		}
	}
	return won
}

func spadesCost(ranks []game.Rank) (float64, []float64) {
	if len(ranks) == 0 {
		return 0, nil
	}

	big := count(ranks, func(r game.Rank) bool { return r > game.Queen })
	small := count(ranks, func(r game.Rank) bool { return r < game.Queen })

	if slices.Contains(ranks, game.Queen) {
		switch len(ranks) {
		case 1:
			return 9, []float64{-9}
		case 2:
			if big > 0 {
				return 8, []float64{-5, -3}
			}
			return 7, []float64{-7}
		case 3:
			if small > 0 {
				return 5, []float64{-5}
			}
			return 5, []float64{-3}
		case 4:
			return 2, []float64{-1}
		default:
			return 0, nil
		}
	}

	switch big {
	case 0:
		return 0, nil
	case 1:
		cost := float64(saturatingSub(5, small))
		return cost, []float64{-cost}
	case 2:
		cost := float64(saturatingSub(7, 2*small))
		return cost, []float64{-cost / 2, -cost / 2}
	default:
		panic("there can only be 0, 1 or 2 spades above the queen")
	}
}

// clubsCost treats the two of clubs as gone and assumes the first trick
// swallows the three highest clubs the player does not hold
func clubsCost(ranks, all []game.Rank) (float64, []float64) {
	if len(ranks) == 0 {
		return 0, nil
	}

	haveTwo := ranks[0] == game.Two
	if haveTwo {
		ranks = ranks[1:]
		all = slices.Clone(all)
		if len(all) > 0 {
			all = all[1:]
		}
		removed := 0
		for i := len(all) - 1; i >= 0 && removed < 3; i-- {
			if !slices.Contains(ranks, all[i]) {
				all = slices.Delete(all, i, i+1)
				removed++
			}
		}
	}
	return wins(ranks, all), nil
}

func diamondsCost(ranks, all []game.Rank) (float64, []float64) {
	if len(ranks) == 0 {
		return 0, nil
	}
	return wins(ranks, all) + jackOfDiamondsCost(ranks, all), nil
}

func heartsCost(ranks, all []game.Rank) (float64, []float64) {
	if len(ranks) == 0 {
		return 0, nil
	}
	return wins(ranks, all) * HeartWinCost, nil
}

// jackOfDiamondsCost is the expected bonus from catching the jack of diamonds
func jackOfDiamondsCost(ranks, all []game.Rank) float64 {
	if !slices.Contains(all, game.Jack) {
		return 0
	}
	small := count(ranks, func(r game.Rank) bool { return r < game.Jack })
	big := count(ranks, func(r game.Rank) bool { return r > game.Jack })
	jack := slices.Contains(ranks, game.Jack)
	bigLeft := count(all, func(r game.Rank) bool { return r > game.Jack })

	switch big {
	case 0:
		if !jack {
			return 0
		}
		if small >= bigLeft {
			return -8
		}
		return -float64(saturatingSub(8, 4*(bigLeft-small)))
	case 1:
		if jack {
			if small >= bigLeft-1 {
				return -8
			}
			return -float64(saturatingSub(8, 2*(bigLeft-small-1)))
		}
		if small >= bigLeft-1 {
			return -3
		}
		return -float64(saturatingSub(3, bigLeft-small-1))
	default:
		if jack {
			return -8
		}
		if small >= bigLeft-big {
			return -5
		}
		return -float64(saturatingSub(5, 2*(bigLeft-small-big)))
	}
}
