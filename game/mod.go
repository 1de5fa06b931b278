package game

// Table constants for a four-player game of Hearts

const (
	NumPlayers = 4
	NumSuits   = 4
	NumRanks   = 13
	HandSize   = 13
	NumTricks  = 13
	PassSize   = 3
)
