package searcher

import "hearts/game"

// MaxCutoff plays every rollout to the end of the round
const MaxCutoff = game.NumPlayers * game.NumTricks
