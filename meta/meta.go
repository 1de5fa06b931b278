// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 4

// SAMPLES defines the number of determinized worlds searched per decision.
const SAMPLES = 8

// DURATION defines the search budget of each sample.
const DURATION = 50 * time.Millisecond

// WITH_CUTOFF defines the cutoff value for MCTS, 0 plays every rollout out.
const WITH_CUTOFF = 0

// DEALS defines the number of deals in a tournament.
const DEALS = 4

// ROTATIONS defines how many seatings each deal is replayed with.
const ROTATIONS = 4

// OUTPUT_DIR defines where tournament results are written.
const OUTPUT_DIR = "experiments/results"
