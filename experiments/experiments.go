package experiments

import (
	"fmt"
	"strings"

	"hearts/agent"
	"hearts/engine"
	"hearts/experiments/metrics"
	"hearts/game"
	"hearts/meta"
	"hearts/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Standings is the outcome of a tournament
type Standings struct {
	Run    string
	Dir    string // Empty when nothing was written
	Seats  [game.NumPlayers]string
	Games  int
	Totals [game.NumPlayers]int // Summed final scores per seat, lower is better
}

// RunTournament plays config.Deals deals. Each deal is replayed
// config.Rotations times with the hands moved one more seat to the left, so
// every seat gets to play the same cards.
func RunTournament(config meta.Config) (Standings, error) {
	err := config.Validate()
	if err != nil {
		return Standings{}, fmt.Errorf("invalid tournament config: %w", err)
	}

	standings := Standings{Run: uuid.NewString(), Seats: config.Seats}
	rng := rand.New(rand.NewSource(config.Seed))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting tournament %s with seats %v...", standings.Run, config.Seats)

	for deal := 0; deal < config.Deals; deal++ {
		direction := game.PassDirectionFromRound(deal)
		hands := game.Deal(rng)

		for rotation := 0; rotation < config.Rotations; rotation++ {
			log.Info().Msgf("starting deal %d of %d rotation %d, passing %s...", deal+1, config.Deals, rotation, direction)

			actors, err := newActors(config, rng)
			if err != nil {
				return standings, err
			}
			record, err := engine.NewLocalEngine(actors).Run(game.RotateHands(hands, rotation), direction)
			if err != nil {
				return standings, fmt.Errorf("deal %d rotation %d: %w", deal+1, rotation, err)
			}

			id := uuid.NewString()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Run:        standings.Run,
				Deal:       deal,
				Rotation:   rotation,
				Direction:  direction.String(),
				Seats:      config.Seats,
				GameMetric: record.GameMetric,
			})
			for _, mm := range record.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}

			standings.Games++
			for p, s := range record.Scores {
				standings.Totals[p] += s
			}
			log.Info().Msgf("completed deal %d rotation %d with scores %v, totals %v", deal+1, rotation, record.Scores, standings.Totals)
		}
	}

	log.Info().Msgf("completed tournament %s", standings.Run)

	if config.OutputDir == "" {
		return standings, nil
	}
	dir, err := store(config.OutputDir, standings.Run, gameRecords, moveRecords)
	if err != nil {
		return standings, err
	}
	standings.Dir = dir
	return standings, nil
}

func store(outputDir, run string, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(outputDir, run)
	if err != nil {
		return "", fmt.Errorf("failed to create tournament writer: %w", err)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

func newActors(config meta.Config, rng *rand.Rand) ([game.NumPlayers]agent.Actor, error) {
	var actors [game.NumPlayers]agent.Actor
	for p, kind := range config.Seats {
		a, err := NewActor(kind, config, rng.Uint64())
		if err != nil {
			return actors, fmt.Errorf("seat %d: %w", p, err)
		}
		actors[p] = a
	}
	return actors, nil
}

// NewActor builds an actor of the given kind: random, greedy, mcts, flat, or
// cmd:<command> for an external program speaking the JSON line protocol.
func NewActor(kind string, config meta.Config, seed uint64) (agent.Actor, error) {
	switch {
	case kind == "random":
		return agent.NewRandomActor(seed), nil
	case kind == "greedy":
		return agent.NewGreedyActor(seed), nil
	case kind == "mcts":
		return newMCTSActor(config, searcher.TreeMode, seed)
	case kind == "flat":
		return newMCTSActor(config, searcher.FlatMode, seed)
	case strings.HasPrefix(kind, "cmd:"):
		fields := strings.Fields(strings.TrimPrefix(kind, "cmd:"))
		if len(fields) == 0 {
			return nil, fmt.Errorf("no command given in %q", kind)
		}
		return agent.NewSubprocessActor(fields[0], fields[1:]...)
	default:
		return nil, fmt.Errorf("unknown actor %q", kind)
	}
}

func newMCTSActor(config meta.Config, mode searcher.Mode, seed uint64) (agent.Actor, error) {
	playout, ok := searcher.PlayoutByName(config.Playout)
	if !ok {
		return nil, fmt.Errorf("unknown playout %q", config.Playout)
	}

	options := []searcher.Option{
		searcher.WithSamples(config.Samples),
		searcher.WithMode(mode),
		searcher.WithPlayout(playout),
		searcher.WithSeed(seed),
	}
	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}

	options = append(options, searcher.WithMetrics())
	return agent.NewMCTSActor(searcher.NewMCTS(config.Goroutines, options...), seed), nil
}
