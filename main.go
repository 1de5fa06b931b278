package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"hearts/experiments"
	"hearts/meta"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

func main() {
	config, err := meta.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	seats := flag.String("seats", strings.Join(config.Seats[:], ","), "Comma separated actors: random, greedy, mcts, flat or cmd:<command>")
	flag.IntVar(&config.Deals, "deals", config.Deals, "Number of deals")
	flag.IntVar(&config.Rotations, "rotations", config.Rotations, "Seatings each deal is replayed with")
	flag.Uint64Var(&config.Seed, "seed", config.Seed, "Seed of the tournament")
	flag.IntVar(&config.Goroutines, "goroutines", config.Goroutines, "Number of goroutines searching samples in parallel")
	flag.IntVar(&config.Samples, "samples", config.Samples, "Determinized worlds searched per decision")
	flag.DurationVar(&config.Duration, "duration", config.Duration, "Search duration of each sample")
	flag.IntVar(&config.Episodes, "episodes", config.Episodes, "Search episodes of each sample")
	flag.IntVar(&config.Cutoff, "cutoff", config.Cutoff, "Moves played out before estimating, 0 plays out every rollout")
	flag.StringVar(&config.Playout, "playout", config.Playout, "Playout policy: random or heuristic")
	flag.StringVar(&config.OutputDir, "out", config.OutputDir, "Directory for game and move records, empty to skip")
	flag.StringVar(&config.LogLevel, "log", config.LogLevel, "Log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	parts := strings.Split(*seats, ",")
	if len(parts) != len(config.Seats) {
		log.Fatal().Msgf("need %d seats, got %q", len(config.Seats), *seats)
	}
	for i, s := range parts {
		config.Seats[i] = strings.TrimSpace(s)
	}

	standings, err := experiments.RunTournament(config)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
	printStandings(standings)
}

// printStandings prints the seats from best to worst, highlighting the winner
func printStandings(s experiments.Standings) {
	out := termenv.NewOutput(os.Stdout)
	order := []int{0, 1, 2, 3}
	slices.SortStableFunc(order, func(a, b int) int {
		return s.Totals[a] - s.Totals[b]
	})

	fmt.Fprintln(out, out.String(fmt.Sprintf("Tournament %s, %d games", s.Run, s.Games)).Bold())
	for rank, seat := range order {
		line := fmt.Sprintf("%d. seat %d %-10s %5d", rank+1, seat, s.Seats[seat], s.Totals[seat])
		style := out.String(line)
		if s.Totals[seat] == s.Totals[order[0]] {
			style = style.Foreground(out.Color("2")).Bold()
		}
		fmt.Fprintln(out, style)
	}
	if s.Dir != "" {
		fmt.Fprintln(out, out.String("records written to "+s.Dir).Faint())
	}
}
