package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the tournament settings. Defaults come from the constants in
// this package and can be overridden by HEARTS_* variables, read from the
// environment or a .env file.
type Config struct {
	Seats      [4]string // Actor kind per seat: random, greedy, mcts, flat or cmd:<path>
	Deals      int
	Rotations  int
	Seed       uint64
	Goroutines int
	Samples    int
	Duration   time.Duration
	Episodes   int
	Cutoff     int
	Playout    string
	OutputDir  string
	LogLevel   string
}

func Default() Config {
	return Config{
		Seats:      [4]string{"mcts", "greedy", "greedy", "greedy"},
		Deals:      DEALS,
		Rotations:  ROTATIONS,
		Seed:       1,
		Goroutines: GO_ROUTINES,
		Samples:    SAMPLES,
		Duration:   DURATION,
		Cutoff:     WITH_CUTOFF,
		Playout:    "heuristic",
		OutputDir:  OUTPUT_DIR,
		LogLevel:   "info",
	}
}

// Load reads the given .env files, or ./.env when none are given, then
// applies the environment over the defaults. A missing default .env is fine.
func Load(files ...string) (Config, error) {
	err := godotenv.Load(files...)
	if err != nil && (len(files) > 0 || !errors.Is(err, fs.ErrNotExist)) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies HEARTS_* variables found by lookup over the defaults
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	if v, ok := lookup("HEARTS_SEATS"); ok {
		seats := strings.Split(v, ",")
		if len(seats) != len(c.Seats) {
			return c, fmt.Errorf("HEARTS_SEATS needs %d comma separated actors, got %q", len(c.Seats), v)
		}
		for i, s := range seats {
			c.Seats[i] = strings.TrimSpace(s)
		}
	}

	ints := map[string]*int{
		"HEARTS_DEALS":      &c.Deals,
		"HEARTS_ROTATIONS":  &c.Rotations,
		"HEARTS_GOROUTINES": &c.Goroutines,
		"HEARTS_SAMPLES":    &c.Samples,
		"HEARTS_EPISODES":   &c.Episodes,
		"HEARTS_CUTOFF":     &c.Cutoff,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("failed to parse %s: %w", key, err)
		}
		*dst = n
	}

	if v, ok := lookup("HEARTS_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("failed to parse HEARTS_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v, ok := lookup("HEARTS_DURATION"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("failed to parse HEARTS_DURATION: %w", err)
		}
		c.Duration = d
	}
	if v, ok := lookup("HEARTS_PLAYOUT"); ok {
		c.Playout = v
	}
	if v, ok := lookup("HEARTS_OUTPUT_DIR"); ok {
		c.OutputDir = v
	}
	if v, ok := lookup("HEARTS_LOG_LEVEL"); ok {
		c.LogLevel = v
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Deals <= 0 {
		return fmt.Errorf("deals must be positive, got %d", c.Deals)
	}
	if c.Rotations <= 0 || c.Rotations > len(c.Seats) {
		return fmt.Errorf("rotations must be between 1 and %d, got %d", len(c.Seats), c.Rotations)
	}
	if c.Goroutines <= 0 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.Duration <= 0 && c.Episodes <= 0 {
		return errors.New("either a search duration or episodes is required")
	}
	return nil
}
