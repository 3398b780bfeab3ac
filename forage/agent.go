package forage

import (
	"errors"
	"fmt"
	"math/rand"
)

// Training errors.
var (
	ErrDimensionTooSmall = errors.New("world dimension must be at least 2")
	ErrNegativeFood      = errors.New("food count must not be negative")
	ErrNoEpisodes        = errors.New("episode count must be positive")
	ErrFoodOutOfBounds   = errors.New("food position is outside the world")
	ErrNilRand           = errors.New("random source is required")
)

const minDimension = 2

// Config describes one training call.
type Config struct {
	NumFood   int
	Dimension int
	Episodes  int

	// Food, when not empty, replaces random placement and NumFood is ignored.
	Food []Position

	// OnEpisode is called after every training episode.
	OnEpisode func(EpisodeStats)
}

// Result is the outcome of a training call.
type Result struct {
	QTable        *QTable    `json:"q_table"`
	BestPath      []string   `json:"best_path"`
	FoodLocations []Position `json:"food_locations"`

	// Epsilon is the exploration rate left after the last episode.
	Epsilon float64 `json:"-"`
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Dimension < minDimension {
		return fmt.Errorf("%w: got %d", ErrDimensionTooSmall, c.Dimension)
	}
	if c.Episodes <= 0 {
		return fmt.Errorf("%w: got %d", ErrNoEpisodes, c.Episodes)
	}
	if len(c.Food) == 0 && c.NumFood < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeFood, c.NumFood)
	}
	grid := Grid{Dimension: c.Dimension}
	for _, p := range c.Food {
		if !grid.InBound(p) {
			return fmt.Errorf("%w: [%d, %d]", ErrFoodOutOfBounds, p.Row, p.Col)
		}
	}
	return nil
}

// Train places food, trains a fresh table for cfg.Episodes episodes and
// extracts the greedy path. The returned table is the trained one; updates
// made while extracting the path are not reflected in it.
func Train(cfg Config, rng *rand.Rand) (*Result, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := Grid{Dimension: cfg.Dimension}
	food := cfg.Food
	if len(food) == 0 {
		food = PlaceFood(rng, cfg.Dimension, cfg.NumFood)
	} else {
		food = append([]Position(nil), food...)
	}

	trainer := NewTrainer(grid, food, rng)
	trainer.Run(cfg.Episodes, cfg.OnEpisode)

	return &Result{
		QTable:        trainer.Table(),
		BestPath:      ExtractPath(grid, trainer.Table(), food),
		FoodLocations: food,
		Epsilon:       trainer.Epsilon(),
	}, nil
}
