package forage

import "math/rand"

// Exploration schedule.
const (
	InitialEpsilon = 1.0
	EpsilonDecay   = 0.03
	MinEpsilon     = 0.01
)

// EpisodeStats summarises one training episode.
type EpisodeStats struct {
	Episode int     `json:"episode"`
	Steps   int     `json:"steps"`
	Reward  float64 `json:"reward"`
	Eaten   int     `json:"eaten"`
	Epsilon float64 `json:"epsilon"`
}

// Trainer runs epsilon-greedy Q-learning episodes over a value table.
type Trainer struct {
	grid    Grid
	table   *QTable
	food    []Position
	rng     *rand.Rand
	epsilon float64
}

// NewTrainer builds a trainer over a fresh table. food is the ground truth
// layout; each episode works on its own copy.
func NewTrainer(grid Grid, food []Position, rng *rand.Rand) *Trainer {
	return &Trainer{
		grid:    grid,
		table:   NewQTable(grid.Dimension),
		food:    append([]Position(nil), food...),
		rng:     rng,
		epsilon: InitialEpsilon,
	}
}

// Table returns the table being trained.
func (t *Trainer) Table() *QTable {
	return t.table
}

// Epsilon returns the current exploration rate.
func (t *Trainer) Epsilon() float64 {
	return t.epsilon
}

// Run trains for exactly episodes episodes. onEpisode, when not nil, is
// called after each one.
func (t *Trainer) Run(episodes int, onEpisode func(EpisodeStats)) {
	for ep := 1; ep <= episodes; ep++ {
		stats := t.runEpisode()
		stats.Episode = ep
		t.decayEpsilon()
		stats.Epsilon = t.epsilon
		if onEpisode != nil {
			onEpisode(stats)
		}
	}
}

// runEpisode rolls out from the origin until the agent starves. Health is
// bounded by the food supply so every episode ends.
func (t *Trainer) runEpisode() EpisodeStats {
	r := newRollout(t.grid, t.table, t.food)
	var stats EpisodeStats
	for {
		out := r.step(t.selectAction(r.pos), trainingSchedule)
		stats.Steps++
		stats.Reward += out.reward
		if out.ate {
			stats.Eaten++
		}
		if out.done {
			return stats
		}
	}
}

func (t *Trainer) selectAction(pos Position) Action {
	if t.rng.Float64() < t.epsilon {
		return Action(t.rng.Intn(NumActions))
	}
	return t.table.ArgMax(pos)
}

func (t *Trainer) decayEpsilon() {
	t.epsilon -= EpsilonDecay
	if t.epsilon < MinEpsilon {
		t.epsilon = MinEpsilon
	}
}
