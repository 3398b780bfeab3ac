package forage

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainerEpsilonSchedule(t *testing.T) {
	trainer := NewTrainer(Grid{Dimension: 4}, []Position{{2, 2}}, rand.New(rand.NewSource(5)))
	assert.Equal(t, InitialEpsilon, trainer.Epsilon())

	var history []EpisodeStats
	trainer.Run(60, func(s EpisodeStats) {
		history = append(history, s)
	})

	require.Len(t, history, 60)
	prev := InitialEpsilon
	for i, s := range history {
		assert.Equal(t, i+1, s.Episode)
		assert.LessOrEqual(t, s.Epsilon, prev)
		assert.GreaterOrEqual(t, s.Epsilon, MinEpsilon)
		assert.LessOrEqual(t, s.Epsilon, InitialEpsilon)
		prev = s.Epsilon
	}
	assert.InDelta(t, 1.0-EpsilonDecay, history[0].Epsilon, 1e-12)
	assert.Equal(t, MinEpsilon, trainer.Epsilon())
}

func TestTrainerEpisodesEndByStarvation(t *testing.T) {
	food := []Position{{1, 1}, {2, 3}, {3, 2}}
	trainer := NewTrainer(Grid{Dimension: 4}, food, rand.New(rand.NewSource(9)))

	trainer.Run(25, func(s EpisodeStats) {
		// Each step without food costs one health point and the last step
		// is the starvation penalty.
		assert.LessOrEqual(t, s.Eaten, len(food))
		assert.Equal(t, StartHealth+FoodHealth*s.Eaten+s.Eaten+1, s.Steps)
	})

	assert.Equal(t, []Position{{1, 1}, {2, 3}, {3, 2}}, trainer.food, "ground truth untouched")
}

func TestTrainerValuesStayFinite(t *testing.T) {
	trainer := NewTrainer(Grid{Dimension: 5}, []Position{{1, 4}, {4, 1}}, rand.New(rand.NewSource(3)))
	trainer.Run(200, nil)

	for _, row := range trainer.Table().Values() {
		for _, cell := range row {
			for _, v := range cell {
				assert.False(t, math.IsNaN(v))
				assert.False(t, math.IsInf(v, 0))
			}
		}
	}
}
