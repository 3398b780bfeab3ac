package forage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepTrainingFoodPickup(t *testing.T) {
	r := newRollout(Grid{Dimension: 3}, NewQTable(3), []Position{{0, 1}})

	out := r.step(Right, trainingSchedule)

	assert.True(t, out.ate)
	assert.False(t, out.done)
	assert.Equal(t, 10.0, out.reward)
	assert.Equal(t, StartHealth+FoodHealth, r.health)
	assert.Equal(t, 0, r.food.Len())
	assert.Equal(t, Position{0, 1}, r.pos)
	assert.InDelta(t, 8.0, r.table.Get(Position{0, 0}, Right), 1e-9)

	// Walking back onto the eaten cell and out again is an ordinary step.
	out = r.step(Left, trainingSchedule)
	assert.False(t, out.ate)
	assert.Equal(t, -1.0, out.reward)
	assert.Equal(t, StartHealth+FoodHealth-1, r.health)
	assert.InDelta(t, 0.8*(-1+0.9*8), r.table.Get(Position{0, 1}, Left), 1e-9)

	out = r.step(Right, trainingSchedule)
	assert.False(t, out.ate, "food is consumed once per episode")
}

func TestStepTrainingStarvationEndsEpisode(t *testing.T) {
	r := newRollout(Grid{Dimension: 3}, NewQTable(3), nil)
	r.health = 0

	out := r.step(Down, trainingSchedule)

	assert.True(t, out.done)
	assert.Equal(t, -100.0, out.reward)
	assert.Equal(t, 0, r.health)
}

func TestStepTrainingFoodBeatsStarvation(t *testing.T) {
	r := newRollout(Grid{Dimension: 3}, NewQTable(3), []Position{{1, 0}})
	r.health = 0

	out := r.step(Down, trainingSchedule)

	assert.False(t, out.done)
	assert.Equal(t, 10.0, out.reward)
	assert.Equal(t, FoodHealth, r.health)
}

func TestStepExtractionSchedule(t *testing.T) {
	r := newRollout(Grid{Dimension: 3}, NewQTable(3), []Position{{1, 0}})

	out := r.step(Down, extractionSchedule)
	assert.Equal(t, 100.0, out.reward)
	assert.Equal(t, StartHealth+FoodHealth, r.health)

	out = r.step(Right, extractionSchedule)
	assert.Equal(t, -20.0, out.reward)
	assert.Equal(t, StartHealth+FoodHealth-1, r.health)

	out = r.step(Left, extractionSchedule)
	assert.Equal(t, Position{1, 0}, r.pos)
	assert.False(t, out.ate, "food is consumed once per walk")
	assert.Equal(t, -20.0, out.reward)
	assert.Equal(t, StartHealth+FoodHealth-2, r.health)

	r.health = 1
	out = r.step(Right, extractionSchedule)
	assert.Equal(t, -100.0, out.reward)
	assert.False(t, out.done, "starvation does not stop the walk")
	assert.Equal(t, 0, r.health)
}
