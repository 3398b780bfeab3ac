package forage

const (
	// StartHealth is the health at the start of every episode and extraction.
	StartHealth = 100

	// FoodHealth is the health gained per food item eaten.
	FoodHealth = 10
)

// rewardSchedule parameterises the shared transition for each phase.
type rewardSchedule struct {
	food   float64 // reward for eating
	step   float64 // reward for an ordinary move
	starve float64 // reward once health is exhausted

	// chargeFirst pays the health cost of a move before the starvation check.
	chargeFirst bool

	// starveEnds marks starvation as terminal.
	starveEnds bool
}

var (
	trainingSchedule = rewardSchedule{
		food:   10,
		step:   -1,
		starve: -100,

		starveEnds: true,
	}

	extractionSchedule = rewardSchedule{
		food:   100,
		step:   -20,
		starve: -100,

		chargeFirst: true,
	}
)

// outcome describes a single transition.
type outcome struct {
	next   Position
	reward float64
	ate    bool
	done   bool
}

// rollout is the mutable state of one episode or extraction walk.
type rollout struct {
	grid   Grid
	table  *QTable
	food   *FoodSet
	pos    Position
	health int
}

func newRollout(grid Grid, table *QTable, food []Position) *rollout {
	return &rollout{
		grid:   grid,
		table:  table,
		food:   NewFoodSet(food),
		pos:    grid.Origin(),
		health: StartHealth,
	}
}

// step moves the agent, scores the move under s, updates the table entry for
// the departed state and advances the position.
func (r *rollout) step(a Action, s rewardSchedule) outcome {
	out := outcome{next: r.grid.Move(r.pos, a)}

	if r.food.Take(out.next) {
		out.reward = s.food
		out.ate = true
		r.health += FoodHealth
	} else {
		if s.chargeFirst {
			r.health--
		}
		if r.health <= 0 {
			out.reward = s.starve
			out.done = s.starveEnds
		} else {
			out.reward = s.step
			if !s.chargeFirst {
				r.health--
			}
		}
	}

	r.table.Update(r.pos, a, out.reward, out.next)
	r.pos = out.next
	return out
}
