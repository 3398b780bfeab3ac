package forage

import (
	"encoding/json"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Learning constants of the Bellman update.
const (
	LearningRate   = 0.8
	DiscountFactor = 0.9
)

// QTable holds one value per (row, col, action). It is stored as a
// Dimension²×NumActions matrix, one matrix row per grid cell.
type QTable struct {
	dim  int
	data *mat.Dense
}

// NewQTable returns a zeroed table for a dim×dim grid.
func NewQTable(dim int) *QTable {
	return &QTable{
		dim:  dim,
		data: mat.NewDense(dim*dim, NumActions, nil),
	}
}

// Dimension returns the grid side the table was built for.
func (q *QTable) Dimension() int {
	return q.dim
}

func (q *QTable) index(pos Position) int {
	return pos.Row*q.dim + pos.Col
}

// Get returns the value of taking a from pos.
func (q *QTable) Get(pos Position, a Action) float64 {
	return q.data.At(q.index(pos), int(a))
}

// Set overwrites the value of taking a from pos.
func (q *QTable) Set(pos Position, a Action, v float64) {
	q.data.Set(q.index(pos), int(a), v)
}

// Max returns the best action value available at pos.
func (q *QTable) Max(pos Position) float64 {
	return floats.Max(q.data.RawRowView(q.index(pos)))
}

// ArgMax returns the best action at pos. Ties go to the lowest action index.
func (q *QTable) ArgMax(pos Position) Action {
	return Action(floats.MaxIdx(q.data.RawRowView(q.index(pos))))
}

// Update applies the Q-learning rule to (pos, a) after observing reward and
// landing on next.
func (q *QTable) Update(pos Position, a Action, reward float64, next Position) float64 {
	old := q.Get(pos, a)
	updated := old + LearningRate*(reward+DiscountFactor*q.Max(next)-old)
	q.Set(pos, a, updated)
	return updated
}

// Clone returns an independent copy of the table.
func (q *QTable) Clone() *QTable {
	return &QTable{dim: q.dim, data: mat.DenseCopyOf(q.data)}
}

// StateValues returns the best action value of every cell as a dim×dim map.
func (q *QTable) StateValues() [][]float64 {
	values := make([][]float64, q.dim)
	for r := 0; r < q.dim; r++ {
		values[r] = make([]float64, q.dim)
		for c := 0; c < q.dim; c++ {
			values[r][c] = q.Max(Position{Row: r, Col: c})
		}
	}
	return values
}

// Values returns the table as a nested (dim, dim, NumActions) array.
func (q *QTable) Values() [][][]float64 {
	values := make([][][]float64, q.dim)
	for r := 0; r < q.dim; r++ {
		values[r] = make([][]float64, q.dim)
		for c := 0; c < q.dim; c++ {
			row := q.data.RawRowView(q.index(Position{Row: r, Col: c}))
			values[r][c] = append([]float64(nil), row...)
		}
	}
	return values
}

// MarshalJSON encodes the table as its nested array form.
func (q *QTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Values())
}
