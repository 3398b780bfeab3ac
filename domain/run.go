// Package domain holds the records shared between the service and storage layers.
package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-forager/forage"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
)

// RunRequest carries the caller parameters of one training run.
// A nil Seed lets the service pick one.
type RunRequest struct {
	NumFood   int
	Dimension int
	Episodes  int
	Seed      *int64
	Food      []forage.Position
}

// Run is a finished training run as it is stored and served.
type Run struct {
	ID            uuid.UUID         `bson:"_id" json:"id"`
	NumFood       int               `bson:"numFood" json:"num_food"`
	Dimension     int               `bson:"dimension" json:"world_dimension"`
	Episodes      int               `bson:"episodes" json:"num_episodes"`
	Seed          int64             `bson:"seed" json:"seed"`
	QTable        [][][]float64     `bson:"qTable" json:"q_table"`
	BestPath      []string          `bson:"bestPath" json:"best_path"`
	FoodLocations []forage.Position `bson:"foodLocations" json:"food_locations"`
	CreatedAt     time.Time         `bson:"createdAt" json:"created_at"`
}

// NewRun wraps a training result produced from seed into a Run with a fresh ID.
func NewRun(req RunRequest, seed int64, res *forage.Result) *Run {
	return &Run{
		ID:            uuid.New(),
		NumFood:       len(res.FoodLocations),
		Dimension:     req.Dimension,
		Episodes:      req.Episodes,
		Seed:          seed,
		QTable:        res.QTable.Values(),
		BestPath:      res.BestPath,
		FoodLocations: res.FoodLocations,
		CreatedAt:     time.Now().UTC(),
	}
}

// StateValues returns the best action value of every cell.
func (r *Run) StateValues() [][]float64 {
	values := make([][]float64, len(r.QTable))
	for row, cells := range r.QTable {
		values[row] = make([]float64, len(cells))
		for col, actions := range cells {
			if len(actions) == 0 {
				continue
			}
			values[row][col] = floats.Max(actions)
		}
	}
	return values
}
