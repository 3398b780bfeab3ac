// Package forageapi exposes agent training over HTTP.
package forageapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-forager/domain"
	"github.com/beka-birhanu/vinom-forager/forage"
)

// TrainRequest is the body of a training call.
type TrainRequest struct {
	NumFood        *int              `json:"num_food" binding:"required"`
	WorldDimension int               `json:"world_dimension" binding:"required"`
	NumEpisodes    int               `json:"num_episodes" binding:"required"`
	Seed           *int64            `json:"seed"` // omitted means a server-chosen seed; 0 is a valid seed
	FoodLocations  []forage.Position `json:"food_locations"`
}

// TrainResponse carries the trained table, the greedy path and the food layout.
type TrainResponse struct {
	ID            string            `json:"id"`
	QTable        [][][]float64     `json:"q_table"`
	BestPath      []string          `json:"best_path"`
	FoodLocations []forage.Position `json:"food_locations"`
}

// RunSummary describes a stored run without its table.
type RunSummary struct {
	ID             string    `json:"id"`
	NumFood        int       `json:"num_food"`
	WorldDimension int       `json:"world_dimension"`
	NumEpisodes    int       `json:"num_episodes"`
	Seed           int64     `json:"seed"`
	PathLength     int       `json:"path_length"`
	CreatedAt      time.Time `json:"created_at"`
}

func newTrainResponse(run *dmn.Run) *TrainResponse {
	return &TrainResponse{
		ID:            run.ID.String(),
		QTable:        run.QTable,
		BestPath:      run.BestPath,
		FoodLocations: run.FoodLocations,
	}
}

func newRunSummary(run *dmn.Run) RunSummary {
	return RunSummary{
		ID:             run.ID.String(),
		NumFood:        run.NumFood,
		WorldDimension: run.Dimension,
		NumEpisodes:    run.Episodes,
		Seed:           run.Seed,
		PathLength:     len(run.BestPath),
		CreatedAt:      run.CreatedAt,
	}
}
