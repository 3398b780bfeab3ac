package i

import (
	dmn "github.com/beka-birhanu/vinom-forager/domain"
	"github.com/google/uuid"
)

// RunRepo defines the interface for training run persistence.
type RunRepo interface {
	// Save inserts or updates a run in the repository.
	Save(run *dmn.Run) error

	// ByID retrieves a run by its unique ID.
	// Returns an error if the run is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Run, error)
}
