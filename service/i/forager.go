package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-forager/domain"
	"github.com/google/uuid"
)

// Forager trains foraging agents and serves the stored runs.
type Forager interface {
	// Train runs one training call and returns the finished run.
	Train(ctx context.Context, req dmn.RunRequest) (*dmn.Run, error)

	// Run returns a stored run.
	Run(id uuid.UUID) (*dmn.Run, error)

	// Recent returns up to limit stored runs, newest first.
	Recent(ctx context.Context, limit int) ([]*dmn.Run, error)
}
