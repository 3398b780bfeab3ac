package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-forager/domain"
	"github.com/beka-birhanu/vinom-forager/forage"
	"github.com/beka-birhanu/vinom-forager/service/i"
	"github.com/google/uuid"
)

const (
	defaultPrefix       = "forager"
	defaultRecentLimit  = 50
	defaultMaxDimension = 50
	defaultMaxEpisodes  = 20000
	defaultMaxFood      = 500
	recentRunsKeyFmt    = "%s:runs:recent"
)

var (
	ErrRequestTooLarge = errors.New("request exceeds server limits")
	ErrHistoryDisabled = errors.New("run history is not configured")
	ErrRunNotFound     = errors.New("run not found")
)

type Options struct {
	Prefix       string
	RecentLimit  int64
	MaxDimension int
	MaxEpisodes  int
	MaxFood      int

	// Seeder returns the seed used when a request does not carry one.
	Seeder func() int64
}

// ForagerService runs training calls and keeps their history.
// Repo and index are optional; without them runs are only returned to the caller.
type ForagerService struct {
	repo   i.RunRepo
	index  i.SortedQueue
	logger i.Logger
	opts   *Options
}

func NewForagerService(repo i.RunRepo, index i.SortedQueue, logger i.Logger, opts *Options) (*ForagerService, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	if opts.RecentLimit <= 0 {
		opts.RecentLimit = defaultRecentLimit
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.MaxEpisodes <= 0 {
		opts.MaxEpisodes = defaultMaxEpisodes
	}

	if opts.MaxFood <= 0 {
		opts.MaxFood = defaultMaxFood
	}

	if opts.Seeder == nil {
		opts.Seeder = func() int64 { return time.Now().UnixNano() }
	}

	return &ForagerService{
		repo:   repo,
		index:  index,
		logger: logger,
		opts:   opts,
	}, nil
}

// Train runs the agent for req and records the run when history is enabled.
func (fs *ForagerService) Train(ctx context.Context, req dmn.RunRequest) (*dmn.Run, error) {
	if req.Dimension > fs.opts.MaxDimension {
		return nil, fmt.Errorf("%w: world dimension %d > %d", ErrRequestTooLarge, req.Dimension, fs.opts.MaxDimension)
	}
	if req.Episodes > fs.opts.MaxEpisodes {
		return nil, fmt.Errorf("%w: %d episodes > %d", ErrRequestTooLarge, req.Episodes, fs.opts.MaxEpisodes)
	}

	if req.NumFood > fs.opts.MaxFood || len(req.Food) > fs.opts.MaxFood {
		return nil, fmt.Errorf("%w: food count > %d", ErrRequestTooLarge, fs.opts.MaxFood)
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		seed = fs.opts.Seeder()
	}

	fs.logger.Info(fmt.Sprintf("Training: food=%d dimension=%d episodes=%d seed=%d", req.NumFood, req.Dimension, req.Episodes, seed))
	started := time.Now()
	res, err := forage.Train(forage.Config{
		NumFood:   req.NumFood,
		Dimension: req.Dimension,
		Episodes:  req.Episodes,
		Food:      req.Food,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		fs.logger.Warning(fmt.Sprintf("Training rejected: %s", err))
		return nil, err
	}

	run := dmn.NewRun(req, seed, res)
	fs.logger.Info(fmt.Sprintf("Training complete: ID=%s path=%d took=%s", run.ID, len(run.BestPath), time.Since(started)))

	fs.record(ctx, run)
	return run, nil
}

// record stores run and indexes it. Failures are logged only.
func (fs *ForagerService) record(ctx context.Context, run *dmn.Run) {
	if fs.repo == nil {
		return
	}

	if err := fs.repo.Save(run); err != nil {
		fs.logger.Error(fmt.Sprintf("Failed to save run %s: %s", run.ID, err))
		return
	}

	if fs.index == nil {
		return
	}

	key := fs.recentKey()
	if err := fs.index.Enqueue(ctx, key, float64(run.CreatedAt.UnixNano()), run.ID.String()); err != nil {
		fs.logger.Error(fmt.Sprintf("Failed to index run %s: %s", run.ID, err))
		return
	}

	if overflow := fs.index.Count(ctx, key) - fs.opts.RecentLimit; overflow > 0 {
		if _, err := fs.index.DequeTops(ctx, key, overflow); err != nil {
			fs.logger.Warning(fmt.Sprintf("Trimming recent runs: %s", err))
		}
	}
}

// Run returns a stored run.
func (fs *ForagerService) Run(id uuid.UUID) (*dmn.Run, error) {
	if fs.repo == nil {
		return nil, ErrHistoryDisabled
	}

	run, err := fs.repo.ByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, err)
	}
	return run, nil
}

// Recent returns up to limit runs, newest first. Runs missing from the
// repository are skipped.
func (fs *ForagerService) Recent(ctx context.Context, limit int) ([]*dmn.Run, error) {
	if fs.repo == nil || fs.index == nil {
		return nil, ErrHistoryDisabled
	}

	if limit <= 0 || int64(limit) > fs.opts.RecentLimit {
		limit = int(fs.opts.RecentLimit)
	}

	rawIDs, err := fs.index.Latest(ctx, fs.recentKey(), int64(limit))
	if err != nil {
		return nil, err
	}

	runs := make([]*dmn.Run, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			fs.logger.Warning(fmt.Sprintf("Non-UUID value in recent runs: %s", raw))
			continue
		}

		run, err := fs.repo.ByID(id)
		if err != nil {
			fs.logger.Warning(fmt.Sprintf("Indexed run %s not found: %s", id, err))
			continue
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (fs *ForagerService) recentKey() string {
	return fmt.Sprintf(recentRunsKeyFmt, fs.opts.Prefix)
}
