package i

import "context"

// SortedQueue is a scored set of members kept in ascending score order.
type SortedQueue interface {
	// Enqueue adds member with the given score.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// DequeTops removes and returns up to amount members with the lowest scores.
	DequeTops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Latest returns up to amount members with the highest scores, highest first.
	Latest(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Count returns the number of members in the queue.
	Count(ctx context.Context, queueKey string) int64
}
