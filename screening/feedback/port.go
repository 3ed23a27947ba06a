package feedback

import (
	"context"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
)

// RatingStats holds the aggregates the repository computes in SQL.
type RatingStats struct {
	Total    int
	Average  float64
	ByRating map[int]int
}

type Repository interface {
	// Create stores a feedback entry
	Create(ctx context.Context, f *Feedback) error

	// List retrieves all feedback with pagination, newest first
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Feedback], error)

	// Stats aggregates the rating distribution
	Stats(ctx context.Context) (*RatingStats, error)
}
