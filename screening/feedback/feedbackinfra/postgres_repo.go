package feedbackinfra

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/feedback"
)

// PostgresFeedbackRepository implements the feedback Repository over the
// user_feedback table.
type PostgresFeedbackRepository struct {
	db *sqlx.DB
}

func NewPostgresFeedbackRepository(db *sqlx.DB) feedback.Repository {
	return &PostgresFeedbackRepository{db: db}
}

const feedbackColumns = `id, feed_name, feed_email, feed_score, comments, created_at`

func (r *PostgresFeedbackRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	query := `
		INSERT INTO user_feedback (` + feedbackColumns + `)
		VALUES (:id, :feed_name, :feed_email, :feed_score, :comments, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, f); err != nil {
		return fmt.Errorf("insert feedback %s: %w", f.ID, err)
	}
	return nil
}

func (r *PostgresFeedbackRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[feedback.Feedback], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM user_feedback`); err != nil {
		return nil, fmt.Errorf("count feedback: %w", err)
	}

	query := `
		SELECT ` + feedbackColumns + `
		FROM user_feedback
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	offset := (pagination.Page - 1) * pagination.PageSize

	var entries []feedback.Feedback
	if err := r.db.SelectContext(ctx, &entries, query, pagination.PageSize, offset); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	page := kernel.NewPaginated(entries, pagination.Page, pagination.PageSize, total)
	return &page, nil
}

func (r *PostgresFeedbackRepository) Stats(ctx context.Context) (*feedback.RatingStats, error) {
	var totals struct {
		Total   int     `db:"total"`
		Average float64 `db:"average"`
	}
	err := r.db.GetContext(ctx, &totals, `
		SELECT COUNT(*) AS total, COALESCE(AVG(feed_score), 0) AS average
		FROM user_feedback`)
	if err != nil {
		return nil, fmt.Errorf("feedback totals: %w", err)
	}

	rows := []struct {
		Rating int `db:"feed_score"`
		Count  int `db:"count"`
	}{}
	err = r.db.SelectContext(ctx, &rows, `
		SELECT feed_score, COUNT(*) AS count
		FROM user_feedback
		GROUP BY feed_score`)
	if err != nil {
		return nil, fmt.Errorf("feedback rating buckets: %w", err)
	}

	byRating := make(map[int]int, len(rows))
	for _, row := range rows {
		byRating[row.Rating] = row.Count
	}

	return &feedback.RatingStats{
		Total:    totals.Total,
		Average:  totals.Average,
		ByRating: byRating,
	}, nil
}
