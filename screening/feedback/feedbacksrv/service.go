package feedbacksrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/feedback"
)

// Service records visitor feedback and serves the rating aggregates.
type Service struct {
	repo feedback.Repository
}

func NewService(repo feedback.Repository) *Service {
	return &Service{repo: repo}
}

// SubmitFeedback validates and stores a feedback entry
func (s *Service) SubmitFeedback(ctx context.Context, req feedback.SubmitFeedbackRequest) (*feedback.FeedbackResponse, error) {
	if req.Name == "" || req.Email == "" {
		return nil, feedback.ErrInvalidFeedback().
			WithDetail("required", []string{"feed_name", "feed_email"})
	}

	entry := &feedback.Feedback{
		ID:        kernel.NewFeedbackID(uuid.New().String()),
		Name:      req.Name,
		Email:     req.Email,
		Rating:    req.Rating,
		Comments:  req.Comments,
		CreatedAt: time.Now(),
	}

	if !entry.IsValidRating() {
		return nil, feedback.ErrInvalidRating().
			WithDetail("feed_score", req.Rating)
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, feedback.ErrRegistry.NewWithCause(feedback.CodeFeedbackSaveFailed, err)
	}

	return feedback.ToFeedbackResponse(entry), nil
}

// ListFeedback retrieves stored feedback, newest first
func (s *Service) ListFeedback(ctx context.Context, req feedback.ListFeedbackRequest) (*kernel.Paginated[feedback.FeedbackResponse], error) {
	pagination := req.Pagination.Normalize()

	page, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, feedback.ErrRegistry.NewWithCause(feedback.CodeFeedbackSaveFailed, err)
	}

	entries := make([]*feedback.Feedback, 0, len(page.Items))
	for i := range page.Items {
		entries = append(entries, &page.Items[i])
	}
	return feedback.ToListFeedbackResponse(entries, page.Page.Number, page.Page.Size, page.Page.Total), nil
}

// GetStats aggregates the rating distribution
func (s *Service) GetStats(ctx context.Context) (*feedback.FeedbackStatsResponse, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, feedback.ErrFeedbackStatsFailed().
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	return &feedback.FeedbackStatsResponse{
		TotalFeedback: stats.Total,
		AverageRating: stats.Average,
		ByRating:      stats.ByRating,
	}, nil
}
