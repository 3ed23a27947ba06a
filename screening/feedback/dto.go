package feedback

import (
	"time"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
)

// SubmitFeedbackRequest - Request to record visitor feedback
type SubmitFeedbackRequest struct {
	Name     string `json:"feed_name" validate:"required"`
	Email    string `json:"feed_email" validate:"required,email"`
	Rating   int    `json:"feed_score" validate:"required,min=1,max=5"`
	Comments string `json:"comments"`
}

// ListFeedbackRequest - List stored feedback entries
type ListFeedbackRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// FeedbackResponse - A stored feedback entry
type FeedbackResponse struct {
	ID        kernel.FeedbackID `json:"id"`
	Name      string            `json:"feed_name"`
	Email     string            `json:"feed_email"`
	Rating    int               `json:"feed_score"`
	Comments  string            `json:"comments"`
	CreatedAt time.Time         `json:"created_at"`
}

// FeedbackStatsResponse - Rating distribution over all feedback
type FeedbackStatsResponse struct {
	TotalFeedback int         `json:"total_feedback"`
	AverageRating float64     `json:"average_rating"`
	ByRating      map[int]int `json:"by_rating"`
}

// ToFeedbackResponse converts a Feedback domain model to its DTO
func ToFeedbackResponse(f *Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Rating:    f.Rating,
		Comments:  f.Comments,
		CreatedAt: f.CreatedAt,
	}
}

// ToListFeedbackResponse creates a paginated listing response
func ToListFeedbackResponse(entries []*Feedback, page, pageSize, total int) *kernel.Paginated[FeedbackResponse] {
	items := make([]FeedbackResponse, len(entries))
	for i, f := range entries {
		items[i] = *ToFeedbackResponse(f)
	}
	p := kernel.NewPaginated(items, page, pageSize, total)
	return &p
}
