package feedback

import (
	"time"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
)

// Feedback is a visitor rating of the screening service.
type Feedback struct {
	ID        kernel.FeedbackID `json:"id" db:"id"`
	Name      string            `json:"feed_name" db:"feed_name"`
	Email     string            `json:"feed_email" db:"feed_email"`
	Rating    int               `json:"feed_score" db:"feed_score"`
	Comments  string            `json:"comments" db:"comments"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}

const (
	MinRating = 1
	MaxRating = 5
)

// IsValidRating reports whether the rating falls in the accepted range.
func (f *Feedback) IsValidRating() bool {
	return f.Rating >= MinRating && f.Rating <= MaxRating
}
