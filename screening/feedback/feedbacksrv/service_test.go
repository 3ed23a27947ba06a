package feedbacksrv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/feedback"
)

type memFeedbackRepo struct {
	entries   []*feedback.Feedback
	createErr error
}

func (m *memFeedbackRepo) Create(ctx context.Context, f *feedback.Feedback) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *f
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memFeedbackRepo) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[feedback.Feedback], error) {
	items := make([]feedback.Feedback, len(m.entries))
	for i, f := range m.entries {
		items[i] = *f
	}
	page := kernel.NewPaginated(items, pagination.Page, pagination.PageSize, len(items))
	return &page, nil
}

func (m *memFeedbackRepo) Stats(ctx context.Context) (*feedback.RatingStats, error) {
	byRating := make(map[int]int)
	sum := 0
	for _, f := range m.entries {
		byRating[f.Rating]++
		sum += f.Rating
	}
	avg := 0.0
	if len(m.entries) > 0 {
		avg = float64(sum) / float64(len(m.entries))
	}
	return &feedback.RatingStats{
		Total:    len(m.entries),
		Average:  avg,
		ByRating: byRating,
	}, nil
}

func validRequest() feedback.SubmitFeedbackRequest {
	return feedback.SubmitFeedbackRequest{
		Name:     "Alex Soto",
		Email:    "alex@example.com",
		Rating:   4,
		Comments: "Useful breakdown of my resume.",
	}
}

func TestSubmitFeedback(t *testing.T) {
	repo := &memFeedbackRepo{}
	svc := NewService(repo)

	resp, err := svc.SubmitFeedback(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.ID.IsEmpty())
	assert.Equal(t, "Alex Soto", resp.Name)
	assert.Equal(t, 4, resp.Rating)
	require.Len(t, repo.entries, 1)
}

func TestSubmitFeedbackValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*feedback.SubmitFeedbackRequest)
	}{
		{"missing name", func(r *feedback.SubmitFeedbackRequest) { r.Name = "" }},
		{"missing email", func(r *feedback.SubmitFeedbackRequest) { r.Email = "" }},
		{"rating too low", func(r *feedback.SubmitFeedbackRequest) { r.Rating = 0 }},
		{"rating too high", func(r *feedback.SubmitFeedbackRequest) { r.Rating = 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memFeedbackRepo{}
			svc := NewService(repo)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.SubmitFeedback(context.Background(), req)
			require.Error(t, err)
			assert.Empty(t, repo.entries)
		})
	}
}

func TestSubmitFeedbackRepoFailure(t *testing.T) {
	repo := &memFeedbackRepo{createErr: errors.New("db down")}
	svc := NewService(repo)

	_, err := svc.SubmitFeedback(context.Background(), validRequest())
	require.Error(t, err)
}

func TestListFeedback(t *testing.T) {
	repo := &memFeedbackRepo{}
	svc := NewService(repo)

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitFeedback(context.Background(), validRequest())
		require.NoError(t, err)
	}

	page, err := svc.ListFeedback(context.Background(), feedback.ListFeedbackRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.Page.Total)
}

func TestGetStats(t *testing.T) {
	repo := &memFeedbackRepo{}
	svc := NewService(repo)

	ratings := []int{5, 5, 3}
	for _, r := range ratings {
		req := validRequest()
		req.Rating = r
		_, err := svc.SubmitFeedback(context.Background(), req)
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalFeedback)
	assert.InDelta(t, 13.0/3.0, stats.AverageRating, 1e-9)
	assert.Equal(t, map[int]int{5: 2, 3: 1}, stats.ByRating)
}
