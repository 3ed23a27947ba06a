package report

import (
	"context"
	"time"

	"github.com/Antwa-sensei253/testing-resume-scoring/internal/courses"
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/geo"
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/heuristic"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
)

type Repository interface {
	// Create stores a finished report
	Create(ctx context.Context, r *Report) error

	// GetByID retrieves a report by ID
	GetByID(ctx context.Context, id kernel.ReportID) (*Report, error)

	// List retrieves all reports with pagination, newest first
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Report], error)

	// Delete removes a report
	Delete(ctx context.Context, id kernel.ReportID) error

	// Count returns the total number of stored reports
	Count(ctx context.Context) (int, error)

	// Stats aggregates field/level distribution and the average score
	Stats(ctx context.Context) (*StatsResponse, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *AnalysisJob) error
	Update(ctx context.Context, job *AnalysisJob) error
	GetByID(ctx context.Context, jobID kernel.JobID) (*AnalysisJob, error)
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[AnalysisJob], error)

	// Update status helpers
	MarkAsProcessing(ctx context.Context, jobID kernel.JobID) error
	MarkAsCompleted(ctx context.Context, jobID kernel.JobID, reportID kernel.ReportID) error
	MarkAsFailed(ctx context.Context, jobID kernel.JobID, errorMsg string, errorDetails map[string]any) error
	UpdateProgress(ctx context.Context, jobID kernel.JobID, step ProcessingStep, percentage int) error
}

// JobQueue defines the interface for job queue operations
type JobQueue interface {
	// Enqueue adds a job to the queue
	Enqueue(ctx context.Context, jobID kernel.JobID, payload any) error

	// Dequeue gets a job from the queue (blocking with timeout)
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// EnqueueDelayed schedules a job for later processing (for retries)
	EnqueueDelayed(ctx context.Context, jobID kernel.JobID, payload any, delay time.Duration) error

	// MoveDelayedToReady moves delayed jobs that are ready to the main queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	// GetQueueSize returns the number of jobs in the queue
	GetQueueSize(ctx context.Context) (int64, error)

	// GetDelayedQueueSize returns the number of delayed jobs
	GetDelayedQueueSize(ctx context.Context) (int64, error)

	// Clear removes all jobs from the queue (use with caution)
	Clear(ctx context.Context) error
}

// TextExtractor turns an uploaded document into plain text plus page count.
type TextExtractor interface {
	Extract(data []byte) (heuristic.Document, error)
}

// Tagger is the NLP surface the pipeline needs: skill extraction and the
// two name-extraction inputs (entity hints and the token-level lookup).
type Tagger interface {
	Skills(text string) []string
	PersonHints(text string) []heuristic.EntityHint
	CustomName(text string) string
}

// CourseCatalog serves per-field course recommendations and video picks.
type CourseCatalog interface {
	Recommend(field heuristic.Field, n int) []courses.Course
	ResumeVideo() string
	InterviewVideo() string
}

// Locator resolves submitter machine metadata, best effort.
type Locator interface {
	Locate(ctx context.Context) geo.Location
}
