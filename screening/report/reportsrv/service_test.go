package reportsrv

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antwa-sensei253/testing-resume-scoring/internal/courses"
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/geo"
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/heuristic"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report"
)

// ============================================================================
// In-memory fakes
// ============================================================================

type memReportRepo struct {
	reports   map[kernel.ReportID]*report.Report
	createErr error
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: make(map[kernel.ReportID]*report.Report)}
}

func (m *memReportRepo) Create(ctx context.Context, r *report.Report) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *r
	m.reports[r.ID] = &cp
	return nil
}

func (m *memReportRepo) GetByID(ctx context.Context, id kernel.ReportID) (*report.Report, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return r, nil
}

func (m *memReportRepo) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[report.Report], error) {
	items := make([]report.Report, 0, len(m.reports))
	for _, r := range m.reports {
		items = append(items, *r)
	}
	page := kernel.NewPaginated(items, pagination.Page, pagination.PageSize, len(items))
	return &page, nil
}

func (m *memReportRepo) Delete(ctx context.Context, id kernel.ReportID) error {
	if _, ok := m.reports[id]; !ok {
		return errors.New("not found")
	}
	delete(m.reports, id)
	return nil
}

func (m *memReportRepo) Count(ctx context.Context) (int, error) {
	return len(m.reports), nil
}

func (m *memReportRepo) Stats(ctx context.Context) (*report.StatsResponse, error) {
	return &report.StatsResponse{TotalReports: len(m.reports)}, nil
}

type memJobRepo struct {
	jobs      map[kernel.JobID]*report.AnalysisJob
	failed    map[kernel.JobID]string
	createErr error
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{
		jobs:   make(map[kernel.JobID]*report.AnalysisJob),
		failed: make(map[kernel.JobID]string),
	}
}

func (m *memJobRepo) Create(ctx context.Context, job *report.AnalysisJob) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *job
	m.jobs[job.ID] = &cp
	return nil
}

func (m *memJobRepo) Update(ctx context.Context, job *report.AnalysisJob) error {
	cp := *job
	m.jobs[job.ID] = &cp
	return nil
}

func (m *memJobRepo) GetByID(ctx context.Context, jobID kernel.JobID) (*report.AnalysisJob, error) {
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *job
	return &cp, nil
}

func (m *memJobRepo) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[report.AnalysisJob], error) {
	items := make([]report.AnalysisJob, 0, len(m.jobs))
	for _, job := range m.jobs {
		items = append(items, *job)
	}
	page := kernel.NewPaginated(items, pagination.Page, pagination.PageSize, len(items))
	return &page, nil
}

func (m *memJobRepo) MarkAsProcessing(ctx context.Context, jobID kernel.JobID) error {
	job, ok := m.jobs[jobID]
	if !ok {
		return errors.New("not found")
	}
	now := time.Now()
	job.Status = report.JobStatusProcessing
	job.StartedAt = &now
	return nil
}

func (m *memJobRepo) MarkAsCompleted(ctx context.Context, jobID kernel.JobID, reportID kernel.ReportID) error {
	job, ok := m.jobs[jobID]
	if !ok {
		return errors.New("not found")
	}
	now := time.Now()
	job.Status = report.JobStatusCompleted
	job.ReportID = &reportID
	job.CompletedAt = &now
	return nil
}

func (m *memJobRepo) MarkAsFailed(ctx context.Context, jobID kernel.JobID, errorMsg string, errorDetails map[string]any) error {
	m.failed[jobID] = errorMsg
	if job, ok := m.jobs[jobID]; ok {
		now := time.Now()
		job.Status = report.JobStatusFailed
		job.ErrorMessage = errorMsg
		job.ErrorDetails = errorDetails
		job.FailedAt = &now
	}
	return nil
}

func (m *memJobRepo) UpdateProgress(ctx context.Context, jobID kernel.JobID, step report.ProcessingStep, percentage int) error {
	if job, ok := m.jobs[jobID]; ok {
		job.CurrentStep = &step
		job.ProgressPercentage = percentage
	}
	return nil
}

type delayedEntry struct {
	jobID kernel.JobID
	delay time.Duration
}

type memQueue struct {
	enqueued   []kernel.JobID
	delayed    []delayedEntry
	enqueueErr error
}

func (m *memQueue) Enqueue(ctx context.Context, jobID kernel.JobID, payload any) error {
	if m.enqueueErr != nil {
		return m.enqueueErr
	}
	m.enqueued = append(m.enqueued, jobID)
	return nil
}

func (m *memQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	return nil, nil
}

func (m *memQueue) EnqueueDelayed(ctx context.Context, jobID kernel.JobID, payload any, delay time.Duration) error {
	m.delayed = append(m.delayed, delayedEntry{jobID: jobID, delay: delay})
	return nil
}

func (m *memQueue) MoveDelayedToReady(ctx context.Context) (int, error) { return 0, nil }

func (m *memQueue) GetQueueSize(ctx context.Context) (int64, error) {
	return int64(len(m.enqueued)), nil
}

func (m *memQueue) GetDelayedQueueSize(ctx context.Context) (int64, error) {
	return int64(len(m.delayed)), nil
}

func (m *memQueue) Clear(ctx context.Context) error { return nil }

type memFileReader struct {
	files map[string][]byte
}

func (m *memFileReader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return data, nil
}

type stubExtractor struct {
	doc heuristic.Document
	err error
}

func (s *stubExtractor) Extract(data []byte) (heuristic.Document, error) {
	return s.doc, s.err
}

type stubTagger struct {
	skills []string
	hints  []heuristic.EntityHint
	custom string
}

func (s *stubTagger) Skills(text string) []string { return s.skills }

func (s *stubTagger) PersonHints(text string) []heuristic.EntityHint { return s.hints }

func (s *stubTagger) CustomName(text string) string { return s.custom }

type stubCatalog struct{}

func (s *stubCatalog) Recommend(field heuristic.Field, n int) []courses.Course {
	out := make([]courses.Course, n)
	for i := range out {
		out[i] = courses.Course{Name: fmt.Sprintf("%s course %d", field, i), URL: "https://example.com"}
	}
	return out
}

func (s *stubCatalog) ResumeVideo() string    { return "https://youtu.be/resume" }
func (s *stubCatalog) InterviewVideo() string { return "https://youtu.be/interview" }

type stubLocator struct{}

func (s *stubLocator) Locate(ctx context.Context) geo.Location {
	return geo.Location{
		Hostname:  "test-host",
		IPAddress: "203.0.113.7",
		OS:        "linux",
		City:      "Lima",
		Country:   "Peru",
	}
}

// ============================================================================
// Test harness
// ============================================================================

type testEnv struct {
	service   *Service
	repo      *memReportRepo
	jobRepo   *memJobRepo
	queue     *memQueue
	reader    *memFileReader
	extractor *stubExtractor
	tagger    *stubTagger
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:    newMemReportRepo(),
		jobRepo: newMemJobRepo(),
		queue:   &memQueue{},
		reader:  &memFileReader{files: map[string][]byte{"resumes/2026/08/test.pdf": []byte("%PDF-1.4")}},
		extractor: &stubExtractor{
			doc: heuristic.Document{
				Text:      "John Doe\njohn.doe@example.com\n5 years of experience\nEducation\nProjects",
				PageCount: 2,
			},
		},
		tagger: &stubTagger{skills: []string{"TensorFlow", "Keras"}},
	}
	env.service = NewService(
		env.repo,
		env.jobRepo,
		env.queue,
		env.reader,
		env.extractor,
		env.tagger,
		&stubCatalog{},
		&stubLocator{},
	)
	return env
}

func submitRequest() report.SubmitResumeRequest {
	return report.SubmitResumeRequest{
		FilePath:        "resumes/2026/08/test.pdf",
		FileName:        "resume.pdf",
		SubmitterName:   "Jordan Reyes",
		SubmitterEmail:  "jordan@example.com",
		SubmitterMobile: "+51999888777",
	}
}

// ============================================================================
// Submission
// ============================================================================

func TestSubmitResumeAsync(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.Equal(t, report.JobStatusPending, resp.Status)
	assert.False(t, resp.JobID.IsEmpty())
	assert.Equal(t, 0, resp.Progress)

	// Job persisted and queued
	job, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)
	assert.Equal(t, report.JobStatusPending, job.Status)
	assert.Equal(t, 3, job.MaxAttempts)
	assert.Equal(t, "resume.pdf", job.FileName)
	require.Len(t, env.queue.enqueued, 1)
	assert.Equal(t, resp.JobID, env.queue.enqueued[0])
}

func TestSubmitResumeAsyncEnqueueFailure(t *testing.T) {
	env := newTestEnv()
	env.queue.enqueueErr = errors.New("redis down")

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.Error(t, err)
	assert.Nil(t, resp)

	// The orphaned job record must be marked failed
	require.Len(t, env.jobRepo.failed, 1)
}

// ============================================================================
// Processing
// ============================================================================

func TestProcessAnalysisJobHappyPath(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.NoError(t, err)

	job, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)

	require.NoError(t, env.service.ProcessAnalysisJob(context.Background(), job))

	// Job finished
	done, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)
	assert.Equal(t, report.JobStatusCompleted, done.Status)
	require.NotNil(t, done.ReportID)
	assert.Equal(t, 100, done.ProgressPercentage)

	// Report persisted with the analysis result
	rep, err := env.repo.GetByID(context.Background(), *done.ReportID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", rep.Name)
	assert.Equal(t, heuristic.LevelExperienced, rep.Level)
	assert.Equal(t, heuristic.FieldDataScience, rep.Field)
	assert.Equal(t, 2, rep.PageCount)
	assert.Equal(t, []string{"TensorFlow", "Keras"}, rep.Skills)
	assert.Len(t, rep.Findings, 9)
	assert.NotEmpty(t, rep.SecToken)

	// Experience (20) + Education (10) + Projects (20) on the experienced profile
	assert.Equal(t, 50, rep.Score)

	// Submitter and machine metadata carried through
	assert.Equal(t, "Jordan Reyes", rep.SubmitterName)
	assert.Equal(t, "203.0.113.7", rep.IPAddress)
	assert.Equal(t, "Lima", rep.City)

	// Enrichment attached
	assert.Len(t, rep.RecommendedCourses, CourseRecommendationCount)
	assert.NotEmpty(t, rep.RecommendedSkills)
	assert.Equal(t, "https://youtu.be/resume", rep.ResumeVideoURL)
	assert.Equal(t, "https://youtu.be/interview", rep.InterviewVideoURL)
}

func TestProcessAnalysisJobRetriesOnFailure(t *testing.T) {
	env := newTestEnv()
	env.extractor.err = errors.New("corrupt pdf")

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.NoError(t, err)

	job, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)

	err = env.service.ProcessAnalysisJob(context.Background(), job)
	require.Error(t, err)

	// Scheduled for retry with exponential backoff: 2^1 minutes
	require.Len(t, env.queue.delayed, 1)
	assert.Equal(t, resp.JobID, env.queue.delayed[0].jobID)
	assert.Equal(t, 2*time.Minute, env.queue.delayed[0].delay)

	// Job reset to pending with retry info
	updated, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)
	assert.Equal(t, report.JobStatusPending, updated.Status)
	assert.Equal(t, 1, updated.AttemptCount)
	assert.NotNil(t, updated.NextRetryAt)
}

func TestProcessAnalysisJobFailsPermanentlyAfterMaxAttempts(t *testing.T) {
	env := newTestEnv()
	env.extractor.err = errors.New("corrupt pdf")

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.NoError(t, err)

	job, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)
	job.AttemptCount = 2 // two failed attempts already behind us

	err = env.service.ProcessAnalysisJob(context.Background(), job)
	require.Error(t, err)

	// No retry scheduled; marked permanently failed instead
	assert.Empty(t, env.queue.delayed)
	assert.Contains(t, env.jobRepo.failed, resp.JobID)
}

// ============================================================================
// Job status & lifecycle
// ============================================================================

func TestGetJobStatus(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.NoError(t, err)

	status, err := env.service.GetJobStatus(context.Background(), resp.JobID)
	require.NoError(t, err)
	assert.Equal(t, report.JobStatusPending, status.Status)
	assert.Equal(t, "Job queued and waiting to be processed", status.Message)

	job, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)
	require.NoError(t, env.service.ProcessAnalysisJob(context.Background(), job))

	status, err = env.service.GetJobStatus(context.Background(), resp.JobID)
	require.NoError(t, err)
	assert.Equal(t, report.JobStatusCompleted, status.Status)
	assert.Equal(t, "Resume analyzed successfully", status.Message)
	assert.NotNil(t, status.ReportID)
}

func TestGetJobStatusNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.GetJobStatus(context.Background(), kernel.JobID("missing"))
	require.Error(t, err)
}

func TestCancelJob(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.NoError(t, err)

	require.NoError(t, env.service.CancelJob(context.Background(), resp.JobID))

	job, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)
	assert.Equal(t, report.JobStatusFailed, job.Status)
	assert.Equal(t, "Job cancelled by user", job.ErrorMessage)
}

func TestCancelCompletedJobRejected(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.NoError(t, err)

	job, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)
	require.NoError(t, env.service.ProcessAnalysisJob(context.Background(), job))

	err = env.service.CancelJob(context.Background(), resp.JobID)
	require.Error(t, err)
}

func TestRetryFailedJob(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.NoError(t, err)
	require.NoError(t, env.service.CancelJob(context.Background(), resp.JobID))

	env.queue.enqueued = nil

	status, err := env.service.RetryFailedJob(context.Background(), resp.JobID)
	require.NoError(t, err)
	assert.Equal(t, report.JobStatusPending, status.Status)
	require.Len(t, env.queue.enqueued, 1)

	// Counters reset for the manual retry
	job, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)
	assert.Equal(t, 0, job.AttemptCount)
	assert.Empty(t, job.ErrorMessage)
	assert.Nil(t, job.FailedAt)
}

func TestRetryNonFailedJobRejected(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.NoError(t, err)

	_, err = env.service.RetryFailedJob(context.Background(), resp.JobID)
	require.Error(t, err)
}

// ============================================================================
// Retrieval
// ============================================================================

func TestGetReportNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.GetReport(context.Background(), kernel.ReportID("missing"))
	require.Error(t, err)
}

func TestDeleteReport(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.SubmitResumeAsync(context.Background(), submitRequest())
	require.NoError(t, err)
	job, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)
	require.NoError(t, env.service.ProcessAnalysisJob(context.Background(), job))

	done, err := env.jobRepo.GetByID(context.Background(), resp.JobID)
	require.NoError(t, err)
	require.NotNil(t, done.ReportID)

	require.NoError(t, env.service.DeleteReport(context.Background(), *done.ReportID))

	_, err = env.service.GetReport(context.Background(), *done.ReportID)
	require.Error(t, err)
}
