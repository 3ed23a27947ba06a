package reportsrv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Antwa-sensei253/testing-resume-scoring/internal/heuristic"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/logx"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report"
)

// SubmitResumeAsync - Queue the resume for background analysis
func (s *Service) SubmitResumeAsync(ctx context.Context, req report.SubmitResumeRequest) (*report.JobStatusResponse, error) {
	logx.Infof("Queueing resume for analysis: File=%s, Submitter=%s", req.FileName, req.SubmitterEmail)

	// Create job record
	jobID := kernel.NewJobID(uuid.NewString())
	job := &report.AnalysisJob{
		ID:                 jobID,
		Status:             report.JobStatusPending,
		FilePath:           req.FilePath,
		FileName:           req.FileName,
		AttemptCount:       0,
		MaxAttempts:        3,
		ProgressPercentage: 0,
		CreatedAt:          time.Now(),
		RequestPayload:     req,
	}

	// Save job to database
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, report.ErrJobCreationFailed().
			WithDetail("file_name", req.FileName).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	// Enqueue to Redis
	if err := s.queue.Enqueue(ctx, jobID, job); err != nil {
		// Mark job as failed if we can't queue it
		_ = s.jobRepo.MarkAsFailed(ctx, jobID, "failed to enqueue", map[string]any{
			"error": err.Error(),
		})

		return nil, report.ErrQueueEnqueueFailed().
			WithDetail("job_id", jobID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	logx.Infof("Job queued successfully: JobID=%s", jobID)

	return &report.JobStatusResponse{
		JobID:    jobID,
		Status:   report.JobStatusPending,
		Message:  "Resume queued for analysis",
		Progress: 0,
	}, nil
}

// ProcessAnalysisJob - Worker function to run the full pipeline for a job
func (s *Service) ProcessAnalysisJob(ctx context.Context, job *report.AnalysisJob) error {
	logx.Infof("Processing job: JobID=%s, Attempt=%d/%d", job.ID, job.AttemptCount+1, job.MaxAttempts)

	// Mark as processing
	if err := s.jobRepo.MarkAsProcessing(ctx, job.ID); err != nil {
		return report.ErrJobUpdateFailed().
			WithDetail("job_id", job.ID).
			WithDetail("status", "processing").
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	// Update progress: Extracting
	_ = s.jobRepo.UpdateProgress(ctx, job.ID, report.StepExtracting, 25)

	// Read file
	fileData, err := s.fileReader.ReadFile(ctx, job.FilePath)
	if err != nil {
		return s.handleJobError(ctx, job, "file_read_failed", err)
	}

	// Extract text and page count
	doc, err := s.extractor.Extract(fileData)
	if err != nil {
		return s.handleJobError(ctx, job, "extraction_failed", err)
	}

	// Update progress: Tagging
	_ = s.jobRepo.UpdateProgress(ctx, job.ID, report.StepTagging, 50)

	skills := s.tagger.Skills(doc.Text)
	hints := s.tagger.PersonHints(doc.Text)
	customName := s.tagger.CustomName(doc.Text)

	// Update progress: Scoring
	_ = s.jobRepo.UpdateProgress(ctx, job.ID, report.StepScoring, 70)

	profile := heuristic.Analyze(doc, skills, hints, customName)

	// Update progress: Saving
	_ = s.jobRepo.UpdateProgress(ctx, job.ID, report.StepSaving, 85)

	location := s.locator.Locate(ctx)

	rep := &report.Report{
		ID:       kernel.NewReportID(uuid.NewString()),
		SecToken: uuid.NewString(),

		SubmitterName:   job.RequestPayload.SubmitterName,
		SubmitterEmail:  job.RequestPayload.SubmitterEmail,
		SubmitterMobile: job.RequestPayload.SubmitterMobile,

		IPAddress: location.IPAddress,
		HostName:  location.Hostname,
		ClientOS:  location.OS,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		City:      location.City,
		Region:    location.Region,
		Country:   location.Country,

		Name:      profile.Name,
		Level:     profile.Level,
		Field:     profile.Field,
		Score:     profile.Score,
		PageCount: doc.PageCount,
		Skills:    profile.Skills,
		Findings:  profile.Findings,

		RecommendedSkills:  profile.RecommendedSkills,
		RecommendedCourses: s.catalog.Recommend(profile.Field, CourseRecommendationCount),
		ResumeVideoURL:     s.catalog.ResumeVideo(),
		InterviewVideoURL:  s.catalog.InterviewVideo(),

		FilePath:  job.FilePath,
		FileName:  job.FileName,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, rep); err != nil {
		return s.handleJobError(ctx, job, "save_failed", err)
	}

	// Mark as completed
	if err := s.jobRepo.MarkAsCompleted(ctx, job.ID, rep.ID); err != nil {
		logx.Errorf("Failed to mark job as completed: %v", err)
		// Don't fail the job if we can't update status - report was created successfully
	}

	_ = s.jobRepo.UpdateProgress(ctx, job.ID, report.StepSaving, 100)

	logx.Infof("Job completed successfully: JobID=%s, ReportID=%s", job.ID, rep.ID)
	return nil
}

// handleJobError handles job processing errors with retry logic
func (s *Service) handleJobError(ctx context.Context, job *report.AnalysisJob, errorType string, err error) error {
	job.AttemptCount++

	errorDetails := map[string]any{
		"error":        err.Error(),
		"error_type":   errorType,
		"attempt":      job.AttemptCount,
		"max_attempts": job.MaxAttempts,
		"file_path":    job.FilePath,
		"file_name":    job.FileName,
	}

	// Check if we should retry
	if job.AttemptCount < job.MaxAttempts {
		// Calculate exponential backoff: 2^attempt minutes
		retryDelay := time.Duration(1<<uint(job.AttemptCount)) * time.Minute
		nextRetry := time.Now().Add(retryDelay)
		job.NextRetryAt = &nextRetry

		logx.Warnf("Job failed, will retry: JobID=%s, Attempt=%d/%d, NextRetry=%v, Error=%s",
			job.ID, job.AttemptCount, job.MaxAttempts, nextRetry, errorType)

		// Enqueue for retry
		if queueErr := s.queue.EnqueueDelayed(ctx, job.ID, job, retryDelay); queueErr != nil {
			logx.Errorf("Failed to enqueue for retry: %v", queueErr)

			_ = s.jobRepo.MarkAsFailed(ctx, job.ID,
				fmt.Sprintf("%s (retry enqueue failed)", errorType),
				errorDetails)

			return report.ErrJobRetryFailed().
				WithDetail("job_id", job.ID).
				WithDetail("error_type", errorType).
				WithDetails(errorDetails)
		}

		// Update job with retry info
		job.ErrorMessage = fmt.Sprintf("%s (will retry)", errorType)
		job.ErrorDetails = errorDetails
		job.Status = report.JobStatusPending // Reset to pending for retry

		if updateErr := s.jobRepo.Update(ctx, job); updateErr != nil {
			logx.Errorf("Failed to update job for retry: %v", updateErr)
		}

		return report.ErrJobFailed().
			WithDetail("job_id", job.ID).
			WithDetail("error_type", errorType).
			WithDetail("will_retry", true).
			WithDetail("next_retry_at", nextRetry).
			WithDetails(errorDetails)
	}

	// Max attempts reached - mark as permanently failed
	logx.Errorf("Job permanently failed: JobID=%s, Error=%s, Attempts=%d/%d",
		job.ID, errorType, job.AttemptCount, job.MaxAttempts)

	_ = s.jobRepo.MarkAsFailed(ctx, job.ID, errorType, errorDetails)

	return report.ErrJobMaxRetriesReached().
		WithDetail("job_id", job.ID).
		WithDetail("error_type", errorType).
		WithDetail("final_attempt", job.AttemptCount).
		WithDetails(errorDetails)
}

// GetJobStatus retrieves the current status of a job
func (s *Service) GetJobStatus(ctx context.Context, jobID kernel.JobID) (*report.JobStatusResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, report.ErrJobNotFound().
			WithDetail("job_id", jobID)
	}

	response := &report.JobStatusResponse{
		JobID:     job.ID,
		Status:    job.Status,
		Progress:  job.ProgressPercentage,
		CreatedAt: job.CreatedAt,
	}

	// Set message based on status
	switch job.Status {
	case report.JobStatusPending:
		if job.AttemptCount > 0 {
			response.Message = fmt.Sprintf("Job pending retry (attempt %d/%d)", job.AttemptCount, job.MaxAttempts)
		} else {
			response.Message = "Job queued and waiting to be processed"
		}
		if job.NextRetryAt != nil {
			response.NextRetryAt = job.NextRetryAt
		}

	case report.JobStatusProcessing:
		response.Message = fmt.Sprintf("Analyzing resume: %v", job.CurrentStep)
		response.CurrentStep = job.CurrentStep
		response.StartedAt = job.StartedAt

	case report.JobStatusCompleted:
		response.Message = "Resume analyzed successfully"
		response.ReportID = job.ReportID
		response.CompletedAt = job.CompletedAt

	case report.JobStatusFailed:
		response.Message = job.ErrorMessage
		response.Error = &report.JobError{
			Message: job.ErrorMessage,
			Details: job.ErrorDetails,
		}
		response.FailedAt = job.FailedAt
		response.AttemptCount = job.AttemptCount
	}

	return response, nil
}

// ListJobs retrieves analysis jobs, newest first
func (s *Service) ListJobs(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[report.AnalysisJob], error) {
	jobs, err := s.jobRepo.List(ctx, pagination.Normalize())
	if err != nil {
		return nil, report.ErrRegistry.NewWithCause(report.CodeJobNotFound, err)
	}
	return jobs, nil
}

// CancelJob cancels a pending or processing job
func (s *Service) CancelJob(ctx context.Context, jobID kernel.JobID) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return report.ErrJobNotFound().
			WithDetail("job_id", jobID)
	}

	if job.Status == report.JobStatusCompleted {
		return report.ErrJobAlreadyCompleted().
			WithDetail("job_id", jobID)
	}

	if job.Status == report.JobStatusProcessing {
		// Note: This won't stop an actively running job, just marks it
		logx.Warnf("Attempting to cancel job that is currently processing: %s", jobID)
	}

	now := time.Now()
	job.Status = report.JobStatusFailed
	job.FailedAt = &now
	job.ErrorMessage = "Job cancelled by user"
	job.ErrorDetails = map[string]any{
		"cancelled_at": now,
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return report.ErrJobUpdateFailed().
			WithDetail("job_id", jobID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	logx.Infof("Job cancelled: JobID=%s", jobID)
	return nil
}

// RetryFailedJob manually retries a failed job
func (s *Service) RetryFailedJob(ctx context.Context, jobID kernel.JobID) (*report.JobStatusResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, report.ErrJobNotFound().
			WithDetail("job_id", jobID)
	}

	// Can only retry failed jobs
	if job.Status != report.JobStatusFailed {
		return nil, report.ErrInvalidJobStatus().
			WithDetail("job_id", jobID).
			WithDetail("current_status", job.Status).
			WithDetail("required_status", report.JobStatusFailed)
	}

	// Reset job for retry
	job.Status = report.JobStatusPending
	job.AttemptCount = 0 // Reset attempt count for manual retry
	job.ErrorMessage = ""
	job.ErrorDetails = nil
	job.FailedAt = nil
	job.NextRetryAt = nil
	job.ProgressPercentage = 0
	job.CurrentStep = nil

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, report.ErrJobUpdateFailed().
			WithDetail("job_id", jobID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	// Re-enqueue
	if err := s.queue.Enqueue(ctx, jobID, job); err != nil {
		_ = s.jobRepo.MarkAsFailed(ctx, jobID, "failed to re-enqueue", map[string]any{
			"error": err.Error(),
		})

		return nil, report.ErrQueueEnqueueFailed().
			WithDetail("job_id", jobID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	logx.Infof("Job manually retried: JobID=%s", jobID)

	return &report.JobStatusResponse{
		JobID:    jobID,
		Status:   report.JobStatusPending,
		Message:  "Job requeued for analysis",
		Progress: 0,
	}, nil
}
