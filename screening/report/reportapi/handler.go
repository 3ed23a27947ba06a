package reportapi

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/fsx"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report/reportsrv"
)

// maxUploadSize bounds resume uploads.
const maxUploadSize = int64(10 * 1024 * 1024) // 10MB

type ReportHandlers struct {
	service    *reportsrv.Service
	fileSystem fsx.FileSystem
}

func NewReportHandlers(service *reportsrv.Service, fileSystem fsx.FileSystem) *ReportHandlers {
	return &ReportHandlers{
		service:    service,
		fileSystem: fileSystem,
	}
}

func (h *ReportHandlers) RegisterRoutes(app *fiber.App) {
	reports := app.Group("/api/v1/reports")

	// Submission
	reports.Post("/", h.SubmitResume) // Upload and analyze (ASYNC)

	// Job management (registered before /:id so "jobs" is not captured as an ID)
	reports.Get("/jobs/:job_id", h.GetJobStatus)      // Get job status
	reports.Get("/jobs", h.ListJobs)                  // List all jobs
	reports.Post("/jobs/:job_id/cancel", h.CancelJob) // Cancel job
	reports.Post("/jobs/:job_id/retry", h.RetryJob)   // Retry failed job

	// Retrieval
	reports.Get("/stats", h.GetStats) // Aggregate statistics
	reports.Get("/:id", h.GetReport)  // Get by ID
	reports.Delete("/:id", h.DeleteReport)
	reports.Get("/", h.ListReports) // List all
}

// ============================================================================
// Submission & Retrieval Handlers
// ============================================================================

// SubmitResume uploads a resume and queues it for analysis (async processing)
// POST /api/v1/reports
func (h *ReportHandlers) SubmitResume(c *fiber.Ctx) error {
	// Parse multipart form
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	if file.Size > maxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "file too large",
			"max_size": "10MB",
			"size":     file.Size,
		})
	}

	// Only PDF resumes are analyzable
	if !isPDF(file.Filename, file.Header.Get("Content-Type")) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":           "unsupported file type",
			"supported_types": []string{"pdf"},
			"detected_type":   file.Header.Get("Content-Type"),
			"file_extension":  filepath.Ext(file.Filename),
		})
	}

	// Submitter contact details
	actName := c.FormValue("act_name")
	actEmail := c.FormValue("act_mail")
	actMobile := c.FormValue("act_mob")
	if actName == "" || actEmail == "" || actMobile == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "submitter details are required",
			"required": []string{"act_name", "act_mail", "act_mob"},
		})
	}

	// Open uploaded file
	uploadedFile, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer uploadedFile.Close()

	// Generate unique file path
	// Format: resumes/{year}/{month}/{uuid}.pdf
	now := time.Now()
	filePath := h.fileSystem.Join(
		"resumes",
		fmt.Sprintf("%d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		uuid.New().String()+".pdf",
	)

	if err := h.fileSystem.WriteFileStream(c.Context(), filePath, uploadedFile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to upload file to storage",
			"details": err.Error(),
		})
	}

	req := report.SubmitResumeRequest{
		FilePath:        filePath,
		FileName:        file.Filename,
		SubmitterName:   actName,
		SubmitterEmail:  actEmail,
		SubmitterMobile: actMobile,
	}

	// Queue for async processing
	jobResponse, err := h.service.SubmitResumeAsync(c.Context(), req)
	if err != nil {
		// If queueing fails, clean up the uploaded file
		_ = h.fileSystem.Delete(c.Context(), filePath)
		return err
	}

	// Return 202 Accepted with job tracking information
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message":    "Resume upload successful, analysis started",
		"job":        jobResponse,
		"status_url": fmt.Sprintf("/api/v1/reports/jobs/%s", jobResponse.JobID),
	})
}

// GetReport retrieves a finished report by ID
// GET /api/v1/reports/:id
func (h *ReportHandlers) GetReport(c *fiber.Ctx) error {
	reportID := kernel.ReportID(c.Params("id"))
	if reportID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid report ID",
		})
	}

	response, err := h.service.GetReport(c.Context(), reportID)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// DeleteReport removes a report and its stored file
// DELETE /api/v1/reports/:id
func (h *ReportHandlers) DeleteReport(c *fiber.Ctx) error {
	reportID := kernel.ReportID(c.Params("id"))
	if reportID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid report ID",
		})
	}

	existing, err := h.service.GetReport(c.Context(), reportID)
	if err != nil {
		return err
	}

	if err := h.service.DeleteReport(c.Context(), reportID); err != nil {
		return err
	}

	// Best effort file cleanup; the report row is already gone
	if existing.FilePath != "" {
		_ = h.fileSystem.Delete(c.Context(), existing.FilePath)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ListReports lists stored reports
// GET /api/v1/reports?page=1&page_size=20
func (h *ReportHandlers) ListReports(c *fiber.Ctx) error {
	req := report.ListReportsRequest{
		Pagination: kernel.PaginationOptions{
			Page:     c.QueryInt("page", 1),
			PageSize: c.QueryInt("page_size", 20),
		},
	}

	response, err := h.service.ListReports(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// GetStats returns aggregate statistics over stored reports
// GET /api/v1/reports/stats
func (h *ReportHandlers) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// ============================================================================
// Job Management Handlers
// ============================================================================

// GetJobStatus retrieves the status of an analysis job
// GET /api/v1/reports/jobs/:job_id
func (h *ReportHandlers) GetJobStatus(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("job_id"))
	if jobID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job ID",
		})
	}

	jobStatus, err := h.service.GetJobStatus(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(jobStatus)
}

// ListJobs lists all analysis jobs
// GET /api/v1/reports/jobs?page=1&page_size=20
func (h *ReportHandlers) ListJobs(c *fiber.Ctx) error {
	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	jobs, err := h.service.ListJobs(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// CancelJob cancels a pending or processing job
// POST /api/v1/reports/jobs/:job_id/cancel
func (h *ReportHandlers) CancelJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("job_id"))
	if jobID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job ID",
		})
	}

	if err := h.service.CancelJob(c.Context(), jobID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "job cancelled successfully",
		"job_id":  jobID,
	})
}

// RetryJob retries a failed job
// POST /api/v1/reports/jobs/:job_id/retry
func (h *ReportHandlers) RetryJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("job_id"))
	if jobID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job ID",
		})
	}

	jobStatus, err := h.service.RetryFailedJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "job retried successfully",
		"job":     jobStatus,
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

// isPDF accepts a file when either the content type or the extension says PDF
func isPDF(filename, contentType string) bool {
	if contentType == "application/pdf" {
		return true
	}
	return filepath.Ext(filename) == ".pdf"
}
