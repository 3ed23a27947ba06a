package reportsrv

import (
	"context"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/fsx"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report"
)

// CourseRecommendationCount is how many courses a finished report carries.
const CourseRecommendationCount = 5

// Service orchestrates the resume analysis pipeline: file intake, async
// processing, and report retrieval.
type Service struct {
	repo       report.Repository
	jobRepo    report.JobRepository
	queue      report.JobQueue
	fileReader fsx.FileReader
	extractor  report.TextExtractor
	tagger     report.Tagger
	catalog    report.CourseCatalog
	locator    report.Locator
}

func NewService(
	repo report.Repository,
	jobRepo report.JobRepository,
	queue report.JobQueue,
	fileReader fsx.FileReader,
	extractor report.TextExtractor,
	tagger report.Tagger,
	catalog report.CourseCatalog,
	locator report.Locator,
) *Service {
	return &Service{
		repo:       repo,
		jobRepo:    jobRepo,
		queue:      queue,
		fileReader: fileReader,
		extractor:  extractor,
		tagger:     tagger,
		catalog:    catalog,
		locator:    locator,
	}
}

// GetReport retrieves a finished report by ID
func (s *Service) GetReport(ctx context.Context, id kernel.ReportID) (*report.ReportResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, report.ErrReportNotFound().
			WithDetail("report_id", id)
	}
	return report.ToReportResponse(r), nil
}

// ListReports retrieves stored reports, newest first
func (s *Service) ListReports(ctx context.Context, req report.ListReportsRequest) (*kernel.Paginated[report.ReportSummaryResponse], error) {
	pagination := req.Pagination.Normalize()

	page, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, report.ErrRegistry.NewWithCause(report.CodeReportNotFound, err)
	}

	reports := make([]*report.Report, 0, len(page.Items))
	for i := range page.Items {
		reports = append(reports, &page.Items[i])
	}
	return report.ToListReportsResponse(reports, page.Page.Number, page.Page.Size, page.Page.Total), nil
}

// DeleteReport removes a report and its stored file
func (s *Service) DeleteReport(ctx context.Context, id kernel.ReportID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return report.ErrReportNotFound().
			WithDetail("report_id", id)
	}
	return s.repo.Delete(ctx, id)
}

// GetStats aggregates field/level distribution and the average score
func (s *Service) GetStats(ctx context.Context) (*report.StatsResponse, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, report.ErrStatsFailed().
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}
	return stats, nil
}
