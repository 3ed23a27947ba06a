package report

import (
	"time"

	"github.com/Antwa-sensei253/testing-resume-scoring/internal/courses"
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/heuristic"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

// SubmitResumeRequest - Request to analyze an uploaded resume
type SubmitResumeRequest struct {
	FilePath string `json:"file_path" validate:"required"`
	FileName string `json:"file_name" validate:"required"`

	SubmitterName   string `json:"act_name" validate:"required"`
	SubmitterEmail  string `json:"act_mail" validate:"required,email"`
	SubmitterMobile string `json:"act_mob" validate:"required"`
}

// ListReportsRequest - List stored reports
type ListReportsRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// ReportResponse - Full analysis report
type ReportResponse struct {
	ID       kernel.ReportID `json:"id"`
	SecToken string          `json:"sec_token"`

	SubmitterName   string `json:"act_name"`
	SubmitterEmail  string `json:"act_mail"`
	SubmitterMobile string `json:"act_mob"`

	Name      string              `json:"name"`
	Level     heuristic.Level     `json:"cand_level"`
	Field     heuristic.Field     `json:"predicted_field"`
	Score     int                 `json:"resume_score"`
	PageCount int                 `json:"no_of_pages"`
	Skills    []string            `json:"actual_skills"`
	Findings  []heuristic.Finding `json:"findings"`

	RecommendedSkills  []string         `json:"recommended_skills"`
	RecommendedCourses []courses.Course `json:"recommended_courses"`
	ResumeVideoURL     string           `json:"resume_video_url"`
	InterviewVideoURL  string           `json:"interview_video_url"`

	FilePath  string    `json:"file_path"`
	FileName  string    `json:"pdf_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportSummaryResponse - Lightweight report row for admin listings
type ReportSummaryResponse struct {
	ID        kernel.ReportID `json:"id"`
	Name      string          `json:"name"`
	Level     heuristic.Level `json:"cand_level"`
	Field     heuristic.Field `json:"predicted_field"`
	Score     int             `json:"resume_score"`
	PageCount int             `json:"no_of_pages"`
	City      string          `json:"city"`
	Country   string          `json:"country"`
	FileName  string          `json:"pdf_name"`
	CreatedAt time.Time       `json:"created_at"`
}

// StatsResponse - Aggregate statistics over stored reports
type StatsResponse struct {
	TotalReports int                     `json:"total_reports"`
	AverageScore float64                 `json:"average_score"`
	ByField      map[heuristic.Field]int `json:"by_field"`
	ByLevel      map[heuristic.Level]int `json:"by_level"`
}

// ============================================================================
// Mapper Functions
// ============================================================================

// ToReportResponse converts a Report domain model to ReportResponse DTO
func ToReportResponse(r *Report) *ReportResponse {
	return &ReportResponse{
		ID:                 r.ID,
		SecToken:           r.SecToken,
		SubmitterName:      r.SubmitterName,
		SubmitterEmail:     r.SubmitterEmail,
		SubmitterMobile:    r.SubmitterMobile,
		Name:               r.Name,
		Level:              r.Level,
		Field:              r.Field,
		Score:              r.Score,
		PageCount:          r.PageCount,
		Skills:             r.Skills,
		Findings:           r.Findings,
		RecommendedSkills:  r.RecommendedSkills,
		RecommendedCourses: r.RecommendedCourses,
		ResumeVideoURL:     r.ResumeVideoURL,
		InterviewVideoURL:  r.InterviewVideoURL,
		FilePath:           r.FilePath,
		FileName:           r.FileName,
		CreatedAt:          r.CreatedAt,
	}
}

// ToReportSummaryResponse converts a Report to its listing row
func ToReportSummaryResponse(r *Report) *ReportSummaryResponse {
	return &ReportSummaryResponse{
		ID:        r.ID,
		Name:      r.Name,
		Level:     r.Level,
		Field:     r.Field,
		Score:     r.Score,
		PageCount: r.PageCount,
		City:      r.City,
		Country:   r.Country,
		FileName:  r.FileName,
		CreatedAt: r.CreatedAt,
	}
}

// ToListReportsResponse creates a paginated listing response
func ToListReportsResponse(reports []*Report, page, pageSize, total int) *kernel.Paginated[ReportSummaryResponse] {
	summaries := make([]ReportSummaryResponse, len(reports))
	for i, r := range reports {
		summaries[i] = *ToReportSummaryResponse(r)
	}
	p := kernel.NewPaginated(summaries, page, pageSize, total)
	return &p
}
