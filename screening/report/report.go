package report

import (
	"time"

	"github.com/Antwa-sensei253/testing-resume-scoring/internal/courses"
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/heuristic"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
)

// Report is the stored outcome of one resume analysis: what the submitter
// told us, what the machine they submitted from looked like, and everything
// the heuristic engine inferred from the document.
type Report struct {
	ID       kernel.ReportID `db:"id" json:"id"`
	SecToken string          `db:"sec_token" json:"sec_token"`

	// Submitter-provided contact details
	SubmitterName   string `db:"act_name" json:"act_name"`
	SubmitterEmail  string `db:"act_mail" json:"act_mail"`
	SubmitterMobile string `db:"act_mob" json:"act_mob"`

	// Client metadata, collected best effort at submission time
	IPAddress string  `db:"ip_add" json:"ip_add"`
	HostName  string  `db:"host_name" json:"host_name"`
	ClientOS  string  `db:"os_name_ver" json:"os_name_ver"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
	City      string  `db:"city" json:"city"`
	Region    string  `db:"state" json:"state"`
	Country   string  `db:"country" json:"country"`

	// Inference results
	Name      string              `db:"name" json:"name"`
	Level     heuristic.Level     `db:"cand_level" json:"cand_level"`
	Field     heuristic.Field     `db:"predicted_field" json:"predicted_field"`
	Score     int                 `db:"resume_score" json:"resume_score"`
	PageCount int                 `db:"no_of_pages" json:"no_of_pages"`
	Skills    []string            `db:"actual_skills" json:"actual_skills"`
	Findings  []heuristic.Finding `db:"findings" json:"findings"`

	// Recommendations
	RecommendedSkills  []string         `db:"recommended_skills" json:"recommended_skills"`
	RecommendedCourses []courses.Course `db:"recommended_courses" json:"recommended_courses"`
	ResumeVideoURL     string           `db:"resume_video_url" json:"resume_video_url"`
	InterviewVideoURL  string           `db:"interview_video_url" json:"interview_video_url"`

	// File metadata
	FilePath string `db:"file_path" json:"file_path"`
	FileName string `db:"pdf_name" json:"pdf_name"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// HasName reports whether name extraction produced a usable name.
func (r *Report) HasName() bool {
	return r.Name != "" && r.Name != heuristic.NameNotFound
}

// IsClassified reports whether the field classifier landed on a real field
// rather than one of the NA/Other buckets.
func (r *Report) IsClassified() bool {
	return r.Field != heuristic.FieldNA && r.Field != heuristic.FieldOther
}
