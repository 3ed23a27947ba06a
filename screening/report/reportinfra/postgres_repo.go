package reportinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Antwa-sensei253/testing-resume-scoring/internal/courses"
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/heuristic"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/logx"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report"
)

type PostgresReportRepository struct {
	db *sqlx.DB
}

func NewPostgresReportRepository(db *sqlx.DB) report.Repository {
	return &PostgresReportRepository{db: db}
}

// dbReport is the database model with array and JSON column handling
type dbReport struct {
	ID       string `db:"id"`
	SecToken string `db:"sec_token"`

	SubmitterName   string `db:"act_name"`
	SubmitterEmail  string `db:"act_mail"`
	SubmitterMobile string `db:"act_mob"`

	IPAddress string  `db:"ip_add"`
	HostName  string  `db:"host_name"`
	ClientOS  string  `db:"os_name_ver"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
	City      string  `db:"city"`
	Region    string  `db:"state"`
	Country   string  `db:"country"`

	Name      string         `db:"name"`
	Level     string         `db:"cand_level"`
	Field     string         `db:"predicted_field"`
	Score     int            `db:"resume_score"`
	PageCount int            `db:"no_of_pages"`
	Skills    pq.StringArray `db:"actual_skills"`
	Findings  string         `db:"findings"`

	RecommendedSkills  pq.StringArray `db:"recommended_skills"`
	RecommendedCourses string         `db:"recommended_courses"`
	ResumeVideoURL     string         `db:"resume_video_url"`
	InterviewVideoURL  string         `db:"interview_video_url"`

	FilePath string `db:"file_path"`
	FileName string `db:"pdf_name"`

	CreatedAt time.Time `db:"created_at"`
}

const reportColumns = `
	id, sec_token, act_name, act_mail, act_mob,
	ip_add, host_name, os_name_ver, latitude, longitude, city, state, country,
	name, cand_level, predicted_field, resume_score, no_of_pages,
	actual_skills, findings, recommended_skills, recommended_courses,
	resume_video_url, interview_video_url,
	file_path, pdf_name, created_at`

// Create stores a finished report
func (r *PostgresReportRepository) Create(ctx context.Context, rep *report.Report) error {
	query := `
		INSERT INTO reports (` + reportColumns + `
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18,
			$19, $20, $21, $22,
			$23, $24,
			$25, $26, $27
		)
	`

	dbRep, err := toDBReport(rep)
	if err != nil {
		return fmt.Errorf("convert to db report: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		dbRep.ID, dbRep.SecToken, dbRep.SubmitterName, dbRep.SubmitterEmail, dbRep.SubmitterMobile,
		dbRep.IPAddress, dbRep.HostName, dbRep.ClientOS, dbRep.Latitude, dbRep.Longitude,
		dbRep.City, dbRep.Region, dbRep.Country,
		dbRep.Name, dbRep.Level, dbRep.Field, dbRep.Score, dbRep.PageCount,
		dbRep.Skills, dbRep.Findings, dbRep.RecommendedSkills, dbRep.RecommendedCourses,
		dbRep.ResumeVideoURL, dbRep.InterviewVideoURL,
		dbRep.FilePath, dbRep.FileName, dbRep.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("report already exists: %w", err)
		}
		return fmt.Errorf("create report: %w", err)
	}

	logx.Infof("Created report: %s", rep.ID)
	return nil
}

// GetByID retrieves a report by ID
func (r *PostgresReportRepository) GetByID(ctx context.Context, id kernel.ReportID) (*report.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	var dbRep dbReport
	if err := r.db.GetContext(ctx, &dbRep, query, id.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("report not found: %s", id)
		}
		return nil, fmt.Errorf("get report: %w", err)
	}

	return toDomainReport(&dbRep)
}

// List retrieves all reports with pagination, newest first
func (r *PostgresReportRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[report.Report], error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	query := `SELECT ` + reportColumns + `
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var dbReps []dbReport
	if err := r.db.SelectContext(ctx, &dbReps, query, pagination.PageSize, offset); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]report.Report, 0, len(dbReps))
	for i := range dbReps {
		rep, err := toDomainReport(&dbReps[i])
		if err != nil {
			logx.Errorf("Failed to convert report %s: %v", dbReps[i].ID, err)
			continue
		}
		reports = append(reports, *rep)
	}

	page := kernel.NewPaginated(reports, pagination.Page, pagination.PageSize, total)
	return &page, nil
}

// Delete removes a report
func (r *PostgresReportRepository) Delete(ctx context.Context, id kernel.ReportID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("report not found: %s", id)
	}
	return nil
}

// Count returns the total number of stored reports
func (r *PostgresReportRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM reports`); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return total, nil
}

// Stats aggregates field/level distribution and the average score
func (r *PostgresReportRepository) Stats(ctx context.Context) (*report.StatsResponse, error) {
	stats := &report.StatsResponse{
		ByField: make(map[heuristic.Field]int),
		ByLevel: make(map[heuristic.Level]int),
	}

	summary := struct {
		Total   int             `db:"total"`
		Average sql.NullFloat64 `db:"average"`
	}{}
	if err := r.db.GetContext(ctx, &summary,
		`SELECT COUNT(*) AS total, AVG(resume_score) AS average FROM reports`); err != nil {
		return nil, fmt.Errorf("report summary: %w", err)
	}
	stats.TotalReports = summary.Total
	if summary.Average.Valid {
		stats.AverageScore = summary.Average.Float64
	}

	type bucket struct {
		Key   string `db:"key"`
		Count int    `db:"count"`
	}

	var fields []bucket
	if err := r.db.SelectContext(ctx, &fields,
		`SELECT predicted_field AS key, COUNT(*) AS count FROM reports GROUP BY predicted_field`); err != nil {
		return nil, fmt.Errorf("field distribution: %w", err)
	}
	for _, b := range fields {
		stats.ByField[heuristic.Field(b.Key)] = b.Count
	}

	var levels []bucket
	if err := r.db.SelectContext(ctx, &levels,
		`SELECT cand_level AS key, COUNT(*) AS count FROM reports GROUP BY cand_level`); err != nil {
		return nil, fmt.Errorf("level distribution: %w", err)
	}
	for _, b := range levels {
		stats.ByLevel[heuristic.Level(b.Key)] = b.Count
	}

	return stats, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func toDBReport(rep *report.Report) (*dbReport, error) {
	findingsJSON, err := json.Marshal(rep.Findings)
	if err != nil {
		return nil, fmt.Errorf("marshal findings: %w", err)
	}
	coursesJSON, err := json.Marshal(rep.RecommendedCourses)
	if err != nil {
		return nil, fmt.Errorf("marshal courses: %w", err)
	}

	return &dbReport{
		ID:                 rep.ID.String(),
		SecToken:           rep.SecToken,
		SubmitterName:      rep.SubmitterName,
		SubmitterEmail:     rep.SubmitterEmail,
		SubmitterMobile:    rep.SubmitterMobile,
		IPAddress:          rep.IPAddress,
		HostName:           rep.HostName,
		ClientOS:           rep.ClientOS,
		Latitude:           rep.Latitude,
		Longitude:          rep.Longitude,
		City:               rep.City,
		Region:             rep.Region,
		Country:            rep.Country,
		Name:               rep.Name,
		Level:              string(rep.Level),
		Field:              string(rep.Field),
		Score:              rep.Score,
		PageCount:          rep.PageCount,
		Skills:             pq.StringArray(rep.Skills),
		Findings:           string(findingsJSON),
		RecommendedSkills:  pq.StringArray(rep.RecommendedSkills),
		RecommendedCourses: string(coursesJSON),
		ResumeVideoURL:     rep.ResumeVideoURL,
		InterviewVideoURL:  rep.InterviewVideoURL,
		FilePath:           rep.FilePath,
		FileName:           rep.FileName,
		CreatedAt:          rep.CreatedAt,
	}, nil
}

func toDomainReport(dbRep *dbReport) (*report.Report, error) {
	var findings []heuristic.Finding
	if dbRep.Findings != "" {
		if err := json.Unmarshal([]byte(dbRep.Findings), &findings); err != nil {
			return nil, fmt.Errorf("unmarshal findings: %w", err)
		}
	}

	var recommended []courses.Course
	if dbRep.RecommendedCourses != "" {
		if err := json.Unmarshal([]byte(dbRep.RecommendedCourses), &recommended); err != nil {
			return nil, fmt.Errorf("unmarshal courses: %w", err)
		}
	}

	return &report.Report{
		ID:                 kernel.ReportID(dbRep.ID),
		SecToken:           dbRep.SecToken,
		SubmitterName:      dbRep.SubmitterName,
		SubmitterEmail:     dbRep.SubmitterEmail,
		SubmitterMobile:    dbRep.SubmitterMobile,
		IPAddress:          dbRep.IPAddress,
		HostName:           dbRep.HostName,
		ClientOS:           dbRep.ClientOS,
		Latitude:           dbRep.Latitude,
		Longitude:          dbRep.Longitude,
		City:               dbRep.City,
		Region:             dbRep.Region,
		Country:            dbRep.Country,
		Name:               dbRep.Name,
		Level:              heuristic.Level(dbRep.Level),
		Field:              heuristic.Field(dbRep.Field),
		Score:              dbRep.Score,
		PageCount:          dbRep.PageCount,
		Skills:             []string(dbRep.Skills),
		Findings:           findings,
		RecommendedSkills:  []string(dbRep.RecommendedSkills),
		RecommendedCourses: recommended,
		ResumeVideoURL:     dbRep.ResumeVideoURL,
		InterviewVideoURL:  dbRep.InterviewVideoURL,
		FilePath:           dbRep.FilePath,
		FileName:           dbRep.FileName,
		CreatedAt:          dbRep.CreatedAt,
	}, nil
}
