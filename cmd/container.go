package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/Antwa-sensei253/testing-resume-scoring/internal/geo"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/fsx"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/fsx/fsxlocal"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/fsx/fsxs3"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/logx"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/feedback/feedbackapi"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/feedback/feedbackinfra"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/feedback/feedbacksrv"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report/reportapi"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report/reportinfra"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report/reportsrv"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report/worker"
)

const analysisQueueName = "resume:analysis"

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	Queue      report.JobQueue

	// Domain Services
	ReportService   *reportsrv.Service
	FeedbackService *feedbacksrv.Service

	// API Handlers
	ReportHandlers   *reportapi.ReportHandlers
	FeedbackHandlers *feedbackapi.FeedbackHandlers

	// Background Processing
	Worker *worker.AnalysisWorker
}

// NewContainer initializes the dependency injection container
func NewContainer(workers int) *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices(workers)
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	dbUser := envOr("DB_USER", "postgres")
	dbPass := os.Getenv("DB_PASS")
	dbName := envOr("DB_NAME", "screening")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
	if err := c.Redis.Ping(context.Background()).Err(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. File Storage
	switch envOr("STORAGE_BACKEND", "local") {
	case "s3":
		awsRegion := os.Getenv("AWS_REGION")
		awsBucket := os.Getenv("AWS_BUCKET")
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.FileSystem = fsxs3.NewS3FileSystem(s3.NewFromConfig(cfg), awsBucket, "uploads")
	default:
		c.FileSystem = fsxlocal.NewLocalFileSystem(envOr("STORAGE_ROOT", "./data"))
	}
}

func (c *Container) initServices(workers int) {
	// --- Repositories & Queue ---
	reportRepo := reportinfra.NewPostgresReportRepository(c.DB)
	jobRepo := reportinfra.NewPostgresJobRepository(c.DB)
	c.Queue = reportinfra.NewRedisQueue(c.Redis, analysisQueueName)
	feedbackRepo := feedbackinfra.NewPostgresFeedbackRepository(c.DB)

	// --- Analysis Pipeline Adapters ---
	extractor := reportinfra.NewPDFExtractor()
	tagger := reportinfra.NewProseTagger()
	catalog := reportinfra.NewStaticCatalog()
	locator := geo.NewLocator()

	// --- Domain Services ---
	c.ReportService = reportsrv.NewService(
		reportRepo,
		jobRepo,
		c.Queue,
		c.FileSystem,
		extractor,
		tagger,
		catalog,
		locator,
	)
	c.FeedbackService = feedbacksrv.NewService(feedbackRepo)

	// --- Handlers ---
	c.ReportHandlers = reportapi.NewReportHandlers(c.ReportService, c.FileSystem)
	c.FeedbackHandlers = feedbackapi.NewFeedbackHandlers(c.FeedbackService)

	// --- Background Worker ---
	c.Worker = worker.NewAnalysisWorker(c.ReportService, c.Queue, workers)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
