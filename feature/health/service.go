package health

import (
	"context"

	"drone-config/core/storage"
	"drone-config/feature/drone"
	"drone-config/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Overall statuses.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// DatabaseReport is the database section of a health report.
type DatabaseReport struct {
	Status string               `json:"status"`
	Schema *checks.SchemaReport `json:"schema,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// Report is the body of GET /health.
type Report struct {
	Status   string               `json:"status"`
	Database DatabaseReport       `json:"database"`
	Storage  checks.StorageReport `json:"storage"`
}

// Service runs the health checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new health service. client may be nil when storage is disabled.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Check runs every check and folds them into one report.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Status:   StatusOK,
		Database: s.checkDatabase(ctx),
		Storage:  checks.CheckStorage(ctx, s.client, s.bucket),
	}

	if report.Database.Status != StatusOK {
		report.Status = StatusDegraded
	}
	if report.Storage.Status != checks.StorageOK && report.Storage.Status != checks.StorageDisabled {
		report.Status = StatusDegraded
	}
	return report
}

func (s *Service) checkDatabase(ctx context.Context) DatabaseReport {
	if s.db == nil {
		return DatabaseReport{Status: StatusDegraded, Error: "database connection is nil"}
	}

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return DatabaseReport{Status: StatusDegraded, Error: err.Error()}
	}

	schema, err := checks.CheckSchema(s.db.WithContext(ctx), drone.Config{})
	if err != nil {
		return DatabaseReport{Status: StatusDegraded, Error: err.Error()}
	}
	if !schema.Matched {
		return DatabaseReport{Status: StatusDegraded, Schema: schema}
	}
	return DatabaseReport{Status: StatusOK, Schema: schema}
}
