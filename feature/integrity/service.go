package integrity

import (
	"context"

	"pantry-planner/core/storage"
	"pantry-planner/feature/catalog"
	"pantry-planner/feature/integrity/checks"
	"pantry-planner/feature/inventories"
	"pantry-planner/feature/recipes"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	dataset string
	logger  *zap.Logger
	db      *gorm.DB
}

// NewService creates a new integrity service. client may be nil when no
// object storage is configured.
func NewService(client storage.Client, bucket, dataset string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		dataset: dataset,
		logger:  logger,
		db:      db,
	}
}

// Models returns every table the application owns.
func Models() []any {
	var models []any
	models = append(models, catalog.Models()...)
	models = append(models, recipes.Models()...)
	models = append(models, inventories.Models()...)
	return models
}

// CheckStorage reports on the dataset bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, errStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.dataset)
}

// FixStorage creates the dataset bucket if needed.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return errStorageDisabled
	}
	return checks.FixStorage(ctx, s.client, s.bucket, s.logger)
}

// CheckSchema compares the database against the application models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, Models()...)
}

// CheckData looks for rows that break reconciliation.
func (s *Service) CheckData(ctx context.Context) (*checks.DataReport, error) {
	return checks.CheckData(ctx, s.db)
}

// Report is the combined result of all checks. A failing check is reported
// under its key instead of aborting the run.
type Report map[string]any

// Run executes every check.
func (s *Service) Run(ctx context.Context) Report {
	report := make(Report)

	if res, err := s.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = res
	}

	if res, err := s.CheckSchema(); err != nil {
		report["schema"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = res
	}

	if res, err := s.CheckData(ctx); err != nil {
		report["data"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["data"] = res
	}

	return report
}
