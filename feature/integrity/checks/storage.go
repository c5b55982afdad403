package checks

import (
	"context"
	"fmt"

	"pantry-planner/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes the dataset bucket.
type StorageReport struct {
	Bucket         string `json:"bucket"`
	BucketExists   bool   `json:"bucket_exists"`
	DatasetObject  string `json:"dataset_object"`
	DatasetPresent bool   `json:"dataset_present"`
	Status         string `json:"status"` // "ok", "error"
}

// CheckStorage verifies that bucket exists and holds the dataset object.
func CheckStorage(ctx context.Context, client storage.Client, bucket, object string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, DatasetObject: object, Status: "error"}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		return report, nil
	}

	present, err := storage.ObjectExists(ctx, client, bucket, object)
	if err != nil {
		return nil, err
	}
	report.DatasetPresent = present
	if present {
		report.Status = "ok"
	}
	return report, nil
}

// FixStorage creates the bucket when it is missing. The dataset itself has to
// be uploaded with the seed command.
func FixStorage(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}
