package checks

import (
	"context"
	"errors"
	"testing"

	"pantry-planner/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Healthy", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "pantry").Return(true, nil)
		client.On("StatObject", ctx, "pantry", "datasets/pantry.yaml", mock.Anything).
			Return(minio.ObjectInfo{Key: "datasets/pantry.yaml"}, nil)

		report, err := CheckStorage(ctx, client, "pantry", "datasets/pantry.yaml")
		require.NoError(t, err)
		assert.True(t, report.BucketExists)
		assert.True(t, report.DatasetPresent)
		assert.Equal(t, "ok", report.Status)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "pantry").Return(false, nil)

		report, err := CheckStorage(ctx, client, "pantry", "datasets/pantry.yaml")
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		assert.Equal(t, "error", report.Status)
		client.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingDataset", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "pantry").Return(true, nil)
		client.On("StatObject", ctx, "pantry", "datasets/pantry.yaml", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		report, err := CheckStorage(ctx, client, "pantry", "datasets/pantry.yaml")
		require.NoError(t, err)
		assert.False(t, report.DatasetPresent)
		assert.Equal(t, "error", report.Status)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "pantry").Return(false, errors.New("dial tcp: refused"))

		_, err := CheckStorage(ctx, client, "pantry", "datasets/pantry.yaml")
		assert.ErrorContains(t, err, "refused")
	})
}

func TestFixStorage(t *testing.T) {
	ctx := context.Background()

	client := new(mocks.Client)
	client.On("BucketExists", ctx, "pantry").Return(false, nil)
	client.On("MakeBucket", ctx, "pantry", mock.Anything).Return(nil)

	require.NoError(t, FixStorage(ctx, client, "pantry", zap.NewNop()))
	client.AssertExpectations(t)

	existing := new(mocks.Client)
	existing.On("BucketExists", ctx, "pantry").Return(true, nil)
	require.NoError(t, FixStorage(ctx, existing, "pantry", zap.NewNop()))
	existing.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}
