package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"pantry-planner/core/database"
	"pantry-planner/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, Models()...))

	app := fiber.New()
	mockClient := new(mocks.Client)
	feature := NewFeature(mockClient, "pantry", "datasets/pantry.yaml", zap.NewNop(), db)
	require.NoError(t, feature.Load(app))
	return app, mockClient
}

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Client), "pantry", "", zap.NewNop(), nil)
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}

func TestHandleStorageCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "pantry").Return(true, nil)
	mockClient.On("StatObject", mock.Anything, "pantry", "datasets/pantry.yaml", mock.Anything).
		Return(minio.ObjectInfo{}, nil)

	status, body := decode(t, app, "/integrity/storage")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["dataset_present"])
}

func TestHandleStorageCheck_Fix(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "pantry").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "pantry", mock.Anything).Return(nil)

	status, body := decode(t, app, "/integrity/storage?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertCalled(t, "MakeBucket", mock.Anything, "pantry", mock.Anything)
}

func TestHandleStorageCheck_Disabled(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(nil, "", "", zap.NewNop(), nil)).RegisterRoutes(app)

	status, body := decode(t, app, "/integrity/storage")
	assert.Equal(t, 500, status)
	assert.Contains(t, body["error"], "not configured")
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := decode(t, app, "/integrity/schema")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["matched"])
}

func TestHandleDataCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := decode(t, app, "/integrity/data")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["matched"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "pantry").Return(false, nil)

	status, body := decode(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "storage")
	assert.Contains(t, body, "schema")
	assert.Contains(t, body, "data")

	storage := body["storage"].(map[string]any)
	assert.Equal(t, "error", storage["status"])
}
