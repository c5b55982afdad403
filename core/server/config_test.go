package server_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"pantry-planner/core/kitchen"
	"pantry-planner/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_TokenAuth(t *testing.T) {
	assert.False(t, server.Config{}.TokenAuth())
	assert.True(t, server.Config{JWTSecret: "s3cret"}.TokenAuth())
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"NotFound", fmt.Errorf("recipe x: %w", kitchen.ErrNotFound), 404},
		{"Invalid", fmt.Errorf("%w: name is required", kitchen.ErrInvalid), 400},
		{"Forbidden", kitchen.ErrForbidden, 403},
		{"Exists", kitchen.ErrAlreadyExists, 409},
		{"Integrity", fmt.Errorf("wrapped: %w", kitchen.ErrIntegrity), 422},
		{"Other", errors.New("db down"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, server.ErrorStatus(tt.err))
		})
	}
}

func TestRespondError(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return server.RespondError(c, fmt.Errorf("recipe x: %w", kitchen.ErrNotFound), "failed")
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return server.RespondError(c, errors.New("connection reset"), "failed to load")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, "recipe x: not found", body["error"])

	resp, err = app.Test(httptest.NewRequest("GET", "/internal", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	body = decode(t, resp.Body)
	assert.Equal(t, "failed to load", body["error"])
}

func decode(t *testing.T, r io.Reader) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}
