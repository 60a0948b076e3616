package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todo-monkeys/database"
	"github.com/sahilchouksey/todo-monkeys/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type downStore struct {
	*database.MemoryStore
}

func (downStore) HealthCheck(context.Context) error {
	return errors.New("connection refused")
}

func TestCheckHealthReportsUnavailableStore(t *testing.T) {
	svc := services.NewTodoService(downStore{database.NewMemoryStore()}, nil, zap.NewNop())
	h := NewHealthHandler(svc, zap.NewNop())

	app := fiber.New()
	app.Get("/health", h.CheckHealth)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body struct {
		Success bool         `json:"success"`
		Data    HealthStatus `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "unhealthy", body.Data.Status)
	assert.Equal(t, "unavailable", body.Data.Store)
	assert.Len(t, body.Data.Operations, len(services.TodoOperations))
}
