package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todo-monkeys/services"
	"github.com/sahilchouksey/todo-monkeys/utils/response"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports liveness and store health
type HealthHandler struct {
	service *services.TodoService
	logger  *zap.Logger
}

func NewHealthHandler(service *services.TodoService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{service: service, logger: logger}
}

// HealthStatus is the payload of GET /health
type HealthStatus struct {
	Status        string                     `json:"status"`
	Store         string                     `json:"store"`
	UptimeSeconds float64                    `json:"uptime_seconds"`
	Todos         *TodoCounts                `json:"todos,omitempty"`
	Operations    map[string]OperationHealth `json:"operations"`
	Timestamp     string                     `json:"timestamp"`
}

type TodoCounts struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

type OperationHealth struct {
	Count     int64   `json:"count"`
	Errors    int64   `json:"errors"`
	AverageMs float64 `json:"average_ms"`
}

// CheckHealth handles GET /health
func (h *HealthHandler) CheckHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	snapshot := h.service.Metrics().Snapshot()
	status := HealthStatus{
		Status:        "healthy",
		Store:         "ok",
		UptimeSeconds: snapshot.UptimeSecs,
		Operations:    make(map[string]OperationHealth, len(snapshot.Operations)),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	for _, op := range snapshot.Operations {
		status.Operations[op.Name] = OperationHealth{Count: op.Count, Errors: op.Errors, AverageMs: op.AverageMs}
	}

	if err := h.service.HealthCheck(ctx); err != nil {
		h.logger.Warn("store health check failed", zap.Error(err))
		status.Status = "unhealthy"
		status.Store = "unavailable"
		return response.ServiceUnavailable(c, "Store is not reachable", status)
	}

	stats, err := h.service.Stats(ctx)
	if err != nil {
		h.logger.Warn("failed to count todos for health", zap.Error(err))
		status.Status = "degraded"
	} else {
		status.Todos = &TodoCounts{Total: stats.Total, Completed: stats.Completed, Pending: stats.Pending}
	}

	return response.Success(c, status)
}

// Ping handles GET /ping
func Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
