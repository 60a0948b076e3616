package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todo-monkeys/database"
	"github.com/sahilchouksey/todo-monkeys/model"
	"github.com/sahilchouksey/todo-monkeys/services"
	"github.com/sahilchouksey/todo-monkeys/services/tools"
	"github.com/sahilchouksey/todo-monkeys/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	svc := services.NewTodoService(database.NewMemoryStore(), nil, zap.NewNop())
	SetupRoutes(app, svc, zap.NewNop())
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeTodo(t *testing.T, env envelope) model.Todo {
	t.Helper()
	var todo model.Todo
	require.NoError(t, json.Unmarshal(env.Data, &todo))
	return todo
}

func TestTodoLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, http.MethodPost, "/api/v1/todos", `{"text":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, status)
	created := decodeTodo(t, env)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Buy milk", created.Text)
	assert.False(t, created.IsCompleted)

	status, env = do(t, app, http.MethodGet, "/api/v1/todos", "")
	require.Equal(t, http.StatusOK, status)
	var todos []model.Todo
	require.NoError(t, json.Unmarshal(env.Data, &todos))
	assert.Len(t, todos, 1)

	status, env = do(t, app, http.MethodPut, "/api/v1/todos/1", `{"text":"Buy oat milk","is_completed":true}`)
	require.Equal(t, http.StatusOK, status)
	updated := decodeTodo(t, env)
	assert.Equal(t, "Buy oat milk", updated.Text)
	assert.True(t, updated.IsCompleted)

	status, env = do(t, app, http.MethodPatch, "/api/v1/todos/1/complete", `{"completed":false}`)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, decodeTodo(t, env).IsCompleted)

	status, env = do(t, app, http.MethodPatch, "/api/v1/todos/1/complete", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, decodeTodo(t, env).IsCompleted)

	status, _ = do(t, app, http.MethodDelete, "/api/v1/todos/1", "")
	require.Equal(t, http.StatusOK, status)

	status, env = do(t, app, http.MethodGet, "/api/v1/todos/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestTodoErrorMapping(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"blank text", http.MethodPost, "/api/v1/todos", `{"text":"   "}`, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"text too long", http.MethodPost, "/api/v1/todos", `{"text":"` + strings.Repeat("a", 501) + `"}`, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"malformed body", http.MethodPost, "/api/v1/todos", `{"text":`, http.StatusBadRequest, "BAD_REQUEST"},
		{"non numeric id", http.MethodGet, "/api/v1/todos/abc", "", http.StatusBadRequest, "BAD_REQUEST"},
		{"zero id", http.MethodDelete, "/api/v1/todos/0", "", http.StatusBadRequest, "BAD_REQUEST"},
		{"negative id", http.MethodPatch, "/api/v1/todos/-4/complete", "", http.StatusBadRequest, "BAD_REQUEST"},
		{"update missing", http.MethodPut, "/api/v1/todos/42", `{"text":"x"}`, http.StatusNotFound, "NOT_FOUND"},
		{"complete missing", http.MethodPatch, "/api/v1/todos/42/complete", "", http.StatusNotFound, "NOT_FOUND"},
		{"delete missing", http.MethodDelete, "/api/v1/todos/42", "", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestDemoEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, http.MethodPost, "/api/v1/demo", "")
	require.Equal(t, http.StatusOK, status)

	var summary services.DemoSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.True(t, summary.Success)
	assert.NotEmpty(t, summary.RunID)
	assert.Len(t, summary.Steps, 5)
	assert.Equal(t, 0, summary.FinalCount)
}

func TestHealthAndPing(t *testing.T) {
	app := newTestApp(t)
	do(t, app, http.MethodPost, "/api/v1/todos", `{"text":"Buy milk"}`)

	status, env := do(t, app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, status)

	var health struct {
		Status     string                    `json:"status"`
		Todos      struct{ Total, Pending int } `json:"todos"`
		Operations map[string]map[string]any `json:"operations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 1, health.Todos.Total)
	assert.Equal(t, 1, health.Todos.Pending)
	assert.Contains(t, health.Operations, services.OpTodoCreate)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestToolCatalogEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, http.MethodGet, "/api/v1/tools", "")
	require.Equal(t, http.StatusOK, status)

	var catalog []tools.ToolInfo
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	require.Len(t, catalog, 5)
	assert.Equal(t, tools.CreateTodoToolName, catalog[0].Name)
	assert.Equal(t, tools.DeleteTodoToolName, catalog[4].Name)
}

// serveTestApp runs app on a loopback listener and returns its base URL
func serveTestApp(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})
	return "http://" + ln.Addr().String()
}

type rpcResponse struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func postMCP(t *testing.T, client *http.Client, url string, id int, method string, params any) rpcResponse {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url+"/mcp", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	req.Header.Set("Mcp-Protocol-Version", "2025-06-18")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Nil(t, out.Error)
	assert.Equal(t, id, out.ID)
	return out
}

func TestMCPEndpointOverHTTP(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	svc := services.NewTodoService(database.NewMemoryStore(), nil, zap.NewNop())
	SetupRoutes(app, svc, zap.NewNop())

	url := serveTestApp(t, app)
	client := &http.Client{Timeout: 5 * time.Second}

	initResp := postMCP(t, client, url, 1, "initialize", map[string]any{
		"protocolVersion": "2025-06-18",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "1.0.0"},
	})
	var initResult struct {
		ServerInfo struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
	}
	require.NoError(t, json.Unmarshal(initResp.Result, &initResult))
	assert.Equal(t, "todo-monkeys", initResult.ServerInfo.Name)

	type callResult struct {
		IsError           bool            `json:"isError"`
		StructuredContent json.RawMessage `json:"structuredContent"`
	}

	created := postMCP(t, client, url, 2, "tools/call", map[string]any{
		"name":      tools.CreateTodoToolName,
		"arguments": map[string]any{"text": "Buy milk"},
	})
	var createResult callResult
	require.NoError(t, json.Unmarshal(created.Result, &createResult))
	require.False(t, createResult.IsError)
	var todo tools.TodoResult
	require.NoError(t, json.Unmarshal(createResult.StructuredContent, &todo))
	assert.Equal(t, "Buy milk", todo.Text)

	stored, err := svc.Get(context.Background(), todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", stored.Text)

	missing := postMCP(t, client, url, 3, "tools/call", map[string]any{
		"name":      tools.DeleteTodoToolName,
		"arguments": map[string]any{"id": 999},
	})
	var deleteResult callResult
	require.NoError(t, json.Unmarshal(missing.Result, &deleteResult))
	assert.True(t, deleteResult.IsError)
}
