package tools

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sahilchouksey/todo-monkeys/database"
	"github.com/sahilchouksey/todo-monkeys/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func connectClient(t *testing.T) *mcp.ClientSession {
	t.Helper()
	svc := services.NewTodoService(database.NewMemoryStore(), nil, zap.NewNop())
	server := NewServer(svc)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

func callTool[T any](t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (T, *mcp.CallToolResult) {
	t.Helper()
	var out T
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)
	if !result.IsError {
		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok, "expected text content, got %T", result.Content[0])
		require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	}
	return out, result
}

func TestListToolsExposesCatalog(t *testing.T) {
	session := connectClient(t)

	listed, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, tool := range listed.Tools {
		names[tool.Name] = true
	}
	for _, info := range Catalog() {
		assert.True(t, names[info.Name], "tool %s not registered", info.Name)
	}
	assert.Len(t, listed.Tools, 5)
}

func TestToolLifecycle(t *testing.T) {
	session := connectClient(t)

	created, res := callTool[TodoResult](t, session, CreateTodoToolName, map[string]any{"text": " Buy milk "})
	require.False(t, res.IsError)
	assert.Equal(t, "Buy milk", created.Text)
	assert.False(t, created.IsCompleted)

	listed, res := callTool[ListTodosResult](t, session, ListTodosToolName, nil)
	require.False(t, res.IsError)
	assert.Equal(t, 1, listed.Count)
	require.Len(t, listed.Todos, 1)
	assert.Equal(t, created.ID, listed.Todos[0].ID)

	updated, res := callTool[TodoResult](t, session, UpdateTodoToolName, map[string]any{"id": created.ID, "text": "Buy oat milk"})
	require.False(t, res.IsError)
	assert.Equal(t, "Buy oat milk", updated.Text)

	completed, res := callTool[TodoResult](t, session, CompleteTodoToolName, map[string]any{"id": created.ID})
	require.False(t, res.IsError)
	assert.True(t, completed.IsCompleted)

	deleted, res := callTool[DeleteTodoResult](t, session, DeleteTodoToolName, map[string]any{"id": created.ID})
	require.False(t, res.IsError)
	assert.True(t, deleted.Deleted)

	_, res = callTool[DeleteTodoResult](t, session, DeleteTodoToolName, map[string]any{"id": created.ID})
	assert.True(t, res.IsError)
	text := res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, "not found")
}

func TestCreateToolRejectsBlankText(t *testing.T) {
	session := connectClient(t)

	_, res := callTool[TodoResult](t, session, CreateTodoToolName, map[string]any{"text": "   "})
	assert.True(t, res.IsError)
}

func TestCatalogOrder(t *testing.T) {
	names := []string{}
	for _, info := range Catalog() {
		names = append(names, info.Name)
		assert.NotEmpty(t, info.Description)
	}
	assert.Equal(t, []string{"create_todo", "list_todos", "update_todo", "complete_todo", "delete_todo"}, names)
}
