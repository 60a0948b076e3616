// Package tools exposes the todo operations as Model Context Protocol tools
// so agents can drive the service.
package tools

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "todo-monkeys"
	serverVersion = "0.1.0"
)

// ToolInfo is a catalog entry for a registered tool
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog lists the tool identifiers in registration order
func Catalog() []ToolInfo {
	defs := []*mcp.Tool{
		CreateTodoTool(),
		ListTodosTool(),
		UpdateTodoTool(),
		CompleteTodoTool(),
		DeleteTodoTool(),
	}
	catalog := make([]ToolInfo, 0, len(defs))
	for _, def := range defs {
		catalog = append(catalog, ToolInfo{Name: def.Name, Description: def.Description})
	}
	return catalog
}

// NewServer builds an MCP server with every todo tool registered
func NewServer(svc TodoService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(server, CreateTodoTool(), CreateTodoHandler(svc))
	mcp.AddTool(server, ListTodosTool(), ListTodosHandler(svc))
	mcp.AddTool(server, UpdateTodoTool(), UpdateTodoHandler(svc))
	mcp.AddTool(server, CompleteTodoTool(), CompleteTodoHandler(svc))
	mcp.AddTool(server, DeleteTodoTool(), DeleteTodoHandler(svc))

	return server
}

// NewHTTPHandler serves the MCP server over streamable HTTP. Sessions are
// stateless and answered with plain JSON so the handler can sit behind
// adapters that buffer responses.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless:    true,
		JSONResponse: true,
	})
}
