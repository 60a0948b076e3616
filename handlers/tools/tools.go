package tools

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	tool_services "github.com/sahilchouksey/todo-monkeys/services/tools"
	"github.com/sahilchouksey/todo-monkeys/utils/response"
)

// ToolsHandler serves the tool catalog and the MCP endpoint
type ToolsHandler struct {
	mcp fiber.Handler
}

// NewToolsHandler builds the MCP server for svc and wraps it for Fiber
func NewToolsHandler(svc tool_services.TodoService) *ToolsHandler {
	server := tool_services.NewServer(svc)
	return &ToolsHandler{
		mcp: adaptor.HTTPHandler(tool_services.NewHTTPHandler(server)),
	}
}

// ListTools handles GET /api/v1/tools
func (h *ToolsHandler) ListTools(c *fiber.Ctx) error {
	return response.Success(c, tool_services.Catalog())
}

// HandleMCP handles every method on /mcp
func (h *ToolsHandler) HandleMCP(c *fiber.Ctx) error {
	return h.mcp(c)
}
