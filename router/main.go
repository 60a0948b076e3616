package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todo-monkeys/handlers"
	todo_handlers "github.com/sahilchouksey/todo-monkeys/handlers/todo"
	tools_handlers "github.com/sahilchouksey/todo-monkeys/handlers/tools"
	"github.com/sahilchouksey/todo-monkeys/services"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, todoService *services.TodoService, logger *zap.Logger) {
	healthHandler := handlers.NewHealthHandler(todoService, logger)
	todoHandler := todo_handlers.NewTodoHandler(todoService, logger)
	toolsHandler := tools_handlers.NewToolsHandler(todoService)

	// Health check endpoints (public)
	app.Get("/health", healthHandler.CheckHealth)
	app.Get("/ping", handlers.Ping)

	// Model Context Protocol endpoint
	app.All("/mcp", toolsHandler.HandleMCP)

	// API v1 routes
	api := app.Group("/api/v1")

	// Todo routes
	todos := api.Group("/todos")
	todos.Get("/", todoHandler.ListTodos)
	todos.Post("/", todoHandler.CreateTodo)
	todos.Get("/:id", todoHandler.GetTodo)
	todos.Put("/:id", todoHandler.UpdateTodo)
	todos.Patch("/:id/complete", todoHandler.CompleteTodo)
	todos.Delete("/:id", todoHandler.DeleteTodo)

	api.Post("/demo", todoHandler.RunDemo)
	api.Get("/tools", toolsHandler.ListTools)
}
