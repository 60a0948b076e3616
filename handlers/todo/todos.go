package todo

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todo-monkeys/database"
	"github.com/sahilchouksey/todo-monkeys/model"
	"github.com/sahilchouksey/todo-monkeys/services"
	"github.com/sahilchouksey/todo-monkeys/utils"
	"github.com/sahilchouksey/todo-monkeys/utils/response"
	"github.com/sahilchouksey/todo-monkeys/utils/validation"
	"go.uber.org/zap"
)

// TodoHandler handles todo-related requests
type TodoHandler struct {
	service   *services.TodoService
	validator *validation.Validator
	logger    *zap.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(service *services.TodoService, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		service:   service,
		validator: validation.NewValidator(),
		logger:    logger,
	}
}

// CreateTodoRequest represents the request body for creating a todo
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

// UpdateTodoRequest represents the request body for updating a todo
type UpdateTodoRequest struct {
	Text        string `json:"text" validate:"required,max=500"`
	IsCompleted *bool  `json:"is_completed"`
}

// CompleteTodoRequest represents the optional body of the complete endpoint
type CompleteTodoRequest struct {
	Completed *bool `json:"completed"`
}

// ListTodos handles GET /api/v1/todos
func (h *TodoHandler) ListTodos(c *fiber.Ctx) error {
	todos, err := h.service.List(c.UserContext())
	if err != nil {
		return h.failure(c, err, "Failed to fetch todos")
	}
	return response.Success(c, todos)
}

// GetTodo handles GET /api/v1/todos/:id
func (h *TodoHandler) GetTodo(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid todo id")
	}

	todo, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return h.failure(c, err, "Failed to fetch todo")
	}
	return response.Success(c, todo)
}

// CreateTodo handles POST /api/v1/todos
func (h *TodoHandler) CreateTodo(c *fiber.Ctx) error {
	var req CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Text = validation.SanitizeString(req.Text)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, "", validation.FormatValidationErrors(err))
	}

	todo, err := h.service.Create(c.UserContext(), req.Text)
	if err != nil {
		return h.failure(c, err, "Failed to create todo")
	}
	return response.Created(c, todo)
}

// UpdateTodo handles PUT /api/v1/todos/:id
func (h *TodoHandler) UpdateTodo(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid todo id")
	}

	var req UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Text = validation.SanitizeString(req.Text)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, "", validation.FormatValidationErrors(err))
	}

	todo, err := h.service.Update(c.UserContext(), id, req.Text, req.IsCompleted)
	if err != nil {
		return h.failure(c, err, "Failed to update todo")
	}
	return response.SuccessWithMessage(c, "Todo updated successfully", todo)
}

// CompleteTodo handles PATCH /api/v1/todos/:id/complete
func (h *TodoHandler) CompleteTodo(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid todo id")
	}

	completed := true
	if len(c.Body()) > 0 {
		var req CompleteTodoRequest
		if err := c.BodyParser(&req); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
		if req.Completed != nil {
			completed = *req.Completed
		}
	}

	todo, err := h.service.Complete(c.UserContext(), id, completed)
	if err != nil {
		return h.failure(c, err, "Failed to complete todo")
	}
	return response.Success(c, todo)
}

// DeleteTodo handles DELETE /api/v1/todos/:id
func (h *TodoHandler) DeleteTodo(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid todo id")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return h.failure(c, err, "Failed to delete todo")
	}
	return response.SuccessWithMessage(c, "Todo deleted successfully", fiber.Map{"id": id})
}

// RunDemo handles POST /api/v1/demo
func (h *TodoHandler) RunDemo(c *fiber.Ctx) error {
	summary, err := h.service.RunDemo(c.UserContext())
	if err != nil {
		h.logger.Error("demo run failed", zap.String("run_id", summary.RunID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(response.Response{
			Success: false,
			Data:    summary,
			Error: &response.ErrorDetail{
				Code:    "DEMO_FAILED",
				Message: "Demo run failed",
			},
		})
	}
	return response.SuccessWithMessage(c, "Demo completed successfully", summary)
}

// failure maps service errors onto HTTP responses. Anything that is not a
// validation or not-found outcome is logged and reported generically.
func (h *TodoHandler) failure(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, database.ErrTodoNotFound):
		return response.NotFound(c, "Todo not found")
	case errors.Is(err, model.ErrTodoTextRequired):
		return response.ValidationError(c, "", map[string]string{"text": "text is required"})
	case errors.Is(err, model.ErrTodoTextTooLong):
		return response.ValidationError(c, "", map[string]string{"text": "text must be at most 500 characters"})
	}

	h.logger.Error(message,
		zap.String("path", c.Path()),
		zap.Any("request_id", c.Locals("requestid")),
		zap.Error(err))
	return response.InternalServerError(c, message)
}
