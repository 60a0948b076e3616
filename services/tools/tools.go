package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sahilchouksey/todo-monkeys/model"
)

// Tool identifiers exposed to agents
const (
	CreateTodoToolName   = "create_todo"
	ListTodosToolName    = "list_todos"
	UpdateTodoToolName   = "update_todo"
	CompleteTodoToolName = "complete_todo"
	DeleteTodoToolName   = "delete_todo"
)

// TodoService is the slice of services.TodoService the tools call into
type TodoService interface {
	Create(ctx context.Context, text string) (model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	Update(ctx context.Context, id int64, text string, completed *bool) (model.Todo, error)
	Complete(ctx context.Context, id int64, completed bool) (model.Todo, error)
	Delete(ctx context.Context, id int64) error
}

// TodoResult is the todo representation returned by every tool
type TodoResult struct {
	ID          int64  `json:"id" jsonschema:"todo identifier"`
	Text        string `json:"text" jsonschema:"todo text"`
	IsCompleted bool   `json:"is_completed" jsonschema:"whether the todo is done"`
	CreatedAt   string `json:"created_at" jsonschema:"RFC3339 timestamp when the todo was created"`
	UpdatedAt   string `json:"updated_at" jsonschema:"RFC3339 timestamp of the last change"`
}

func todoResultFrom(todo model.Todo) TodoResult {
	return TodoResult{
		ID:          todo.ID,
		Text:        todo.Text,
		IsCompleted: todo.IsCompleted,
		CreatedAt:   todo.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   todo.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// CreateTodoInput represents the tool input for creating a todo.
type CreateTodoInput struct {
	Text string `json:"text" jsonschema:"todo text, 1 to 500 characters"`
}

// CreateTodoTool defines the tool schema for creating a todo.
func CreateTodoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        CreateTodoToolName,
		Description: "Creates a new pending todo item with the given text.",
	}
}

// CreateTodoHandler executes a create request.
func CreateTodoHandler(svc TodoService) mcp.ToolHandlerFor[CreateTodoInput, TodoResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateTodoInput) (*mcp.CallToolResult, TodoResult, error) {
		todo, err := svc.Create(ctx, input.Text)
		if err != nil {
			return nil, TodoResult{}, fmt.Errorf("create todo failed: %w", err)
		}
		return nil, todoResultFrom(todo), nil
	}
}

// ListTodosInput takes no arguments.
type ListTodosInput struct{}

// ListTodosResult represents the tool output for listing todos.
type ListTodosResult struct {
	Todos []TodoResult `json:"todos" jsonschema:"every todo ordered by id"`
	Count int          `json:"count" jsonschema:"number of todos"`
}

// ListTodosTool defines the tool schema for listing todos.
func ListTodosTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ListTodosToolName,
		Description: "Lists every todo item, ordered by id.",
	}
}

// ListTodosHandler executes a list request.
func ListTodosHandler(svc TodoService) mcp.ToolHandlerFor[ListTodosInput, ListTodosResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListTodosInput) (*mcp.CallToolResult, ListTodosResult, error) {
		todos, err := svc.List(ctx)
		if err != nil {
			return nil, ListTodosResult{}, fmt.Errorf("list todos failed: %w", err)
		}
		result := ListTodosResult{Todos: make([]TodoResult, 0, len(todos)), Count: len(todos)}
		for _, todo := range todos {
			result.Todos = append(result.Todos, todoResultFrom(todo))
		}
		return nil, result, nil
	}
}

// UpdateTodoInput represents the tool input for updating a todo.
type UpdateTodoInput struct {
	ID          int64  `json:"id" jsonschema:"todo identifier"`
	Text        string `json:"text" jsonschema:"new todo text, 1 to 500 characters"`
	IsCompleted *bool  `json:"is_completed,omitempty" jsonschema:"optional new completion flag"`
}

// UpdateTodoTool defines the tool schema for updating a todo.
func UpdateTodoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        UpdateTodoToolName,
		Description: "Replaces the text of an existing todo and optionally its completion flag.",
	}
}

// UpdateTodoHandler executes an update request.
func UpdateTodoHandler(svc TodoService) mcp.ToolHandlerFor[UpdateTodoInput, TodoResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateTodoInput) (*mcp.CallToolResult, TodoResult, error) {
		todo, err := svc.Update(ctx, input.ID, input.Text, input.IsCompleted)
		if err != nil {
			return nil, TodoResult{}, fmt.Errorf("update todo failed: %w", err)
		}
		return nil, todoResultFrom(todo), nil
	}
}

// CompleteTodoInput represents the tool input for completing a todo.
type CompleteTodoInput struct {
	ID        int64 `json:"id" jsonschema:"todo identifier"`
	Completed *bool `json:"completed,omitempty" jsonschema:"completion flag to set, defaults to true"`
}

// CompleteTodoTool defines the tool schema for completing a todo.
func CompleteTodoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        CompleteTodoToolName,
		Description: "Marks a todo as completed (or pending again with completed=false). Repeating the same status is a no-op.",
	}
}

// CompleteTodoHandler executes a completion request.
func CompleteTodoHandler(svc TodoService) mcp.ToolHandlerFor[CompleteTodoInput, TodoResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CompleteTodoInput) (*mcp.CallToolResult, TodoResult, error) {
		completed := true
		if input.Completed != nil {
			completed = *input.Completed
		}
		todo, err := svc.Complete(ctx, input.ID, completed)
		if err != nil {
			return nil, TodoResult{}, fmt.Errorf("complete todo failed: %w", err)
		}
		return nil, todoResultFrom(todo), nil
	}
}

// DeleteTodoInput represents the tool input for deleting a todo.
type DeleteTodoInput struct {
	ID int64 `json:"id" jsonschema:"todo identifier"`
}

// DeleteTodoResult represents the tool output for deleting a todo.
type DeleteTodoResult struct {
	ID      int64 `json:"id" jsonschema:"todo identifier"`
	Deleted bool  `json:"deleted" jsonschema:"true once the todo is gone"`
}

// DeleteTodoTool defines the tool schema for deleting a todo.
func DeleteTodoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        DeleteTodoToolName,
		Description: "Deletes a todo. Deleting an unknown id reports not found.",
	}
}

// DeleteTodoHandler executes a delete request.
func DeleteTodoHandler(svc TodoService) mcp.ToolHandlerFor[DeleteTodoInput, DeleteTodoResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteTodoInput) (*mcp.CallToolResult, DeleteTodoResult, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, DeleteTodoResult{}, fmt.Errorf("delete todo failed: %w", err)
		}
		return nil, DeleteTodoResult{ID: input.ID, Deleted: true}, nil
	}
}
