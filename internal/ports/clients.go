package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// TodoAPI defines the client port for the todo server's REST API.
// Implemented by the ACL adapter; called by the client state controller.
// Methods map 1:1 to server endpoints.
type TodoAPI interface {
	// ListTodos returns todos, narrowed to one category when filter.Category is set.
	ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// ListCategories returns the server's distinct category names.
	ListCategories(ctx context.Context) ([]string, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id string) (*todo.Todo, error)

	// CreateTodo creates a new todo and returns the created entity.
	CreateTodo(ctx context.Context, text, category string) (*todo.Todo, error)

	// UpdateTodo applies a partial patch and returns the updated entity.
	UpdateTodo(ctx context.Context, id string, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo deletes a todo and returns its last state.
	DeleteTodo(ctx context.Context, id string) (*todo.Todo, error)
}

// APIError is a failure response from the todo server. Message is the
// server's human-readable detail; Err is the matching domain sentinel.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}
