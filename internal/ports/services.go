package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// TodoService defines the service port for the todo store.
// Implemented by the application layer; called by inbound adapters (handlers).
// Create and Update enforce the per-category cap on active items.
type TodoService interface {
	// List returns todos in insertion order, optionally narrowed to one
	// category (compared case-insensitively).
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	Get(ctx context.Context, id string) (*todo.Todo, error)

	// Categories returns one name per distinct category key, using the
	// spelling of the earliest inserted todo still present.
	Categories(ctx context.Context) ([]string, error)

	// Create stores a new active todo and returns it with server-assigned
	// fields (ID, timestamps).
	// Returns domain.ErrValidation for bad input and a *domain.CapacityError
	// (matching domain.ErrCapacityExceeded) when the category is full.
	Create(ctx context.Context, text, category string) (*todo.Todo, error)

	// Update applies a partial patch and returns the updated todo.
	// Returns domain.ErrNotFound if the todo does not exist,
	// domain.ErrValidation for bad fields, and a *domain.CapacityError when
	// an active todo is moved into a full category.
	Update(ctx context.Context, id string, patch todo.Patch) (*todo.Todo, error)

	// Delete removes a todo and returns its last state.
	// Returns domain.ErrNotFound if the todo does not exist.
	Delete(ctx context.Context, id string) (*todo.Todo, error)
}
