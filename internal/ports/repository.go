package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// TodoRepository is the storage port for todos. Implemented by the SQLite
// adapter; called by the application layer.
type TodoRepository interface {
	// List returns todos in insertion order, filtered by category key when
	// filter.Category is set.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// Get returns the todo with id or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*todo.Todo, error)

	// Categories returns the representative spelling of each category key,
	// ordered by key.
	Categories(ctx context.Context) ([]string, error)

	// Atomic runs fn inside a write transaction that is serialized against
	// every other Atomic call. The transaction commits when fn returns nil
	// and rolls back otherwise.
	Atomic(ctx context.Context, fn func(tx TodoTx) error) error
}

// TodoTx is the set of operations available inside TodoRepository.Atomic.
type TodoTx interface {
	Get(ctx context.Context, id string) (*todo.Todo, error)

	// CountActive returns the number of todos with the given category key
	// that are not done.
	CountActive(ctx context.Context, categoryKey string) (int, error)

	Insert(ctx context.Context, t *todo.Todo) error

	// Update overwrites the stored row for t.ID; domain.ErrNotFound if absent.
	Update(ctx context.Context, t *todo.Todo) error

	// Delete removes the row for id; domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}
