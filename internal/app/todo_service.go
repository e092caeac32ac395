// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoRepository.
// Create and Update count active todos and write inside one repository
// transaction, so the per-category cap holds under concurrent requests.
type TodoService struct {
	repo    ports.TodoRepository
	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// Option customizes a TodoService.
type Option func(*TodoService)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *TodoService) { s.now = now }
}

// WithIDGenerator replaces UUID generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *TodoService) { s.newID = newID }
}

// NewTodoService creates a TodoService. metrics may be nil; a nil logger
// discards output.
func NewTodoService(repo ports.TodoRepository, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &TodoService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns todos, optionally narrowed to one category.
func (s *TodoService) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "listing todos", slog.String("category", filter.Category))

	todos, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return todos, nil
}

// Get returns a single todo by ID.
func (s *TodoService) Get(ctx context.Context, id string) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.String("id", id))

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "Get"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// Categories returns the distinct category names.
func (s *TodoService) Categories(ctx context.Context) ([]string, error) {
	s.logger.InfoContext(ctx, "listing categories")

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list categories",
			slog.String("operation", "Categories"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return categories, nil
}

// Create validates and stores a new todo unless its category is full.
func (s *TodoService) Create(ctx context.Context, text, category string) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.String("category", category))

	t := todo.New(text, category, s.timestamp())
	t.ID = s.newID()
	if err := t.Validate(); err != nil {
		return nil, err
	}

	err := s.repo.Atomic(ctx, func(tx ports.TodoTx) error {
		if err := s.checkCapacity(ctx, tx, t.Category); err != nil {
			return err
		}
		return tx.Insert(ctx, &t)
	})
	if err != nil {
		s.logFailure(ctx, "Create", t.ID, err)
		return nil, err
	}

	s.metrics.RecordTodoCreated(ctx, t.CategoryKey())
	return &t, nil
}

// Update merges patch onto the stored todo and persists the result.
func (s *TodoService) Update(ctx context.Context, id string, patch todo.Patch) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo", slog.String("id", id))

	var next todo.Todo
	var completed bool
	err := s.repo.Atomic(ctx, func(tx ports.TodoTx) error {
		current, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}

		next = patch.Apply(*current, s.timestamp())
		if err := next.Validate(); err != nil {
			return err
		}

		if todo.NeedsCapacityCheck(current, &next) {
			if err := s.checkCapacity(ctx, tx, next.Category); err != nil {
				return err
			}
		}

		completed = next.Done && !current.Done
		return tx.Update(ctx, &next)
	})
	if err != nil {
		s.logFailure(ctx, "Update", id, err)
		return nil, err
	}

	if completed {
		s.metrics.RecordTodoCompleted(ctx, next.CategoryKey())
	}
	return &next, nil
}

// Delete removes a todo and returns its last state.
func (s *TodoService) Delete(ctx context.Context, id string) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "deleting todo", slog.String("id", id))

	var deleted *todo.Todo
	err := s.repo.Atomic(ctx, func(tx ports.TodoTx) error {
		t, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		deleted = t
		return tx.Delete(ctx, id)
	})
	if err != nil {
		s.logFailure(ctx, "Delete", id, err)
		return nil, err
	}
	return deleted, nil
}

// checkCapacity fails with a *domain.CapacityError when category already
// holds the maximum number of active todos.
func (s *TodoService) checkCapacity(ctx context.Context, tx ports.TodoTx, category string) error {
	key := todo.CategoryKey(category)

	n, err := tx.CountActive(ctx, key)
	if err != nil {
		return err
	}
	if n >= todo.MaxActivePerCategory {
		s.metrics.RecordCapacityRejected(ctx, key)
		return &domain.CapacityError{Category: category, Limit: todo.MaxActivePerCategory}
	}
	return nil
}

// logFailure logs at warn for client-caused failures and at error otherwise.
func (s *TodoService) logFailure(ctx context.Context, op, id string, err error) {
	level := slog.LevelError
	if isClientError(err) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, fmt.Sprintf("%s todo failed", op),
		slog.String("operation", op),
		slog.String("id", id),
		slog.Any("error", err),
	)
}

// timestamp returns now in UTC at the millisecond precision the store keeps.
func (s *TodoService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}
