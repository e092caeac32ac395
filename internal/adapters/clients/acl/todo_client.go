package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/clients/acl/todo"
	entity "github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoAPI = (*TodoClient)(nil)

// TodoClient is the outbound adapter for the todo server's REST API. It
// implements [ports.TodoAPI].
//
// Wire types are translated by the [todo] sub-package. Failure responses
// become *[ports.APIError] values via [TranslateHTTPError]; transport
// failures (connection refused, open circuit, decode errors) are returned
// wrapped and are not APIErrors.
//
// The underlying [httpclient.Client] provides circuit breaking, optional
// rate limiting, and OpenTelemetry tracing for every call.
type TodoClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewTodoClient creates a TodoClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the todo server
// root (e.g. "http://localhost:4000").
func NewTodoClient(client *httpclient.Client, logger *slog.Logger) *TodoClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListTodos fetches GET /todos, adding ?category= when the filter names one.
func (c *TodoClient) ListTodos(ctx context.Context, filter entity.Filter) ([]entity.Todo, error) {
	path := "/todos" + filterQuery(filter)

	var dtos []todo.TodoDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return todo.ToDomainTodoList(dtos), nil
}

// ListCategories fetches GET /todos/categories.
func (c *TodoClient) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.req.Do(ctx, http.MethodGet, "/todos/categories", http.StatusOK, nil, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// GetTodo fetches GET /todos/{id}.
func (c *TodoClient) GetTodo(ctx context.Context, id string) (*entity.Todo, error) {
	var dto todo.TodoDTO
	if err := c.req.Do(ctx, http.MethodGet, todoPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	result := todo.ToDomainTodo(&dto)
	return &result, nil
}

// CreateTodo sends POST /todos and returns the created todo.
func (c *TodoClient) CreateTodo(ctx context.Context, text, category string) (*entity.Todo, error) {
	var dto todo.TodoDTO
	reqDTO := todo.ToCreateTodoRequest(text, category)
	if err := c.req.Do(ctx, http.MethodPost, "/todos", http.StatusCreated, reqDTO, &dto); err != nil {
		return nil, err
	}
	result := todo.ToDomainTodo(&dto)
	return &result, nil
}

// UpdateTodo sends PATCH /todos/{id} carrying only the fields set in patch.
func (c *TodoClient) UpdateTodo(ctx context.Context, id string, patch entity.Patch) (*entity.Todo, error) {
	var dto todo.TodoDTO
	reqDTO := todo.ToUpdateTodoRequest(patch)
	if err := c.req.Do(ctx, http.MethodPatch, todoPath(id), http.StatusOK, reqDTO, &dto); err != nil {
		return nil, err
	}
	result := todo.ToDomainTodo(&dto)
	return &result, nil
}

// DeleteTodo sends DELETE /todos/{id} and returns the deleted todo.
func (c *TodoClient) DeleteTodo(ctx context.Context, id string) (*entity.Todo, error) {
	var dto todo.TodoDTO
	if err := c.req.Do(ctx, http.MethodDelete, todoPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	result := todo.ToDomainTodo(&dto)
	return &result, nil
}

func todoPath(id string) string {
	return "/todos/" + url.PathEscape(id)
}

// filterQuery converts a filter to a URL query string (including the
// leading "?"). Returns an empty string if no filter is set.
func filterQuery(f entity.Filter) string {
	if f.Category == "" {
		return ""
	}
	v := url.Values{}
	v.Set("category", f.Category)
	return "?" + v.Encode()
}
