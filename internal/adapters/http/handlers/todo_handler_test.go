package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/mocks"
)

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(svc), svc
}

func notFound(id string) error {
	return fmt.Errorf("todo with ID %q %w", id, domain.ErrNotFound)
}

// --- ListTodos ---

func TestListTodos_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().List(mock.Anything, todo.Filter{}).Return([]todo.Todo{validTodo()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.TodoResponse](t, rec)
	if len(resp) != 1 || resp[0].ID != testID {
		t.Errorf("response = %+v, want one todo %q", resp, testID)
	}
}

func TestListTodos_CategoryFilter(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().List(mock.Anything, todo.Filter{Category: "Work"}).Return([]todo.Todo{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos?category=Work", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestListTodos_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().List(mock.Anything, todo.Filter{}).Return(nil, errors.New("disk I/O error"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- ListCategories ---

func TestListCategories_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Categories(mock.Anything).Return([]string{"Personal", "Work"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos/categories", nil)
	h.ListCategories(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]string](t, rec)
	if len(resp) != 2 || resp[0] != "Personal" || resp[1] != "Work" {
		t.Errorf("categories = %v, want [Personal Work]", resp)
	}
}

// --- CreateTodo ---

func TestCreateTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	created := validTodo()
	svc.EXPECT().Create(mock.Anything, "Buy groceries", "Personal").Return(&created, nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, dto.CreateTodoRequest{Text: "Buy groceries", Category: "Personal"})
	req := httptest.NewRequest(http.MethodPost, "/todos", body)
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.ID != testID || resp.Done || resp.CompletedAt != nil {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateTodo_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantType   string
	}{
		{
			name:       "invalid JSON",
			body:       `{bad`,
			wantStatus: http.StatusBadRequest,
			wantType:   "about:blank",
		},
		{
			name:       "missing category",
			body:       `{"text":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantType:   "about:blank",
		},
		{
			name:       "text too long",
			body:       `{"text":"x","category":"Work"}`,
			svcErr:     &domain.ValidationError{Fields: map[string]string{"text": "must be at most 500 characters"}},
			wantStatus: http.StatusBadRequest,
			wantType:   "about:blank",
		},
		{
			name:       "category full",
			body:       `{"text":"x","category":"Work"}`,
			svcErr:     &domain.CapacityError{Category: "Work", Limit: 5},
			wantStatus: http.StatusBadRequest,
			wantType:   dto.CapacityProblemType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTodoHandler(t)
			if tt.svcErr != nil {
				svc.EXPECT().Create(mock.Anything, "x", "Work").Return(nil, tt.svcErr)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(tt.body))
			h.CreateTodo(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if resp.Type != tt.wantType {
				t.Errorf("type = %q, want %q", resp.Type, tt.wantType)
			}
		})
	}
}

// --- GetTodo ---

func TestGetTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	td := validTodo()
	svc.EXPECT().Get(mock.Anything, testID).Return(&td, nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/todos/"+testID, nil))
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.Text != "Buy groceries" {
		t.Errorf("Text = %q, want %q", resp.Text, "Buy groceries")
	}
}

func TestGetTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Get(mock.Anything, testID).Return(nil, notFound(testID))

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/todos/"+testID, nil))
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if !strings.Contains(resp.Detail, testID) {
		t.Errorf("Detail = %q, want it to name %q", resp.Detail, testID)
	}
}

// --- UpdateTodo ---

func TestUpdateTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	updated := validTodo()
	updated.Done = true
	completed := testTime
	updated.CompletedAt = &completed
	svc.EXPECT().Update(mock.Anything, testID, mock.MatchedBy(func(p todo.Patch) bool {
		done, ok := p.Done.Get()
		return ok && done && !p.Text.IsSet() && !p.Category.IsSet()
	})).Return(&updated, nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPatch, "/todos/"+testID, strings.NewReader(`{"done":true}`)))
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if !resp.Done || resp.CompletedAt == nil {
		t.Errorf("response = %+v, want done with completedAt", resp)
	}
}

func TestUpdateTodo_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "null text", body: `{"text":null}`, wantStatus: http.StatusBadRequest},
		{name: "wrong type", body: `{"done":"yes"}`, wantStatus: http.StatusBadRequest},
		{name: "not found", body: `{"done":true}`, svcErr: notFound(testID), wantStatus: http.StatusNotFound},
		{
			name:       "category full",
			body:       `{"done":true}`,
			svcErr:     &domain.CapacityError{Category: "Work", Limit: 5},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTodoHandler(t)
			if tt.svcErr != nil {
				svc.EXPECT().Update(mock.Anything, testID, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := httptest.NewRecorder()
			req := withID(httptest.NewRequest(http.MethodPatch, "/todos/"+testID, strings.NewReader(tt.body)))
			h.UpdateTodo(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- DeleteTodo ---

func TestDeleteTodo_ReturnsDeleted(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	deleted := validTodo()
	svc.EXPECT().Delete(mock.Anything, testID).Return(&deleted, nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodDelete, "/todos/"+testID, nil))
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.ID != testID {
		t.Errorf("ID = %q, want %q", resp.ID, testID)
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Delete(mock.Anything, testID).Return(nil, notFound(testID))

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodDelete, "/todos/"+testID, nil))
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
