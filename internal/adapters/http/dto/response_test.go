package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 120_000_000, time.UTC)

func validTodo() todo.Todo {
	return todo.Todo{
		ID:        "3f1c2a9e-8d4b-4f6e-9a1d-0b2c3d4e5f60",
		Text:      "Buy groceries",
		Category:  "Personal",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	completed := testTime.Add(time.Minute)
	est := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name   string
		todo   todo.Todo
		verify func(t *testing.T, got dto.TodoResponse)
	}{
		{
			name: "maps all fields correctly",
			todo: validTodo(),
			verify: func(t *testing.T, got dto.TodoResponse) {
				t.Helper()
				if got.ID != "3f1c2a9e-8d4b-4f6e-9a1d-0b2c3d4e5f60" {
					t.Errorf("ID = %q", got.ID)
				}
				if got.Text != "Buy groceries" || got.Category != "Personal" {
					t.Errorf("Text/Category = %q/%q", got.Text, got.Category)
				}
				if got.Done {
					t.Error("Done = true, want false")
				}
				if got.CompletedAt != nil {
					t.Errorf("CompletedAt = %q, want nil", *got.CompletedAt)
				}
			},
		},
		{
			name: "timestamps use millisecond UTC format",
			todo: validTodo(),
			verify: func(t *testing.T, got dto.TodoResponse) {
				t.Helper()
				if got.CreatedAt != "2026-02-12T15:04:05.120Z" {
					t.Errorf("CreatedAt = %q, want %q", got.CreatedAt, "2026-02-12T15:04:05.120Z")
				}
			},
		},
		{
			name: "non-UTC timestamps are converted",
			todo: func() todo.Todo {
				td := validTodo()
				td.UpdatedAt = time.Date(2026, 2, 12, 10, 4, 5, 0, est)
				return td
			}(),
			verify: func(t *testing.T, got dto.TodoResponse) {
				t.Helper()
				if got.UpdatedAt != "2026-02-12T15:04:05.000Z" {
					t.Errorf("UpdatedAt = %q, want %q", got.UpdatedAt, "2026-02-12T15:04:05.000Z")
				}
			},
		},
		{
			name: "done todo carries completedAt",
			todo: func() todo.Todo {
				td := validTodo()
				td.Done = true
				td.CompletedAt = &completed
				return td
			}(),
			verify: func(t *testing.T, got dto.TodoResponse) {
				t.Helper()
				if !got.Done {
					t.Error("Done = false, want true")
				}
				if got.CompletedAt == nil || *got.CompletedAt != "2026-02-12T15:05:05.120Z" {
					t.Errorf("CompletedAt = %v, want 2026-02-12T15:05:05.120Z", got.CompletedAt)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.verify(t, dto.ToTodoResponse(&tt.todo))
		})
	}
}

func TestTodoResponse_JSONKeys(t *testing.T) {
	t.Parallel()

	td := validTodo()
	data, err := json.Marshal(dto.ToTodoResponse(&td))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	body := string(data)
	for _, key := range []string{`"id"`, `"text"`, `"category"`, `"done"`, `"createdAt"`, `"updatedAt"`} {
		if !strings.Contains(body, key) {
			t.Errorf("JSON %s missing key %s", body, key)
		}
	}
	if !strings.Contains(body, `"completedAt":null`) {
		t.Errorf("JSON %s should carry an explicit null completedAt", body)
	}
}

func TestToTodoListResponse(t *testing.T) {
	t.Parallel()

	t.Run("empty encodes as array", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(dto.ToTodoListResponse(nil))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("JSON = %s, want []", data)
		}
	})

	t.Run("keeps order", func(t *testing.T) {
		t.Parallel()
		a, b := validTodo(), validTodo()
		a.ID, b.ID = "a", "b"
		got := dto.ToTodoListResponse([]todo.Todo{a, b})
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
			t.Errorf("ToTodoListResponse() = %+v, want [a b]", got)
		}
	})
}

func TestToCategoriesResponse(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToCategoriesResponse(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("JSON = %s, want []", data)
	}
}
