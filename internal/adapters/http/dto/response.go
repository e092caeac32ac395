// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// TimeLayout is ISO-8601 in UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	Category    string  `json:"category"`
	Done        bool    `json:"done"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	CompletedAt *string `json:"completedAt"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	resp := TodoResponse{
		ID:        t.ID,
		Text:      t.Text,
		Category:  t.Category,
		Done:      t.Done,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
	if t.CompletedAt != nil {
		completed := formatTime(*t.CompletedAt)
		resp.CompletedAt = &completed
	}
	return resp
}

// ToTodoListResponse converts domain todos to a JSON array. An empty result
// encodes as [] rather than null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// ToCategoriesResponse returns categories as a non-nil slice.
func ToCategoriesResponse(categories []string) []string {
	if categories == nil {
		return []string{}
	}
	return categories
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
