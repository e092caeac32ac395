package todo

import (
	"time"

	entity "github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// ToDomainTodo converts a server TodoDTO to a domain Todo entity.
// Unparseable timestamps become the zero time; an unparseable completedAt
// becomes nil.
func ToDomainTodo(dto *TodoDTO) entity.Todo {
	t := entity.Todo{
		ID:        dto.ID,
		Text:      dto.Text,
		Category:  dto.Category,
		Done:      dto.Done,
		CreatedAt: parseTime(dto.CreatedAt),
		UpdatedAt: parseTime(dto.UpdatedAt),
	}
	if dto.CompletedAt != nil {
		if completed, err := time.Parse(time.RFC3339Nano, *dto.CompletedAt); err == nil {
			completed = completed.UTC()
			t.CompletedAt = &completed
		}
	}
	return t
}

// ToDomainTodoList converts a server todo array to domain Todo entities.
func ToDomainTodoList(dtos []TodoDTO) []entity.Todo {
	todos := make([]entity.Todo, len(dtos))
	for i := range dtos {
		todos[i] = ToDomainTodo(&dtos[i])
	}
	return todos
}

// ToCreateTodoRequest builds the POST /todos body.
func ToCreateTodoRequest(text, category string) CreateTodoRequestDTO {
	return CreateTodoRequestDTO{Text: text, Category: category}
}

// ToUpdateTodoRequest converts a domain patch to the PATCH body. Absent
// patch fields are omitted from the JSON.
func ToUpdateTodoRequest(patch entity.Patch) UpdateTodoRequestDTO {
	var req UpdateTodoRequestDTO
	if v, ok := patch.Text.Get(); ok {
		req.Text = &v
	}
	if v, ok := patch.Category.Get(); ok {
		req.Category = &v
	}
	if v, ok := patch.Done.Get(); ok {
		req.Done = &v
	}
	return req
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
