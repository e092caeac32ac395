// Package todo implements the Anti-Corruption Layer translators for the
// todo server's wire representation.
package todo

// TodoDTO matches the server's TodoItem JSON. Timestamps are ISO-8601 strings;
// CompletedAt is null while the todo is active.
type TodoDTO struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	Category    string  `json:"category"`
	Done        bool    `json:"done"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	CompletedAt *string `json:"completedAt"`
}

// CreateTodoRequestDTO is the POST /todos body.
type CreateTodoRequestDTO struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// UpdateTodoRequestDTO is the PATCH /todos/{id} body.
// All fields are optional; nil means "do not change this field.".
type UpdateTodoRequestDTO struct {
	Text     *string `json:"text,omitempty"`
	Category *string `json:"category,omitempty"`
	Done     *bool   `json:"done,omitempty"`
}
