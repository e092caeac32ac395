package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

const (
	msgMustNotEmpty = "must not be empty"
	msgMustNotNull  = "must not be null"
)

// CreateTodoRequest represents the JSON body for creating a new todo.
type CreateTodoRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Validate checks that required fields are present. Length limits are
// enforced by the domain entity.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Category) == "" {
		fields["category"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Field is a JSON member that records whether it was present and whether it
// was null, which *T cannot distinguish.
type Field[T any] struct {
	Value   T
	Present bool
	Null    bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) optional() todo.Optional[T] {
	if !f.Present || f.Null {
		return todo.Optional[T]{}
	}
	return todo.Some(f.Value)
}

// UpdateTodoRequest represents the JSON body for a partial todo update.
// Absent members are left unchanged; null members are rejected.
type UpdateTodoRequest struct {
	Text     Field[string] `json:"text"`
	Category Field[string] `json:"category"`
	Done     Field[bool]   `json:"done"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	checkString := func(name string, f Field[string]) {
		switch {
		case f.Null:
			fields[name] = msgMustNotNull
		case f.Present && strings.TrimSpace(f.Value) == "":
			fields[name] = msgMustNotEmpty
		}
	}
	checkString("text", r.Text)
	checkString("category", r.Category)
	if r.Done.Null {
		fields["done"] = msgMustNotNull
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch converts the request to a domain patch.
func (r *UpdateTodoRequest) Patch() todo.Patch {
	return todo.Patch{
		Text:     r.Text.optional(),
		Category: r.Category.optional(),
		Done:     r.Done.optional(),
	}
}
