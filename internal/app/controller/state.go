package controller

import (
	"maps"
	"slices"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// UndoNotice is the open undo prompt.
type UndoNotice struct {
	ID   string
	Text string
}

// State is a copy of the controller's mirror. Mutating it has no effect on
// the controller.
type State struct {
	Todos      []todo.Todo
	Categories []string
	Filter     string
	// Deleting holds IDs whose delete request is in flight.
	Deleting map[string]bool
	// Pending holds IDs with a deferred deletion scheduled.
	Pending  map[string]bool
	Loading  bool
	Creating bool
	// Error is the banner message; empty when no banner is shown.
	Error string
	// Undo is nil when no undo prompt is open.
	Undo *UndoNotice
}

// IsPending reports whether id is counting down to deletion.
func (s State) IsPending(id string) bool {
	return s.Pending[id]
}

// IsDeleting reports whether a delete request for id is in flight.
func (s State) IsDeleting(id string) bool {
	return s.Deleting[id]
}

func (s State) clone() State {
	out := s
	out.Todos = slices.Clone(s.Todos)
	for i := range out.Todos {
		if at := out.Todos[i].CompletedAt; at != nil {
			v := *at
			out.Todos[i].CompletedAt = &v
		}
	}
	out.Categories = slices.Clone(s.Categories)
	out.Deleting = maps.Clone(s.Deleting)
	if out.Deleting == nil {
		out.Deleting = map[string]bool{}
	}
	out.Pending = maps.Clone(s.Pending)
	if s.Undo != nil {
		u := *s.Undo
		out.Undo = &u
	}
	return out
}
