// Package todo holds the todo entity, its partial-update patch, and the
// category folding rules that the per-category capacity cap is keyed on.
package todo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
)

// Field limits and the per-category cap on active (not done) items.
const (
	MaxTextLength        = 500
	MaxCategoryLength    = 100
	MaxActivePerCategory = 5
)

// Todo is a single task. CompletedAt is non-nil iff Done is true.
type Todo struct {
	ID          string
	Text        string
	Category    string
	Done        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// New returns an active todo with both timestamps set to now. Text and
// category are trimmed; the caller assigns the ID.
func New(text, category string, now time.Time) Todo {
	return Todo{
		Text:      strings.TrimSpace(text),
		Category:  strings.TrimSpace(category),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryKey returns the folded form of the todo's category.
func (t *Todo) CategoryKey() string {
	return CategoryKey(t.Category)
}

// Active reports whether the todo counts against its category's cap.
func (t *Todo) Active() bool {
	return !t.Done
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if msg := checkText(t.Text, MaxTextLength); msg != "" {
		fields["text"] = msg
	}
	if msg := checkText(t.Category, MaxCategoryLength); msg != "" {
		fields["category"] = msg
	}
	if t.Done != (t.CompletedAt != nil) {
		fields["completedAt"] = "must be set iff done"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func checkText(v string, limit int) string {
	if strings.TrimSpace(v) == "" {
		return domain.MsgRequired
	}
	if utf8.RuneCountInString(v) > limit {
		return fmt.Sprintf(domain.MsgTooLong, limit)
	}
	return ""
}
