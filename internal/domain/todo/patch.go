package todo

import (
	"strings"
	"time"
)

// Optional is a value that is either present or absent. A present zero value
// is distinct from absence.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the value if present, otherwise fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Patch is a partial update. Absent fields keep their current values.
type Patch struct {
	Text     Optional[string]
	Category Optional[string]
	Done     Optional[bool]
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return !p.Text.IsSet() && !p.Category.IsSet() && !p.Done.IsSet()
}

// Apply merges p onto current and returns the next state. UpdatedAt becomes
// now. CompletedAt is set to now on a false->true transition of Done, cleared
// whenever the result is not done, and otherwise carried over.
func (p Patch) Apply(current Todo, now time.Time) Todo {
	next := current
	next.Text = strings.TrimSpace(p.Text.Or(current.Text))
	next.Category = strings.TrimSpace(p.Category.Or(current.Category))
	next.Done = p.Done.Or(current.Done)
	next.UpdatedAt = now

	switch {
	case !next.Done:
		next.CompletedAt = nil
	case !current.Done:
		completed := now
		next.CompletedAt = &completed
	}

	return next
}

// NeedsCapacityCheck reports whether moving from current to next must be
// checked against the cap of next's category: the category key changed and
// the item is still active.
func NeedsCapacityCheck(current, next *Todo) bool {
	return next.Active() && !SameCategory(current.Category, next.Category)
}
