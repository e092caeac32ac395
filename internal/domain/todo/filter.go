package todo

// Filter holds optional filter criteria for listing todos.
// An empty Category means "all categories".
type Filter struct {
	Category string
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t *Todo) bool {
	return f.Category == "" || SameCategory(f.Category, t.Category)
}
