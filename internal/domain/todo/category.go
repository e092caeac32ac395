package todo

import (
	"strings"

	"golang.org/x/text/cases"
)

// CategoryKey folds a category name for grouping and cap checks, so "Work",
// "work" and "WORK" share one key. The stored category keeps its casing.
func CategoryKey(category string) string {
	return cases.Fold().String(strings.TrimSpace(category))
}

// SameCategory reports whether a and b fold to the same key.
func SameCategory(a, b string) bool {
	return CategoryKey(a) == CategoryKey(b)
}
