// Package domain contains shared domain types used across entity sub-packages.
// The todo entity lives in domain/todo; this root package holds the sentinel
// errors and the structured ValidationError and CapacityError types that the
// service, HTTP and client layers translate between.
package domain
