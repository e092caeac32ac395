// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// The repository port is implemented by the storage adapter.
// Client ports are implemented by outbound adapters and called by the
// terminal client's state controller.
package ports
