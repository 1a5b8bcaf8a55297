// Package ports defines the interfaces the weather client's adapters implement.
// These interfaces are implemented by adapters and mocked for testing.
//
//go:generate mockery
package ports
