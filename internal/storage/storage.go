// Package storage defines the persistence interface scenario backends
// implement: JSON snapshot files, a local SQLite database, or Postgres.
package storage

import "github.com/scenforge/unitcreator/internal/store"

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Scenario persistence. SaveScenario replaces any stored scenario of
	// the same name; LoadScenario returns a fresh store populated with
	// the named scenario.
	SaveScenario(st *store.Store) error
	LoadScenario(name string) (*store.Store, error)
	ListScenarios() ([]string, error)
}
