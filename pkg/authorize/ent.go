package authorize

import (
	"context"
	"log/slog"

	casbin "github.com/casbin/casbin/v2"
	entadapter "github.com/casbin/ent-adapter"
)

// CleanupFunc is a function that cleans up resources.
type CleanupFunc func(ctx context.Context)

// NewEnforcer creates a Casbin enforcer backed by the PostgreSQL ent adapter.
// Returns the enforcer and a cleanup function that should be called on shutdown.
func NewEnforcer(dsn string) (*casbin.Enforcer, CleanupFunc, error) {
	a, err := entadapter.NewAdapter("postgres", dsn)
	if err != nil {
		return nil, nil, err
	}

	m, err := NewModel()
	if err != nil {
		return nil, nil, err
	}

	e, err := casbin.NewEnforcer(m, a)
	if err != nil {
		return nil, nil, err
	}

	e.EnableAutoSave(true)
	e.EnableEnforce(true)

	cleanup := func(ctx context.Context) {
		slog.Info("casbin enforcer cleanup completed")
	}

	return e, cleanup, nil
}

// NewMemoryEnforcer creates an enforcer with no persistence. Used by tests
// and the seed dry-run.
func NewMemoryEnforcer() (*casbin.Enforcer, error) {
	m, err := NewModel()
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
