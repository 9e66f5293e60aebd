// Package storage holds the data behind the mock collaborator API: the
// ordered location list and the set of names that are already taken.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vcrobe/userform/config"
)

// ErrUnknownDriver is returned by New for an unsupported driver name.
var ErrUnknownDriver = errors.New("storage: unknown driver")

// Registry is the read side used by the mock API.
type Registry interface {
	// Locations returns the locations in display order.
	Locations(ctx context.Context) ([]string, error)
	// IsNameTaken reports whether name is already registered.
	IsNameTaken(ctx context.Context, name string) (bool, error)
}

// Lifecycle is implemented by registries holding external resources.
type Lifecycle interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
}

// NormalizeName is the comparison key for taken names: trimmed and lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// New builds the registry selected by cfg.Storage.Driver, seeded from seed.
func New(cfg *config.Config, seed Seed, log *zap.SugaredLogger) (Registry, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return NewMemory(seed), nil
	case config.DriverPostgres:
		return NewPostgres(cfg.Postgres, seed, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}
}
