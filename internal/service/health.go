package service

import (
	"context"

	"github.com/pkg/errors"

	"mergington.edu/activities-backend/internal/repo"
)

var ErrRegistryNotSeeded = errors.New("registry not seeded")

type Health struct {
	Registry *repo.Registry
}

func NewHealth(registry *repo.Registry) *Health {
	return &Health{
		Registry: registry,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	// the registry is seeded at construction; an empty one means the process
	// is in a state no request should be served from
	if s.Registry.Len(ctx) == 0 {
		return errors.Wrap(ErrRegistryNotSeeded, "no activities registered")
	}

	return nil
}
