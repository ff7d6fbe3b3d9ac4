package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"mergington.edu/activities-backend/internal/model"
	"mergington.edu/activities-backend/internal/pkg/mgerr"
	"mergington.edu/activities-backend/internal/pkg/observability"
	"mergington.edu/activities-backend/internal/repo"
)

type Activity struct {
	Registry *repo.Registry
}

func NewActivity(registry *repo.Registry) *Activity {
	return &Activity{
		Registry: registry,
	}
}

// List returns the full name → Activity mapping. Always succeeds.
func (s *Activity) List(ctx context.Context) map[string]*model.Activity {
	return s.Registry.List(ctx)
}

// Signup registers email as a participant of the named activity and returns
// the confirmation message. Preconditions are checked in order: the activity
// must exist, then the email must not already be signed up.
func (s *Activity) Signup(ctx context.Context, name, email string) (string, error) {
	err := s.Registry.AddParticipant(ctx, name, email)
	switch {
	case errors.Is(err, repo.ErrActivityNotFound):
		observability.RegistrySignups.WithLabelValues(observability.OutcomeNotFound).Inc()
		return "", mgerr.ErrActivityNotFound
	case errors.Is(err, repo.ErrDuplicateParticipant):
		observability.RegistrySignups.WithLabelValues(observability.OutcomeConflict).Inc()
		return "", mgerr.ErrAlreadySignedUp
	case err != nil:
		return "", err
	}

	observability.RegistrySignups.WithLabelValues(observability.OutcomeSuccess).Inc()
	log.Info().
		Str("evt.name", "registry.signup").
		Str("activity", name).
		Msg("signed up participant")

	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity's participant list and
// returns the confirmation message. Preconditions mirror Signup: the
// activity must exist, then the email must currently be signed up.
func (s *Activity) Unregister(ctx context.Context, name, email string) (string, error) {
	err := s.Registry.RemoveParticipant(ctx, name, email)
	switch {
	case errors.Is(err, repo.ErrActivityNotFound):
		observability.RegistryUnregisters.WithLabelValues(observability.OutcomeNotFound).Inc()
		return "", mgerr.ErrActivityNotFound
	case errors.Is(err, repo.ErrUnknownParticipant):
		observability.RegistryUnregisters.WithLabelValues(observability.OutcomeConflict).Inc()
		return "", mgerr.ErrNotSignedUp
	case err != nil:
		return "", err
	}

	observability.RegistryUnregisters.WithLabelValues(observability.OutcomeSuccess).Inc()
	log.Info().
		Str("evt.name", "registry.unregister").
		Str("activity", name).
		Msg("unregistered participant")

	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}
