package repo

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"mergington.edu/activities-backend/internal/model"
)

var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrDuplicateParticipant = errors.New("participant already in activity")
	ErrUnknownParticipant   = errors.New("participant not in activity")
)

// Registry holds the full activity collection in process memory. All state
// lives and dies with the process; a restart reseeds from the defaults.
//
// A single registry-wide lock serializes every check-then-mutate sequence,
// which is what keeps the "each email at most once per activity" invariant
// intact under concurrent requests.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

func NewRegistry() *Registry {
	return &Registry{
		activities: seedActivities(),
	}
}

// List returns a deep copy of the whole name → Activity mapping.
func (r *Registry) List(ctx context.Context) map[string]*model.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activities := make(map[string]*model.Activity, len(r.activities))
	for name, activity := range r.activities {
		activities[name] = activity.Clone()
	}
	return activities
}

// Get returns a deep copy of a single activity.
func (r *Registry) Get(ctx context.Context, name string) (*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, errors.Wrap(ErrActivityNotFound, name)
	}
	return activity.Clone(), nil
}

// Len returns the number of activities currently registered.
func (r *Registry) Len(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.activities)
}

// AddParticipant appends email to the activity's participant list, keeping
// signup order. The existence and duplicate checks happen under the same
// lock as the append, so the operation either fully succeeds or leaves the
// registry untouched.
func (r *Registry) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return errors.Wrap(ErrActivityNotFound, name)
	}
	if lo.Contains(activity.Participants, email) {
		return errors.Wrap(ErrDuplicateParticipant, email)
	}

	activity.Participants = append(activity.Participants, email)
	return nil
}

// RemoveParticipant removes exactly one occurrence of email from the
// activity's participant list, preserving the relative order of the rest.
func (r *Registry) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return errors.Wrap(ErrActivityNotFound, name)
	}

	i := lo.IndexOf(activity.Participants, email)
	if i < 0 {
		return errors.Wrap(ErrUnknownParticipant, email)
	}

	activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
	return nil
}
