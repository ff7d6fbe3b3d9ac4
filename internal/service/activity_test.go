package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington.edu/activities-backend/internal/pkg/mgerr"
	"mergington.edu/activities-backend/internal/repo"
)

func newActivityService() *Activity {
	return NewActivity(repo.NewRegistry())
}

func TestSignupMessages(t *testing.T) {
	s := newActivityService()
	ctx := context.Background()

	message, err := s.Signup(ctx, "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", message)
}

func TestSignupErrorMapping(t *testing.T) {
	s := newActivityService()
	ctx := context.Background()

	_, err := s.Signup(ctx, "NonExistent Activity", "test@mergington.edu")
	assert.Equal(t, mgerr.ErrActivityNotFound, err)

	_, err = s.Signup(ctx, "Chess Club", "michael@mergington.edu")
	assert.Equal(t, mgerr.ErrAlreadySignedUp, err)
}

func TestUnregisterMessages(t *testing.T) {
	s := newActivityService()
	ctx := context.Background()

	message, err := s.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", message)
}

func TestUnregisterErrorMapping(t *testing.T) {
	s := newActivityService()
	ctx := context.Background()

	_, err := s.Unregister(ctx, "NonExistent Activity", "test@mergington.edu")
	assert.Equal(t, mgerr.ErrActivityNotFound, err)

	_, err = s.Unregister(ctx, "Chess Club", "notsigned@mergington.edu")
	assert.Equal(t, mgerr.ErrNotSignedUp, err)
}

func TestFailedOperationsDoNotMutate(t *testing.T) {
	s := newActivityService()
	ctx := context.Background()

	before := s.List(ctx)["Chess Club"].Participants

	_, _ = s.Signup(ctx, "Chess Club", "michael@mergington.edu")
	_, _ = s.Unregister(ctx, "Chess Club", "notsigned@mergington.edu")
	_, _ = s.Signup(ctx, "NonExistent Activity", "test@mergington.edu")

	after := s.List(ctx)["Chess Club"].Participants
	assert.Equal(t, before, after)
}

func TestParticipantCountArithmetic(t *testing.T) {
	s := newActivityService()
	ctx := context.Background()

	initial := len(s.List(ctx)["Gym Class"].Participants)

	const signups = 5
	for i := 0; i < signups; i++ {
		_, err := s.Signup(ctx, "Gym Class", fmt.Sprintf("student%d@mergington.edu", i))
		require.NoError(t, err)
	}

	const unregisters = 2
	for i := 0; i < unregisters; i++ {
		_, err := s.Unregister(ctx, "Gym Class", fmt.Sprintf("student%d@mergington.edu", i))
		require.NoError(t, err)
	}

	participants := s.List(ctx)["Gym Class"].Participants
	assert.Len(t, participants, initial+signups-unregisters)

	// the untouched seed entries keep their relative order
	assert.Equal(t, "john@mergington.edu", participants[0])
	assert.Equal(t, "olivia@mergington.edu", participants[1])
}

func TestHealthPing(t *testing.T) {
	s := NewHealth(repo.NewRegistry())
	assert.NoError(t, s.Ping(context.Background()))
}
