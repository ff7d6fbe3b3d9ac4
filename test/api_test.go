package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activityPayload struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

type detailPayload struct {
	Detail string `json:"detail"`
}

type messagePayload struct {
	Message string `json:"message"`
}

func getActivities(t *testing.T, fiberApp *fiber.App) map[string]activityPayload {
	t.Helper()

	resp := request(t, fiberApp, httptest.NewRequest(http.MethodGet, "/activities", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var activities map[string]activityPayload
	decodeJSON(t, resp, &activities)
	return activities
}

func TestIndexRedirect(t *testing.T) {
	fiberApp := newTestApp(t)

	resp := request(t, fiberApp, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/static/index.html", resp.Header.Get(fiber.HeaderLocation))
}

func TestListActivities(t *testing.T) {
	fiberApp := newTestApp(t)

	activities := getActivities(t, fiberApp)
	assert.Len(t, activities, 9)

	chess, ok := activities["Chess Club"]
	require.True(t, ok, "Chess Club should be seeded")
	assert.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestSignup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fiberApp := newTestApp(t)

		resp := request(t, fiberApp, httptest.NewRequest(
			http.MethodPost, "/activities/Chess%20Club/signup?email=newstudent@mergington.edu", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode, bodyString(resp))

		var body messagePayload
		decodeJSON(t, resp, &body)
		assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", body.Message)

		participants := getActivities(t, fiberApp)["Chess Club"].Participants
		require.Len(t, participants, 3)
		assert.Equal(t, "newstudent@mergington.edu", participants[2])
	})

	t.Run("already signed up", func(t *testing.T) {
		fiberApp := newTestApp(t)

		resp := request(t, fiberApp, httptest.NewRequest(
			http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body detailPayload
		decodeJSON(t, resp, &body)
		assert.Equal(t, "Student already signed up for this activity", body.Detail)

		participants := getActivities(t, fiberApp)["Chess Club"].Participants
		assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, participants)
	})

	t.Run("activity not found", func(t *testing.T) {
		fiberApp := newTestApp(t)

		resp := request(t, fiberApp, httptest.NewRequest(
			http.MethodPost, "/activities/NonExistent%20Activity/signup?email=test@mergington.edu", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body detailPayload
		decodeJSON(t, resp, &body)
		assert.Equal(t, "Activity not found", body.Detail)
	})

	t.Run("invalid email", func(t *testing.T) {
		fiberApp := newTestApp(t)

		resp := request(t, fiberApp, httptest.NewRequest(
			http.MethodPost, "/activities/Chess%20Club/signup?email=not-an-email", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body detailPayload
		decodeJSON(t, resp, &body)
		assert.Equal(t, "Invalid email address", body.Detail)

		participants := getActivities(t, fiberApp)["Chess Club"].Participants
		assert.Len(t, participants, 2)
	})

	t.Run("missing email", func(t *testing.T) {
		fiberApp := newTestApp(t)

		resp := request(t, fiberApp, httptest.NewRequest(
			http.MethodPost, "/activities/Chess%20Club/signup", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUnregister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fiberApp := newTestApp(t)

		resp := request(t, fiberApp, httptest.NewRequest(
			http.MethodDelete, "/activities/Chess%20Club/signup?email=michael@mergington.edu", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode, bodyString(resp))

		var body messagePayload
		decodeJSON(t, resp, &body)
		assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", body.Message)

		participants := getActivities(t, fiberApp)["Chess Club"].Participants
		assert.Equal(t, []string{"daniel@mergington.edu"}, participants)
	})

	t.Run("not signed up", func(t *testing.T) {
		fiberApp := newTestApp(t)

		resp := request(t, fiberApp, httptest.NewRequest(
			http.MethodDelete, "/activities/Chess%20Club/signup?email=notsigned@mergington.edu", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body detailPayload
		decodeJSON(t, resp, &body)
		assert.Equal(t, "Student not signed up for this activity", body.Detail)

		participants := getActivities(t, fiberApp)["Chess Club"].Participants
		assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, participants)
	})

	t.Run("activity not found", func(t *testing.T) {
		fiberApp := newTestApp(t)

		resp := request(t, fiberApp, httptest.NewRequest(
			http.MethodDelete, "/activities/NonExistent%20Activity/signup?email=test@mergington.edu", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body detailPayload
		decodeJSON(t, resp, &body)
		assert.Equal(t, "Activity not found", body.Detail)
	})
}

func TestSignupThenUnregisterRoundTrip(t *testing.T) {
	fiberApp := newTestApp(t)

	resp := request(t, fiberApp, httptest.NewRequest(
		http.MethodPost, "/activities/Art%20Studio/signup?email=liam@mergington.edu", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode, bodyString(resp))

	resp = request(t, fiberApp, httptest.NewRequest(
		http.MethodDelete, "/activities/Art%20Studio/signup?email=liam@mergington.edu", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode, bodyString(resp))

	// a second unregister of the same email must now conflict
	resp = request(t, fiberApp, httptest.NewRequest(
		http.MethodDelete, "/activities/Art%20Studio/signup?email=liam@mergington.edu", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	participants := getActivities(t, fiberApp)["Art Studio"].Participants
	assert.Equal(t, []string{"isabella@mergington.edu"}, participants)
}

func TestAPIMeta(t *testing.T) {
	fiberApp := newTestApp(t)

	t.Run("health", func(t *testing.T) {
		resp := request(t, fiberApp, httptest.NewRequest(http.MethodGet, "/api/_/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("version", func(t *testing.T) {
		resp := request(t, fiberApp, httptest.NewRequest(http.MethodGet, "/api/_/bininfo", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
