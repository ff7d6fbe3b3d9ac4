package test

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"mergington.edu/activities-backend/internal/app"
	"mergington.edu/activities-backend/internal/app/appcontext"
)

func init() {
	// each test boots its own fx graph; an ephemeral port keeps the
	// lifecycle listeners from colliding
	os.Setenv("MERGINGTON_SERVICE_ADDRESS", "localhost:0")
}

// newTestApp boots the full fx graph and hands back the fiber app. Every
// caller gets a freshly seeded registry, so tests are isolated from each
// other's signups.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	var fiberApp *fiber.App
	fxApp := fxtest.New(t,
		append(app.Options(appcontext.Declare(appcontext.EnvServer)), fx.Populate(&fiberApp))...,
	)
	fxApp.RequireStart()
	t.Cleanup(func() {
		fxApp.RequireStop()
	})

	return fiberApp
}

func request(t *testing.T, fiberApp *fiber.App, req *http.Request, msTimeout ...int) *http.Response {
	t.Helper()

	resp, err := fiberApp.Test(req, msTimeout...)
	if err != nil {
		t.Fatal(err)
	}

	return resp
}

func bodyString(resp *http.Response) string {
	bodyBytes, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "[!] error: failed to read response body: " + err.Error()
	}

	// restore the body so callers can still decode it; this helper is
	// evaluated eagerly when used as an assertion message
	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	return string(bodyBytes)
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
