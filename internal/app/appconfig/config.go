package appconfig

import (
	"time"

	"mergington.edu/activities-backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the HTTP server would listen on for serving API requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// HttpServerShutdownTimeout is the timeout for the HTTP server to shutdown gracefully.
	HttpServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// StaticDir is the directory from which the landing page and its assets are served under /static.
	StaticDir string `required:"true" split_words:"true" default:"static"`

	// SentryDSN is the DSN of the Sentry server. Leaving this empty disables Sentry reporting.
	// See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`
}

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}
