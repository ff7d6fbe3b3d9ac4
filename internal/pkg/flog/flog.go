// Package flog provides fiber.Ctx helpers for zerolog: a middleware that
// injects a contextual logger into each request, handlers that enrich it
// with request metadata, and an access-log hook.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FromFiberCtx gets the logger in the request's context.
// This is a shortcut for log.Ctx(r.UserContext())
func FromFiberCtx(r *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(r.UserContext())
}

// NewHandlerMiddleware injects log into the request's UserContext.
func NewHandlerMiddleware(log zerolog.Logger) func(*fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		// Copy the logger (including its internal context slice) to prevent
		// data races when handlers call UpdateContext concurrently.
		l := log.With().Logger()
		ctx.SetUserContext(l.WithContext(ctx.UserContext()))
		return ctx.Next()
	}
}

// URLHandler adds the requested path as a field to the context's logger
// using fieldKey as field key.
func URLHandler(fieldKey string) func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		log := zerolog.Ctx(ctx.UserContext())
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(fieldKey, ctx.Path())
		})
		return ctx.Next()
	}
}

// MethodHandler adds the request method as a field to the context's logger
// using fieldKey as field key.
func MethodHandler(fieldKey string) func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		log := zerolog.Ctx(ctx.UserContext())
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(fieldKey, ctx.Method())
		})
		return ctx.Next()
	}
}

// RemoteAddrHandler adds the request's remote address as a field to the
// context's logger using fieldKey as field key.
func RemoteAddrHandler(fieldKey string) func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		log := zerolog.Ctx(ctx.UserContext())
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(fieldKey, ctx.IP())
		})
		return ctx.Next()
	}
}

// UserAgentHandler adds the request's user-agent as a field to the context's
// logger using fieldKey as field key.
func UserAgentHandler(fieldKey string) func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		log := zerolog.Ctx(ctx.UserContext())
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(fieldKey, ctx.Get(fiber.HeaderUserAgent))
		})
		return ctx.Next()
	}
}

type idKey struct{}

// IDFromFiberCtx returns the unique id associated to the *fiber.Ctx if any.
func IDFromFiberCtx(r *fiber.Ctx) (id xid.ID, ok bool) {
	if r == nil {
		return
	}
	return IDFromCtx(r.UserContext())
}

// IDFromCtx returns the unique id associated to the context if any.
func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

// SetFiberCtxWithID adds the given xid.ID to the UserContext of *fiber.Ctx.
func SetFiberCtxWithID(ctx *fiber.Ctx, id xid.ID) {
	ctx.SetUserContext(CtxWithID(ctx.UserContext(), id))
}

// CtxWithID adds the given xid.ID to the context.
func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// RequestIDHandler assigns a unique xid to the request, retrievable via
// IDFromFiberCtx. The id is added as a field to the contextual logger under
// fieldKey and, when headerName is not empty, echoed as a response header.
func RequestIDHandler(fieldKey, headerName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(ctx)
		if !ok {
			id = xid.New()
			SetFiberCtxWithID(ctx, id)
		}
		if fieldKey != "" {
			log := FromFiberCtx(ctx)
			log.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str(fieldKey, id.String())
			})
		}
		if headerName != "" {
			ctx.Set(headerName, id.String())
		}
		return ctx.Next()
	}
}

// AccessHandler returns a handler that calls f after each request.
func AccessHandler(f func(ctx *fiber.Ctx, duration time.Duration)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		f(ctx, time.Since(start))
		return err
	}
}

// Logger level method helpers

func InfoFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Info()
}

func WarnFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Warn()
}
