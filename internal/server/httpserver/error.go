package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"mergington.edu/activities-backend/internal/pkg/mgerr"
)

func handleCustomError(ctx *fiber.Ctx, e *mgerr.MergingtonError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Detail)

	// the "detail" field is the wire contract for every error response
	return ctx.Status(e.StatusCode).JSON(fiber.Map{
		"detail": e.Detail,
	})
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	if e, ok := err.(*mgerr.MergingtonError); ok {
		return handleCustomError(ctx, e)
	}

	// Default to 500 for anything the handlers did not classify
	re := *mgerr.ErrInternalError

	if e, ok := err.(*fiber.Error); ok {
		// Overwrite status code if fiber.Error type & provided code
		re.StatusCode = e.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Detail = e.Message
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
