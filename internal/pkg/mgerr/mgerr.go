package mgerr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrActivityNotFound is returned when the referenced activity does not exist in the registry.
	ErrActivityNotFound = New(fiber.StatusNotFound, CodeNotFound, "Activity not found")

	// ErrAlreadySignedUp is returned when signing up an email that is already a participant.
	ErrAlreadySignedUp = New(fiber.StatusBadRequest, CodeConflict, "Student already signed up for this activity")

	// ErrNotSignedUp is returned when unregistering an email that is not a participant.
	ErrNotSignedUp = New(fiber.StatusBadRequest, CodeConflict, "Student not signed up for this activity")

	// ErrInvalidReq is returned when a request parameter fails validation.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "Invalid email address")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "An internal server error occurred")
)

// MergingtonError is the API error contract: HTTP status, a machine-readable
// code, and the human-readable detail rendered as {"detail": ...}.
type MergingtonError struct {
	StatusCode int    `example:"404"`
	ErrorCode  string `example:"NOT_FOUND"`
	Detail     string `example:"Activity not found"`
}

func New(statusCode int, errorCode string, detail string) *MergingtonError {
	return &MergingtonError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Detail:     detail,
	}
}

// Msg returns a copy of the error with a customized detail message.
// The receiver is left untouched so the sentinel values above stay immutable.
func (e MergingtonError) Msg(format string, parts ...interface{}) *MergingtonError {
	e.Detail = fmt.Sprintf(format, parts...)
	return &e
}

func (e *MergingtonError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Detail)
}
