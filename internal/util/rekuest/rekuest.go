package rekuest

import (
	"github.com/go-playground/validator/v10"

	"mergington.edu/activities-backend/internal/pkg/mgerr"
)

var Validate = validator.New()

// ValidEmail validates the email query parameter. The API's detail contract
// is fixed-English, so validator violations collapse to one message instead
// of being translated per field.
func ValidEmail(email string) error {
	if err := Validate.Var(email, "required,email"); err != nil {
		return mgerr.ErrInvalidReq
	}
	return nil
}
