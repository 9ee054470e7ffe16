package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired  = "is required"
	ErrEmail     = "must be a valid email address"
	ErrMinValue  = "must be at least %s"
	ErrMaxValue  = "must be at most %s"
	ErrUnique    = "must not contain duplicate values"
	ErrSeatLabel = "must be a seat label such as A1"
	ErrPassword  = "must be 8 to 25 characters long"
	ErrInvalid   = "is invalid"
)

// Seat labels are a row letter followed by a column number, e.g. "A1", "C12".
var seatLabelRgx = regexp.MustCompile(`^[A-Z][1-9][0-9]?$`)

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterValidation("seat_label", validateSeatLabel)
	validate.RegisterValidation("password", validatePassword)

	return validate
}

func validateSeatLabel(fl validator.FieldLevel) bool {
	return seatLabelRgx.MatchString(fl.Field().String())
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	return len(password) >= 8 && len(password) <= 25
}

// ValidationMessage converts validator errors into readable messages.
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "unique":
		return ErrUnique
	case "seat_label":
		return ErrSeatLabel
	case "password":
		return ErrPassword
	default:
		return ErrInvalid
	}
}
