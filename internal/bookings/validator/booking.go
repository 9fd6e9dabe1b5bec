package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"aldosafaris/pkg/logger"
	"aldosafaris/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *BookingValidator) ValidateCreate(bc *model.BookingCreate) error {
	return v.translate(v.validate.Struct(bc))
}

// ParseTravelDate parses a YYYY-MM-DD wire date.
func ParseTravelDate(field, value string) (time.Time, error) {
	t, err := time.Parse(model.TravelDateLayout, value)
	if err != nil {
		return time.Time{}, ValidationErrors{{
			Field:   field,
			Message: fmt.Sprintf("must be a date in %s format", model.TravelDateLayout),
		}}
	}
	return t, nil
}

func (v *BookingValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var out ValidationErrors
	for _, fe := range validationErrs {
		message := fe.Error()
		if fe.Tag() == "required" {
			message = fmt.Sprintf("%s is required", fe.Field())
		}
		out = append(out, ValidationError{Field: fe.Field(), Message: message})
	}
	return out
}
