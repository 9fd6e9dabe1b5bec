package validator

import (
	"errors"
	"fmt"
	"strings"

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

type TravelPackageValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewTravelPackageValidator(log *logger.Logger) *TravelPackageValidator {
	return &TravelPackageValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *TravelPackageValidator) ValidateCreate(tc *model.TravelPackageCreate) error {
	return v.translate(v.validate.Struct(tc))
}

func (v *TravelPackageValidator) ValidateUpdate(updates *model.TravelPackageUpdate) error {
	return v.translate(v.validate.Struct(updates))
}

func (v *TravelPackageValidator) translate(err error) error {
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
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fe.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		out = append(out, ValidationError{Field: fe.Field(), Message: message})
	}
	return out
}
