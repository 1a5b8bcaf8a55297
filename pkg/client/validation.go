package client

import (
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"weatherclient.app/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("units", validateUnits); err != nil {
		panic(fmt.Sprintf("register units validator: %v", err))
	}
	if err := v.RegisterValidation("part", validatePart); err != nil {
		panic(fmt.Sprintf("register part validator: %v", err))
	}
	return v
}

// validateUnits accepts a real unit system or UnitsUnspecified
func validateUnits(fl validator.FieldLevel) bool {
	units, ok := fl.Field().Interface().(Units)
	if !ok {
		return false
	}
	return units == UnitsUnspecified || units.IsValid()
}

func validatePart(fl validator.FieldLevel) bool {
	part, ok := fl.Field().Interface().(Part)
	if !ok {
		return false
	}
	return part.IsValid()
}

// validationError converts a validator failure into a ClientError
func validationError(err error) *errors.ClientError {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.NewValidationError(err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return errors.NewValidationError(fmt.Sprintf("%s is required", fe.Field()))
	case "units":
		return errors.NewValidationError(fmt.Sprintf("invalid units value %d", fe.Value()))
	case "part":
		return errors.NewValidationError(fmt.Sprintf("invalid part value %d", fe.Value()))
	default:
		return errors.NewValidationError(fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
}
