package application

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"academicevents/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Decimals are validated through their exact string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("nonnegative", validateNonNegative)
	_ = v.RegisterValidation("participant_type", validateParticipantType)
	return v
}

func validateNonNegative(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}

func validateParticipantType(fl validator.FieldLevel) bool {
	return domain.ParticipantType(fl.Field().String()).Valid()
}

// validateStruct runs the struct tags and converts failures to *domain.ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(vErrs))}
	for _, fe := range vErrs {
		out.Fields = append(out.Fields, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "exceeds maximum length"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gtefield":
		return "must not be before " + fe.Param()
	case "nonnegative":
		return "must not be negative"
	case "participant_type":
		return "must be one of STUDENT, PROFESSOR, RESEARCHER, OTHER"
	default:
		return "is invalid"
	}
}
