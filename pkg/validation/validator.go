package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const enumTag = "enum"

// Enum is implemented by closed code sets that know their valid values.
type Enum interface {
	IsValid() bool
}

type Validator struct {
	impl *validator.Validate
}

// New registers the "enum" tag and reports fields by their json names.
func New() Validator {
	impl := validator.New(validator.WithRequiredStructEnabled())
	impl.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	_ = impl.RegisterValidation(enumTag, validateEnum)

	return Validator{impl: impl}
}

// Struct returns nil or an error describing every failed field in "field: rule" form.
func (v Validator) Struct(s any) error {
	err := v.impl.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, formatFieldError(fieldErr))
	}

	return errors.New(strings.Join(messages, ", "))
}

func formatFieldError(fieldErr validator.FieldError) string {
	field := fieldErr.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	if fieldErr.Param() == "" {
		return fmt.Sprintf("%s: %s", field, fieldErr.Tag())
	}
	return fmt.Sprintf("%s: %s=%s", field, fieldErr.Tag(), fieldErr.Param())
}

func validateEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}

	enum, ok := field.Interface().(Enum)
	if !ok {
		return false
	}

	return enum.IsValid()
}
