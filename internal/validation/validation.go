// Package validation checks inputs at the service boundary with struct tags.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var ErrValidation = errors.New("validation failed")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation("positive", positive); err != nil {
		panic(err)
	}

	return v
}

// positive accepts decimal amounts strictly above zero, at any scale.
func positive(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return d.IsPositive()
}

// Struct validates s and wraps any failure in ErrValidation with one message
// per offending field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

// Errorf builds an ErrValidation for checks that tags cannot express.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func describe(fe validator.FieldError) string {
	field := fieldName(fe)

	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "positive":
		return field + " must be greater than 0"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "email":
		return field + " must be a valid email"
	}

	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

// fieldName keeps the element index for fields inside slices, e.g.
// "LineItems[1].CostCenterID".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()

	i := strings.LastIndex(ns, "[")
	if i < 0 {
		return fe.Field()
	}

	if j := strings.LastIndex(ns[:i], "."); j >= 0 {
		return ns[j+1:]
	}

	return ns
}
