// Package guard turns go-playground/validator checks into Result guards.
//
// Every violation reported by the validator becomes one rop.Error, so a
// struct with three broken fields fails with three errors instead of one.
package guard

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/solo"
)

// New returns a validator configured the way the guards expect it.
func New() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates the struct tags of a valid value. Failed inputs pass
// through.
func Struct[T any](input rop.Result[T], v *validator.Validate) rop.Result[T] {
	return solo.Bind(input, func(value T) rop.Result[T] {
		if err := v.Struct(value); err != nil {
			return rop.ErrDetails[T](Details(err))
		}
		return input
	})
}

// StructWithValue is Struct that stashes the rejected value.
func StructWithValue[T any](input rop.Result[T], v *validator.Validate) rop.Result[T] {
	return solo.BindWithValue(input, func(value T) rop.Result[T] {
		return Struct(rop.Ok(value), v)
	})
}

// Var validates a single value against tag, e.g. "required,email".
func Var[T any](input rop.Result[T], v *validator.Validate, tag string) rop.Result[T] {
	return solo.Bind(input, func(value T) rop.Result[T] {
		if err := v.Var(value, tag); err != nil {
			return rop.ErrDetails[T](Details(err))
		}
		return input
	})
}

// Details converts a validator error into failure details, one error per
// field violation in validator order.
func Details(err error) rop.ErrorsDetails {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return rop.NewErrorsDetails(rop.WrapError(err, err.Error()))
	}
	errs := make([]rop.Error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, rop.WrapError(fe, message(fe)))
	}
	return rop.NewErrorsDetails(errs...)
}

func message(fe validator.FieldError) string {
	field := fe.Namespace()
	if field == "" {
		field = "value"
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed on the '%s=%s' rule", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
}
