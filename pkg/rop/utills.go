package rop

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors splits a joined error into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// FirstFail returns the details of the first failed outcome, in order.
func FirstFail(outcomes ...Outcome) (ErrorsDetails, bool) {
	for _, o := range outcomes {
		if !o.IsValid() {
			return o.Details(), true
		}
	}
	return ErrorsDetails{}, false
}

// FuseFails fuses the details of every failed outcome, in order.
func FuseFails(outcomes ...Outcome) (ErrorsDetails, bool) {
	var fails []ErrorsDetails
	for _, o := range outcomes {
		if !o.IsValid() {
			fails = append(fails, o.Details())
		}
	}
	if len(fails) == 0 {
		return ErrorsDetails{}, false
	}
	return Fuse(fails...), true
}
