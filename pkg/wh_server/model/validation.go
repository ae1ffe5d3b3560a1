package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NonNegative rejects a Decimal below zero.
var NonNegative = validation.By(func(value interface{}) error {
	var d Decimal
	switch v := value.(type) {
	case Decimal:
		d = v
	case *Decimal:
		if v == nil {
			return nil
		}
		d = *v
	default:
		return errors.New("must be a decimal")
	}
	if d.IsNegative() {
		return errors.New("must be no less than 0")
	}
	return nil
})

// RequiredDate rejects a zero Date.
var RequiredDate = validation.By(func(value interface{}) error {
	switch v := value.(type) {
	case Date:
		if v.IsZero() {
			return errors.New("cannot be blank")
		}
	case *Date:
		if v == nil || v.IsZero() {
			return errors.New("cannot be blank")
		}
	default:
		return errors.New("must be a date")
	}
	return nil
})
