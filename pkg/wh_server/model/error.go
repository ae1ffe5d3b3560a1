package model

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("")  // Base error for invalid parameter
var ErrAPIKeyError = errors.New("")       // Base error for API key
var ErrBookingError = errors.New("")      // Base error for Booking
var ErrOutwardError = errors.New("")      // Base error for Outward
var ErrInwardError = errors.New("")       // Base error for Inward (purchase)
var ErrReceiptError = errors.New("")      // Base error for Inward Aawak / Outward Jawak
var ErrFirmError = errors.New("")         // Base error for Firm
var ErrSequenceError = errors.New("")     // Base error for naming series allocation
var ErrVerificationError = errors.New("") // Base error for identity verification

// API Key errors
var ErrMissingAPIKey = fmt.Errorf("missing API key%w", ErrAPIKeyError)
var ErrMismatchAPIKey = fmt.Errorf("mismatch API key%w", ErrAPIKeyError)
var ErrInvalidAPIKeyString = fmt.Errorf("invalid API key string%w", ErrAPIKeyError)
var ErrAPIKeyNotFound = fmt.Errorf("API key not found%w", ErrAPIKeyError)

// Booking errors
var ErrBookingNotFound = fmt.Errorf("booking not found%w", ErrBookingError)
var ErrBookingNotPending = fmt.Errorf("booking is not pending%w", ErrBookingError)

// Outward errors
var ErrOutwardNotFound = fmt.Errorf("outward not found%w", ErrOutwardError)
var ErrOutwardNotDraft = fmt.Errorf("outward is not a draft%w", ErrOutwardError)
var ErrOutwardCancelled = fmt.Errorf("outward is already cancelled%w", ErrOutwardError)
var ErrQuantityLimitExceeded = fmt.Errorf("quantity limit exceeded%w", ErrInvalidParameter)

// Inward errors
var ErrInwardNotFound = fmt.Errorf("inward not found%w", ErrInwardError)
var ErrPaymentExceedsTotal = fmt.Errorf("payments exceed the net total%w", ErrInvalidParameter)

// Receipt errors
var ErrInwardAawakNotFound = fmt.Errorf("inward aawak not found%w", ErrReceiptError)
var ErrOutwardJawakNotFound = fmt.Errorf("outward jawak not found%w", ErrReceiptError)

// Firm errors
var ErrFirmNotFound = fmt.Errorf("firm not found%w", ErrFirmError)

// Sequence errors
var ErrSequenceAllocation = fmt.Errorf("fail to allocate sequence%w", ErrSequenceError)

// QuantityLimitError reports a dispatch that would push a booking over its expected quantity.
type QuantityLimitError struct {
	Booking           string
	ExpectedQuantity  Decimal
	AlreadyDispatched Decimal
	CurrentQuantity   Decimal
	Total             Decimal
	Excess            Decimal
}

func (e *QuantityLimitError) Error() string {
	return fmt.Sprintf(
		"Sauda: %s, Expected Quantity: %s kg, Already Dispatched: %s kg, Current Outward: %s kg, Total (%s kg) exceeds limit by %s kg",
		e.Booking,
		e.ExpectedQuantity,
		e.AlreadyDispatched,
		e.CurrentQuantity,
		e.Total,
		e.Excess,
	)
}

func (e *QuantityLimitError) Unwrap() error {
	return ErrQuantityLimitExceeded
}
