package usecase

import (
	"errors"
	"fmt"
)

// Error carries a stable machine-readable code next to the human message.
// Handlers map codes to HTTP status; callers distinguish "retry with
// different input" (validation) from "refresh and re-check state"
// (conflict) without parsing strings.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrUnauthorized = &Error{Code: "UNAUTHORIZED", Message: "authentication required"}
	ErrForbidden    = &Error{Code: "FORBIDDEN", Message: "operation not allowed for this actor"}
	ErrNotFound     = &Error{Code: "NOT_FOUND", Message: "resource not found"}

	ErrPartnerNotFound = &Error{Code: "PARTNER_NOT_FOUND_OR_INACTIVE", Message: "partner not found or inactive"}
	ErrInvalidPricing  = &Error{Code: "INVALID_PARTNER_PRICING", Message: "partner pricing configuration is invalid"}
	ErrSlotUnavailable = &Error{Code: "SLOT_UNAVAILABLE", Message: "slot is no longer available"}
	ErrSlotMismatch    = &Error{Code: "SLOT_TIME_MISMATCH", Message: "requested time does not match the slot"}
	ErrDiscountInvalid = &Error{Code: "DISCOUNT_INVALID", Message: "discount code is invalid for this partner"}
	ErrLatePayment     = &Error{Code: "LATE_PAYMENT_REFUND_REQUIRED", Message: "payment arrived after the booking was cancelled; refund required"}
	ErrBookingState    = &Error{Code: "BOOKING_STATE_CONFLICT", Message: "booking is not in an editable state"}
)

// ValidationError wraps field errors from request validation.
func ValidationError(message string) *Error {
	return &Error{Code: "VALIDATION_FAILED", Message: message}
}

// AsServiceError unwraps an *Error from an error chain.
func AsServiceError(err error) (*Error, bool) {
	var svcErr *Error
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
