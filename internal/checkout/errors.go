package checkout

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or expired session ids.
	ErrSessionNotFound = errors.New("checkout session not found")

	// ErrEmptyCart rejects opening payment or submitting with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInsufficientPayment rejects a cash submission whose received amount
	// does not cover the total. Nothing is sent upstream.
	ErrInsufficientPayment = errors.New("cash received does not cover the total")

	// ErrPaymentNotOpen rejects a confirm without an open payment dialog.
	ErrPaymentNotOpen = errors.New("payment dialog is not open")

	// ErrSubmissionInFlight rejects a redundant confirm while a submission
	// is already running for the session.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)
