package service

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
	// ErrStaleCallback marks a payment success callback that has no
	// pending snapshot behind it (replayed or expired). It is surfaced
	// as an anomaly instead of persisting a zero-total order.
	ErrStaleCallback = errors.New("stale payment callback: no pending order")
	ErrUnauthorized  = errors.New("authentication required")
)
