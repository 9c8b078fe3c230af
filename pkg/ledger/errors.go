package ledger

import "errors"

// ErrInvalidAmount is returned for nil, zero or negative amounts where a
// positive amount is required.
var ErrInvalidAmount = errors.New("invalid ledger amount")

// ErrInsufficientBalance is returned when an account cannot cover a debit.
var ErrInsufficientBalance = errors.New("insufficient balance")
