package wallet

import "errors"

var (
	// ErrInvalidAmount occurs when a non-positive amount is supplied to a
	// ledger operation. The ledger refuses rather than coercing.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds occurs when a debit exceeds the current
	// balance. No partial debit is ever applied.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
