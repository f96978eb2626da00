package ledger

import "errors"

// Domain errors raised by accounts and the account service. The HTTP layer
// translates these into status codes; the core itself never logs or retries.
var (
	// ErrAccountNotFound signals a lookup by an unknown account id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountInactive signals a deposit or withdrawal attempted against
	// a deactivated account. The balance is left untouched.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrInsufficientFunds signals a withdrawal exceeding the current
	// balance. The balance is left untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
