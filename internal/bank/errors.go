package bank

import (
	"errors"
	"fmt"
)

// Rejection reasons. Every rejected intent wraps exactly one of them in a
// *RejectionError; match with errors.Is.
var (
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrSelfTransfer         = errors.New("cannot transfer to own account")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrNoQualifyingDeposit  = errors.New("no qualifying deposit")
	ErrCredentialMismatch   = errors.New("credentials do not match")
)

// Op names the intent that was rejected.
type Op string

const (
	OpLogin    Op = "login"
	OpLogout   Op = "logout"
	OpTransfer Op = "transfer"
	OpLoan     Op = "loan"
	OpClose    Op = "close"
	OpSort     Op = "sort"
	OpHistory  Op = "history"
)

// RejectionError reports a business rule that refused an intent. No state
// was changed.
type RejectionError struct {
	Op  Op
	Err error
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s rejected: %v", e.Op, e.Err)
}

func (e *RejectionError) Unwrap() error { return e.Err }

func reject(op Op, err error) error {
	return &RejectionError{Op: op, Err: err}
}

// IsRejection reports whether err is a business rejection rather than an
// infrastructure failure.
func IsRejection(err error) bool {
	var re *RejectionError
	return errors.As(err, &re)
}
