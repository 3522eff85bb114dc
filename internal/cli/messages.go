package cli

import (
	"errors"

	"github.com/dmitrijs2005/bankist/internal/bank"
)

var rejectionMessages = []struct {
	err error
	msg string
}{
	{bank.ErrNotLoggedIn, "Please log in first"},
	{bank.ErrAuthenticationFailed, "Wrong username or PIN"},
	{bank.ErrInvalidAmount, "Amount must be a positive number"},
	{bank.ErrRecipientNotFound, "No account with that username"},
	{bank.ErrSelfTransfer, "You cannot transfer money to your own account"},
	{bank.ErrInsufficientFunds, "Insufficient funds"},
	{bank.ErrNoQualifyingDeposit, "Loan denied: no deposit of at least 10% of the requested amount"},
	{bank.ErrCredentialMismatch, "Username or PIN does not match this account"},
}

// describe turns an intent error into the line shown to the user.
func describe(err error) string {
	for _, m := range rejectionMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "Error: " + err.Error()
}
