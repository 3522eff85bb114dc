// Package accounts holds the fixed set of demo accounts: the account model,
// the directory that resolves usernames to accounts, and the seed data the
// directory is built from.
package accounts

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/bankist/internal/ledger"
)

// Account is the normalized shape of every account in the directory.
// Currency and Locale are empty when the seed record carried no formatting
// hints; the ledger decides whether movement dates are tracked.
type Account struct {
	ID           uuid.UUID
	Owner        string
	Username     string
	InterestRate decimal.Decimal
	Currency     string
	Locale       string
	Ledger       *ledger.Ledger

	pinHash []byte
}

// FirstName returns the first word of the owner's name.
func (a *Account) FirstName() string {
	if f := strings.Fields(a.Owner); len(f) > 0 {
		return f[0]
	}
	return ""
}

// CheckPin reports whether pin is the account's credential.
func (a *Account) CheckPin(pin int) bool {
	return bcrypt.CompareHashAndPassword(a.pinHash, []byte(strconv.Itoa(pin))) == nil
}

// DeriveUsername lowercases owner and joins the first letter of every
// whitespace separated word: "Steven Thomas Williams" becomes "stw".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		r := []rune(word)
		b.WriteRune(r[0])
	}
	return b.String()
}

func hashPin(pin, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(strconv.Itoa(pin)), cost)
}
