package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/bankist/internal/ledger"
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrInvalidRecord     = errors.New("invalid account record")
)

// Directory owns the accounts. Records live in an arena in registration
// order; the username and ID indexes point into it. Positions are never
// cached by callers: Remove compacts the arena.
//
// Directory is not safe for concurrent use; the transaction coordinator
// serializes every access.
type Directory struct {
	arena      []*Account
	byUsername map[string]*Account
	byID       map[uuid.UUID]*Account
}

type options struct {
	pinCost int
}

// Option tunes directory construction.
type Option func(*options)

// WithPinCost sets the bcrypt cost used to hash PINs. Tests use
// bcrypt.MinCost to stay fast.
func WithPinCost(cost int) Option {
	return func(o *options) { o.pinCost = cost }
}

// NewDirectory validates and normalizes the records and registers them in
// order. Usernames are derived here, once per account.
func NewDirectory(records []Record, opts ...Option) (*Directory, error) {
	o := options{pinCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Directory{
		arena:      make([]*Account, 0, len(records)),
		byUsername: make(map[string]*Account, len(records)),
		byID:       make(map[uuid.UUID]*Account, len(records)),
	}
	for i, r := range records {
		acc, err := r.normalize(o.pinCost)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, r.Owner, err)
		}
		if _, taken := d.byUsername[acc.Username]; taken {
			return nil, fmt.Errorf("record %d (%q): %w: %s", i, r.Owner, ErrDuplicateUsername, acc.Username)
		}
		d.arena = append(d.arena, acc)
		d.byUsername[acc.Username] = acc
		d.byID[acc.ID] = acc
	}
	return d, nil
}

// FindByUsername returns the account registered under username.
func (d *Directory) FindByUsername(username string) (*Account, bool) {
	acc, ok := d.byUsername[username]
	return acc, ok
}

// FindIndex returns the current arena position of username.
func (d *Directory) FindIndex(username string) (int, bool) {
	for i, acc := range d.arena {
		if acc.Username == username {
			return i, true
		}
	}
	return -1, false
}

// Get resolves a stable account ID.
func (d *Directory) Get(id uuid.UUID) (*Account, bool) {
	acc, ok := d.byID[id]
	return acc, ok
}

// Remove deletes the account registered under username. Removing an unknown
// username is a no-op; the result tells whether anything was removed.
func (d *Directory) Remove(username string) bool {
	i, ok := d.FindIndex(username)
	if !ok {
		return false
	}
	acc := d.arena[i]
	d.arena = append(d.arena[:i], d.arena[i+1:]...)
	delete(d.byUsername, username)
	delete(d.byID, acc.ID)
	return true
}

// Len returns the number of registered accounts.
func (d *Directory) Len() int { return len(d.arena) }

// Accounts returns the accounts in registration order.
func (d *Directory) Accounts() []*Account {
	return append([]*Account(nil), d.arena...)
}

func (r Record) normalize(pinCost int) (*Account, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	var dates []time.Time
	if len(r.MovementDates) > 0 {
		dates = r.MovementDates
	}
	l, err := ledger.New(r.Movements, dates)
	if err != nil {
		return nil, err
	}
	hash, err := hashPin(r.Pin, pinCost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}
	return &Account{
		ID:           uuid.New(),
		Owner:        r.Owner,
		Username:     DeriveUsername(r.Owner),
		InterestRate: r.InterestRate,
		Currency:     r.Currency,
		Locale:       r.Locale,
		Ledger:       l,
		pinHash:      hash,
	}, nil
}
