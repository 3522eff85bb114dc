// Package journal keeps an append-only record of what happened in a bankist
// session: logins, transfers, loans, closures, logouts and expiries. The
// default store is an in-memory SQLite database that lives as long as the
// process.
package journal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Kind names an intent outcome.
type Kind string

const (
	KindLogin          Kind = "login"
	KindLoginFailed    Kind = "login_failed"
	KindTransfer       Kind = "transfer"
	KindTransferDenied Kind = "transfer_rejected"
	KindLoanApproved   Kind = "loan_approved"
	KindLoanCredited   Kind = "loan_credited"
	KindLoanDropped    Kind = "loan_dropped"
	KindLoanDenied     Kind = "loan_rejected"
	KindClose          Kind = "close"
	KindCloseDenied    Kind = "close_rejected"
	KindLogout         Kind = "logout"
	KindExpired        Kind = "expired"
)

// Event is one journal line. Amount is zero for events that move no money.
type Event struct {
	At       time.Time
	Kind     Kind
	Username string
	Amount   decimal.Decimal
	Detail   string
}

// Recorder stores events and reads back a user's most recent ones.
type Recorder interface {
	Record(ctx context.Context, e Event) error
	// Recent returns up to limit events for username, newest first.
	Recent(ctx context.Context, username string, limit int) ([]Event, error)
	// Count is the total number of events ever recorded for username.
	Count(ctx context.Context, username string) (int, error)
	Close() error
}

// Noop drops every event. It is used when the journal is disabled.
type Noop struct{}

func (Noop) Record(context.Context, Event) error                  { return nil }
func (Noop) Recent(context.Context, string, int) ([]Event, error) { return nil, nil }
func (Noop) Count(context.Context, string) (int, error)           { return 0, nil }
func (Noop) Close() error                                         { return nil }
