// Package ledger keeps the append-only list of signed movements of a single
// account, optionally index-aligned with their timestamps, and derives the
// balance and summary figures from it.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrDatesMisaligned is returned when a ledger is built with dates that do
// not pair one-to-one with its movements.
var ErrDatesMisaligned = errors.New("movement dates misaligned")

var (
	hundred      = decimal.NewFromInt(100)
	minInterest  = decimal.NewFromInt(1)
	loanFraction = decimal.RequireFromString("0.1")
)

// Movement is one entry of the ledger. Index is its 0-based position in the
// chronological order and stays with the movement in any projection.
type Movement struct {
	Index  int
	Amount decimal.Decimal
	Date   time.Time
	Dated  bool
}

// Deposit reports whether the movement credits the account.
func (m Movement) Deposit() bool {
	return m.Amount.IsPositive()
}

// Ledger is not safe for concurrent use; callers serialize access.
type Ledger struct {
	amounts []decimal.Decimal
	dates   []time.Time
	dated   bool
}

// New builds a ledger from chronologically ordered amounts. A nil dates slice
// selects the degraded mode in which no timestamps are tracked.
func New(amounts []decimal.Decimal, dates []time.Time) (*Ledger, error) {
	l := &Ledger{
		amounts: append([]decimal.Decimal(nil), amounts...),
		dated:   dates != nil,
	}
	if l.dated {
		if len(dates) != len(amounts) {
			return nil, fmt.Errorf("%w: %d movements, %d dates", ErrDatesMisaligned, len(amounts), len(dates))
		}
		l.dates = append([]time.Time(nil), dates...)
	}
	return l, nil
}

// Dated reports whether timestamps are tracked.
func (l *Ledger) Dated() bool { return l.dated }

// Len returns the number of movements.
func (l *Ledger) Len() int { return len(l.amounts) }

// Balance is the sum of all movements; zero for an empty ledger.
func (l *Ledger) Balance() decimal.Decimal {
	return decimal.Sum(decimal.Zero, l.amounts...)
}

// TotalIn sums the positive movements.
func (l *Ledger) TotalIn() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.amounts {
		if a.IsPositive() {
			total = total.Add(a)
		}
	}
	return total
}

// TotalOut is the absolute value of the sum of the negative movements.
func (l *Ledger) TotalOut() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.amounts {
		if a.IsNegative() {
			total = total.Add(a)
		}
	}
	return total.Abs()
}

// TotalInterest applies rate (a percentage, 1.2 means 1.2%) to every deposit
// and sums the results. Interest below one currency unit is not credited.
func (l *Ledger) TotalInterest(rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.amounts {
		if !a.IsPositive() {
			continue
		}
		interest := a.Mul(rate).Div(hundred)
		if interest.LessThan(minInterest) {
			continue
		}
		total = total.Add(interest)
	}
	return total
}

// HasDepositOfAtLeast reports whether any movement is greater than or equal
// to ten percent of amount, the loan qualification rule.
func (l *Ledger) HasDepositOfAtLeast(amount decimal.Decimal) bool {
	threshold := amount.Mul(loanFraction)
	for _, a := range l.amounts {
		if a.GreaterThanOrEqual(threshold) {
			return true
		}
	}
	return false
}

// Append adds a movement at the end. The timestamp is recorded only when the
// ledger tracks dates, keeping both sequences aligned.
func (l *Ledger) Append(amount decimal.Decimal, at time.Time) {
	l.amounts = append(l.amounts, amount)
	if l.dated {
		l.dates = append(l.dates, at)
	}
}

// Movements returns a copy of the movements in chronological order.
func (l *Ledger) Movements() []Movement {
	out := make([]Movement, len(l.amounts))
	for i, a := range l.amounts {
		out[i] = Movement{Index: i, Amount: a, Dated: l.dated}
		if l.dated {
			out[i].Date = l.dates[i]
		}
	}
	return out
}

// SortedView returns the movements ordered ascending by amount. Equal
// amounts keep their chronological order. The stored order is untouched.
func (l *Ledger) SortedView() []Movement {
	out := l.Movements()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.LessThan(out[j].Amount)
	})
	return out
}

// Exponent bounds of a parsed amount. Values outside them are not money
// and would make later comparisons rescale by huge powers of ten.
const (
	minAmountExp = -8
	maxAmountExp = 15
)

// ParseAmount converts user input into an amount. Anything that is not a
// number, or is scaled outside the money range, becomes zero, which every
// operation treats as an invalid amount.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp < minAmountExp || exp > maxAmountExp {
		return decimal.Zero
	}
	return d
}
