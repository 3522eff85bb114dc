package bank

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/bankist/internal/journal"
)

// RequestLoan decides on a loan immediately and credits an approved one
// after the loan delay. The amount is floored to whole units first. A loan
// qualifies when some movement is at least ten percent of it.
func (c *Coordinator) RequestLoan(ctx context.Context, amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	acc, err := c.currentAccount(OpLoan)
	if err != nil {
		return err
	}

	amount = amount.Floor()
	var reason error
	switch {
	case !amount.IsPositive():
		reason = ErrInvalidAmount
	case !acc.Ledger.HasDepositOfAtLeast(amount):
		reason = ErrNoQualifyingDeposit
	}
	if reason != nil {
		c.log.Warn(ctx, "loan rejected", "username", acc.Username, "amount", amount, "reason", reason)
		c.record(ctx, journal.KindLoanDenied, acc.Username, amount, reason.Error())
		return reject(OpLoan, reason)
	}

	loan := &pendingLoan{
		id:        uuid.New(),
		accountID: acc.ID,
		username:  acc.Username,
		amount:    amount,
	}
	c.loans[loan.id] = loan
	loan.handle = c.sched.After(c.loanDelay, func() { c.creditLoan(loan.id) })

	c.log.Info(ctx, "loan approved", "username", acc.Username, "amount", amount, "loan", loan.id)
	c.record(ctx, journal.KindLoanApproved, acc.Username, amount, "")
	return nil
}

// PendingLoans is the number of approved loans not yet credited.
func (c *Coordinator) PendingLoans() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.loans)
}

// creditLoan appends an approved loan once. The credit only lands when the
// requesting account still exists and is the one logged in; otherwise it is
// dropped.
func (c *Coordinator) creditLoan(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loan, ok := c.loans[id]
	if !ok {
		return
	}
	delete(c.loans, id)

	ctx := context.Background()
	acc, exists := c.dir.Get(loan.accountID)
	sess, loggedIn := c.session.Current()
	if !exists || !loggedIn || sess.AccountID != loan.accountID {
		c.log.Warn(ctx, "loan credit dropped", "username", loan.username, "amount", loan.amount, "loan", loan.id)
		c.record(ctx, journal.KindLoanDropped, loan.username, loan.amount, "requester no longer logged in")
		return
	}

	acc.Ledger.Append(loan.amount, c.now())
	c.refresh(acc)
	c.resetTimer()
	c.view.Notify(fmt.Sprintf("Loan of %s credited", c.money(acc, loan.amount)))

	c.log.Info(ctx, "loan credited", "username", acc.Username, "amount", loan.amount, "loan", loan.id)
	c.record(ctx, journal.KindLoanCredited, acc.Username, loan.amount, "")
}

// cancelLoans drops every pending loan of accountID.
func (c *Coordinator) cancelLoans(accountID uuid.UUID) int {
	n := 0
	for id, loan := range c.loans {
		if loan.accountID != accountID {
			continue
		}
		loan.handle.Cancel()
		delete(c.loans, id)
		n++
	}
	return n
}
