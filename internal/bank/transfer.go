package bank

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/bankist/internal/journal"
)

// Transfer moves amount from the logged in account to the account
// registered under to. Rules are checked in order: positive amount,
// existing recipient, recipient other than the sender, sufficient balance.
// On rejection neither ledger changes.
func (c *Coordinator) Transfer(ctx context.Context, to string, amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	from, err := c.currentAccount(OpTransfer)
	if err != nil {
		return err
	}

	recipient, found := c.dir.FindByUsername(to)
	var reason error
	switch {
	case !amount.IsPositive():
		reason = ErrInvalidAmount
	case !found:
		reason = ErrRecipientNotFound
	case recipient.ID == from.ID:
		reason = ErrSelfTransfer
	case from.Ledger.Balance().LessThan(amount):
		reason = ErrInsufficientFunds
	}
	if reason != nil {
		c.log.Warn(ctx, "transfer rejected", "from", from.Username, "to", to, "amount", amount, "reason", reason)
		c.record(ctx, journal.KindTransferDenied, from.Username, amount, reason.Error())
		return reject(OpTransfer, reason)
	}

	now := c.now()
	from.Ledger.Append(amount.Neg(), now)
	recipient.Ledger.Append(amount, now)

	c.refresh(from)
	c.resetTimer()

	c.log.Info(ctx, "transfer applied", "from", from.Username, "to", recipient.Username, "amount", amount)
	c.record(ctx, journal.KindTransfer, from.Username, amount.Neg(), "to "+recipient.Username)
	c.record(ctx, journal.KindTransfer, recipient.Username, amount, "from "+from.Username)
	return nil
}
