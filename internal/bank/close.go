package bank

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/bankist/internal/journal"
)

// CloseAccount removes the logged in account from the directory when
// username and pin confirm it, then ends the session. Loans still waiting
// for their credit are cancelled.
func (c *Coordinator) CloseAccount(ctx context.Context, username string, pin int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	acc, err := c.currentAccount(OpClose)
	if err != nil {
		return err
	}
	if username != acc.Username || !acc.CheckPin(pin) {
		c.log.Warn(ctx, "close rejected", "username", acc.Username, "confirm", username)
		c.record(ctx, journal.KindCloseDenied, acc.Username, decimal.Zero, "")
		return reject(OpClose, ErrCredentialMismatch)
	}

	c.dir.Remove(acc.Username)
	cancelled := c.cancelLoans(acc.ID)
	c.endSession()

	c.log.Info(ctx, "account closed", "username", acc.Username, "cancelled_loans", cancelled)
	c.record(ctx, journal.KindClose, acc.Username, acc.Ledger.Balance(), "")
	return nil
}
