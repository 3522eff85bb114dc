package bank

import (
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/bankist/internal/accounts"
	"github.com/dmitrijs2005/bankist/internal/format"
)

// refresh re-renders everything derived from acc's ledger. The balance is
// recomputed here every time.
func (c *Coordinator) refresh(acc *accounts.Account) {
	l := acc.Ledger
	c.view.RenderMovements(c.rows(acc))
	c.view.RenderBalance(c.money(acc, l.Balance()))
	c.view.RenderSummary(
		c.money(acc, l.TotalIn()),
		c.money(acc, l.TotalOut()),
		c.money(acc, l.TotalInterest(acc.InterestRate)),
	)
}

// rows builds the movement list in display order: newest first, or largest
// first when sorted.
func (c *Coordinator) rows(acc *accounts.Account) []MovementRow {
	movements := acc.Ledger.Movements()
	if c.sorted {
		movements = acc.Ledger.SortedView()
	}
	now := c.now()

	rows := make([]MovementRow, 0, len(movements))
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		row := MovementRow{
			Index:           m.Index + 1,
			Type:            Withdrawal,
			Amount:          m.Amount,
			FormattedAmount: c.money(acc, m.Amount),
		}
		if m.Deposit() {
			row.Type = Deposit
		}
		if m.Dated {
			row.DisplayDate = format.MovementDate(m.Date, now, acc.Locale)
		}
		rows = append(rows, row)
	}
	return rows
}

func (c *Coordinator) money(acc *accounts.Account, amount decimal.Decimal) string {
	return format.Money(amount, acc.Currency, acc.Locale, c.symbol)
}
