package bank

import "github.com/shopspring/decimal"

// MovementType is the display class of a movement.
type MovementType string

const (
	Deposit    MovementType = "deposit"
	Withdrawal MovementType = "withdrawal"
)

// MovementRow is one line of the movements list. Index is the 1-based
// chronological position of the movement, so it stays the same in sorted
// mode. DisplayDate is empty for accounts that do not track dates.
type MovementRow struct {
	Index           int
	Type            MovementType
	Amount          decimal.Decimal
	FormattedAmount string
	DisplayDate     string
}

// Presenter renders coordinator state. All calls are made with the
// coordinator lock held and must not call back into the Coordinator.
type Presenter interface {
	// RenderMovements receives rows in display order.
	RenderMovements(rows []MovementRow)
	RenderBalance(formatted string)
	RenderSummary(in, out, interest string)
	RenderWelcome(firstName string)
	// RenderDate shows the locale formatted "as of" timestamp.
	RenderDate(formatted string)
	// RenderTimer shows the logout countdown as mm:ss.
	RenderTimer(countdown string)
	ShowApp()
	HideApp()
	// Notify surfaces something that happened outside a user intent, such
	// as a credited loan or an expired session.
	Notify(msg string)
}
