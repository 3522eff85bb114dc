package bank

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bankist/internal/ledger"
)

func TestRequestLoan_CreditsAfterDelay(t *testing.T) {
	f := newFixture(t)
	f.login(t, "jd", 2222)

	require.NoError(t, f.c.RequestLoan(context.Background(), amount("1000")))
	assert.Equal(t, 1, f.c.PendingLoans())

	f.sched.Advance(2499 * time.Millisecond)
	jd := f.account(t, "jd")
	require.Equal(t, 8, jd.Ledger.Len(), "nothing is credited before the delay")
	_, remaining, _ := f.c.LoggedInAs()
	require.Equal(t, 118, remaining)

	f.sched.Advance(time.Millisecond)
	require.Equal(t, 9, jd.Ledger.Len())
	last := jd.Ledger.Movements()[8]
	assert.True(t, last.Amount.Equal(amount("1000")))
	assert.True(t, last.Date.Equal(start.Add(2500*time.Millisecond)))

	_, remaining, _ = f.c.LoggedInAs()
	assert.Equal(t, 120, remaining, "countdown restarts when the loan lands")
	assert.Zero(t, f.c.PendingLoans())
	require.Len(t, f.view.notices, 1)
	assert.Contains(t, f.view.notices[0], "Loan of")

	f.sched.Advance(10 * time.Second)
	assert.Equal(t, 9, jd.Ledger.Len(), "credited exactly once")
}

func TestRequestLoan_FloorsAmount(t *testing.T) {
	f := newFixture(t)
	f.login(t, "ss", 4444)

	require.NoError(t, f.c.RequestLoan(context.Background(), amount("150.99")))
	f.sched.Advance(DefaultLoanDelay)

	ss := f.account(t, "ss")
	assert.True(t, ss.Ledger.Movements()[5].Amount.Equal(amount("150")))
}

func TestRequestLoan_Rejections(t *testing.T) {
	f := newFixture(t)
	f.login(t, "stw", 3333)
	ctx := context.Background()

	require.ErrorIs(t, f.c.RequestLoan(ctx, amount("0.9")), ErrInvalidAmount)
	require.ErrorIs(t, f.c.RequestLoan(ctx, amount("-100")), ErrInvalidAmount)
	require.ErrorIs(t, f.c.RequestLoan(ctx, ledger.ParseAmount("1e-999999999")), ErrInvalidAmount)
	require.ErrorIs(t, f.c.RequestLoan(ctx, ledger.ParseAmount("1e999999999")), ErrInvalidAmount)
	// largest stw movement is 400
	require.ErrorIs(t, f.c.RequestLoan(ctx, amount("4001")), ErrNoQualifyingDeposit)
	require.NoError(t, f.c.RequestLoan(ctx, amount("4000")))

	assert.Equal(t, 1, f.c.PendingLoans())
}

func TestRequestLoan_DroppedAfterLogout(t *testing.T) {
	f := newFixture(t)
	f.login(t, "jd", 2222)
	ctx := context.Background()

	require.NoError(t, f.c.RequestLoan(ctx, amount("1000")))
	require.NoError(t, f.c.Logout(ctx))

	f.sched.Advance(3 * time.Second)
	assert.Equal(t, 8, f.account(t, "jd").Ledger.Len())
	assert.Zero(t, f.c.PendingLoans())
	assert.Empty(t, f.view.notices)
}

func TestRequestLoan_NotCreditedToAnotherUser(t *testing.T) {
	f := newFixture(t)
	f.login(t, "jd", 2222)
	require.NoError(t, f.c.RequestLoan(context.Background(), amount("1000")))

	f.login(t, "js", 1111)
	f.sched.Advance(3 * time.Second)

	assert.Equal(t, 8, f.account(t, "jd").Ledger.Len())
	assert.Equal(t, 8, f.account(t, "js").Ledger.Len())
}

func TestRequestLoan_CreditedAfterRelogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "jd", 2222)
	require.NoError(t, f.c.RequestLoan(ctx, amount("500")))

	require.NoError(t, f.c.Logout(ctx))
	f.login(t, "jd", 2222)
	f.sched.Advance(DefaultLoanDelay)

	assert.Equal(t, 9, f.account(t, "jd").Ledger.Len())
}

func TestRequestLoan_CustomDelay(t *testing.T) {
	f := newFixture(t, WithLoanDelay(100*time.Millisecond))
	f.login(t, "ss", 4444)
	require.NoError(t, f.c.RequestLoan(context.Background(), amount("100")))

	f.sched.Advance(100 * time.Millisecond)
	assert.Equal(t, 6, f.account(t, "ss").Ledger.Len())
}
