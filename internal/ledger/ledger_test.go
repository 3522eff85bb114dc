package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amounts(vals ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func mustNew(t *testing.T, vals ...string) *Ledger {
	t.Helper()
	l, err := New(amounts(vals...), nil)
	require.NoError(t, err)
	return l
}

func TestBalanceAndTotals(t *testing.T) {
	l := mustNew(t, "200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300")

	assert.Equal(t, "25952.59", l.Balance().String())
	assert.Equal(t, "27035.2", l.TotalIn().String())
	assert.Equal(t, "1082.61", l.TotalOut().String())

	// in - out == balance
	assert.True(t, l.TotalIn().Sub(l.TotalOut()).Equal(l.Balance()))
}

func TestEmptyLedger(t *testing.T) {
	l := mustNew(t)

	assert.True(t, l.Balance().IsZero())
	assert.True(t, l.TotalIn().IsZero())
	assert.True(t, l.TotalOut().IsZero())
	assert.True(t, l.TotalInterest(decimal.NewFromInt(5)).IsZero())
	assert.Empty(t, l.SortedView())
}

func TestTotalInterest_DropsAmountsBelowOne(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		rate  string
		want  string
	}{
		{name: "all qualify", moves: []string{"1000", "500"}, rate: "1", want: "15"},
		{name: "small deposit discarded", moves: []string{"1000", "50"}, rate: "1", want: "10"},
		{name: "exactly one counts", moves: []string{"100"}, rate: "1", want: "1"},
		{name: "withdrawals ignored", moves: []string{"-5000", "200"}, rate: "1.5", want: "3"},
		{name: "nothing qualifies", moves: []string{"20", "30"}, rate: "0.7", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustNew(t, tt.moves...)
			got := l.TotalInterest(decimal.RequireFromString(tt.rate))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestSortedView_StableAndNonMutating(t *testing.T) {
	l := mustNew(t, "300", "-20", "50", "-20", "1000")
	before := l.Movements()

	sorted := l.SortedView()

	require.Len(t, sorted, 5)
	gotIdx := make([]int, len(sorted))
	for i, m := range sorted {
		gotIdx[i] = m.Index
	}
	// the two -20 entries keep chronological order
	assert.Equal(t, []int{1, 3, 2, 0, 4}, gotIdx)
	assert.Equal(t, before, l.Movements())
}

func TestSortedView_KeepsDatesPaired(t *testing.T) {
	d0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	d1 := time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)
	l, err := New(amounts("500", "-100"), []time.Time{d0, d1})
	require.NoError(t, err)

	sorted := l.SortedView()

	assert.Equal(t, d1, sorted[0].Date)
	assert.Equal(t, d0, sorted[1].Date)
}

func TestAppend_KeepsAlignment(t *testing.T) {
	d0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2023, 8, 14, 10, 0, 0, 0, time.UTC)

	dated, err := New(amounts("100"), []time.Time{d0})
	require.NoError(t, err)
	dated.Append(decimal.NewFromInt(-40), now)

	moves := dated.Movements()
	require.Len(t, moves, 2)
	assert.Equal(t, now, moves[1].Date)
	assert.True(t, moves[1].Dated)
	assert.Equal(t, "60", dated.Balance().String())

	undated := mustNew(t, "100")
	undated.Append(decimal.NewFromInt(25), now)
	moves = undated.Movements()
	require.Len(t, moves, 2)
	assert.False(t, moves[1].Dated)
	assert.True(t, moves[1].Date.IsZero())
}

func TestNew_RejectsMisalignedDates(t *testing.T) {
	_, err := New(amounts("1", "2"), []time.Time{time.Now()})
	require.ErrorIs(t, err, ErrDatesMisaligned)
}

func TestNew_CopiesInput(t *testing.T) {
	in := amounts("10", "20")
	l, err := New(in, nil)
	require.NoError(t, err)

	in[0] = decimal.NewFromInt(999)
	assert.Equal(t, "30", l.Balance().String())
}

func TestHasDepositOfAtLeast(t *testing.T) {
	l := mustNew(t, "50", "-300", "99.99")

	assert.False(t, l.HasDepositOfAtLeast(decimal.NewFromInt(1000)))
	assert.True(t, l.HasDepositOfAtLeast(decimal.NewFromInt(999)))
	assert.True(t, mustNew(t, "100").HasDepositOfAtLeast(decimal.NewFromInt(1000)))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, "100", ParseAmount(" 100 ").String())
	assert.Equal(t, "12.5", ParseAmount("12.5").String())
	assert.True(t, ParseAmount("abc").IsZero())
	assert.True(t, ParseAmount("").IsZero())
	assert.Equal(t, "250", ParseAmount("2.5e2").String())
	assert.True(t, ParseAmount("1e-999999999").IsZero())
	assert.True(t, ParseAmount("1e999999999").IsZero())
	assert.True(t, ParseAmount("0.000000001").IsZero())
}
